package shoppinglist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("shopping cart is empty")

// Header — фиксированная первая строка выгрузки.
const Header = "Список покупок:\n\n"

// Line — одна агрегированная позиция списка покупок.
// Ключ группировки — (название, единица измерения), не id ингредиента:
// одноимённые ингредиенты с одинаковой единицей сознательно сливаются.
type Line struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Amount int    `json:"amount"`
}

// Repository handles the aggregation query over cart contents
type Repository interface {
	CartSize(ctx context.Context, userID int64) (int64, error)
	// AggregateByUser суммирует количества по всем рецептам в корзине
	// пользователя. Группы упорядочены по названию, затем по единице
	// измерения — детерминированный порядок для выгрузки.
	AggregateByUser(ctx context.Context, userID int64) ([]Line, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CartSize(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shopping_cart_entries").
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) AggregateByUser(ctx context.Context, userID int64) ([]Line, error) {
	var lines []Line
	err := r.db.WithContext(ctx).Raw(
		`SELECT i.name AS name, i.measurement_unit AS unit, SUM(ri.amount) AS amount
		 FROM recipe_ingredients ri
		 JOIN ingredients i ON i.id = ri.ingredient_id
		 JOIN shopping_cart_entries sc ON sc.recipe_id = ri.recipe_id
		 WHERE sc.user_id = ?
		 GROUP BY i.name, i.measurement_unit
		 ORDER BY i.name, i.measurement_unit`,
		userID,
	).Scan(&lines).Error
	return lines, err
}

// Service contains business logic for the shopping-list export
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Compose строит текст выгрузки. Пустая корзина — ошибка,
// а не документ из одного заголовка.
func (s *Service) Compose(ctx context.Context, userID int64) (string, error) {
	size, err := s.repo.CartSize(ctx, userID)
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", ErrEmptyCart
	}

	lines, err := s.repo.AggregateByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	return Render(lines), nil
}

// Render печатает список в формате "<название>: <количество> <единица>".
func Render(lines []Line) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s: %d %s\n", line.Name, line.Amount, line.Unit)
	}
	return b.String()
}
