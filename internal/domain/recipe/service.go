package recipe

import (
	"context"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/images"
)

type IngredientCatalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]ingredient.Ingredient, error)
}

type TagCatalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]tag.Tag, error)
}

type AuthorDirectory interface {
	GetByIDs(ctx context.Context, ids []int64) ([]user.User, error)
}

// MembershipFlags отвечает на вопрос "какие из рецептов у пользователя в
// избранном/корзине" точечной проверкой существования, без выгрузки всего
// членства. Реализуется репозиторием membership.
type MembershipFlags interface {
	FavoritedSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
	InCartSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, followerID, authorID int64) (bool, error)
}

// Service contains business logic for the recipe aggregate
type Service struct {
	recipes     Repository
	ingredients IngredientCatalog
	tags        TagCatalog
	authors     AuthorDirectory
	flags       MembershipFlags
	subs        SubscriptionChecker
	mediaDir    string
}

func NewService(
	recipes Repository,
	ingredients IngredientCatalog,
	tags TagCatalog,
	authors AuthorDirectory,
	flags MembershipFlags,
	subs SubscriptionChecker,
	mediaDir string,
) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		tags:        tags,
		authors:     authors,
		flags:       flags,
		subs:        subs,
		mediaDir:    mediaDir,
	}
}

func (s *Service) Create(ctx context.Context, authorID int64, req WriteRequest) (*View, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	imageName, err := images.SaveDataURI(s.mediaDir, req.Image)
	if err != nil {
		return nil, &ValidationError{Violations: []FieldError{{Field: "image", Err: ErrInvalidImage}}}
	}

	rec := &Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imageName,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.recipes.Create(ctx, rec, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}

	return s.view(ctx, authorID, rec)
}

func (s *Service) Update(ctx context.Context, requesterID, recipeID int64, req WriteRequest) (*View, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}

	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	imageName := rec.Image
	if req.Image != "" {
		imageName, err = images.SaveDataURI(s.mediaDir, req.Image)
		if err != nil {
			return nil, &ValidationError{Violations: []FieldError{{Field: "image", Err: ErrInvalidImage}}}
		}
	}

	rec.Name = req.Name
	rec.Image = imageName
	rec.Text = req.Text
	rec.CookingTime = req.CookingTime

	if err := s.recipes.Update(ctx, rec, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}

	return s.view(ctx, requesterID, rec)
}

func (s *Service) Delete(ctx context.Context, requesterID, recipeID int64) error {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if rec.AuthorID != requesterID {
		return ErrNotAuthor
	}
	return s.recipes.Delete(ctx, recipeID)
}

func (s *Service) Get(ctx context.Context, requesterID, recipeID int64) (*View, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, requesterID, rec)
}

func (s *Service) List(ctx context.Context, f Filter) ([]View, int64, error) {
	recipes, total, err := s.recipes.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.views(ctx, f.RequesterID, recipes)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// validate складывает чистые проверки состава с проверкой существования
// ингредиентов и тегов в справочниках.
func (s *Service) validate(ctx context.Context, req WriteRequest) error {
	violations := ValidateComposition(req.Ingredients, req.Tags)

	if len(req.Ingredients) > 0 {
		ids := make([]int64, 0, len(req.Ingredients))
		for _, ing := range req.Ingredients {
			ids = append(ids, ing.ID)
		}
		found, err := s.ingredients.GetByIDs(ctx, uniqueIDs(ids))
		if err != nil {
			return err
		}
		if len(found) != len(uniqueIDs(ids)) {
			violations = append(violations, FieldError{Field: "ingredients", Err: ErrUnknownIngredient})
		}
	}

	if len(req.Tags) > 0 {
		found, err := s.tags.GetByIDs(ctx, uniqueIDs(req.Tags))
		if err != nil {
			return err
		}
		if len(found) != len(uniqueIDs(req.Tags)) {
			violations = append(violations, FieldError{Field: "tags", Err: ErrUnknownTag})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (s *Service) view(ctx context.Context, requesterID int64, rec *Recipe) (*View, error) {
	views, err := s.views(ctx, requesterID, []Recipe{*rec})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views собирает полные представления пачкой: join-строки, справочники,
// авторы и флаги членства загружаются по одному запросу на таблицу.
func (s *Service) views(ctx context.Context, requesterID int64, recipes []Recipe) ([]View, error) {
	if len(recipes) == 0 {
		return []View{}, nil
	}

	recipeIDs := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}
	authorIDs = uniqueIDs(authorIDs)

	ingredientRows, err := s.recipes.IngredientsOf(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	tagRows, err := s.recipes.TagsOf(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	ingredientIDs := make([]int64, 0, len(ingredientRows))
	for _, row := range ingredientRows {
		ingredientIDs = append(ingredientIDs, row.IngredientID)
	}
	catalog, err := s.ingredients.GetByIDs(ctx, uniqueIDs(ingredientIDs))
	if err != nil {
		return nil, err
	}
	ingredientByID := make(map[int64]ingredient.Ingredient, len(catalog))
	for _, ing := range catalog {
		ingredientByID[ing.ID] = ing
	}

	tagIDs := make([]int64, 0, len(tagRows))
	for _, row := range tagRows {
		tagIDs = append(tagIDs, row.TagID)
	}
	tags, err := s.tags.GetByIDs(ctx, uniqueIDs(tagIDs))
	if err != nil {
		return nil, err
	}
	tagByID := make(map[int64]tag.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}

	authors, err := s.authors.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorByID := make(map[int64]user.User, len(authors))
	for _, a := range authors {
		authorByID[a.ID] = a
	}

	favorited := map[int64]bool{}
	inCart := map[int64]bool{}
	subscribed := map[int64]bool{}
	if requesterID != 0 {
		if favorited, err = s.flags.FavoritedSet(ctx, requesterID, recipeIDs); err != nil {
			return nil, err
		}
		if inCart, err = s.flags.InCartSet(ctx, requesterID, recipeIDs); err != nil {
			return nil, err
		}
		for _, authorID := range authorIDs {
			if authorID == requesterID {
				continue
			}
			ok, err := s.subs.IsSubscribed(ctx, requesterID, authorID)
			if err != nil {
				return nil, err
			}
			subscribed[authorID] = ok
		}
	}

	ingredientsByRecipe := make(map[int64][]IngredientView, len(recipes))
	for _, row := range ingredientRows {
		ing := ingredientByID[row.IngredientID]
		ingredientsByRecipe[row.RecipeID] = append(ingredientsByRecipe[row.RecipeID], IngredientView{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	tagsByRecipe := make(map[int64][]tag.Tag, len(recipes))
	for _, row := range tagRows {
		tagsByRecipe[row.RecipeID] = append(tagsByRecipe[row.RecipeID], tagByID[row.TagID])
	}

	views := make([]View, 0, len(recipes))
	for _, r := range recipes {
		author := authorByID[r.AuthorID]
		views = append(views, View{
			ID:               r.ID,
			Tags:             tagsByRecipe[r.ID],
			Author:           user.NewProfile(&author, subscribed[r.AuthorID]),
			Ingredients:      ingredientsByRecipe[r.ID],
			Name:             r.Name,
			Image:            images.URL(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
		})
	}
	return views, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
