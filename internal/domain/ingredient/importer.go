package ingredient

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// Importer загружает справочник ингредиентов из двухколоночного CSV
// (название, единица измерения). Дубликаты намеренно не отсеиваются:
// источник считается доверенным и загружается один раз.
type Importer struct {
	repo Repository
}

func NewImporter(repo Repository) *Importer {
	return &Importer{repo: repo}
}

// Import читает CSV целиком и вставляет все строки одной пачкой.
// Возвращает количество загруженных ингредиентов.
func (im *Importer) Import(ctx context.Context, src io.Reader) (int, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	var items []Ingredient
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read csv: %w", err)
		}
		if len(row) < 2 {
			return 0, fmt.Errorf("csv row %d: expected 2 columns, got %d", len(items)+1, len(row))
		}
		items = append(items, Ingredient{
			Name:            row[0],
			MeasurementUnit: row[1],
		})
	}

	if err := im.repo.CreateBatch(ctx, items); err != nil {
		return 0, fmt.Errorf("insert ingredients: %w", err)
	}

	return len(items), nil
}
