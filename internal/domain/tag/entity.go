package tag

import "regexp"

// Tag — справочная метка рецепта (завтрак, обед, ужин и т.п.).
type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Color string `json:"color" gorm:"size:7;default:#ffffff"`
	Slug  string `json:"slug" gorm:"size:200;not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }

var colorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// ValidColor проверяет, что строка является hex-цветом вида #abc или #aabbcc.
func ValidColor(color string) bool {
	return colorRe.MatchString(color)
}
