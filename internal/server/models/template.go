package models

import "github.com/shopspring/decimal"

// Template is a purchasable catalog item. FilePath is the object-storage key
// of the downloadable archive.
type Template struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	FilePath    string          `json:"file_path"`
	ImagePath   string          `json:"image_path"`
}
