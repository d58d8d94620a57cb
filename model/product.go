package model

import "github.com/shopspring/decimal"

// ProductMaster is a row of product_master, the root entity every stock row refers to.
type ProductMaster struct {
	ProductID          int64           `db:"product_id" json:"product_id"`
	ProductName        string          `db:"product_name" json:"product_name" validate:"required,max=100"`
	ProductDescription *string         `db:"product_description" json:"product_description,omitempty" validate:"omitempty,max=500"`
	Price              decimal.Decimal `db:"price" json:"price"`
}

// ProductFilter for searching products. Zero values disable a filter.
type ProductFilter struct {
	Name  string
	Price *decimal.Decimal
}
