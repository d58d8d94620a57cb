package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// View-models used by the web tier. JSON tags mirror the API payloads so they
// can be decoded straight from API responses.

type ProductViewModel struct {
	ProductID          int64           `json:"product_id"`
	ProductName        string          `json:"product_name" validate:"required,max=100"`
	ProductDescription *string         `json:"product_description,omitempty" validate:"omitempty,max=500"`
	Price              decimal.Decimal `json:"price" validate:"required,gte=0.01,lte=10000"`
}

type ProductNameViewModel struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name" validate:"required,max=100"`
}

type ArrivalViewModel struct {
	ReceiptID   int64      `json:"receipt_id"`
	ProductID   int64      `json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity" validate:"required,gte=1,lte=1000"`
	ReceiptDate *time.Time `json:"receipt_date" validate:"required"`
}

// ProductForm and ArrivalForm hold raw form input before it is parsed into view-models.

type ProductForm struct {
	ProductID          int64  `schema:"product_id"`
	ProductName        string `schema:"product_name"`
	ProductDescription string `schema:"product_description"`
	Price              string `schema:"price"`
}

type ArrivalForm struct {
	ReceiptID   int64  `schema:"receipt_id"`
	ProductID   int64  `schema:"product_id"`
	ProductName string `schema:"product_name"`
	Quantity    int    `schema:"quantity"`
	ReceiptDate string `schema:"receipt_date"`
}
