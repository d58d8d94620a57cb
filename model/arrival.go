package model

import "time"

// StockReceipt is a row of stock_receipt.
type StockReceipt struct {
	ReceiptID   int64     `db:"receipt_id" json:"receipt_id"`
	ProductID   int64     `db:"product_id" json:"product_id" validate:"required"`
	Quantity    int       `db:"quantity" json:"quantity"`
	ReceiptDate time.Time `db:"receipt_date" json:"receipt_date" validate:"required"`
}

// StockReceiptResponse is a stock receipt joined with the current name of its product.
type StockReceiptResponse struct {
	ReceiptID   int64     `db:"receipt_id" json:"receipt_id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	ProductName string    `db:"product_name" json:"product_name"`
	Quantity    int       `db:"quantity" json:"quantity"`
	ReceiptDate time.Time `db:"receipt_date" json:"receipt_date"`
}

// ArrivalFilter for searching stock receipts. Date matches on the calendar day only.
type ArrivalFilter struct {
	Name string
	Date *time.Time
}
