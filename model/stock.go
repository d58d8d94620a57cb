package model

import "time"

// Inventory is a row of inventory: the on-hand quantity of a product.
type Inventory struct {
	InventoryID int64     `db:"inventory_id" json:"inventory_id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	ProductName string    `db:"product_name" json:"product_name"`
	Quantity    int       `db:"quantity" json:"quantity"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}

// Sales is a row of sales.
type Sales struct {
	SalesID     int64     `db:"sales_id" json:"sales_id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	ProductName string    `db:"product_name" json:"product_name"`
	Quantity    int       `db:"quantity" json:"quantity"`
	SalesDate   time.Time `db:"sales_date" json:"sales_date"`
}
