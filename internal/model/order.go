package model

import "time"

const DefaultQuantitySold int64 = 1

// Order is one recorded sale. The product_* fields are a snapshot taken at
// sale time and are never re-synchronised with later product edits.
type Order struct {
	ID           string
	ProductID    string
	ProductTitle string
	ProductImage string
	QuantitySold int64
	SalePrice    float64
	Account      string
	EbayOrderID  string
	BuyerName    string
	Note         string
	AddedBy      string
	CreatedAt    time.Time
}

type AddOrderParams struct {
	ProductID string
	// QuantitySold and SalePrice are nil when not supplied.
	QuantitySold *int64
	SalePrice    *float64
	Account      string
	EbayOrderID  string
	BuyerName    string
	Note         string
	AddedBy      string
}

type AddOrderResult struct {
	OrderID     string
	NewQuantity int64
	QtyReduced  int64
}

type OrdersFilter struct {
	ProductID string
	Page      Page
}

type OrderPage struct {
	Items []*Order
	Total int64
}

type DeleteOrderResult struct {
	QtyRestored int64
}
