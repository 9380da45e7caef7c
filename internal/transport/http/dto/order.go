package dto

import "time"

type AddOrderRequest struct {
	ProductID    string `json:"product_id"`
	QuantitySold *Int   `json:"quantity_sold"`
	SalePrice    *Float `json:"sale_price"`
	Account      string `json:"account"`
	EbayOrderID  string `json:"ebay_order_id"`
	BuyerName    string `json:"buyer_name"`
	Note         string `json:"note"`
}

type AddOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"order_id"`
	NewQuantity int64  `json:"new_quantity"`
	QtyReduced  int64  `json:"qty_reduced"`
}

type Order struct {
	ID           string    `json:"_id"`
	ProductID    string    `json:"product_id"`
	ProductTitle string    `json:"product_title"`
	ProductImage string    `json:"product_image"`
	QuantitySold int64     `json:"quantity_sold"`
	SalePrice    float64   `json:"sale_price"`
	Account      string    `json:"account"`
	EbayOrderID  string    `json:"ebay_order_id"`
	BuyerName    string    `json:"buyer_name"`
	Note         string    `json:"note"`
	AddedBy      string    `json:"added_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
	Total   int64   `json:"total"`
}

type DeleteOrderResponse struct {
	Success     bool  `json:"success"`
	QtyRestored int64 `json:"qty_restored"`
}
