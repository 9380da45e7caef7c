package dto

import "time"

type Stats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalOrders    int64   `json:"total_orders"`
	OutOfStock     int64   `json:"out_of_stock"`
	LowStock       int64   `json:"low_stock"`
	TotalValue     float64 `json:"total_value"`
	RecentOrders7d int64   `json:"recent_orders_7d"`
}

type RecentProduct struct {
	ID        string  `json:"_id"`
	Title     string  `json:"title"`
	PartName  string  `json:"part_name"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	LinkCount int     `json:"link_count"`
}

type LowStockProduct struct {
	ID                string `json:"_id"`
	Title             string `json:"title"`
	Quantity          int64  `json:"quantity"`
	LowStockThreshold int64  `json:"low_stock_threshold"`
	Image             string `json:"image"`
}

type OutOfStockProduct struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type RecentOrder struct {
	ID           string    `json:"_id"`
	ProductTitle string    `json:"product_title"`
	ProductImage string    `json:"product_image"`
	QuantitySold int64     `json:"quantity_sold"`
	SalePrice    float64   `json:"sale_price"`
	Account      string    `json:"account"`
	CreatedAt    time.Time `json:"created_at"`
}

type DashboardResponse struct {
	Success        bool                `json:"success"`
	Stats          Stats               `json:"stats"`
	RecentProducts []RecentProduct     `json:"recent_products"`
	LowStockList   []LowStockProduct   `json:"low_stock_list"`
	OutOfStockList []OutOfStockProduct `json:"out_of_stock_list"`
	RecentOrders   []RecentOrder       `json:"recent_orders"`
}
