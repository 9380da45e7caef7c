package model

import "time"

const (
	RecentWindow        = 7 * 24 * time.Hour
	RecentProductsLimit = 5
	LowStockListLimit   = 10
	OutOfStockListLimit = 10
	RecentOrdersLimit   = 5
)

type ProductStats struct {
	TotalProducts int64
	OutOfStock    int64
	LowStock      int64
	TotalValue    float64
}

type OrderStats struct {
	TotalOrders    int64
	RecentOrders7d int64
}

type RecentProduct struct {
	ID        string
	Title     string
	PartName  string
	Quantity  int64
	Price     float64
	Thumbnail string
	LinkCount int
}

type LowStockProduct struct {
	ID                string
	Title             string
	Quantity          int64
	LowStockThreshold int64
	Thumbnail         string
}

type OutOfStockProduct struct {
	ID        string
	Title     string
	Thumbnail string
}

type RecentOrder struct {
	ID           string
	ProductTitle string
	ProductImage string
	QuantitySold int64
	SalePrice    float64
	Account      string
	CreatedAt    time.Time
}

type Dashboard struct {
	Products        ProductStats
	Orders          OrderStats
	RecentProducts  []RecentProduct
	LowStockList    []LowStockProduct
	OutOfStockList  []OutOfStockProduct
	RecentOrderList []RecentOrder
}
