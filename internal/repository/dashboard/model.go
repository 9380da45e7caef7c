package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type productStatsEntity struct {
	Total      int64   `bson:"total"`
	OutOfStock int64   `bson:"out_of_stock"`
	LowStock   int64   `bson:"low_stock"`
	Value      float64 `bson:"value"`
}

type productSummaryEntity struct {
	ID                bson.ObjectID `bson:"_id"`
	Title             string        `bson:"title"`
	PartName          string        `bson:"part_name"`
	Quantity          int64         `bson:"quantity"`
	Price             float64       `bson:"price"`
	LowStockThreshold *int64        `bson:"low_stock_threshold"`
	Images            []string      `bson:"images"`
	LinkCount         int           `bson:"link_count"`
}

type recentOrderEntity struct {
	ID           bson.ObjectID `bson:"_id"`
	ProductTitle string        `bson:"product_title"`
	ProductImage string        `bson:"product_image"`
	QuantitySold *int64        `bson:"quantity_sold"`
	SalePrice    float64       `bson:"sale_price"`
	Account      string        `bson:"account"`
	CreatedAt    time.Time     `bson:"created_at"`
}
