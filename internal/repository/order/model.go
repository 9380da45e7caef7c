package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderEntity struct {
	ID bson.ObjectID `bson:"_id,omitempty"`
	// ProductID is the product's hex id kept as a plain string.
	ProductID    string    `bson:"product_id"`
	ProductTitle string    `bson:"product_title"`
	ProductImage string    `bson:"product_image"`
	QuantitySold int64     `bson:"quantity_sold"`
	SalePrice    float64   `bson:"sale_price"`
	Account      string    `bson:"account"`
	EbayOrderID  string    `bson:"ebay_order_id"`
	BuyerName    string    `bson:"buyer_name"`
	Note         string    `bson:"note"`
	AddedBy      string    `bson:"added_by"`
	CreatedAt    time.Time `bson:"created_at"`
}
