package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProductEntity struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	PartName    string        `bson:"part_name"`
	PartNumber  string        `bson:"part_number"`
	Side        string        `bson:"side"`
	Color       string        `bson:"color"`
	Tags        []string      `bson:"tags"`
	CarMake     string        `bson:"car_make"`
	CarModel    string        `bson:"car_model"`
	CarYear     string        `bson:"car_year"`
	Description string        `bson:"description"`

	Price             float64 `bson:"price"`
	Shipping          float64 `bson:"shipping"`
	Quantity          int64   `bson:"quantity"`
	LowStockThreshold *int64  `bson:"low_stock_threshold,omitempty"`

	LocationText   string           `bson:"location_text"`
	Images         []string         `bson:"images"`
	LocationImages []string         `bson:"location_images"`
	EbayLinks      []EbayLinkEntity `bson:"ebay_links"`

	TotalSold int64     `bson:"total_sold"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
	CreatedBy string    `bson:"created_by"`
}

// EbayLinkEntity keeps added_at as an ISO-8601 string, the format existing
// documents already use.
type EbayLinkEntity struct {
	URL     string `bson:"url"`
	Account string `bson:"account"`
	Label   string `bson:"label"`
	AddedAt string `bson:"added_at"`
}

// linkOwnerEntity is the projection returned by the link lookup.
type linkOwnerEntity struct {
	ID       bson.ObjectID `bson:"_id"`
	Title    string        `bson:"title"`
	PartName string        `bson:"part_name"`
	Images   []string      `bson:"images"`
}
