package dto

import "time"

type EbayLink struct {
	URL     string     `json:"url"`
	Account string     `json:"account"`
	Label   string     `json:"label"`
	AddedAt *time.Time `json:"added_at,omitempty"`
}

type Product struct {
	ID                string     `json:"_id"`
	Title             string     `json:"title"`
	PartName          string     `json:"part_name"`
	PartNumber        string     `json:"part_number"`
	Side              string     `json:"side"`
	Color             string     `json:"color"`
	Tags              []string   `json:"tags"`
	CarMake           string     `json:"car_make"`
	CarModel          string     `json:"car_model"`
	CarYear           string     `json:"car_year"`
	Description       string     `json:"description"`
	Price             float64    `json:"price"`
	Shipping          float64    `json:"shipping"`
	Quantity          int64      `json:"quantity"`
	LowStockThreshold int64      `json:"low_stock_threshold"`
	LocationText      string     `json:"location_text"`
	Images            []string   `json:"images"`
	LocationImages    []string   `json:"location_images"`
	EbayLinks         []EbayLink `json:"ebay_links"`
	LinkCount         int        `json:"link_count"`
	IsGroup           bool       `json:"is_group"`
	TotalSold         int64      `json:"total_sold"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type SearchResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int64     `json:"page"`
	Pages    int64     `json:"pages"`
}

type ProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

type CheckLinkRequest struct {
	URL string `json:"url"`
}

type LinkOwner struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	PartName string `json:"part_name"`
	Image    string `json:"image"`
}

type CheckLinkResponse struct {
	AlreadyExists bool       `json:"already_exists"`
	Product       *LinkOwner `json:"product,omitempty"`
}

type AddProductResponse struct {
	Success   bool   `json:"success"`
	ProductID string `json:"product_id"`
}

// PatchProductRequest is the JSON form of a product update; absent keys are
// left untouched.
type PatchProductRequest struct {
	Title             *string     `json:"title"`
	PartName          *string     `json:"part_name"`
	PartNumber        *string     `json:"part_number"`
	Side              *string     `json:"side"`
	Color             *string     `json:"color"`
	Tags              *[]string   `json:"tags"`
	CarMake           *string     `json:"car_make"`
	CarModel          *string     `json:"car_model"`
	CarYear           *string     `json:"car_year"`
	Description       *string     `json:"description"`
	Price             *Float      `json:"price"`
	Shipping          *Float      `json:"shipping"`
	Quantity          *Int        `json:"quantity"`
	LowStockThreshold *Int        `json:"low_stock_threshold"`
	LocationText      *string     `json:"location_text"`
	EbayLinks         *[]EbayLink `json:"ebay_links"`
}

type QuantityRequest struct {
	Quantity *Int `json:"quantity"`
}

type QuantityResponse struct {
	Success  bool  `json:"success"`
	Quantity int64 `json:"quantity"`
}

type LinkRequest struct {
	URL     string `json:"url"`
	Account string `json:"account"`
	Label   string `json:"label"`
}
