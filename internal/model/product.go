package model

import (
	"io"
	"time"
)

const (
	DefaultLowStockThreshold int64 = 3
	DefaultProductQuantity   int64 = 1
)

type Product struct {
	ID          string
	Title       string
	PartName    string
	PartNumber  string
	Side        string
	Color       string
	Tags        []string
	CarMake     string
	CarModel    string
	CarYear     string
	Description string

	Price             float64
	Shipping          float64
	Quantity          int64
	LowStockThreshold int64

	LocationText   string
	Images         []string
	LocationImages []string
	EbayLinks      []EbayLink

	TotalSold int64
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
}

// LinkCount is the number of marketplace listings attached to the product.
func (p *Product) LinkCount() int { return len(p.EbayLinks) }

// IsGroup reports a grouped listing: more than one marketplace link.
func (p *Product) IsGroup() bool { return p.LinkCount() > 1 }

// Thumbnail is the first product image, or "" when there is none.
func (p *Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type EbayLink struct {
	URL     string
	Account string
	Label   string
	AddedAt time.Time
}

// ProductFields are the descriptive and commercial fields written by the
// multipart add and replace operations.
type ProductFields struct {
	Title             string
	PartName          string
	PartNumber        string
	Side              string
	Color             string
	Tags              []string
	CarMake           string
	CarModel          string
	CarYear           string
	Description       string
	Price             float64
	Shipping          float64
	Quantity          int64
	LowStockThreshold int64
	LocationText      string
	// EbayLinks is nil when the submitted JSON did not parse.
	EbayLinks []EbayLink
}

type AddProductParams struct {
	Fields         ProductFields
	Images         []Upload
	LocationImages []Upload
	CreatedBy      string
}

type ReplaceProductParams struct {
	ID             string
	Fields         ProductFields
	Images         []Upload
	LocationImages []Upload
}

// ReplaceProduct is the repository-level write of a multipart update:
// every field is set, new image URIs are appended.
type ReplaceProduct struct {
	Fields               ProductFields
	AppendImages         []string
	AppendLocationImages []string
	UpdatedAt            time.Time
}

// ProductPatch sets only the non-nil fields.
type ProductPatch struct {
	Title             *string
	PartName          *string
	PartNumber        *string
	Side              *string
	Color             *string
	Tags              *[]string
	CarMake           *string
	CarModel          *string
	CarYear           *string
	Description       *string
	Price             *float64
	Shipping          *float64
	Quantity          *int64
	LowStockThreshold *int64
	LocationText      *string
	EbayLinks         *[]EbayLink
}

// Upload is a file part submitted with a product form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ProductQuery struct {
	Text string
	Page Page
}

type ProductPage struct {
	Items []*Product
	Total int64
	Page  int64
	Pages int64
}

// LinkOwner is the short view of the product already holding a link.
type LinkOwner struct {
	ID        string
	Title     string
	PartName  string
	Thumbnail string
}

type CheckLinkResult struct {
	AlreadyExists bool
	Product       *LinkOwner
}

type AddLinkParams struct {
	ProductID string
	URL       string
	Account   string
	Label     string
}
