//go:build integration

package integration

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func newFakeProduct(qty, threshold int64) *model.Product {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return &model.Product{
		Title:             gofakeit.ProductName(),
		PartName:          gofakeit.Word(),
		PartNumber:        gofakeit.Regex("[A-Z]{2}[0-9]{6}"),
		CarMake:           gofakeit.CarMaker(),
		CarModel:          gofakeit.CarModel(),
		CarYear:           "2015",
		Tags:              []string{gofakeit.Word()},
		Price:             gofakeit.Float64Range(5, 500),
		Quantity:          qty,
		LowStockThreshold: threshold,
		Images:            []string{"/static/uploads/" + gofakeit.UUID() + ".png"},
		EbayLinks:         []model.EbayLink{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func newFakeOrder(p *model.Product, productID string, qty int64, at time.Time) *model.Order {
	return &model.Order{
		ProductID:    productID,
		ProductTitle: p.Title,
		ProductImage: p.Thumbnail(),
		QuantitySold: qty,
		SalePrice:    p.Price,
		Account:      "PMC",
		AddedBy:      gofakeit.Name(),
		CreatedAt:    at.UTC().Truncate(time.Millisecond),
	}
}
