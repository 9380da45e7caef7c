package repository

import (
	"math"

	"github.com/samber/lo"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func statsToModel(e productStatsEntity) model.ProductStats {
	return model.ProductStats{
		TotalProducts: e.Total,
		OutOfStock:    e.OutOfStock,
		LowStock:      e.LowStock,
		TotalValue:    roundCents(e.Value),
	}
}

func thumbnail(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

func recentProductToModel(e productSummaryEntity) model.RecentProduct {
	return model.RecentProduct{
		ID:        e.ID.Hex(),
		Title:     e.Title,
		PartName:  e.PartName,
		Quantity:  e.Quantity,
		Price:     e.Price,
		Thumbnail: thumbnail(e.Images),
		LinkCount: e.LinkCount,
	}
}

func lowStockToModel(e productSummaryEntity) model.LowStockProduct {
	return model.LowStockProduct{
		ID:                e.ID.Hex(),
		Title:             e.Title,
		Quantity:          e.Quantity,
		LowStockThreshold: lo.FromPtrOr(e.LowStockThreshold, model.DefaultLowStockThreshold),
		Thumbnail:         thumbnail(e.Images),
	}
}

func outOfStockToModel(e productSummaryEntity) model.OutOfStockProduct {
	return model.OutOfStockProduct{
		ID:        e.ID.Hex(),
		Title:     e.Title,
		Thumbnail: thumbnail(e.Images),
	}
}

func recentOrderToModel(e recentOrderEntity) model.RecentOrder {
	return model.RecentOrder{
		ID:           e.ID.Hex(),
		ProductTitle: e.ProductTitle,
		ProductImage: e.ProductImage,
		QuantitySold: lo.FromPtrOr(e.QuantitySold, model.DefaultQuantitySold),
		SalePrice:    e.SalePrice,
		Account:      e.Account,
		CreatedAt:    e.CreatedAt,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
