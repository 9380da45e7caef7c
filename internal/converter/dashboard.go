package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
)

func DashboardToResponse(d *model.Dashboard) dto.DashboardResponse {
	return dto.DashboardResponse{
		Success: true,
		Stats: dto.Stats{
			TotalProducts:  d.Products.TotalProducts,
			TotalOrders:    d.Orders.TotalOrders,
			OutOfStock:     d.Products.OutOfStock,
			LowStock:       d.Products.LowStock,
			TotalValue:     d.Products.TotalValue,
			RecentOrders7d: d.Orders.RecentOrders7d,
		},
		RecentProducts: lo.Map(d.RecentProducts, func(p model.RecentProduct, _ int) dto.RecentProduct {
			return dto.RecentProduct{
				ID:        p.ID,
				Title:     p.Title,
				PartName:  p.PartName,
				Quantity:  p.Quantity,
				Price:     p.Price,
				Image:     p.Thumbnail,
				LinkCount: p.LinkCount,
			}
		}),
		LowStockList: lo.Map(d.LowStockList, func(p model.LowStockProduct, _ int) dto.LowStockProduct {
			return dto.LowStockProduct{
				ID:                p.ID,
				Title:             p.Title,
				Quantity:          p.Quantity,
				LowStockThreshold: p.LowStockThreshold,
				Image:             p.Thumbnail,
			}
		}),
		OutOfStockList: lo.Map(d.OutOfStockList, func(p model.OutOfStockProduct, _ int) dto.OutOfStockProduct {
			return dto.OutOfStockProduct{ID: p.ID, Title: p.Title, Image: p.Thumbnail}
		}),
		RecentOrders: lo.Map(d.RecentOrderList, func(o model.RecentOrder, _ int) dto.RecentOrder {
			return dto.RecentOrder{
				ID:           o.ID,
				ProductTitle: o.ProductTitle,
				ProductImage: o.ProductImage,
				QuantitySold: o.QuantitySold,
				SalePrice:    o.SalePrice,
				Account:      o.Account,
				CreatedAt:    o.CreatedAt.UTC(),
			}
		}),
	}
}
