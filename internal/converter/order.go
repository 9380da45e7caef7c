package converter

import (
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
)

func AddOrderRequestToParams(req dto.AddOrderRequest, addedBy string) model.AddOrderParams {
	return model.AddOrderParams{
		ProductID:    strings.TrimSpace(req.ProductID),
		QuantitySold: (*int64)(req.QuantitySold),
		SalePrice:    (*float64)(req.SalePrice),
		Account:      req.Account,
		EbayOrderID:  req.EbayOrderID,
		BuyerName:    req.BuyerName,
		Note:         req.Note,
		AddedBy:      addedBy,
	}
}

func AddOrderResultToResponse(res *model.AddOrderResult) dto.AddOrderResponse {
	return dto.AddOrderResponse{
		Success:     true,
		OrderID:     res.OrderID,
		NewQuantity: res.NewQuantity,
		QtyReduced:  res.QtyReduced,
	}
}

func OrderToDTO(o *model.Order) dto.Order {
	return dto.Order{
		ID:           o.ID,
		ProductID:    o.ProductID,
		ProductTitle: o.ProductTitle,
		ProductImage: o.ProductImage,
		QuantitySold: o.QuantitySold,
		SalePrice:    o.SalePrice,
		Account:      o.Account,
		EbayOrderID:  o.EbayOrderID,
		BuyerName:    o.BuyerName,
		Note:         o.Note,
		AddedBy:      o.AddedBy,
		CreatedAt:    o.CreatedAt.UTC(),
	}
}

func OrderPageToResponse(page *model.OrderPage) dto.OrdersResponse {
	return dto.OrdersResponse{
		Success: true,
		Orders: lo.Map(page.Items, func(o *model.Order, _ int) dto.Order {
			return OrderToDTO(o)
		}),
		Total: page.Total,
	}
}
