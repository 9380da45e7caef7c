package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func EntityToModel(e *OrderEntity) *model.Order {
	if e == nil {
		return nil
	}

	return &model.Order{
		ID:           e.ID.Hex(),
		ProductID:    e.ProductID,
		ProductTitle: e.ProductTitle,
		ProductImage: e.ProductImage,
		QuantitySold: e.QuantitySold,
		SalePrice:    e.SalePrice,
		Account:      e.Account,
		EbayOrderID:  e.EbayOrderID,
		BuyerName:    e.BuyerName,
		Note:         e.Note,
		AddedBy:      e.AddedBy,
		CreatedAt:    e.CreatedAt,
	}
}

func EntityFromModel(o *model.Order) (*OrderEntity, error) {
	if o == nil {
		return nil, nil
	}

	out := &OrderEntity{
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
		CreatedAt:    o.CreatedAt,
	}

	if o.ID != "" {
		id, err := bson.ObjectIDFromHex(o.ID)
		if err != nil {
			return nil, model.ErrInvalidID
		}
		out.ID = id
	}

	return out, nil
}

func BuildMongoFilter(f model.OrdersFilter) bson.M {
	q := bson.M{}
	if f.ProductID != "" {
		q["product_id"] = f.ProductID
	}

	return q
}
