package repository

import (
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

// isoNoZone is how naive UTC timestamps were written by earlier versions.
const isoNoZone = "2006-01-02T15:04:05.999999"

func EntityToModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}

	return &model.Product{
		ID:                e.ID.Hex(),
		Title:             e.Title,
		PartName:          e.PartName,
		PartNumber:        e.PartNumber,
		Side:              e.Side,
		Color:             e.Color,
		Tags:              orEmpty(e.Tags),
		CarMake:           e.CarMake,
		CarModel:          e.CarModel,
		CarYear:           e.CarYear,
		Description:       e.Description,
		Price:             e.Price,
		Shipping:          e.Shipping,
		Quantity:          e.Quantity,
		LowStockThreshold: lo.FromPtrOr(e.LowStockThreshold, model.DefaultLowStockThreshold),
		LocationText:      e.LocationText,
		Images:            orEmpty(e.Images),
		LocationImages:    orEmpty(e.LocationImages),
		EbayLinks:         lo.Map(e.EbayLinks, func(l EbayLinkEntity, _ int) model.EbayLink { return LinkToModel(l) }),
		TotalSold:         e.TotalSold,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

func EntityFromModel(p *model.Product) (*ProductEntity, error) {
	if p == nil {
		return nil, nil
	}

	out := &ProductEntity{
		Title:             p.Title,
		PartName:          p.PartName,
		PartNumber:        p.PartNumber,
		Side:              p.Side,
		Color:             p.Color,
		Tags:              orEmpty(p.Tags),
		CarMake:           p.CarMake,
		CarModel:          p.CarModel,
		CarYear:           p.CarYear,
		Description:       p.Description,
		Price:             p.Price,
		Shipping:          p.Shipping,
		Quantity:          p.Quantity,
		LowStockThreshold: lo.ToPtr(p.LowStockThreshold),
		LocationText:      p.LocationText,
		Images:            orEmpty(p.Images),
		LocationImages:    orEmpty(p.LocationImages),
		EbayLinks:         LinksFromModel(p.EbayLinks),
		TotalSold:         p.TotalSold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		CreatedBy:         p.CreatedBy,
	}

	if p.ID != "" {
		id, err := bson.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, model.ErrInvalidID
		}
		out.ID = id
	}

	return out, nil
}

func LinkToModel(e EbayLinkEntity) model.EbayLink {
	return model.EbayLink{
		URL:     e.URL,
		Account: e.Account,
		Label:   e.Label,
		AddedAt: parseAddedAt(e.AddedAt),
	}
}

func LinksFromModel(links []model.EbayLink) []EbayLinkEntity {
	return lo.Map(links, func(l model.EbayLink, _ int) EbayLinkEntity {
		return EbayLinkEntity{
			URL:     l.URL,
			Account: l.Account,
			Label:   l.Label,
			AddedAt: l.AddedAt.UTC().Format(time.RFC3339Nano),
		}
	})
}

func linkOwnerToModel(e *linkOwnerEntity) *model.LinkOwner {
	owner := &model.LinkOwner{
		ID:       e.ID.Hex(),
		Title:    e.Title,
		PartName: e.PartName,
	}
	if len(e.Images) > 0 {
		owner.Thumbnail = e.Images[0]
	}

	return owner
}

// BuildReplaceUpdate overwrites every field, replaces links only when they
// were supplied, and appends new image URIs.
func BuildReplaceUpdate(upd model.ReplaceProduct) bson.M {
	f := upd.Fields
	set := bson.M{
		"title":               f.Title,
		"part_name":           f.PartName,
		"part_number":         f.PartNumber,
		"side":                f.Side,
		"color":               f.Color,
		"tags":                orEmpty(f.Tags),
		"car_make":            f.CarMake,
		"car_model":           f.CarModel,
		"car_year":            f.CarYear,
		"description":         f.Description,
		"price":               f.Price,
		"shipping":            f.Shipping,
		"quantity":            f.Quantity,
		"low_stock_threshold": f.LowStockThreshold,
		"location_text":       f.LocationText,
		"updated_at":          upd.UpdatedAt,
	}
	if f.EbayLinks != nil {
		set["ebay_links"] = LinksFromModel(f.EbayLinks)
	}

	update := bson.M{"$set": set}

	push := bson.M{}
	if len(upd.AppendImages) > 0 {
		push["images"] = bson.M{"$each": upd.AppendImages}
	}
	if len(upd.AppendLocationImages) > 0 {
		push["location_images"] = bson.M{"$each": upd.AppendLocationImages}
	}
	if len(push) > 0 {
		update["$push"] = push
	}

	return update
}

// BuildPatchUpdate sets only the fields present in the patch.
func BuildPatchUpdate(p model.ProductPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	setIf(set, "title", p.Title)
	setIf(set, "part_name", p.PartName)
	setIf(set, "part_number", p.PartNumber)
	setIf(set, "side", p.Side)
	setIf(set, "color", p.Color)
	setIf(set, "car_make", p.CarMake)
	setIf(set, "car_model", p.CarModel)
	setIf(set, "car_year", p.CarYear)
	setIf(set, "description", p.Description)
	setIf(set, "price", p.Price)
	setIf(set, "shipping", p.Shipping)
	setIf(set, "quantity", p.Quantity)
	setIf(set, "low_stock_threshold", p.LowStockThreshold)
	setIf(set, "location_text", p.LocationText)

	if p.Tags != nil {
		set["tags"] = orEmpty(*p.Tags)
	}
	if p.EbayLinks != nil {
		set["ebay_links"] = LinksFromModel(*p.EbayLinks)
	}

	return bson.M{"$set": set}
}

func BuildSearchFilter(text string) bson.M {
	if text == "" {
		return bson.M{}
	}
	return bson.M{"$text": bson.M{"$search": text}}
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func parseAddedAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(isoNoZone, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
