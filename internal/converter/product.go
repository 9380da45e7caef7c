package converter

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
)

// AddProductFormToFields reads the multipart add form. Blank or unparsable
// numbers fall back to their defaults; links that do not parse are dropped.
func AddProductFormToFields(form url.Values) model.ProductFields {
	f := formToFields(form, model.DefaultProductQuantity)

	links, ok := parseLinks(form, "[]")
	if !ok {
		links = []model.EbayLink{}
	}
	f.EbayLinks = links

	return f
}

// ReplaceProductFormToFields reads the multipart update form. Links stay nil
// (keep the stored ones) when the field is absent or does not parse. Older
// clients relied on an absent field clearing every link; they now have to
// send ebay_links=[] for that.
func ReplaceProductFormToFields(form url.Values) model.ProductFields {
	f := formToFields(form, 0)

	if _, present := form["ebay_links"]; present {
		if links, ok := parseLinks(form, ""); ok {
			f.EbayLinks = links
		}
	}

	return f
}

func formToFields(form url.Values, quantityDefault int64) model.ProductFields {
	text := func(key string) string { return strings.TrimSpace(form.Get(key)) }

	return model.ProductFields{
		Title:             text("title"),
		PartName:          text("part_name"),
		PartNumber:        text("part_number"),
		Side:              text("side"),
		Color:             text("color"),
		Tags:              splitTags(form.Get("tags")),
		CarMake:           text("car_make"),
		CarModel:          text("car_model"),
		CarYear:           text("car_year"),
		Description:       text("description"),
		Price:             parseFloatOr(text("price"), 0),
		Shipping:          parseFloatOr(text("shipping"), 0),
		Quantity:          parseIntOr(text("quantity"), quantityDefault),
		LowStockThreshold: parseIntOr(text("low_stock_threshold"), model.DefaultLowStockThreshold),
		LocationText:      text("location_text"),
	}
}

func splitTags(raw string) []string {
	return lo.FilterMap(strings.Split(raw, ","), func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})
}

func parseLinks(form url.Values, fallback string) ([]model.EbayLink, bool) {
	raw := form.Get("ebay_links")
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}

	var links []dto.EbayLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, false
	}

	return LinksFromDTO(links), true
}

func parseFloatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func parseIntOr(s string, def int64) int64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}

func LinksFromDTO(links []dto.EbayLink) []model.EbayLink {
	out := make([]model.EbayLink, 0, len(links))
	for _, l := range links {
		out = append(out, model.EbayLink{
			URL:     strings.TrimSpace(l.URL),
			Account: l.Account,
			Label:   l.Label,
			AddedAt: lo.FromPtr(l.AddedAt),
		})
	}
	return out
}

func linksToDTO(links []model.EbayLink) []dto.EbayLink {
	return lo.Map(links, func(l model.EbayLink, _ int) dto.EbayLink {
		out := dto.EbayLink{URL: l.URL, Account: l.Account, Label: l.Label}
		if !l.AddedAt.IsZero() {
			out.AddedAt = lo.ToPtr(l.AddedAt.UTC())
		}
		return out
	})
}

func PatchRequestToModel(req dto.PatchProductRequest) model.ProductPatch {
	p := model.ProductPatch{
		Title:             req.Title,
		PartName:          req.PartName,
		PartNumber:        req.PartNumber,
		Side:              req.Side,
		Color:             req.Color,
		Tags:              req.Tags,
		CarMake:           req.CarMake,
		CarModel:          req.CarModel,
		CarYear:           req.CarYear,
		Description:       req.Description,
		Price:             (*float64)(req.Price),
		Shipping:          (*float64)(req.Shipping),
		Quantity:          (*int64)(req.Quantity),
		LowStockThreshold: (*int64)(req.LowStockThreshold),
		LocationText:      req.LocationText,
	}
	if req.EbayLinks != nil {
		p.EbayLinks = lo.ToPtr(LinksFromDTO(*req.EbayLinks))
	}

	return p
}

// ProductToDTO renders a product. List views pass withLinks=false: links are
// blanked but link_count and is_group still describe them.
func ProductToDTO(p *model.Product, withLinks bool) dto.Product {
	links := []dto.EbayLink{}
	if withLinks {
		links = linksToDTO(p.EbayLinks)
	}

	return dto.Product{
		ID:                p.ID,
		Title:             p.Title,
		PartName:          p.PartName,
		PartNumber:        p.PartNumber,
		Side:              p.Side,
		Color:             p.Color,
		Tags:              nonNil(p.Tags),
		CarMake:           p.CarMake,
		CarModel:          p.CarModel,
		CarYear:           p.CarYear,
		Description:       p.Description,
		Price:             p.Price,
		Shipping:          p.Shipping,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		LocationText:      p.LocationText,
		Images:            nonNil(p.Images),
		LocationImages:    nonNil(p.LocationImages),
		EbayLinks:         links,
		LinkCount:         p.LinkCount(),
		IsGroup:           p.IsGroup(),
		TotalSold:         p.TotalSold,
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
	}
}

func ProductPageToResponse(page *model.ProductPage) dto.SearchResponse {
	return dto.SearchResponse{
		Success: true,
		Products: lo.Map(page.Items, func(p *model.Product, _ int) dto.Product {
			return ProductToDTO(p, false)
		}),
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
	}
}

func CheckLinkResultToResponse(res *model.CheckLinkResult) dto.CheckLinkResponse {
	out := dto.CheckLinkResponse{AlreadyExists: res.AlreadyExists}
	if res.Product != nil {
		out.Product = &dto.LinkOwner{
			ID:       res.Product.ID,
			Title:    res.Product.Title,
			PartName: res.Product.PartName,
			Image:    res.Product.Thumbnail,
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
