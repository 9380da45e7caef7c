package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (string, error)
	ProductByID(ctx context.Context, id string) (*model.Product, error)
	Search(ctx context.Context, q model.ProductQuery) ([]*model.Product, int64, error)
	OwnerByLinkURL(ctx context.Context, url string) (*model.LinkOwner, error)
	Replace(ctx context.Context, id string, upd model.ReplaceProduct) error
	Patch(ctx context.Context, id string, patch model.ProductPatch, now time.Time) error
	SetQuantity(ctx context.Context, id string, qty int64, now time.Time) error
	PushLink(ctx context.Context, id string, link model.EbayLink) error
	PullLink(ctx context.Context, id, url string, now time.Time) error
	Delete(ctx context.Context, id string) (*model.Product, error)
}

// OrderCascader removes the orders of a deleted product.
type OrderCascader interface {
	DeleteByProductID(ctx context.Context, productID string) (int64, error)
}

type ImageStore interface {
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, uri string) error
}

type service struct {
	repo           ProductRepository
	orders         OrderCascader
	images         ImageStore
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewProductService(
	repository ProductRepository,
	orders OrderCascader,
	images ImageStore,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		orders:         orders,
		images:         images,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Search(ctx context.Context, q model.ProductQuery) (*model.ProductPage, error) {
	const op string = "product.service.Search"

	q.Text = strings.TrimSpace(q.Text)
	q.Page = q.Page.Normalize()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	items, total, err := svc.repo.Search(ctx, q)
	if err != nil {
		logger.Error(ctx, "repository search",
			logger.String("query", q.Text),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.ProductPage{
		Items: items,
		Total: total,
		Page:  q.Page.Number,
		Pages: model.PageCount(total, q.Page.PerPage),
	}, nil
}

func (svc *service) CheckLink(ctx context.Context, url string) (*model.CheckLinkResult, error) {
	const op string = "product.service.CheckLink"

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("%s: %w", op, model.Required("url"))
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	owner, err := svc.repo.OwnerByLinkURL(ctx, url)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.CheckLinkResult{}, nil
		}
		logger.Error(ctx, "repository owner by link url", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.CheckLinkResult{AlreadyExists: true, Product: owner}, nil
}

func (svc *service) AddProduct(ctx context.Context, params model.AddProductParams) (string, error) {
	const op string = "product.service.AddProduct"

	f := normalizeFields(params.Fields)
	log := logger.With(
		logger.String("title", f.Title),
		logger.String("created_by", params.CreatedBy),
	)

	if f.Title == "" {
		return "", fmt.Errorf("%s: %w", op, model.Required("title"))
	}

	now := time.Now().UTC()
	if f.EbayLinks == nil {
		f.EbayLinks = []model.EbayLink{}
	}
	stampLinks(f.EbayLinks, now)

	images, err := svc.saveImages(ctx, params.Images)
	if err != nil {
		log.Error(ctx, "save images", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	locationImages, err := svc.saveImages(ctx, params.LocationImages)
	if err != nil {
		svc.removeImages(ctx, images)
		log.Error(ctx, "save location images", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	id, err := svc.repo.Create(wdbCtx, &model.Product{
		Title:             f.Title,
		PartName:          f.PartName,
		PartNumber:        f.PartNumber,
		Side:              f.Side,
		Color:             f.Color,
		Tags:              f.Tags,
		CarMake:           f.CarMake,
		CarModel:          f.CarModel,
		CarYear:           f.CarYear,
		Description:       f.Description,
		Price:             f.Price,
		Shipping:          f.Shipping,
		Quantity:          f.Quantity,
		LowStockThreshold: f.LowStockThreshold,
		LocationText:      f.LocationText,
		Images:            images,
		LocationImages:    locationImages,
		EbayLinks:         f.EbayLinks,
		TotalSold:         0,
		CreatedAt:         now,
		UpdatedAt:         now,
		CreatedBy:         params.CreatedBy,
	})
	if err != nil {
		svc.removeImages(ctx, append(images, locationImages...))
		log.Error(ctx, "repository create product", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (svc *service) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	const op string = "product.service.GetProduct"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.ProductByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository product by id",
			logger.String("product_id", id),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// ReplaceProduct overwrites every descriptive field, replaces links only when
// they were supplied and appends newly uploaded images.
func (svc *service) ReplaceProduct(ctx context.Context, params model.ReplaceProductParams) error {
	const op string = "product.service.ReplaceProduct"
	log := logger.With(logger.String("product_id", params.ID))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	if _, err := svc.repo.ProductByID(rdbCtx, params.ID); err != nil {
		log.Error(ctx, "repository product by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	f := normalizeFields(params.Fields)
	stampLinks(f.EbayLinks, now)

	images, err := svc.saveImages(ctx, params.Images)
	if err != nil {
		log.Error(ctx, "save images", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	locationImages, err := svc.saveImages(ctx, params.LocationImages)
	if err != nil {
		svc.removeImages(ctx, images)
		log.Error(ctx, "save location images", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	err = svc.repo.Replace(wdbCtx, params.ID, model.ReplaceProduct{
		Fields:               f,
		AppendImages:         images,
		AppendLocationImages: locationImages,
		UpdatedAt:            now,
	})
	if err != nil {
		svc.removeImages(ctx, append(images, locationImages...))
		log.Error(ctx, "repository replace product", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) PatchProduct(ctx context.Context, id string, patch model.ProductPatch) error {
	const op string = "product.service.PatchProduct"

	now := time.Now().UTC()
	if patch.EbayLinks != nil {
		stampLinks(*patch.EbayLinks, now)
	}
	if patch.Tags != nil {
		tags := cleanTags(*patch.Tags)
		patch.Tags = &tags
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Patch(ctx, id, patch, now); err != nil {
		logger.Error(ctx, "repository patch product",
			logger.String("product_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateQuantity sets stock as given. Unlike a sale it is not clamped at
// zero: it is the manual correction path.
func (svc *service) UpdateQuantity(ctx context.Context, id string, qty int64) (int64, error) {
	const op string = "product.service.UpdateQuantity"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.SetQuantity(ctx, id, qty, time.Now().UTC()); err != nil {
		logger.Error(ctx, "repository set quantity",
			logger.String("product_id", id),
			logger.Int64("quantity", qty),
			logger.ErrorF(err),
		)
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return qty, nil
}

func (svc *service) AddLink(ctx context.Context, params model.AddLinkParams) error {
	const op string = "product.service.AddLink"

	url := strings.TrimSpace(params.URL)
	if url == "" {
		return fmt.Errorf("%s: %w", op, model.Required("url"))
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	err := svc.repo.PushLink(ctx, params.ProductID, model.EbayLink{
		URL:     url,
		Account: params.Account,
		Label:   params.Label,
		AddedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Error(ctx, "repository push link",
			logger.String("product_id", params.ProductID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) RemoveLink(ctx context.Context, id, url string) error {
	const op string = "product.service.RemoveLink"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.PullLink(ctx, id, url, time.Now().UTC()); err != nil {
		logger.Error(ctx, "repository pull link",
			logger.String("product_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteProduct removes the product, then its orders and stored images. The
// cleanup steps are best-effort: their failures are logged only.
func (svc *service) DeleteProduct(ctx context.Context, id string) error {
	const op string = "product.service.DeleteProduct"
	log := logger.With(logger.String("product_id", id))

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	p, err := svc.repo.Delete(wdbCtx, id)
	if err != nil {
		log.Error(ctx, "repository delete product", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	cascadeCtx, cascadeCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cascadeCancel()

	n, err := svc.orders.DeleteByProductID(cascadeCtx, id)
	if err != nil {
		log.Warn(ctx, "cascade delete orders", logger.ErrorF(err))
	} else if n > 0 {
		log.Info(ctx, "orders of deleted product removed", logger.Int64("orders", n))
	}

	svc.removeImages(ctx, append(p.Images, p.LocationImages...))

	return nil
}
