package http

import (
	"context"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/autoparts-inventory/internal/converter"
	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/response"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

// multipartMemory is how much of a form is buffered in memory before file
// parts spill to disk.
const multipartMemory = 8 << 20

type ProductService interface {
	Search(ctx context.Context, q model.ProductQuery) (*model.ProductPage, error)
	CheckLink(ctx context.Context, url string) (*model.CheckLinkResult, error)
	AddProduct(ctx context.Context, params model.AddProductParams) (string, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ReplaceProduct(ctx context.Context, params model.ReplaceProductParams) error
	PatchProduct(ctx context.Context, id string, patch model.ProductPatch) error
	UpdateQuantity(ctx context.Context, id string, qty int64) (int64, error)
	AddLink(ctx context.Context, params model.AddLinkParams) error
	RemoveLink(ctx context.Context, id, url string) error
	DeleteProduct(ctx context.Context, id string) error
}

type handler struct {
	svc ProductService
}

func NewProductHandler(service ProductService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router, guard *middleware.Guard) {
	r.Route("/products", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(guard.Require(model.CapCatalogRead))
			r.Get("/search", h.Search)
			r.Get("/{id}", h.GetProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(guard.Require(model.CapCatalogWrite))
			r.Post("/check-link", h.CheckLink)
			r.Post("/add", h.AddProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
			r.Put("/{id}/quantity", h.UpdateQuantity)
			r.Post("/{id}/links", h.AddLink)
			r.Delete("/{id}/links", h.RemoveLink)
		})
	})
}

func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.svc.Search(r.Context(), model.ProductQuery{
		Text: q.Get("q"),
		Page: pageFromQuery(q.Get("page"), q.Get("per_page")),
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, converter.ProductPageToResponse(page))
}

func (h *handler) CheckLink(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckLinkRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	res, err := h.svc.CheckLink(r.Context(), req.URL)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, converter.CheckLinkResultToResponse(res))
}

func (h *handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		response.Error(w, r, model.Invalid("body", "must be multipart/form-data"))
		return
	}
	defer removeMultipart(r)

	images, closeImages := openUploads(r, "images")
	defer closeImages()
	locImages, closeLoc := openUploads(r, "location_images")
	defer closeLoc()

	var createdBy string
	if id := middleware.IdentityFromContext(r.Context()); id != nil {
		createdBy = id.UserID
	}

	id, err := h.svc.AddProduct(r.Context(), model.AddProductParams{
		Fields:         converter.AddProductFormToFields(r.MultipartForm.Value),
		Images:         images,
		LocationImages: locImages,
		CreatedBy:      createdBy,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, dto.AddProductResponse{Success: true, ProductID: id})
}

func (h *handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, dto.ProductResponse{Success: true, Product: converter.ProductToDTO(p, true)})
}

// UpdateProduct overwrites the product from a multipart form, or applies a
// partial update from a JSON body.
func (h *handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if isMultipart(r) {
		h.replaceProduct(w, r)
		return
	}
	h.patchProduct(w, r)
}

func (h *handler) replaceProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		response.Error(w, r, model.Invalid("body", "must be multipart/form-data"))
		return
	}
	defer removeMultipart(r)

	images, closeImages := openUploads(r, "images")
	defer closeImages()
	locImages, closeLoc := openUploads(r, "location_images")
	defer closeLoc()

	err := h.svc.ReplaceProduct(r.Context(), model.ReplaceProductParams{
		ID:             chi.URLParam(r, "id"),
		Fields:         converter.ReplaceProductFormToFields(r.MultipartForm.Value),
		Images:         images,
		LocationImages: locImages,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.Success(w, r)
}

func (h *handler) patchProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.PatchProductRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.svc.PatchProduct(r.Context(), chi.URLParam(r, "id"), converter.PatchRequestToModel(req)); err != nil {
		response.Error(w, r, err)
		return
	}

	response.Success(w, r)
}

func (h *handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.Success(w, r)
}

func (h *handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.QuantityRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if req.Quantity == nil {
		response.Error(w, r, model.Required("quantity"))
		return
	}

	qty, err := h.svc.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), int64(*req.Quantity))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, dto.QuantityResponse{Success: true, Quantity: qty})
}

func (h *handler) AddLink(w http.ResponseWriter, r *http.Request) {
	var req dto.LinkRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	err := h.svc.AddLink(r.Context(), model.AddLinkParams{
		ProductID: chi.URLParam(r, "id"),
		URL:       req.URL,
		Account:   req.Account,
		Label:     req.Label,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.Success(w, r)
}

func (h *handler) RemoveLink(w http.ResponseWriter, r *http.Request) {
	var req dto.LinkRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.svc.RemoveLink(r.Context(), chi.URLParam(r, "id"), req.URL); err != nil {
		response.Error(w, r, err)
		return
	}

	response.Success(w, r)
}

// pageFromQuery leaves unparsable values at zero; the service falls back to
// the defaults.
func pageFromQuery(page, perPage string) model.Page {
	n, _ := strconv.ParseInt(page, 10, 64)
	pp, _ := strconv.ParseInt(perPage, 10, 64)
	return model.Page{Number: n, PerPage: pp}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

// openUploads opens every file part under field. The returned func closes
// them and must be called once the request is done with the bodies.
func openUploads(r *http.Request, field string) ([]model.Upload, func()) {
	headers := r.MultipartForm.File[field]
	uploads := make([]model.Upload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			logger.Warn(r.Context(), "skip unreadable upload",
				logger.String("field", field),
				logger.String("filename", fh.Filename),
				logger.ErrorF(err),
			)
			continue
		}
		files = append(files, f)
		uploads = append(uploads, model.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	return uploads, func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
}

func removeMultipart(r *http.Request) {
	if err := r.MultipartForm.RemoveAll(); err != nil {
		logger.Warn(r.Context(), "remove multipart temp files", logger.ErrorF(err))
	}
}
