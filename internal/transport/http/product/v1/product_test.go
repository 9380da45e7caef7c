package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/mocks"
)

const productID = "65f0c0ffee0000000000aaaa"

// router mounts the handler behind a guard that lets everything through.
func router(t *testing.T, svc ProductService) http.Handler {
	t.Helper()

	authz := mocks.NewMockAuthorizer(t)
	authz.On("Authorize", mock.Anything, mock.Anything).Return(nil).Maybe()

	r := chi.NewRouter()
	NewProductHandler(svc).Register(r, middleware.NewGuard(authz))
	return r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, field := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("img-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestSearch(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProductService(t)
	svc.On("Search", mock.Anything, model.ProductQuery{
		Text: "bmw",
		Page: model.Page{Number: 2, PerPage: 0},
	}).Return(&model.ProductPage{
		Items: []*model.Product{{
			ID:        productID,
			Title:     "Headlight",
			EbayLinks: []model.EbayLink{{URL: "https://ebay.test/1"}, {URL: "https://ebay.test/2"}},
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		Total: 21,
		Page:  2,
		Pages: 2,
	}, nil).Once()

	rec := httptest.NewRecorder()
	router(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/search?q=bmw&page=2&per_page=x", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total":21`)
	assert.Contains(t, body, `"pages":2`)
	assert.Contains(t, body, `"ebay_links":[]`)
	assert.Contains(t, body, `"link_count":2`)
	assert.Contains(t, body, `"is_group":true`)
}

func TestAddProduct(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProductService(t)
	svc.On("AddProduct", mock.Anything, mock.MatchedBy(func(p model.AddProductParams) bool {
		return p.Fields.Title == "Mirror" &&
			p.Fields.Quantity == model.DefaultProductQuantity &&
			len(p.Fields.Tags) == 2 &&
			len(p.Images) == 1 && p.Images[0].Filename == "a.png" &&
			len(p.LocationImages) == 0 &&
			p.CreatedBy == "u1"
	})).Return(productID, nil).Once().Run(func(args mock.Arguments) {
		p := args.Get(1).(model.AddProductParams)
		data, err := io.ReadAll(p.Images[0].Body)
		assert.NoError(t, err)
		assert.Equal(t, "img-a.png", string(data))
	})

	body, ct := multipartBody(t,
		map[string]string{"title": "Mirror", "tags": "left,oem"},
		map[string]string{"a.png": "images"},
	)
	req := httptest.NewRequest(http.MethodPost, "/products/add", body)
	req.Header.Set("Content-Type", ct)
	req = req.WithContext(middleware.WithIdentity(req.Context(), &model.Identity{UserID: "u1"}))

	rec := httptest.NewRecorder()
	router(t, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"product_id":"`+productID+`"}`, rec.Body.String())
}

func TestAddProductRequiresMultipart(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/products/add", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router(t, mocks.NewMockProductService(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("multipart replaces", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockProductService(t)
		svc.On("ReplaceProduct", mock.Anything, mock.MatchedBy(func(p model.ReplaceProductParams) bool {
			return p.ID == productID && p.Fields.Title == "Door" && p.Fields.EbayLinks == nil
		})).Return(nil).Once()

		body, ct := multipartBody(t, map[string]string{"title": "Door", "ebay_links": "broken"}, nil)
		req := httptest.NewRequest(http.MethodPut, "/products/"+productID, body)
		req.Header.Set("Content-Type", ct)

		rec := httptest.NewRecorder()
		router(t, svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("json patches", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockProductService(t)
		svc.On("PatchProduct", mock.Anything, productID, model.ProductPatch{
			Quantity: lo.ToPtr(int64(0)),
			Title:    lo.ToPtr("Door"),
		}).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/products/"+productID,
			strings.NewReader(`{"title":"Door","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router(t, svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing product", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockProductService(t)
		svc.On("PatchProduct", mock.Anything, productID, model.ProductPatch{}).Return(model.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/products/"+productID, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router(t, svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(s *mocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "set",
			body: `{"quantity":7}`,
			setup: func(s *mocks.MockProductService) {
				s.On("UpdateQuantity", mock.Anything, productID, int64(7)).Return(int64(7), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"quantity":7}`,
		},
		{
			name: "numeric string",
			body: `{"quantity":" 4 "}`,
			setup: func(s *mocks.MockProductService) {
				s.On("UpdateQuantity", mock.Anything, productID, int64(4)).Return(int64(4), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"quantity":4}`,
		},
		{
			name:       "non numeric string",
			body:       `{"quantity":"many"}`,
			setup:      func(s *mocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"number \"many\" is not an integer"}`,
		},
		{
			name:       "missing quantity",
			body:       `{}`,
			setup:      func(s *mocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"quantity is required"}`,
		},
		{
			name: "invalid id",
			body: `{"quantity":1}`,
			setup: func(s *mocks.MockProductService) {
				s.On("UpdateQuantity", mock.Anything, productID, int64(1)).Return(int64(0), model.ErrInvalidID).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockProductService(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
				"/products/"+productID+"/quantity", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProductService(t)
	svc.On("AddLink", mock.Anything, model.AddLinkParams{
		ProductID: productID, URL: "https://ebay.test/9", Account: "PMC",
	}).Return(nil).Once()
	svc.On("RemoveLink", mock.Anything, productID, "https://ebay.test/9").Return(nil).Once()
	svc.On("CheckLink", mock.Anything, "https://ebay.test/9").Return(&model.CheckLinkResult{
		AlreadyExists: true,
		Product:       &model.LinkOwner{ID: productID, Title: "Door", Thumbnail: "/static/uploads/a.png"},
	}, nil).Once()

	h := router(t, svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/"+productID+"/links",
		strings.NewReader(`{"url":"https://ebay.test/9","account":"PMC"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/check-link",
		strings.NewReader(`{"url":"https://ebay.test/9"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"already_exists":true,"product":{"_id":"`+productID+`","title":"Door","part_name":"","image":"/static/uploads/a.png"}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/"+productID+"/links",
		strings.NewReader(`{"url":"https://ebay.test/9"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAndDeleteProduct(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProductService(t)
	svc.On("GetProduct", mock.Anything, productID).Return(&model.Product{
		ID:        productID,
		Title:     "Door",
		EbayLinks: []model.EbayLink{{URL: "https://ebay.test/1"}},
	}, nil).Once()
	svc.On("DeleteProduct", mock.Anything, productID).Return(model.ErrNotFound).Once()

	h := router(t, svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/"+productID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ebay_links":[{"url":"https://ebay.test/1","account":"","label":""}]`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/"+productID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
