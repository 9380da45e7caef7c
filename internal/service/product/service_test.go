package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/service/mocks"
)

const productID = "65f0c0ffee0000000000abcd"

type deps struct {
	repository *mocks.MockProductRepository
	orders     *mocks.MockOrderCascader
	images     *mocks.MockImageStore
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockProductRepository(t),
		orders:     mocks.NewMockOrderCascader(t),
		images:     mocks.NewMockImageStore(t),
	}
}

func newSvc(d deps) *service {
	return NewProductService(d.repository, d.orders, d.images, time.Second, time.Second)
}

func upload(name string) model.Upload {
	return model.Upload{
		Filename:    name,
		ContentType: "application/octet-stream",
		Size:        4,
		Body:        strings.NewReader("data"),
	}
}

func imageNamed(ext string) any {
	return mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, "."+ext) && len(name) == 32+1+len(ext)
	})
}

func TestServiceSearch(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	items := []*model.Product{{ID: productID, Title: gofakeit.CarModel()}}

	d.repository.On("Search", mock.Anything, model.ProductQuery{
		Text: "bmw mirror",
		Page: model.Page{Number: 1, PerPage: 200},
	}).Return(items, int64(250), nil).Once()

	page, err := newSvc(d).Search(context.Background(), model.ProductQuery{
		Text: "  bmw mirror ",
		Page: model.Page{Number: 0, PerPage: 200},
	})
	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, int64(250), page.Total)
	assert.Equal(t, int64(1), page.Page)
	assert.Equal(t, int64(2), page.Pages)
}

func TestServiceSearchEmptyHasOnePage(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repository.On("Search", mock.Anything, mock.Anything).
		Return([]*model.Product{}, int64(0), nil).Once()

	page, err := newSvc(d).Search(context.Background(), model.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pages)
}

func TestServiceCheckLink(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		url    string
		setup  func(d deps)
		assert func(t *testing.T, res *model.CheckLinkResult, err error)
	}

	owner := &model.LinkOwner{ID: productID, Title: "Mirror", Thumbnail: "/static/uploads/a.png"}

	tests := []testCase{
		{
			name:  "blank url",
			url:   "   ",
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.CheckLinkResult, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "link is free",
			url:  " https://ebay.test/itm/1 ",
			setup: func(d deps) {
				d.repository.On("OwnerByLinkURL", mock.Anything, "https://ebay.test/itm/1").
					Return(nil, model.ErrNotFound).Once()
			},
			assert: func(t *testing.T, res *model.CheckLinkResult, err error) {
				require.NoError(t, err)
				assert.False(t, res.AlreadyExists)
				assert.Nil(t, res.Product)
			},
		},
		{
			name: "link is taken",
			url:  "https://ebay.test/itm/1",
			setup: func(d deps) {
				d.repository.On("OwnerByLinkURL", mock.Anything, "https://ebay.test/itm/1").
					Return(owner, nil).Once()
			},
			assert: func(t *testing.T, res *model.CheckLinkResult, err error) {
				require.NoError(t, err)
				assert.True(t, res.AlreadyExists)
				assert.Equal(t, owner, res.Product)
			},
		},
		{
			name: "store failure",
			url:  "https://ebay.test/itm/1",
			setup: func(d deps) {
				d.repository.On("OwnerByLinkURL", mock.Anything, mock.Anything).
					Return(nil, model.ErrStore).Once()
			},
			assert: func(t *testing.T, res *model.CheckLinkResult, err error) {
				assert.ErrorIs(t, err, model.ErrStore)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tc.setup(d)

			res, err := newSvc(d).CheckLink(context.Background(), tc.url)
			tc.assert(t, res, err)
		})
	}
}

func TestServiceAddProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		params model.AddProductParams
		setup  func(d deps)
		assert func(t *testing.T, id string, err error)
	}

	tests := []testCase{
		{
			name:   "blank title",
			params: model.AddProductParams{Fields: model.ProductFields{Title: "  "}},
			setup:  func(d deps) {},
			assert: func(t *testing.T, id string, err error) {
				assert.ErrorIs(t, err, model.ErrMissingField)
				assert.Empty(t, id)
			},
		},
		{
			name: "success: disallowed files skipped, tags cleaned, links stamped",
			params: model.AddProductParams{
				Fields: model.ProductFields{
					Title:             " Left mirror ",
					Tags:              []string{" bmw", "", " ", "e90 "},
					Quantity:          2,
					LowStockThreshold: 3,
					EbayLinks:         []model.EbayLink{{URL: "https://ebay.test/1", Account: "PMC"}},
				},
				Images:         []model.Upload{upload("front.PNG"), upload("notes.txt"), upload("noext")},
				LocationImages: []model.Upload{upload("shelf.webp")},
				CreatedBy:      "user-1",
			},
			setup: func(d deps) {
				d.images.On("Save", mock.Anything, imageNamed("png"), mock.Anything, int64(4), mock.Anything).
					Return("/static/uploads/a.png", nil).Once()
				d.images.On("Save", mock.Anything, imageNamed("webp"), mock.Anything, int64(4), mock.Anything).
					Return("/static/uploads/b.webp", nil).Once()

				d.repository.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
					return p.Title == "Left mirror" &&
						assert.ObjectsAreEqual([]string{"bmw", "e90"}, p.Tags) &&
						assert.ObjectsAreEqual([]string{"/static/uploads/a.png"}, p.Images) &&
						assert.ObjectsAreEqual([]string{"/static/uploads/b.webp"}, p.LocationImages) &&
						len(p.EbayLinks) == 1 && !p.EbayLinks[0].AddedAt.IsZero() &&
						p.Quantity == 2 &&
						p.TotalSold == 0 &&
						p.CreatedBy == "user-1" &&
						!p.CreatedAt.IsZero()
				})).Return(productID, nil).Once()
			},
			assert: func(t *testing.T, id string, err error) {
				require.NoError(t, err)
				assert.Equal(t, productID, id)
			},
		},
		{
			name: "unparsed links become an empty list",
			params: model.AddProductParams{
				Fields: model.ProductFields{Title: "Bumper"},
			},
			setup: func(d deps) {
				d.repository.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
					return p.EbayLinks != nil && len(p.EbayLinks) == 0
				})).Return(productID, nil).Once()
			},
			assert: func(t *testing.T, id string, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "image store failure removes what was saved",
			params: model.AddProductParams{
				Fields: model.ProductFields{Title: "Bumper"},
				Images: []model.Upload{upload("a.jpg"), upload("b.jpg")},
			},
			setup: func(d deps) {
				d.images.On("Save", mock.Anything, imageNamed("jpg"), mock.Anything, mock.Anything, mock.Anything).
					Return("/static/uploads/a.jpg", nil).Once()
				d.images.On("Save", mock.Anything, imageNamed("jpg"), mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("disk full")).Once()
				d.images.On("Delete", mock.Anything, "/static/uploads/a.jpg").Return(nil).Once()
			},
			assert: func(t *testing.T, id string, err error) {
				assert.ErrorIs(t, err, model.ErrStore)
				assert.Empty(t, id)
			},
		},
		{
			name: "repository failure removes stored images",
			params: model.AddProductParams{
				Fields:         model.ProductFields{Title: "Bumper"},
				Images:         []model.Upload{upload("a.gif")},
				LocationImages: []model.Upload{upload("b.jpeg")},
			},
			setup: func(d deps) {
				d.images.On("Save", mock.Anything, imageNamed("gif"), mock.Anything, mock.Anything, mock.Anything).
					Return("/static/uploads/a.gif", nil).Once()
				d.images.On("Save", mock.Anything, imageNamed("jpeg"), mock.Anything, mock.Anything, mock.Anything).
					Return("/static/uploads/b.jpeg", nil).Once()
				d.repository.On("Create", mock.Anything, mock.Anything).Return("", model.ErrStore).Once()
				d.images.On("Delete", mock.Anything, "/static/uploads/a.gif").Return(nil).Once()
				d.images.On("Delete", mock.Anything, "/static/uploads/b.jpeg").Return(errors.New("gone")).Once()
			},
			assert: func(t *testing.T, id string, err error) {
				assert.ErrorIs(t, err, model.ErrStore)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tc.setup(d)

			id, err := newSvc(d).AddProduct(context.Background(), tc.params)
			tc.assert(t, id, err)
		})
	}
}

func TestServiceReplaceProduct(t *testing.T) {
	t.Parallel()

	t.Run("missing product stores nothing", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("ProductByID", mock.Anything, productID).Return(nil, model.ErrNotFound).Once()

		err := newSvc(d).ReplaceProduct(context.Background(), model.ReplaceProductParams{
			ID:     productID,
			Images: []model.Upload{upload("a.png")},
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
		d.images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("links kept when not supplied, new images appended", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("ProductByID", mock.Anything, productID).Return(&model.Product{ID: productID}, nil).Once()
		d.images.On("Save", mock.Anything, imageNamed("png"), mock.Anything, mock.Anything, mock.Anything).
			Return("/static/uploads/new.png", nil).Once()
		d.repository.On("Replace", mock.Anything, productID, mock.MatchedBy(func(u model.ReplaceProduct) bool {
			return u.Fields.Title == "" &&
				u.Fields.EbayLinks == nil &&
				assert.ObjectsAreEqual([]string{"/static/uploads/new.png"}, u.AppendImages) &&
				len(u.AppendLocationImages) == 0 &&
				!u.UpdatedAt.IsZero()
		})).Return(nil).Once()

		err := newSvc(d).ReplaceProduct(context.Background(), model.ReplaceProductParams{
			ID:     productID,
			Images: []model.Upload{upload("new.png")},
		})
		require.NoError(t, err)
	})
}

func TestServicePatchProduct(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repository.On("Patch", mock.Anything, productID, mock.MatchedBy(func(p model.ProductPatch) bool {
		return p.Title != nil && *p.Title == "New" &&
			p.Tags != nil && assert.ObjectsAreEqual([]string{"a"}, *p.Tags) &&
			p.EbayLinks != nil && len(*p.EbayLinks) == 1 &&
			!(*p.EbayLinks)[0].AddedAt.IsZero() &&
			p.Price == nil
	}), mock.Anything).Return(nil).Once()
	d.repository.On("Patch", mock.Anything, "65f0c0ffee0000000000ffff", mock.Anything, mock.Anything).
		Return(model.ErrNotFound).Once()

	svc := newSvc(d)

	require.NoError(t, svc.PatchProduct(context.Background(), productID, model.ProductPatch{
		Title:     lo.ToPtr("New"),
		Tags:      lo.ToPtr([]string{" a ", ""}),
		EbayLinks: lo.ToPtr([]model.EbayLink{{URL: "https://ebay.test/2"}}),
	}))

	err := svc.PatchProduct(context.Background(), "65f0c0ffee0000000000ffff", model.ProductPatch{})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestServiceUpdateQuantityIsNotClamped(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repository.On("SetQuantity", mock.Anything, productID, int64(-2), mock.Anything).Return(nil).Once()

	qty, err := newSvc(d).UpdateQuantity(context.Background(), productID, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), qty)
}

func TestServiceLinks(t *testing.T) {
	t.Parallel()

	t.Run("add requires url", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		err := newSvc(d).AddLink(context.Background(), model.AddLinkParams{ProductID: productID, URL: " "})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("add stamps the link", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("PushLink", mock.Anything, productID, mock.MatchedBy(func(l model.EbayLink) bool {
			return l.URL == "https://ebay.test/9" && l.Account == "Powergen" && l.Label == "rear" && !l.AddedAt.IsZero()
		})).Return(nil).Once()

		err := newSvc(d).AddLink(context.Background(), model.AddLinkParams{
			ProductID: productID,
			URL:       " https://ebay.test/9 ",
			Account:   "Powergen",
			Label:     "rear",
		})
		require.NoError(t, err)
	})

	t.Run("remove on missing product", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("PullLink", mock.Anything, productID, "https://ebay.test/9", mock.Anything).
			Return(model.ErrNotFound).Once()

		err := newSvc(d).RemoveLink(context.Background(), productID, "https://ebay.test/9")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestServiceDeleteProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, err error)
	}

	deleted := &model.Product{
		ID:             productID,
		Images:         []string{"/static/uploads/a.png"},
		LocationImages: []string{"/static/uploads/b.png"},
	}

	tests := []testCase{
		{
			name: "missing product",
			setup: func(d deps) {
				d.repository.On("Delete", mock.Anything, productID).Return(nil, model.ErrNotFound).Once()
			},
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, model.ErrNotFound)
			},
		},
		{
			name: "cascades to orders and images",
			setup: func(d deps) {
				d.repository.On("Delete", mock.Anything, productID).Return(deleted, nil).Once()
				d.orders.On("DeleteByProductID", mock.Anything, productID).Return(int64(3), nil).Once()
				d.images.On("Delete", mock.Anything, "/static/uploads/a.png").Return(nil).Once()
				d.images.On("Delete", mock.Anything, "/static/uploads/b.png").Return(nil).Once()
			},
			assert: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "cascade failures are not surfaced",
			setup: func(d deps) {
				d.repository.On("Delete", mock.Anything, productID).Return(deleted, nil).Once()
				d.orders.On("DeleteByProductID", mock.Anything, productID).Return(int64(0), model.ErrStore).Once()
				d.images.On("Delete", mock.Anything, mock.Anything).Return(errors.New("minio down")).Twice()
			},
			assert: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tc.setup(d)

			tc.assert(t, newSvc(d).DeleteProduct(context.Background(), productID))
		})
	}
}

func TestImageExt(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]string{
		"a.png":        "png",
		"A.JPG":        "jpg",
		"x.tar.jpeg":   "jpeg",
		"anim.gif":     "gif",
		"modern.WebP":  "webp",
		"doc.pdf":      "",
		"noext":        "",
		"trailingdot.": "",
	} {
		ext, ok := imageExt(name)
		assert.Equal(t, want != "", ok, name)
		assert.Equal(t, want, ext, name)
	}
}
