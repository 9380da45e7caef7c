package repository

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func TestEntityToModelDefaults(t *testing.T) {
	t.Parallel()

	ent := &ProductEntity{
		ID:    bson.NewObjectID(),
		Title: "Headlight",
		EbayLinks: []EbayLinkEntity{
			{URL: "https://ebay.test/1", AddedAt: "2024-03-01T10:20:30.123456"},
			{URL: "https://ebay.test/2", AddedAt: "2024-03-02T10:20:30Z"},
			{URL: "https://ebay.test/3", AddedAt: "not a date"},
		},
	}

	p := EntityToModel(ent)
	require.NotNil(t, p)

	assert.Equal(t, ent.ID.Hex(), p.ID)
	assert.Equal(t, model.DefaultLowStockThreshold, p.LowStockThreshold)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.LocationImages)

	require.Len(t, p.EbayLinks, 3)
	assert.True(t, time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC).Equal(p.EbayLinks[0].AddedAt))
	assert.True(t, time.Date(2024, 3, 2, 10, 20, 30, 0, time.UTC).Equal(p.EbayLinks[1].AddedAt))
	assert.True(t, p.EbayLinks[2].AddedAt.IsZero())

	assert.Equal(t, 3, p.LinkCount())
	assert.True(t, p.IsGroup())
}

func TestEntityFromModelRejectsBadID(t *testing.T) {
	t.Parallel()

	_, err := EntityFromModel(&model.Product{ID: "nope"})
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestBuildReplaceUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("links kept when not supplied, images appended", func(t *testing.T) {
		t.Parallel()

		upd := BuildReplaceUpdate(model.ReplaceProduct{
			Fields: model.ProductFields{
				Title:             "Mirror",
				Quantity:          4,
				LowStockThreshold: 2,
			},
			AppendImages: []string{"/static/uploads/a.png"},
			UpdatedAt:    now,
		})

		set, ok := upd["$set"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, "Mirror", set["title"])
		assert.Equal(t, int64(4), set["quantity"])
		assert.Equal(t, now, set["updated_at"])
		assert.NotContains(t, set, "ebay_links")
		assert.Equal(t, []string{}, set["tags"])

		push, ok := upd["$push"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, bson.M{"$each": []string{"/static/uploads/a.png"}}, push["images"])
		assert.NotContains(t, push, "location_images")
	})

	t.Run("links replaced when supplied, no push without uploads", func(t *testing.T) {
		t.Parallel()

		upd := BuildReplaceUpdate(model.ReplaceProduct{
			Fields: model.ProductFields{
				Title:     "Mirror",
				EbayLinks: []model.EbayLink{},
			},
			UpdatedAt: now,
		})

		set := upd["$set"].(bson.M)
		assert.Equal(t, []EbayLinkEntity{}, set["ebay_links"])
		assert.NotContains(t, upd, "$push")
	})
}

func TestBuildPatchUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	upd := BuildPatchUpdate(model.ProductPatch{
		Title:    lo.ToPtr("Door handle"),
		Quantity: lo.ToPtr(int64(0)),
		Tags:     lo.ToPtr([]string{"left"}),
	}, now)

	assert.Equal(t, bson.M{"$set": bson.M{
		"updated_at": now,
		"title":      "Door handle",
		"quantity":   int64(0),
		"tags":       []string{"left"},
	}}, upd)
}

func TestBuildSearchFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{}, BuildSearchFilter(""))
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "bmw"}}, BuildSearchFilter("bmw"))
}
