package service

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func normalizeFields(f model.ProductFields) model.ProductFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Tags = cleanTags(f.Tags)
	return f
}

func cleanTags(tags []string) []string {
	return lo.FilterMap(tags, func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})
}

// stampLinks dates links that arrived without an added_at.
func stampLinks(links []model.EbayLink, now time.Time) {
	for i := range links {
		if links[i].AddedAt.IsZero() {
			links[i].AddedAt = now
		}
	}
}
