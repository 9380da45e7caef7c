package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

var allowedImageExt = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// imageExt returns the lowercased extension of an allowed image file name.
func imageExt(filename string) (string, bool) {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return "", false
	}
	ext = strings.ToLower(ext)
	if _, ok := allowedImageExt[ext]; !ok {
		return "", false
	}
	return ext, true
}

func imageName(ext string) string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "") + "." + ext
}

// saveImages stores every upload with an allowed extension and returns their
// URIs in order. Other files are skipped. On error nothing stays stored.
func (svc *service) saveImages(ctx context.Context, uploads []model.Upload) ([]string, error) {
	uris := make([]string, 0, len(uploads))

	for _, up := range uploads {
		ext, ok := imageExt(up.Filename)
		if !ok {
			logger.Debug(ctx, "skip upload", logger.String("filename", up.Filename))
			continue
		}

		uri, err := svc.images.Save(ctx, imageName(ext), up.Body, up.Size, up.ContentType)
		if err != nil {
			svc.removeImages(ctx, uris)
			return nil, fmt.Errorf("%w: save %q: %w", model.ErrStore, up.Filename, err)
		}
		uris = append(uris, uri)
	}

	return uris, nil
}

func (svc *service) removeImages(ctx context.Context, uris []string) {
	for _, uri := range uris {
		if err := svc.images.Delete(ctx, uri); err != nil {
			logger.Warn(ctx, "remove image",
				logger.String("uri", uri),
				logger.ErrorF(err),
			)
		}
	}
}
