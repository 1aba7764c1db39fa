package keepsake

import (
	"context"
	"fmt"
	"time"

	"github.com/NethermindEth/lovenotes/pkg/composer/filestorage"
)

type Keepsake struct {
	ID        string
	Title     string
	Generator string
	Text      string
	CreatedAt time.Time
}

type Uploader struct {
	uploader filestorage.Uploader
}

func NewUploader(uploader filestorage.Uploader) *Uploader {
	return &Uploader{
		uploader: uploader,
	}
}

func (u *Uploader) Upload(ctx context.Context, k Keepsake) (string, error) {
	cid, err := u.uploader.UploadJson(ctx, "lovenote-"+k.ID, map[string]string{
		"name":        k.Title,
		"description": k.Text,
		"text":        k.Text,
		"generator":   k.Generator,
		"created_at":  k.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload keepsake %s: %w", k.ID, err)
	}

	return cid, nil
}
