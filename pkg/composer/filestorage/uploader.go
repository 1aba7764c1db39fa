package filestorage

import "context"

// Uploader pins JSON documents and returns their content identifier.
type Uploader interface {
	UploadJson(ctx context.Context, name string, document any) (string, error)
}
