package storage

import (
	"context"
	"io"
)

// Uploader puts a binary payload into blob storage under the given key
// and returns a URL the stored object can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
