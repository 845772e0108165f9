package storage

import (
	"context"
	"io"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// Uploader stages a screenshot before it is referenced from a ticket reply,
// returning the public URL of the stored object.
type Uploader interface {
	UploadScreenshot(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// remoteUploader forwards the file to the upstream's multipart /upload
// endpoint, the same path the marketplace front ends use.
type remoteUploader struct {
	api *upstream.Client
}

// NewRemoteUploader creates an Uploader backed by the upstream /upload endpoint.
func NewRemoteUploader(api *upstream.Client) Uploader {
	return &remoteUploader{api: api}
}

func (u *remoteUploader) UploadScreenshot(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	return u.api.Upload(ctx, filename, r)
}
