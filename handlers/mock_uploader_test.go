package handlers

import (
	"context"
	"io"

	"kirana-admin-backend/cloudinary"
)

// mockUploader implements cloudinary.Client without any network calls. Set
// err to simulate a failed upload.
type mockUploader struct {
	result *cloudinary.UploadResult
	err    error

	// captured request, for assertions
	filename    string
	contentType string
	size        int
}

func newMockUploader() *mockUploader {
	return &mockUploader{
		result: &cloudinary.UploadResult{
			URL:      "https://res.cloudinary.com/test/image/upload/v1/shop-products/test.jpg",
			PublicID: "shop-products/test",
		},
	}
}

func (m *mockUploader) UploadImage(ctx context.Context, file io.Reader, filename, contentType string) (*cloudinary.UploadResult, error) {
	m.filename = filename
	m.contentType = contentType
	data, _ := io.ReadAll(file)
	m.size = len(data)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
