// Package cloudinary talks to the Cloudinary unsigned upload API, the asset
// host behind product and category images.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
)

// UploadResult carries the fields the admin console needs back.
type UploadResult struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
}

// StatusError reports a non-2xx response from the asset host; the upload
// handler passes the status through to its own caller.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cloudinary: upload failed with status %d: %s", e.StatusCode, e.Message)
}

// Client abstracts the asset host for dependency injection and testing.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, filename, contentType string) (*UploadResult, error)
}

// HTTPClient is the real implementation against the Cloudinary HTTP API.
type HTTPClient struct {
	BaseURL      string
	UploadPreset string
	Folder       string
	HTTP         *http.Client
}

func NewClient() *HTTPClient {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	return &HTTPClient{
		BaseURL:      fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		Folder:       getEnv("CLOUDINARY_FOLDER", "shop-products"),
		HTTP:         http.DefaultClient,
	}
}

func (c *HTTPClient) UploadImage(ctx context.Context, file io.Reader, filename, contentType string) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}

	if err := writer.WriteField("upload_preset", c.UploadPreset); err != nil {
		return nil, err
	}
	if err := writer.WriteField("folder", c.Folder); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    parseErrorMessage(respBody, resp.StatusCode),
		}
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("cloudinary: invalid response: %w", err)
	}
	return &result, nil
}

func parseErrorMessage(body []byte, status int) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error.Message != "" {
			return payload.Error.Message
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fmt.Sprintf("upload failed with status %d", status)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
