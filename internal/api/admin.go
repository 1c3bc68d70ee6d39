package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

func (c *Client) GetProfile(ctx context.Context) (*AdminProfile, error) {
	var res AdminProfile
	if err := c.do(ctx, http.MethodGet, "/api/admin/me", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*AdminProfile, error) {
	var res AdminProfile
	if err := c.do(ctx, http.MethodPut, "/api/admin/me", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUPI(ctx context.Context, upiID string) error {
	body := map[string]string{"upiId": upiID}
	return c.do(ctx, http.MethodPut, "/api/admin/update-upi", nil, body, nil)
}

// UploadQR posts the QR image as multipart form data under the field name
// the backend expects ("qr").
func (c *Client) UploadQR(ctx context.Context, filename string, r io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("qr", filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to read QR image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/admin/upload-qr", nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, nil)
}
