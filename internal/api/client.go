package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pgctl/internal/session"
)

// Client is one role's pipeline to the backend. Every request picks up the
// role's stored bearer token if one is present; a request without a token
// goes out unauthenticated and the backend decides whether that is
// acceptable. ClearOnUnauthorized is the only policy difference between the
// admin and tenant pipelines: the tenant client wipes its session on a 401,
// the admin client passes the error through.
type Client struct {
	baseURL             string
	httpClient          *http.Client
	store               *session.Store
	role                session.Role
	clearOnUnauthorized bool
	log                 *logrus.Logger
}

type Options struct {
	BaseURL             string
	Timeout             time.Duration
	Store               *session.Store
	Role                session.Role
	ClearOnUnauthorized bool
	Log                 *logrus.Logger
}

func NewClient(opts Options) *Client {
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		baseURL:             strings.TrimRight(opts.BaseURL, "/"),
		httpClient:          &http.Client{Timeout: opts.Timeout},
		store:               opts.Store,
		role:                opts.Role,
		clearOnUnauthorized: opts.ClearOnUnauthorized,
		log:                 log,
	}
}

func (c *Client) Role() session.Role { return c.role }

// do runs one JSON round trip. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	token, ok, err := c.store.Token(c.role)
	if err != nil {
		return nil, err
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	c.log.WithFields(logrus.Fields{
		"role":   c.role,
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return c.handleErrorResponse(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) handleErrorResponse(res *http.Response) error {
	apiErr := &Error{Status: res.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}

	if res.StatusCode == http.StatusUnauthorized && c.clearOnUnauthorized {
		if err := c.store.Clear(c.role); err != nil {
			c.log.WithError(err).Warn("failed to clear session after 401")
		}
	}

	return apiErr
}

// FetchFile streams an opaque URL (such as the UPI QR image) to w. No
// Authorization header is attached; the URL is presumed publicly reachable.
func (c *Client) FetchFile(ctx context.Context, rawURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return &Error{Status: res.StatusCode}
	}

	if _, err := io.Copy(w, res.Body); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}
