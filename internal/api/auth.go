package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token and identity. It does not touch
// the session store; persisting the result is the caller's job.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var res LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
