package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) (*UserList, error) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var res UserList
	if err := c.do(ctx, http.MethodGet, "/api/users", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var res User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var res User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var res User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil, nil)
}
