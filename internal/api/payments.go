package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	var res Payment
	if err := c.do(ctx, http.MethodPost, "/api/payments", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListPayments(ctx context.Context, params ListPaymentsParams) (*PaymentList, error) {
	query := url.Values{}
	if params.Month > 0 {
		query.Set("month", strconv.Itoa(params.Month))
	}
	if params.Year > 0 {
		query.Set("year", strconv.Itoa(params.Year))
	}
	if params.Mode != "" {
		query.Set("mode", params.Mode)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var res PaymentList
	if err := c.do(ctx, http.MethodGet, "/api/payments", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PaymentsByUser returns every payment recorded against one tenant.
func (c *Client) PaymentsByUser(ctx context.Context, userID string) (*PaymentHistory, error) {
	var res PaymentHistory
	if err := c.do(ctx, http.MethodGet, "/api/payments/user/"+url.PathEscape(userID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetMonthlyReport(ctx context.Context, month, year int) (*MonthlyReport, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))

	var res MonthlyReport
	if err := c.do(ctx, http.MethodGet, "/api/payments/monthly", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*Payment, error) {
	var res Payment
	if err := c.do(ctx, http.MethodPut, "/api/payments/"+url.PathEscape(id), nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/payments/"+url.PathEscape(id), nil, nil, nil)
}
