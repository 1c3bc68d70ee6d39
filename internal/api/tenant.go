package api

import (
	"context"
	"net/http"
)

// GetUPIInfo returns the admin's UPI details for the signed-in tenant.
func (c *Client) GetUPIInfo(ctx context.Context) (*UPIInfo, error) {
	var res UPIInfo
	if err := c.do(ctx, http.MethodGet, "/api/user/upi-info", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetPaymentHistory returns the signed-in tenant's own payments.
func (c *Client) GetPaymentHistory(ctx context.Context) (*PaymentHistory, error) {
	var res PaymentHistory
	if err := c.do(ctx, http.MethodGet, "/api/user/payment-history", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
