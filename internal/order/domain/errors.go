package domain

import "errors"

var (
	ErrOrderNotFound     = errors.New("order_not_found")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrMissingCustomer   = errors.New("missing_customer_name")
	ErrMissingService    = errors.New("missing_service_name")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrInvalidPageToken  = errors.New("invalid_page_token")
	ErrInvalidTimeRange  = errors.New("invalid_time_range")
)
