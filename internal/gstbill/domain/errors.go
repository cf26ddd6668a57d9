package domain

import "errors"

var (
	ErrNonPositiveAmount = errors.New("non_positive_amount")
	ErrNegativeRate      = errors.New("negative_tax_rate")
	ErrRenderFailed      = errors.New("render_failed")
)
