package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gstbilldomain "github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantType   string
	}{
		{orderdomain.ErrOrderNotFound, http.StatusNotFound, "not_found"},
		{orderdomain.ErrInvalidAmount, http.StatusBadRequest, "validation_error"},
		{orderdomain.ErrMissingCustomer, http.StatusBadRequest, "validation_error"},
		{orderdomain.ErrMissingService, http.StatusBadRequest, "validation_error"},
		{orderdomain.ErrInvalidPageToken, http.StatusBadRequest, "validation_error"},
		{orderdomain.ErrInvalidTimeRange, http.StatusBadRequest, "validation_error"},
		{orderdomain.ErrInvalidTransition, http.StatusConflict, "conflict"},
		{gstbilldomain.ErrNonPositiveAmount, http.StatusBadRequest, "validation_error"},
		{gstbilldomain.ErrRenderFailed, http.StatusBadGateway, "render_failed"},
		{ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		status, payload := mapError(tc.err)
		assert.Equal(t, tc.wantStatus, status, "err=%v", tc.err)
		assert.Equal(t, tc.wantType, payload.Type, "err=%v", tc.err)

		// Wrapped errors map the same way.
		status, payload = mapError(fmt.Errorf("list orders: %w", tc.err))
		assert.Equal(t, tc.wantStatus, status, "wrapped err=%v", tc.err)
		assert.Equal(t, tc.wantType, payload.Type, "wrapped err=%v", tc.err)
	}
}

func TestMapError_ValidationErrors(t *testing.T) {
	status, payload := mapError(newValidationError("page", "invalid_pagination", "invalid pagination parameters"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", payload.Type)
	assert.Len(t, payload.Errors, 1)
	assert.Equal(t, "page", payload.Errors[0].Field)
}
