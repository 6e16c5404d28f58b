package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("cancel: %w", ErrConflict("already_cancelled"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsBusiness(err, "already_cancelled"))
	assert.Equal(t, KindUpstream, KindOf(errors.New("boom")))
}

func TestUpstreamUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrUpstream("persistence_failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "persistence_failed: connection refused", err.Error())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestFromErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{ErrNotFound("booking_not_found"), http.StatusNotFound},
		{ErrConflict("already_cancelled"), http.StatusConflict},
		{ErrInvalid("invalid_party_size"), http.StatusBadRequest},
		{ErrForbidden("not_owner"), http.StatusForbidden},
		{errors.New("db down"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, tt.err)
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
	}
}
