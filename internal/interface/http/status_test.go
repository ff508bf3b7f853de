package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-blog-platform/internal/application"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{application.ErrForbidden, http.StatusForbidden},
		{application.ErrNotFound, http.StatusNotFound},
		{application.ErrDuplicateEmail, http.StatusBadRequest},
		{application.ErrUserNotFound, http.StatusBadRequest},
		{application.ErrNotActivated, http.StatusBadRequest},
		{application.ErrInvalidCredentials, http.StatusBadRequest},
		{application.ErrInvalidToken, http.StatusBadRequest},
		{application.ErrInvalidReference, http.StatusBadRequest},
		{application.ErrNothingChanged, http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), "error %v", tc.err)
	}
}

func TestStatusForWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("delete post: %w", application.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, StatusFor(wrapped))
}
