package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("create: %w", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrSessionExpired, http.StatusUnauthorized},
		{fmt.Errorf("album %q: %w", "album:1", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("resolve: %w", domain.ErrChannelNotFound), http.StatusNotFound},
		{domain.ErrPlatformUnavailable, http.StatusInternalServerError},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusOf(tc.err), tc.err.Error())
	}
}
