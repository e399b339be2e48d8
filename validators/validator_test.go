package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handleProbe struct {
	Username string `validate:"required,handle"`
}

func TestHandleRule(t *testing.T) {
	v := NewValidator()

	for _, ok := range []string{"abc", "night_owl", "A1_", "exactly_twenty_chars"} {
		assert.NoError(t, v.Validate(&handleProbe{Username: ok}), ok)
	}

	for _, bad := range []string{"", "ab", "has space", "dash-ed", "tööt", "this_one_is_far_too_long"} {
		err := v.Validate(&handleProbe{Username: bad})
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, "username %q should be rejected", bad)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}
