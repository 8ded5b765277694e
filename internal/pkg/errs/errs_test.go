//go:build unit

package errs_test

import (
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("vendor temporarily unavailable")
	other := errs.New("some other failure")

	t.Run("sees a marked sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("vendor returned status 502 Bad Gateway"), sentinel)
		assert.True(t, errs.Is(err, sentinel))
		assert.False(t, errs.Is(err, other))
	})

	t.Run("sees a mark through further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("read failed"), sentinel), "vendor rent failed")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches plain wrapped sentinels", func(t *testing.T) {
		err := errs.Wrap(sentinel, "request failed")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("nil never matches", func(t *testing.T) {
		assert.False(t, errs.Is(nil, sentinel))
	})
}
