//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("stay range is invalid")

	t.Run("sees a sentinel attached with Mark", func(t *testing.T) {
		err := errs.Mark(errs.New("check-out on or before check-in"), sentinel)
		assert.True(t, errs.Is(err, sentinel))
		assert.False(t, errors.Is(err, sentinel), "marks are not part of the Unwrap chain")
	})

	t.Run("sees a mark through Wrap", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("no rows"), sentinel), "list packages")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches a directly returned sentinel", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("does not match unrelated errors", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("other failure"), sentinel))
	})

	t.Run("nil error matches nothing", func(t *testing.T) {
		assert.False(t, errs.Is(nil, sentinel))
	})
}
