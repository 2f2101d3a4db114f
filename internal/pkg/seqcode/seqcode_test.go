//go:build unit

package seqcode_test

import (
	"testing"

	"hotelhub/internal/pkg/seqcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		last   string
		want   string
		errIs  error
	}{
		{name: "first code of a sequence", prefix: "PKG", last: "", want: "PKG-001"},
		{name: "simple increment", prefix: "PKG", last: "PKG-001", want: "PKG-002"},
		{name: "increment near padding boundary", prefix: "PKG", last: "PKG-099", want: "PKG-100"},
		{name: "grows past three digits", prefix: "PKG", last: "PKG-999", want: "PKG-1000"},
		{name: "keeps counting past four digits", prefix: "PKG", last: "PKG-1000", want: "PKG-1001"},
		{name: "five digit sequences keep their width", prefix: "DIS", last: "DIS-10000", want: "DIS-10001"},
		{name: "discount prefix", prefix: "DIS", last: "DIS-014", want: "DIS-015"},
		{name: "wrong prefix", prefix: "PKG", last: "DIS-001", errIs: seqcode.ErrMalformedCode},
		{name: "non-numeric suffix", prefix: "PKG", last: "PKG-abc", errIs: seqcode.ErrMalformedCode},
		{name: "missing separator", prefix: "PKG", last: "PKG001", errIs: seqcode.ErrMalformedCode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := seqcode.Next(c.prefix, c.last)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
