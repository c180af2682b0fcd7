package gridgraph_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riskpath/gridgraph"
)

func TestReadPattern(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Plain", "116\n138\n", []string{"116", "138"}},
		{"NoTrailingNewline", "116\n138", []string{"116", "138"}},
		{"CRLF", "116\r\n138\r\n", []string{"116", "138"}},
		{"TrailingBlankLines", "12\n34\n\n\n", []string{"12", "34"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gridgraph.ReadPattern(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadPattern_Empty(t *testing.T) {
	for _, in := range []string{"", "\n", "\r\n\n"} {
		_, err := gridgraph.ReadPattern(strings.NewReader(in))
		assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid, "input %q", in)
	}
}

func TestReadPattern_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := gridgraph.ReadPattern(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

// TestReadPattern_InteriorBlankLine keeps interior blanks so ParsePattern reports them.
func TestReadPattern_InteriorBlankLine(t *testing.T) {
	lines, err := gridgraph.ReadPattern(strings.NewReader("12\n\n34\n"))
	require.NoError(t, err)

	_, err = gridgraph.ParsePattern(lines)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}
