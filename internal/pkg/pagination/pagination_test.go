package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromQuery_ZeroBasedOffsets(t *testing.T) {
	cases := []struct {
		page, size string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"0", "5", 0, 5, 0},
		{"1", "5", 1, 5, 5},
		{"3", "20", 3, 20, 60},
		{"", "", 0, DefaultSize, 0},
	}

	for _, tc := range cases {
		p := FromQuery(tc.page, tc.size)
		require.Equal(t, tc.wantPage, p.Page)
		require.Equal(t, tc.wantSize, p.Size)
		require.Equal(t, tc.wantOffset, p.Offset)
	}
}

func TestFromQuery_BadInputFallsBack(t *testing.T) {
	p := FromQuery("-1", "abc")
	require.Equal(t, 0, p.Page)
	require.Equal(t, DefaultSize, p.Size)

	p = FromQuery("NaN", "-5")
	require.Equal(t, 0, p.Page)
	require.Equal(t, DefaultSize, p.Size)
}

func TestFromQuery_SizeClamp(t *testing.T) {
	p := FromQuery("0", "100000")
	require.Equal(t, MaxSize, p.Size)

	p = FromQueryClamped("2", "500", 50)
	require.Equal(t, 50, p.Size)
	require.Equal(t, 100, p.Offset)
}

func TestFromQuery_HugePageDoesNotOverflow(t *testing.T) {
	p := FromQuery("92233720368547758", "100")
	require.GreaterOrEqual(t, p.Offset, 0, "offset must never go negative")
	require.LessOrEqual(t, p.Offset, maxOffset)
	require.GreaterOrEqual(t, p.Skip(), int64(0))

	// A value too large for int falls back like any other bad input.
	p = FromQuery("999999999999999999999999", "100")
	require.Equal(t, 0, p.Page)
	require.Equal(t, 0, p.Offset)
}
