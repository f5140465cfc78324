package classes

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter(t *testing.T) {
	require.Empty(t, searchFilter(""))

	f := searchFilter("Pow")
	rx, ok := f["className"].(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, "Pow", rx.Pattern)
	require.Equal(t, "i", rx.Options)
}

func TestSearchFilter_QuotesMetacharacters(t *testing.T) {
	f := searchFilter("H.I.I.T (advanced)")
	rx := f["className"].(primitive.Regex)
	require.Equal(t, `H\.I\.I\.T \(advanced\)`, rx.Pattern)
}
