package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("jane@fitquest.dev"))
	require.True(t, IsValidEmail("jane.doe+tag@sub.example.co"))

	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("   "))
	require.False(t, IsValidEmail("jane"))
	require.False(t, IsValidEmail("jane@"))
	require.False(t, IsValidEmail("@example.com"))
}

func TestIsValidURL(t *testing.T) {
	require.True(t, IsValidURL("https://cdn.fitquest.dev/jane.png"))
	require.True(t, IsValidURL("http://example.com/path?x=1"))

	require.False(t, IsValidURL(""))
	require.False(t, IsValidURL("ftp://example.com"))
	require.False(t, IsValidURL("just-text"))
}

func TestIsValidName(t *testing.T) {
	require.True(t, IsValidName("Jane Doe"))
	require.True(t, IsValidName("Sam O'Neil"))
	require.True(t, IsValidName("Anne-Marie St. Clair"))

	require.False(t, IsValidName(""))
	require.False(t, IsValidName("J"))
	require.False(t, IsValidName("Jane42"))
}
