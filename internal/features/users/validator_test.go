package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	valid := &RegisterRequest{Email: "jane@fitquest.dev", Name: "Jane Doe"}
	require.NoError(t, ValidateRegister(valid))

	withPhoto := &RegisterRequest{Email: "jane@fitquest.dev", Name: "Jane Doe", PhotoURL: "https://cdn.fitquest.dev/jane.png"}
	require.NoError(t, ValidateRegister(withPhoto))

	require.Error(t, ValidateRegister(&RegisterRequest{Email: "not-an-email", Name: "Jane"}))
	require.Error(t, ValidateRegister(&RegisterRequest{Email: "jane@fitquest.dev", Name: ""}))
	require.Error(t, ValidateRegister(&RegisterRequest{Email: "jane@fitquest.dev", Name: "Jane", PhotoURL: "nope"}))
}
