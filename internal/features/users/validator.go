package users

import (
	"errors"

	"github.com/fitquest/api/internal/pkg/validator"
)

func ValidateRegister(req *RegisterRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("a valid email is required")
	}
	if !validator.IsValidName(req.Name) {
		return errors.New("a valid name is required")
	}
	if req.PhotoURL != "" && !validator.IsValidURL(req.PhotoURL) {
		return errors.New("photoURL must be a valid URL")
	}
	return nil
}
