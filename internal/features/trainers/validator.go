package trainers

import (
	"errors"

	"github.com/fitquest/api/internal/pkg/validator"
)

func ValidateApply(req *ApplyRequest) error {
	if !validator.IsValidName(req.FullName) {
		return errors.New("a valid full name is required")
	}
	if req.YearsOfExperience < 0 {
		return errors.New("yearsOfExperience cannot be negative")
	}
	if req.SlotsAvailable < 0 {
		return errors.New("slotsAvailable cannot be negative")
	}
	if req.ProfileImage != "" && !validator.IsValidURL(req.ProfileImage) {
		return errors.New("profileImage must be a valid URL")
	}
	return nil
}

func ValidateUpdateSlots(req *UpdateSlotsRequest) error {
	if req.SlotsAvailable < 0 {
		return errors.New("slotsAvailable cannot be negative")
	}
	if len(req.AvailableDays) == 0 {
		return errors.New("at least one available day is required")
	}
	return nil
}
