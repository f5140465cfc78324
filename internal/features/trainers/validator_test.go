package trainers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateApply(t *testing.T) {
	valid := &ApplyRequest{FullName: "Sam O'Neil", YearsOfExperience: 4, SlotsAvailable: 3}
	require.NoError(t, ValidateApply(valid))

	withImage := &ApplyRequest{FullName: "Sam O'Neil", ProfileImage: "https://cdn.fitquest.dev/sam.jpg"}
	require.NoError(t, ValidateApply(withImage))

	require.Error(t, ValidateApply(&ApplyRequest{FullName: ""}))
	require.Error(t, ValidateApply(&ApplyRequest{FullName: "Sam", YearsOfExperience: -1}))
	require.Error(t, ValidateApply(&ApplyRequest{FullName: "Sam", SlotsAvailable: -2}))
	require.Error(t, ValidateApply(&ApplyRequest{FullName: "Sam", ProfileImage: "not a url"}))
}

func TestValidateUpdateSlots(t *testing.T) {
	valid := &UpdateSlotsRequest{AvailableDays: []string{"Mon", "Wed"}, SlotsAvailable: 5}
	require.NoError(t, ValidateUpdateSlots(valid))

	require.Error(t, ValidateUpdateSlots(&UpdateSlotsRequest{AvailableDays: nil, SlotsAvailable: 5}))
	require.Error(t, ValidateUpdateSlots(&UpdateSlotsRequest{AvailableDays: []string{"Mon"}, SlotsAvailable: -1}))
}
