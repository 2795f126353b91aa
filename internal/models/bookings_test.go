package models

import "testing"

func TestValidTransitionTarget(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingConfirmed, true},
		{BookingCancelled, true},
		// pending is entered only at creation, never by transition
		{BookingPending, false},
		{BookingStatus("archived"), false},
		{BookingStatus(""), false},
	}

	for _, tt := range tests {
		if got := ValidTransitionTarget(tt.status); got != tt.want {
			t.Errorf("ValidTransitionTarget(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestBookingPatchIsEmpty(t *testing.T) {
	if !(BookingPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}

	guests := 80
	if (BookingPatch{GuestCount: &guests}).IsEmpty() {
		t.Error("patch with guest count should not be empty")
	}

	status := BookingConfirmed
	if (BookingPatch{Status: &status}).IsEmpty() {
		t.Error("patch with status should not be empty")
	}
}
