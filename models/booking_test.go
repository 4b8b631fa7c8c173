package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "confirmed", "PENDING", "done"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{StatusPending, StatusAccepted}:   true,
		{StatusPending, StatusRejected}:   true,
		{StatusAccepted, StatusCompleted}: true,
		{StatusAccepted, StatusCancelled}: true,
	}

	statuses := []string{StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}
