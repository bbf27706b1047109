package domain

import "testing"

func TestParseAction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Action
	}{
		{"open-login", ActionOpenLogin},
		{"close-modal", ActionCloseModal},
		{"show-signup", ActionShowSignupPane},
		{"show-login", ActionShowLoginPane},
		{"delete-bookings", ActionDeleteBookings},
		{"go-booking", ActionGoBooking},
		{"  GO-BOOKING  ", ActionGoBooking},
	}

	for _, tc := range cases {
		got, err := ParseAction(tc.raw)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAction(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseActionUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseAction("spin-globe"); err == nil {
		t.Fatal("expected an error for an unmatched action")
	}
	if got, _ := ParseAction(""); got != ActionUnknown {
		t.Fatalf("expected ActionUnknown, got %v", got)
	}
}

func TestActionRoundTrip(t *testing.T) {
	t.Parallel()

	for action, name := range actionNames {
		parsed, err := ParseAction(name)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", name, err)
		}
		if parsed != action {
			t.Fatalf("round trip mismatch for %q: %v != %v", name, parsed, action)
		}
	}
}
