package surface

import "testing"

func TestPolicy(t *testing.T) {
	t.Parallel()

	if !IsUserVisible(OpLogin) {
		t.Fatal("login failures must reach the user")
	}
	if !IsUserVisible(OpRegister) {
		t.Fatal("registration failures must reach the user")
	}

	for _, op := range []Operation{OpCurrentUser, OpLoadStations, OpLoadPage, OpRefreshBooking, OpDeleteBookings, OpCreateBooking} {
		if IsUserVisible(op) {
			t.Fatalf("%s failures must stay in the log", op)
		}
	}
}

func TestForUnknownOperation(t *testing.T) {
	t.Parallel()

	if For(Operation("something-new")) != LogOnly {
		t.Fatal("unregistered operations default to log-only")
	}
}
