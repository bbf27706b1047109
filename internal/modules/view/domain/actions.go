package domain

import (
	"fmt"
	"strings"
)

// Action is a typed UI transition. The delegated click handler of the old UI
// matched on class/id strings; explicit element bindings dispatch these
// instead.
type Action int

const (
	ActionUnknown Action = iota
	ActionOpenLogin
	ActionCloseModal
	ActionShowSignupPane
	ActionShowLoginPane
	ActionDeleteBookings
	ActionGoBooking
)

var actionNames = map[Action]string{
	ActionOpenLogin:      "open-login",
	ActionCloseModal:     "close-modal",
	ActionShowSignupPane: "show-signup",
	ActionShowLoginPane:  "show-login",
	ActionDeleteBookings: "delete-bookings",
	ActionGoBooking:      "go-booking",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps the wire name back to an action.
func ParseAction(raw string) (Action, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for action, name := range actionNames {
		if name == trimmed {
			return action, nil
		}
	}
	return ActionUnknown, fmt.Errorf("unknown action %q", raw)
}
