package surface

// Operation names an interaction-layer call whose failure handling is configured here.
type Operation string

const (
	OpLogin          Operation = "login"
	OpRegister       Operation = "register"
	OpCurrentUser    Operation = "current-user"
	OpLoadStations   Operation = "load-stations"
	OpLoadPage       Operation = "load-page"
	OpRefreshBooking Operation = "refresh-bookings"
	OpDeleteBookings Operation = "delete-bookings"
	OpCreateBooking  Operation = "create-booking"
)

// Surface states whether a failed operation reaches the user or only the diagnostics log.
type Surface int

const (
	LogOnly Surface = iota
	UserVisible
)

// Only login and signup failures get a banner; everything else stays in the
// log.
var policy = map[Operation]Surface{
	OpLogin:          UserVisible,
	OpRegister:       UserVisible,
	OpCurrentUser:    LogOnly,
	OpLoadStations:   LogOnly,
	OpLoadPage:       LogOnly,
	OpRefreshBooking: LogOnly,
	OpDeleteBookings: LogOnly,
	OpCreateBooking:  LogOnly,
}

// For returns the configured surface for the operation, defaulting to log-only.
func For(op Operation) Surface {
	if s, ok := policy[op]; ok {
		return s
	}
	return LogOnly
}

// IsUserVisible reports whether failures of the operation surface to the user.
func IsUserVisible(op Operation) bool {
	return For(op) == UserVisible
}
