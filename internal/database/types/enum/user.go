package enum

import "fmt"

// UserStatus represents the moderation state of a user account.
// Statuses only escalate; enforcement expiry is evaluated at check time
// rather than by resetting the status.
type UserStatus int

const (
	UserStatusActive UserStatus = iota
	UserStatusWarned
	UserStatusRestricted
	UserStatusSuspended
	UserStatusBanned
)

// String returns the lowercase name of the user status.
func (u UserStatus) String() string {
	switch u {
	case UserStatusActive:
		return "active"
	case UserStatusWarned:
		return "warned"
	case UserStatusRestricted:
		return "restricted"
	case UserStatusSuspended:
		return "suspended"
	case UserStatusBanned:
		return "banned"
	default:
		return fmt.Sprintf("UserStatus(%d)", int(u))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u UserStatus) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UserStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "active":
		*u = UserStatusActive
	case "warned":
		*u = UserStatusWarned
	case "restricted":
		*u = UserStatusRestricted
	case "suspended":
		*u = UserStatusSuspended
	case "banned":
		*u = UserStatusBanned
	default:
		return fmt.Errorf("%s does not belong to UserStatus values", string(text)) //nolint:err113
	}

	return nil
}

// Action represents the auto-moderation action recommended by the
// escalation policy, ordered by increasing severity.
type Action int

const (
	ActionNone Action = iota
	ActionWarn
	ActionRestrict
	ActionSuspend
	ActionBan
)

// String returns the lowercase name of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionWarn:
		return "warn"
	case ActionRestrict:
		return "restrict"
	case ActionSuspend:
		return "suspend"
	case ActionBan:
		return "ban"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Status maps an action to the user status it imposes.
func (a Action) Status() UserStatus {
	switch a {
	case ActionBan:
		return UserStatusBanned
	case ActionSuspend:
		return UserStatusSuspended
	case ActionRestrict:
		return UserStatusRestricted
	case ActionWarn:
		return UserStatusWarned
	case ActionNone:
		return UserStatusActive
	default:
		return UserStatusActive
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*a = ActionNone
	case "warn":
		*a = ActionWarn
	case "restrict":
		*a = ActionRestrict
	case "suspend":
		*a = ActionSuspend
	case "ban":
		*a = ActionBan
	default:
		return fmt.Errorf("%s does not belong to Action values", string(text)) //nolint:err113
	}

	return nil
}
