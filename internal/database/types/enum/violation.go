package enum

import "fmt"

// Severity represents how serious a content violation is.
// The ordering is significant: higher values escalate harder.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the lowercase name of the severity tier.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// SeverityString parses a severity tier from its lowercase name.
func SeverityString(s string) (Severity, error) {
	switch s {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityLow, fmt.Errorf("%s does not belong to Severity values", s) //nolint:err113
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := SeverityString(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// ViolationType represents what kind of infraction was detected.
type ViolationType int

const (
	// ViolationTypeContentFilter marks hits from the restricted-term filter.
	ViolationTypeContentFilter ViolationType = iota
	// ViolationTypeReprogramming marks prompt-injection or character-override attempts.
	ViolationTypeReprogramming
	// ViolationTypeHarassment marks abusive behavior toward other users.
	ViolationTypeHarassment
	// ViolationTypeSpam marks repeated low-value submissions.
	ViolationTypeSpam
)

// String returns the snake_case name of the violation type.
func (v ViolationType) String() string {
	switch v {
	case ViolationTypeContentFilter:
		return "content_filter"
	case ViolationTypeReprogramming:
		return "reprogramming"
	case ViolationTypeHarassment:
		return "harassment"
	case ViolationTypeSpam:
		return "spam"
	default:
		return fmt.Sprintf("ViolationType(%d)", int(v))
	}
}

// ViolationTypeString parses a violation type from its snake_case name.
func ViolationTypeString(s string) (ViolationType, error) {
	switch s {
	case "content_filter":
		return ViolationTypeContentFilter, nil
	case "reprogramming":
		return ViolationTypeReprogramming, nil
	case "harassment":
		return ViolationTypeHarassment, nil
	case "spam":
		return ViolationTypeSpam, nil
	default:
		return ViolationTypeContentFilter, fmt.Errorf("%s does not belong to ViolationType values", s) //nolint:err113
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v ViolationType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ViolationType) UnmarshalText(text []byte) error {
	parsed, err := ViolationTypeString(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// Context represents where in the product a violation happened.
type Context int

const (
	ContextChat Context = iota
	ContextImageGeneration
	ContextProfile
	ContextOther
)

// String returns the snake_case name of the context.
func (c Context) String() string {
	switch c {
	case ContextChat:
		return "chat"
	case ContextImageGeneration:
		return "image_generation"
	case ContextProfile:
		return "profile"
	case ContextOther:
		return "other"
	default:
		return fmt.Sprintf("Context(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Context) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Context) UnmarshalText(text []byte) error {
	switch string(text) {
	case "chat":
		*c = ContextChat
	case "image_generation":
		*c = ContextImageGeneration
	case "profile":
		*c = ContextProfile
	case "other":
		*c = ContextOther
	default:
		return fmt.Errorf("%s does not belong to Context values", string(text)) //nolint:err113
	}

	return nil
}
