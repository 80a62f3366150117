package seat

import "fmt"

// Side is the recommended side of the vehicle to sit on.
type Side string

const (
	// SideLeft and SideRight are relative to the direction of travel.
	SideLeft  Side = "left"
	SideRight Side = "right"
	// SideAny means no preference: the sun is down.
	SideAny Side = "any"
)

// IsValid returns true if the side is a recognized value.
func (s Side) IsValid() bool {
	switch s {
	case SideLeft, SideRight, SideAny:
		return true
	}
	return false
}

// String returns the string representation of the side.
func (s Side) String() string {
	return string(s)
}

// ParseSide converts a string to a Side, returning an error if invalid.
func ParseSide(s string) (Side, error) {
	side := Side(s)
	if !side.IsValid() {
		return "", fmt.Errorf("invalid seat side: %s", s)
	}
	return side, nil
}
