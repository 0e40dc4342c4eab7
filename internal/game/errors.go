package game

import "fmt"

// LockedError indicates a cosmetic is gated behind a requirement the player
// has not met yet. Shown to the user as-is.
type LockedError struct {
	Kind        string // "theme" or "avatar"
	ID          string
	Requirement *UnlockRequirement
}

func (e LockedError) Error() string {
	return fmt.Sprintf("%s %q is locked: %s", e.Kind, e.ID, e.Requirement.String())
}
