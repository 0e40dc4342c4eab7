package game

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Multiplier is the XP weighting of the priority.
func (p Priority) Multiplier() float64 {
	switch p {
	case PriorityLow:
		return 1.0
	case PriorityMedium:
		return 1.5
	case PriorityHigh:
		return 2.0
	default:
		return 0
	}
}

// DefaultPriority is used when user input is missing.
const DefaultPriority Priority = PriorityMedium

// ParsePriority parses user input to a Priority.
// Empty input falls back to DefaultPriority; unrecognized input is invalid and
// must be rejected at the boundary.
func ParsePriority(input string) (Priority, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultPriority, true
	}
	p := Priority(s)
	if p.IsValid() {
		return p, true
	}
	return "", false
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}
