package domain

import (
	"os"
	"strconv"
)

// ProgramRules holds the degree-program constants. They default to the
// standard FFCS undergraduate program but load from the environment so a
// different program shape needs no code change.
type ProgramRules struct {
	TotalCredits     float64
	MandatoryCredits float64
	Semesters        int
	TopGrade         string
}

// CreditBounds is the per-semester credit window a selection must land in.
type CreditBounds struct {
	Min float64
	Max float64
}

func (b CreditBounds) Valid() bool {
	return b.Min > 0 && b.Max >= b.Min
}

// DefaultProgramRules returns the standard program shape: 160 total
// credits, roughly 120 of them mandatory, over 8 semesters, S as the top
// grade.
func DefaultProgramRules() ProgramRules {
	return ProgramRules{
		TotalCredits:     160,
		MandatoryCredits: 120,
		Semesters:        8,
		TopGrade:         "S",
	}
}

func DefaultCreditBounds() CreditBounds {
	return CreditBounds{Min: 12, Max: 24}
}

// LoadProgramRules reads program constants from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadProgramRules() ProgramRules {
	rules := DefaultProgramRules()

	if v := os.Getenv("FFCS_TOTAL_CREDITS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rules.TotalCredits = f
		}
	}
	if v := os.Getenv("FFCS_MANDATORY_CREDITS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rules.MandatoryCredits = f
		}
	}
	if v := os.Getenv("FFCS_SEMESTERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rules.Semesters = n
		}
	}
	if v := os.Getenv("FFCS_TOP_GRADE"); v != "" {
		rules.TopGrade = v
	}

	return rules
}

// LoadCreditBounds reads the default per-semester credit window from the
// environment, falling back to 12-24.
func LoadCreditBounds() CreditBounds {
	bounds := DefaultCreditBounds()

	if v := os.Getenv("FFCS_MIN_CREDITS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			bounds.Min = f
		}
	}
	if v := os.Getenv("FFCS_MAX_CREDITS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= bounds.Min {
			bounds.Max = f
		}
	}

	return bounds
}

func (r ProgramRules) TerminalSemester() int    { return r.Semesters }
func (r ProgramRules) PenultimateSemester() int { return r.Semesters - 1 }
