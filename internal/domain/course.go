package domain

import "strings"

type Course struct {
	Code          string
	Name          string
	Credits       float64
	Type          CourseType
	Prerequisites []string
	YearLevel     int
	Difficulty    int

	// Slots holds the offered slot labels, e.g. "A1+A2". Each label is a
	// +-joined set of atomic slot tokens; a course occupies every token of
	// the label it is registered under.
	Slots []string

	// ProjectSemester is the semester a PROJECT course is designated for
	// (e.g. 7 for the pre-project, 8 for the final project). Zero for
	// non-project courses.
	ProjectSemester int
}

func (c *Course) IsMandatory() bool {
	switch c.Type {
	case CourseFoundation, CourseDisciplineCore, CourseDisciplineLinked:
		return true
	}
	return false
}

func (c *Course) IsElective() bool {
	return c.Type == CourseDisciplineElective || c.Type == CourseOpenElective
}

func (c *Course) IsProject() bool {
	return c.Type == CourseProject
}

// SlotTokens splits a slot label into its atomic tokens: "A1+TA1" yields
// [A1 TA1]. Tokens are trimmed; empty fragments are dropped.
func SlotTokens(label string) []string {
	parts := strings.Split(label, "+")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
