package planner

import (
	"fmt"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// tightLoadFactor marks the fraction of the max credit load above which the
// per-semester graduation pace is warned as tight.
const tightLoadFactor = 0.8

type FeasibilityReport struct {
	Level              domain.FeasibilityLevel
	RemainingMandatory float64
	RemainingSemesters int
	PerSemesterNeed    float64
}

type ValidationReport struct {
	Valid    bool
	Errors   []string
	Warnings []string

	// Feasibility is always advisory. It feeds Warnings, never Errors, and
	// never flips Valid.
	Feasibility FeasibilityReport
}

// Validator checks a finalized course selection against the catalog and the
// student's record. Validation failure blocks "ready to register", but the
// selection stays displayable and editable.
type Validator struct {
	catalog *domain.Catalog
	rules   domain.ProgramRules
}

func NewValidator(catalog *domain.Catalog, rules domain.ProgramRules) *Validator {
	return &Validator{catalog: catalog, rules: rules}
}

func (v *Validator) Validate(
	student *domain.StudentProfile,
	codes []string,
	slotAssignments map[string]string,
	bounds domain.CreditBounds,
) ValidationReport {
	var report ValidationReport

	known := v.checkCodes(&report, codes)
	v.checkPrerequisites(&report, student, known)
	v.checkSlotClashes(&report, known, slotAssignments)
	v.checkCreditBounds(&report, known, bounds)

	report.Feasibility = v.Feasibility(student, codes, bounds)
	switch report.Feasibility.Level {
	case domain.PaceAtRisk:
		if report.Feasibility.RemainingSemesters == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"graduation at risk: terminal semester with %.1f mandatory credits still outstanding",
				report.Feasibility.RemainingMandatory))
		} else {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"graduation at risk: %.1f credits per semester needed over %d remaining semesters exceeds the %.1f max",
				report.Feasibility.PerSemesterNeed, report.Feasibility.RemainingSemesters, bounds.Max))
		}
	case domain.PaceTight:
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"graduation pace tight: %.1f credits per semester needed over %d remaining semesters",
			report.Feasibility.PerSemesterNeed, report.Feasibility.RemainingSemesters))
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// checkCodes reports unknown and duplicate codes, returning the known
// courses in selection order.
func (v *Validator) checkCodes(report *ValidationReport, codes []string) []domain.Course {
	seen := make(map[string]bool, len(codes))
	var known []domain.Course
	for _, code := range codes {
		if seen[code] {
			report.Errors = append(report.Errors, fmt.Sprintf("duplicate course %s in selection", code))
			continue
		}
		seen[code] = true
		course, ok := v.catalog.ByCode(code)
		if !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("unknown course code %s", code))
			continue
		}
		known = append(known, course)
	}
	return known
}

func (v *Validator) checkPrerequisites(report *ValidationReport, student *domain.StudentProfile, courses []domain.Course) {
	passed := student.PassedCourses()
	for _, course := range courses {
		var missing []string
		for _, prereq := range course.Prerequisites {
			if !passed[prereq] {
				missing = append(missing, prereq)
			}
		}
		if len(missing) > 0 {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"%s requires %s (not passed)", course.Code, strings.Join(missing, ", ")))
		}
	}
}

// checkSlotClashes parses each assigned label into atomic tokens. The first
// claimant of a token owns it; each later claimant reports the clash.
// Courses with no assigned label are skipped: slot assignment is optional
// metadata, not required for credit validity.
func (v *Validator) checkSlotClashes(report *ValidationReport, courses []domain.Course, assignments map[string]string) {
	claimed := make(map[string]string)
	for _, course := range courses {
		label, ok := assignments[course.Code]
		if !ok || label == "" {
			continue
		}
		if !offersSlot(course, label) {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s is not offered in slot %s", course.Code, label))
		}
		for _, token := range domain.SlotTokens(label) {
			if owner, taken := claimed[token]; taken {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"slot clash on %s between %s and %s", token, owner, course.Code))
				continue
			}
			claimed[token] = course.Code
		}
	}
}

func offersSlot(course domain.Course, label string) bool {
	for _, s := range course.Slots {
		if s == label {
			return true
		}
	}
	return false
}

func (v *Validator) checkCreditBounds(report *ValidationReport, courses []domain.Course, bounds domain.CreditBounds) {
	var total float64
	for _, course := range courses {
		total += course.Credits
	}
	if total < bounds.Min {
		report.Errors = append(report.Errors, fmt.Sprintf(
			"total credits %.1f below minimum %.1f", total, bounds.Min))
	}
	if total > bounds.Max {
		report.Errors = append(report.Errors, fmt.Sprintf(
			"total credits %.1f above maximum %.1f", total, bounds.Max))
	}
}

// Feasibility estimates graduation pace: outstanding mandatory credits
// after crediting passed mandatory work and this selection's mandatory
// courses, spread over the remaining semesters. The mandatory estimate
// includes designated project work. Passed codes missing from the catalog
// count as mandatory at their recorded credit value.
func (v *Validator) Feasibility(student *domain.StudentProfile, codes []string, bounds domain.CreditBounds) FeasibilityReport {
	remaining := v.rules.MandatoryCredits
	remaining -= v.passedMandatoryCredits(student)

	counted := make(map[string]bool, len(codes))
	for _, code := range codes {
		if counted[code] {
			continue
		}
		counted[code] = true
		course, ok := v.catalog.ByCode(code)
		if ok && countsTowardMandatory(course) {
			remaining -= course.Credits
		}
	}
	if remaining < 0 {
		remaining = 0
	}

	semLeft := v.rules.Semesters - student.Semester
	if semLeft < 0 {
		semLeft = 0
	}

	report := FeasibilityReport{
		RemainingMandatory: remaining,
		RemainingSemesters: semLeft,
	}

	if semLeft == 0 {
		report.PerSemesterNeed = remaining
		if remaining == 0 {
			report.Level = domain.PaceOnTrack
		} else {
			report.Level = domain.PaceAtRisk
		}
		return report
	}

	report.PerSemesterNeed = remaining / float64(semLeft)
	switch {
	case report.PerSemesterNeed > bounds.Max:
		report.Level = domain.PaceAtRisk
	case report.PerSemesterNeed > tightLoadFactor*bounds.Max:
		report.Level = domain.PaceTight
	default:
		report.Level = domain.PaceOnTrack
	}
	return report
}

func (v *Validator) passedMandatoryCredits(student *domain.StudentProfile) float64 {
	var total float64
	counted := make(map[string]bool)
	for _, sem := range student.History {
		for _, result := range sem.Courses {
			if result.Status != domain.ResultPassed || counted[result.Code] {
				continue
			}
			counted[result.Code] = true
			course, ok := v.catalog.ByCode(result.Code)
			switch {
			case !ok:
				// Legacy or renamed code: count its recorded credits rather
				// than losing them from the estimate.
				total += result.Credits
			case countsTowardMandatory(course):
				total += course.Credits
			}
		}
	}
	return total
}

func countsTowardMandatory(course domain.Course) bool {
	return course.IsMandatory() || course.IsProject()
}
