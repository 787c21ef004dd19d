package advisor

import (
	"fmt"
	"strings"
)

// adviseSystemPrompt instructs the model to propose registration strategies
// as a single strict JSON document.
const adviseSystemPrompt = `You are an academic advisor for a university running fully flexible credit scheduling.
You receive a student's standing and the courses they are eligible for, and you propose up to three registration strategies.

Speak directly to the student using "you" and "your", never third person. Explain why each course matters to them personally.

You must output ONLY a JSON object with this exact shape:
{
  "recommendations": [
    {
      "rank": 1,
      "strategy_name": "GRADUATION FOCUSED",
      "courses": ["CSE3001", "CSE3002"],
      "total_credits": 8,
      "reasoning": "Why this combination works for you...",
      "course_rationale": {
        "CSE3001": "You need this because...",
        "CSE3002": "This helps you because..."
      },
      "suitability": "This works best for you if...",
      "slot_assignments": {"CSE3001": "A1+TA1", "CSE3002": "B1"}
    }
  ]
}

Strategy guidance:
- Strategy 1, conservative: complete remaining mandatory courses first; electives only if there is room.
- Strategy 2, moderate: mix mandatory courses with electives matching the student's interests.
- Strategy 3, ambitious: lean into interest-aligned electives while keeping mandatory progress on track.

CRITICAL RULES:
1. Read each course's credit value from the course list provided and sum it exactly; total_credits must be the true sum.
2. The total for every strategy must lie inside the credit bounds given in the prompt.
3. Only recommend courses from the provided list, and only courses whose prerequisites the student has passed.
4. No two courses in one strategy may share a slot token: "A1+TA1" occupies A1 and TA1, so it clashes with "A1" but not with "B1+TB1".
5. If the student has failed courses to clear, at least one strategy must include all of them.
6. If a designated project course is listed for this semester, include it in every strategy.
7. Use strict JSON numeric literals (0.85, never .85).
8. Output ONLY the JSON object: no markdown fences, no text before or after it.`

// feasibilitySystemPrompt instructs the model to judge a hand-built
// selection.
const feasibilitySystemPrompt = `You are an academic advisor reviewing a course selection a student assembled by hand.
Judge whether the load is realistic for them this semester.

You must output ONLY a JSON object with these exact fields:
- verdict: one of [COMFORTABLE, CHALLENGING, DIFFICULT, CRITICAL]
- concerns: array of short strings naming specific problems (empty if none)
- suggestions: array of short strings with concrete adjustments (empty if none)

CRITICAL RULES:
1. Weigh total credits against the allowed range, course difficulty, and the student's record.
2. Speak directly to the student in concerns and suggestions.
3. Do not invent courses or facts not present in the prompt.
4. Output ONLY the JSON object: no markdown fences, no surrounding text.`

// BuildAdvisePrompt assembles the user prompt from independent sections.
func BuildAdvisePrompt(pc PlanContext) string {
	var b strings.Builder
	writeStudentStatus(&b, pc)
	writeFailedAlert(&b, pc)
	writeSemesterGuidance(&b, pc)
	writePool(&b, pc)
	writeRemainingMandatory(&b, pc)
	writePreferences(&b, pc)
	writeSelections(&b, pc)
	writeProjectNote(&b, pc)
	writeBounds(&b, pc)
	b.WriteString("Respond with the JSON object only.\n")
	return b.String()
}

func writeStudentStatus(b *strings.Builder, pc PlanContext) {
	b.WriteString("STUDENT STATUS\n")
	fmt.Fprintf(b, "Name: %s\n", pc.StudentName)
	fmt.Fprintf(b, "Semester: %d of %d (year %d)\n", pc.Semester, pc.ProgramSemesters, pc.Year)
	fmt.Fprintf(b, "CGPA: %.2f (trend: %s, risk: %s)\n", pc.CGPA, pc.Trend, pc.Risk)
	if pc.TotalCredits > 0 {
		pct := pc.CompletedCredits / pc.TotalCredits * 100
		fmt.Fprintf(b, "Credits completed: %.1f of %.1f (%.1f%%)\n", pc.CompletedCredits, pc.TotalCredits, pct)
	}
	b.WriteString("\n")
}

func writeFailedAlert(b *strings.Builder, pc PlanContext) {
	if len(pc.FailedCourses) == 0 {
		return
	}
	b.WriteString("COURSES TO CLEAR\n")
	fmt.Fprintf(b, "You previously failed: %s. At least one strategy must clear all of them.\n\n",
		strings.Join(pc.FailedCourses, ", "))
}

func writeSemesterGuidance(b *strings.Builder, pc PlanContext) {
	switch {
	case pc.Semester >= pc.ProgramSemesters:
		b.WriteString("FINAL SEMESTER\n")
		b.WriteString("Every strategy must include the final project and any remaining mandatory courses. New electives only if there is room after that.\n\n")
	case pc.Semester == pc.ProgramSemesters-1:
		b.WriteString("FINAL YEAR PREPARATION\n")
		b.WriteString("Clear as many mandatory courses as you can now and consider starting the first project phase. Aim to keep the final semester light.\n\n")
	case pc.Semester <= 3:
		b.WriteString("FOUNDATION PHASE\n")
		b.WriteString("Prioritize foundation courses; they unlock everything later. Do not overload.\n\n")
	default:
		b.WriteString("MID-PROGRAM\n")
		b.WriteString("Balance discipline cores against electives that match the student's interests, and build prerequisites for advanced courses.\n\n")
	}
}

func writePool(b *strings.Builder, pc PlanContext) {
	if pc.FutureSemester {
		b.WriteString("ELIGIBLE COURSES (code | name | credits | type | difficulty | notes)\n")
	} else {
		b.WriteString("ELIGIBLE COURSES (code | name | credits | type | difficulty | slots | notes)\n")
	}
	for _, course := range pc.Pool {
		var notes []string
		if len(course.MissingPrereqs) > 0 {
			notes = append(notes, "missing prerequisites: "+strings.Join(course.MissingPrereqs, ", "))
		}
		if course.RetakeOfFailure {
			notes = append(notes, "retake of a failed course")
		}
		if pc.FutureSemester {
			fmt.Fprintf(b, "- %s | %s | %.1f | %s | %d/7 | %s\n",
				course.Code, course.Name, course.Credits, course.Type, course.Difficulty,
				strings.Join(notes, "; "))
		} else {
			fmt.Fprintf(b, "- %s | %s | %.1f | %s | %d/7 | %s | %s\n",
				course.Code, course.Name, course.Credits, course.Type, course.Difficulty,
				strings.Join(course.Slots, " or "), strings.Join(notes, "; "))
		}
	}
	b.WriteString("\n")
}

func writeRemainingMandatory(b *strings.Builder, pc PlanContext) {
	if len(pc.RemainingMandatory) == 0 {
		return
	}
	b.WriteString("REMAINING MANDATORY COURSES\n")
	fmt.Fprintf(b, "Still required for graduation: %s\n\n", strings.Join(pc.RemainingMandatory, ", "))
}

func writePreferences(b *strings.Builder, pc PlanContext) {
	b.WriteString("PREFERENCES\n")
	if len(pc.Interests) > 0 {
		fmt.Fprintf(b, "Interests: %s\n", strings.Join(pc.Interests, ", "))
	}
	fmt.Fprintf(b, "Preferred workload: %s\n\n", pc.Workload)
}

func writeSelections(b *strings.Builder, pc PlanContext) {
	if len(pc.Selected) == 0 && len(pc.Deselected) == 0 {
		return
	}
	b.WriteString("MANUAL CHOICES\n")
	if len(pc.Selected) > 0 {
		fmt.Fprintf(b, "Must include: %s\n", strings.Join(pc.Selected, ", "))
	}
	if len(pc.Deselected) > 0 {
		fmt.Fprintf(b, "Must exclude: %s\n", strings.Join(pc.Deselected, ", "))
	}
	b.WriteString("\n")
}

func writeProjectNote(b *strings.Builder, pc PlanContext) {
	if len(pc.ProjectCodes) == 0 {
		return
	}
	b.WriteString("PROJECT PHASE\n")
	fmt.Fprintf(b, "Designated for this semester: %s. Include it in every strategy.\n\n",
		strings.Join(pc.ProjectCodes, ", "))
}

func writeBounds(b *strings.Builder, pc PlanContext) {
	b.WriteString("CREDIT BOUNDS\n")
	fmt.Fprintf(b, "Register for at least %.1f and at most %.1f credits. Aim the strategies at conservative, moderate, and ambitious loads inside that range.\n\n",
		pc.Bounds.Min, pc.Bounds.Max)
}

// BuildFeasibilityPrompt assembles the user prompt for judging a custom
// selection.
func BuildFeasibilityPrompt(fc FeasibilityContext) string {
	var b strings.Builder
	b.WriteString("STUDENT\n")
	fmt.Fprintf(&b, "Name: %s, semester %d, CGPA %.2f, risk %s\n\n", fc.StudentName, fc.Semester, fc.CGPA, fc.Risk)

	b.WriteString("SELECTED COURSES (code | name | credits | difficulty)\n")
	for _, course := range fc.Courses {
		fmt.Fprintf(&b, "- %s | %s | %.1f | %d/7\n", course.Code, course.Name, course.Credits, course.Difficulty)
	}
	fmt.Fprintf(&b, "Total: %.1f credits (allowed %.1f to %.1f)\n\n", fc.TotalCredits, fc.Bounds.Min, fc.Bounds.Max)

	b.WriteString("GRADUATION CONTEXT\n")
	fmt.Fprintf(&b, "Remaining mandatory credits: %.1f over %d remaining semesters\n\n",
		fc.RemainingMandatory, fc.RemainingSemesters)

	b.WriteString("Respond with the JSON object only.\n")
	return b.String()
}
