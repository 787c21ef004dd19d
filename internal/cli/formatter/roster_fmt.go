package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

// FormatStudents renders the roster as a table with trend and risk columns.
func FormatStudents(students []contract.StudentSummary) string {
	headers := []string{"ID", "NAME", "SEM", "CGPA", "TREND", "RISK", "CREDITS", "FAILED"}
	rows := make([][]string, 0, len(students))

	for _, s := range students {
		failed := Dim("0")
		if s.FailedCourses > 0 {
			failed = StyleRed.Render(strconv.Itoa(s.FailedCourses))
		}
		rows = append(rows, []string{
			Dim(s.ID),
			Bold(s.Name),
			StyleFg.Render(strconv.Itoa(s.Semester)),
			StyleFg.Render(fmt.Sprintf("%.2f", s.CGPA)),
			TrendBadge(s.Trend),
			RiskIndicator(s.Risk),
			StyleFg.Render(FormatCredits(s.CompletedCredits)),
			failed,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d students", len(students))) + "\n")
	return b.String()
}

// FormatCourses renders a catalog listing.
func FormatCourses(courses []domain.Course) string {
	headers := []string{"CODE", "NAME", "CR", "TYPE", "YEAR", "DIFF", "SLOTS", "PREREQS"}
	rows := make([][]string, 0, len(courses))

	for _, c := range courses {
		prereqs := Dim("--")
		if len(c.Prerequisites) > 0 {
			prereqs = StyleFg.Render(strings.Join(c.Prerequisites, ", "))
		}
		year := strconv.Itoa(c.YearLevel)
		if c.IsProject() && c.ProjectSemester > 0 {
			year = fmt.Sprintf("%d (sem %d)", c.YearLevel, c.ProjectSemester)
		}
		rows = append(rows, []string{
			StyleBlue.Render(c.Code),
			StyleFg.Render(c.Name),
			StyleFg.Render(FormatCredits(c.Credits)),
			TypeLabel(c.Type),
			StyleFg.Render(year),
			difficultyCell(c.Difficulty),
			Dim(strings.Join(c.Slots, " ")),
			prereqs,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d courses", len(courses))) + "\n")
	return b.String()
}

// FormatCatalogStats renders catalog totals with per-type counts.
func FormatCatalogStats(stats contract.CatalogStats) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Courses:"), Bold(strconv.Itoa(stats.Courses))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total credits:"), Bold(FormatCredits(stats.TotalCredits))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("With prerequisites:"), StyleFg.Render(strconv.Itoa(stats.WithPrereqs))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Project phases:"), StyleFg.Render(strconv.Itoa(stats.Projects))))
	b.WriteString("\n")

	order := []domain.CourseType{
		domain.CourseFoundation,
		domain.CourseDisciplineCore,
		domain.CourseDisciplineLinked,
		domain.CourseDisciplineElective,
		domain.CourseOpenElective,
		domain.CourseProject,
	}
	rows := make([][]string, 0, len(order))
	for _, t := range order {
		rows = append(rows, []string{TypeLabel(t), strconv.Itoa(stats.ByType[t])})
	}
	b.WriteString(RenderTable([]string{"TYPE", "COUNT"}, rows))

	return RenderBox("Catalog", b.String())
}

// FormatPool renders a student's eligible-course table. Open failures are
// marked as retakes and unmet prerequisites are called out per course.
func FormatPool(student *domain.StudentProfile, courses []domain.Course) string {
	passed := student.PassedCourses()
	failed := make(map[string]bool)
	for _, code := range student.FailedCourses() {
		failed[code] = true
	}

	headers := []string{"CODE", "NAME", "CR", "TYPE", "DIFF", "SLOTS", "NOTES"}
	rows := make([][]string, 0, len(courses))
	var total float64

	for _, c := range courses {
		total += c.Credits
		rows = append(rows, []string{
			StyleBlue.Render(c.Code),
			StyleFg.Render(c.Name),
			StyleFg.Render(FormatCredits(c.Credits)),
			TypeLabel(c.Type),
			difficultyCell(c.Difficulty),
			Dim(strings.Join(c.Slots, " ")),
			poolNote(c, passed, failed),
		})
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"%s  %s\n\n",
		Bold(student.Name),
		Dim(fmt.Sprintf("semester %d, year %d", student.Semester, student.Year())),
	))
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"%s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("%d eligible", len(courses))),
		StyleDim.Render("|"),
		StyleDim.Render(fmt.Sprintf("%s cr in pool", FormatCredits(total))),
	))

	return RenderBox("Eligible Pool", b.String())
}

func poolNote(c domain.Course, passed, failed map[string]bool) string {
	if failed[c.Code] {
		return StyleRed.Render("retake")
	}
	var missing []string
	for _, p := range c.Prerequisites {
		if !passed[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return StyleYellow.Render("needs " + strings.Join(missing, ", "))
	}
	return Dim("--")
}

// difficultyCell renders a 1..10 difficulty as a colored number: muted up
// to 3, default to 5, red above.
func difficultyCell(d int) string {
	switch {
	case d > 5:
		return StyleRed.Render(strconv.Itoa(d))
	case d > 3:
		return StyleFg.Render(strconv.Itoa(d))
	default:
		return Dim(strconv.Itoa(d))
	}
}
