package domain

// Breakdown classifies a recommendation's courses by category.
type Breakdown struct {
	Mandatory     []string
	Electives     []string
	Projects      []string
	FailedRetakes []string
}

type Recommendation struct {
	Rank     int
	Strategy string
	Courses  []string

	// TotalCredits always equals the catalog sum of Courses. Advisor-claimed
	// totals are discarded and recomputed.
	TotalCredits float64

	Reasoning     string
	CourseReasons map[string]string
	Breakdown     Breakdown

	// SlotAssignments optionally maps a course code to the slot label it
	// should be registered under.
	SlotAssignments map[string]string

	Suitability string
	Source      RecommendationSource
}

// RecomputeDerived resyncs TotalCredits and Breakdown from Courses using
// catalog data. failedRetakes marks codes the student is retaking after a
// failure; they are classified in their category and listed as retakes.
func (r *Recommendation) RecomputeDerived(catalog *Catalog, failedRetakes map[string]bool) {
	r.TotalCredits = 0
	r.Breakdown = Breakdown{}
	for _, code := range r.Courses {
		course, ok := catalog.ByCode(code)
		if !ok {
			continue
		}
		r.TotalCredits += course.Credits
		switch {
		case course.IsMandatory():
			r.Breakdown.Mandatory = append(r.Breakdown.Mandatory, code)
		case course.IsProject():
			r.Breakdown.Projects = append(r.Breakdown.Projects, code)
		default:
			r.Breakdown.Electives = append(r.Breakdown.Electives, code)
		}
		if failedRetakes[code] {
			r.Breakdown.FailedRetakes = append(r.Breakdown.FailedRetakes, code)
		}
	}
}

// Clone returns a deep copy so enforcement can repair a recommendation
// without mutating the advisor's original.
func (r *Recommendation) Clone() *Recommendation {
	out := *r
	out.Courses = append([]string(nil), r.Courses...)
	out.Breakdown = Breakdown{
		Mandatory:     append([]string(nil), r.Breakdown.Mandatory...),
		Electives:     append([]string(nil), r.Breakdown.Electives...),
		Projects:      append([]string(nil), r.Breakdown.Projects...),
		FailedRetakes: append([]string(nil), r.Breakdown.FailedRetakes...),
	}
	if r.CourseReasons != nil {
		out.CourseReasons = make(map[string]string, len(r.CourseReasons))
		for k, v := range r.CourseReasons {
			out.CourseReasons[k] = v
		}
	}
	if r.SlotAssignments != nil {
		out.SlotAssignments = make(map[string]string, len(r.SlotAssignments))
		for k, v := range r.SlotAssignments {
			out.SlotAssignments[k] = v
		}
	}
	return &out
}
