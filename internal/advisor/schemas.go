package advisor

import "fmt"

// maxStrategies caps how many strategies one advise call may return.
const maxStrategies = 3

// proposalDoc is the document shape the advisor must return for an advise
// call.
type proposalDoc struct {
	Recommendations []proposalStrategy `json:"recommendations"`
}

type proposalStrategy struct {
	Rank            int               `json:"rank"`
	StrategyName    string            `json:"strategy_name"`
	Courses         []string          `json:"courses"`
	TotalCredits    float64           `json:"total_credits"`
	Reasoning       string            `json:"reasoning"`
	CourseRationale map[string]string `json:"course_rationale"`
	Suitability     string            `json:"suitability"`
	SlotAssignments map[string]string `json:"slot_assignments"`
}

func validateProposalDoc(doc *proposalDoc) error {
	if len(doc.Recommendations) == 0 {
		return fmt.Errorf("document contains no recommendations")
	}
	if len(doc.Recommendations) > maxStrategies {
		return fmt.Errorf("%d recommendations exceeds the maximum of %d", len(doc.Recommendations), maxStrategies)
	}
	for i, rec := range doc.Recommendations {
		if len(rec.Courses) == 0 {
			return fmt.Errorf("recommendations[%d] lists no courses", i)
		}
	}
	return nil
}

// feasibilityDoc is the document shape for a feasibility call.
type feasibilityDoc struct {
	Verdict     string   `json:"verdict"`
	Concerns    []string `json:"concerns"`
	Suggestions []string `json:"suggestions"`
}

var validVerdicts = map[string]bool{
	VerdictComfortable: true,
	VerdictChallenging: true,
	VerdictDifficult:   true,
	VerdictCritical:    true,
}

func validateFeasibilityDoc(doc *feasibilityDoc) error {
	if !validVerdicts[doc.Verdict] {
		return fmt.Errorf("verdict %q is not one of the allowed values", doc.Verdict)
	}
	return nil
}
