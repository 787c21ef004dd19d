package advisor

import (
	"context"
	"fmt"
	"sort"

	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/llm"
)

// ProposalSet holds the advisor's strategies before enforcement. Totals and
// breakdowns inside it are advisor claims and must not be trusted.
type ProposalSet struct {
	Recommendations []domain.Recommendation
}

// Service produces course recommendations and feasibility judgements.
type Service interface {
	// Recommend asks the model for up to three registration strategies.
	// It returns an error when the model is unreachable or its output
	// does not decode; callers are expected to fall back to the
	// deterministic planner in that case.
	Recommend(ctx context.Context, pc PlanContext) (*ProposalSet, error)

	// AnalyzeFeasibility judges a hand-picked selection. It never fails:
	// when the model cannot answer, the rule-based verdict is returned
	// instead.
	AnalyzeFeasibility(ctx context.Context, fc FeasibilityContext) (*FeasibilityNote, error)
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by an LLM client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Recommend(ctx context.Context, pc PlanContext) (*ProposalSet, error) {
	raw, err := s.client.Generate(ctx, llm.TaskAdvise, adviseSystemPrompt, BuildAdvisePrompt(pc))
	if err != nil {
		return nil, err
	}

	doc, err := llm.DecodeStrict[proposalDoc](raw, validateProposalDoc)
	if err != nil {
		return nil, err
	}

	return &ProposalSet{Recommendations: toRecommendations(doc.Recommendations)}, nil
}

func (s *service) AnalyzeFeasibility(ctx context.Context, fc FeasibilityContext) (*FeasibilityNote, error) {
	raw, err := s.client.Generate(ctx, llm.TaskFeasibility, feasibilitySystemPrompt, BuildFeasibilityPrompt(fc))
	if err != nil {
		return RuleBasedFeasibility(fc), nil
	}

	doc, err := llm.DecodeStrict[feasibilityDoc](raw, validateFeasibilityDoc)
	if err != nil {
		return RuleBasedFeasibility(fc), nil
	}

	return &FeasibilityNote{
		Verdict:     doc.Verdict,
		Concerns:    doc.Concerns,
		Suggestions: doc.Suggestions,
		Source:      domain.SourceAdvisor,
	}, nil
}

// toRecommendations orders strategies by the rank the model claimed, then
// re-ranks them 1..N so downstream code never sees gaps or duplicates.
func toRecommendations(strategies []proposalStrategy) []domain.Recommendation {
	sorted := append([]proposalStrategy(nil), strategies...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	recs := make([]domain.Recommendation, 0, len(sorted))
	for i, st := range sorted {
		name := st.StrategyName
		if name == "" {
			name = fmt.Sprintf("Strategy %d", i+1)
		}
		recs = append(recs, domain.Recommendation{
			Rank:            i + 1,
			Strategy:        name,
			Courses:         append([]string(nil), st.Courses...),
			TotalCredits:    st.TotalCredits,
			Reasoning:       st.Reasoning,
			CourseReasons:   st.CourseRationale,
			SlotAssignments: st.SlotAssignments,
			Suitability:     st.Suitability,
			Source:          domain.SourceAdvisor,
		})
	}
	return recs
}
