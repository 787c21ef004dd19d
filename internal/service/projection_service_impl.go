package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/dataset"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/planner"
	"github.com/ffcs-tools/ffcs/internal/pool"
)

// maxHorizon bounds how many semesters ahead a projection may look.
// Further out the simulated profile drifts too far from reality to advise
// on.
const maxHorizon = 3

type projectionService struct {
	roster   *dataset.Roster
	advisor  advisor.Service
	rules    domain.ProgramRules
	observer UseCaseObserver
}

func NewProjectionService(
	roster *dataset.Roster,
	adv advisor.Service,
	rules domain.ProgramRules,
	observers ...UseCaseObserver,
) ProjectionService {
	return &projectionService{
		roster:   roster,
		advisor:  adv,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectionService) ProjectPath(ctx context.Context, req contract.ProjectionRequest) (resp *contract.ProjectionResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"student": req.StudentID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "project-path",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	student, ok := s.roster.Student(req.StudentID)
	if !ok {
		return nil, contract.NewError(contract.ErrStudentNotFound, "no student with id %s", req.StudentID)
	}
	if !req.Bounds.Valid() {
		return nil, contract.NewError(contract.ErrInvalidBounds,
			"credit bounds [%.1f, %.1f]: need 0 < min <= max", req.Bounds.Min, req.Bounds.Max)
	}
	if req.Pick < 1 {
		return nil, contract.NewError(contract.ErrBadRequest, "strategy pick must be at least 1, got %d", req.Pick)
	}
	if req.Horizon < 1 {
		return nil, contract.NewError(contract.ErrBadRequest, "projection horizon must be at least 1, got %d", req.Horizon)
	}

	semestersLeft := s.rules.Semesters - student.Semester
	if semestersLeft <= 0 {
		return nil, contract.NewError(contract.ErrInvalidTarget,
			"student %s is already in the final semester; nothing to project", req.StudentID)
	}
	horizon := req.Horizon
	if horizon > maxHorizon {
		horizon = maxHorizon
	}
	if horizon > semestersLeft {
		horizon = semestersLeft
	}
	fields["horizon"] = horizon

	var warnings []string
	seen := make(map[string]bool)

	// Seed: plan the current semester so the chain knows which codes to
	// assume passed before the first projected step.
	gen := pool.NewGenerator(s.roster.Catalog(), s.rules)
	profile := student.Clone()
	available := gen.Generate(profile, nil, nil)
	if len(available) == 0 {
		return nil, contract.NewError(contract.ErrEmptyPool,
			"no eligible courses for %s in semester %d", req.StudentID, profile.Semester)
	}
	outcome, err := buildStrategies(ctx, s.advisor, gen, profile, available,
		req.Bounds, s.rules, nil, nil, false)
	if err != nil {
		if errors.Is(err, planner.ErrInfeasible) {
			return nil, contract.NewError(contract.ErrInfeasible,
				"no course load fits [%.1f, %.1f] in the current semester; cannot project",
				req.Bounds.Min, req.Bounds.Max)
		}
		return nil, fmt.Errorf("planning current semester: %w", err)
	}
	warnings = appendNewWarnings(warnings, seen, outcome.warnings)
	chosen, warnings := pickStrategy(outcome.recs, req.Pick, profile.Semester, warnings, seen)

	resp = &contract.ProjectionResponse{
		GeneratedAt:   time.Now().UTC(),
		StudentID:     student.ID,
		StudentName:   student.Name,
		AssumedPassed: chosen,
	}

	for i := 0; i < horizon; i++ {
		target := profile.Semester + 1
		sim, simErr := planner.Simulate(profile, chosen, s.roster.Catalog(), target, s.rules)
		if simErr != nil {
			return nil, fmt.Errorf("simulating semester %d: %w", target, simErr)
		}

		stepPool := pool.GateProjects(gen.Generate(sim, nil, nil), target)
		if len(stepPool) == 0 {
			resp.Steps = append(resp.Steps, contract.ProjectionStep{
				Semester:         target,
				SimulatedCredits: sim.CompletedCredits,
				Note:             "no eligible courses this far out",
			})
			break
		}

		stepOutcome, stepErr := buildStrategies(ctx, s.advisor, gen, sim, stepPool,
			req.Bounds, s.rules, nil, nil, true)
		warnings = appendNewWarnings(warnings, seen, stepOutcome.warnings)
		if stepErr != nil {
			if errors.Is(stepErr, planner.ErrInfeasible) {
				resp.Steps = append(resp.Steps, contract.ProjectionStep{
					Semester:         target,
					SimulatedCredits: sim.CompletedCredits,
					PoolSize:         len(stepPool),
					Note: fmt.Sprintf("no course load fits [%.1f, %.1f] from %d eligible courses",
						req.Bounds.Min, req.Bounds.Max, len(stepPool)),
				})
				break
			}
			return nil, fmt.Errorf("projecting semester %d: %w", target, stepErr)
		}

		chosen, warnings = pickStrategy(stepOutcome.recs, req.Pick, target, warnings, seen)
		resp.Steps = append(resp.Steps, contract.ProjectionStep{
			Semester:         target,
			SimulatedCredits: sim.CompletedCredits,
			PoolSize:         len(stepPool),
			Source:           stepOutcome.source,
			Recommendations:  stepOutcome.recs,
			ChosenCodes:      chosen,
		})
		profile = sim
	}

	fields["steps"] = len(resp.Steps)
	resp.Warnings = warnings
	return resp, nil
}

// pickStrategy selects the course list the chain carries forward. An
// out-of-range pick falls back to rank 1 with a warning rather than
// failing the whole projection.
func pickStrategy(recs []domain.Recommendation, pick, semester int, warnings []string, seen map[string]bool) ([]string, []string) {
	idx := pick - 1
	if idx >= len(recs) {
		warnings = appendNewWarnings(warnings, seen, []string{
			fmt.Sprintf("pick %d is out of range (%d strategies at semester %d); carrying rank 1 forward",
				pick, len(recs), semester),
		})
		idx = 0
	}
	return recs[idx].Courses, warnings
}

func appendNewWarnings(dst []string, seen map[string]bool, warnings []string) []string {
	for _, w := range warnings {
		if seen[w] {
			continue
		}
		seen[w] = true
		dst = append(dst, w)
	}
	return dst
}
