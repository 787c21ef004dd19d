package service

import (
	"context"
	"time"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/dataset"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/planner"
)

type validateService struct {
	roster   *dataset.Roster
	advisor  advisor.Service
	rules    domain.ProgramRules
	observer UseCaseObserver
}

func NewValidateService(
	roster *dataset.Roster,
	adv advisor.Service,
	rules domain.ProgramRules,
	observers ...UseCaseObserver,
) ValidateService {
	return &validateService{
		roster:   roster,
		advisor:  adv,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *validateService) Validate(ctx context.Context, req contract.ValidateRequest) (resp *contract.ValidateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"student": req.StudentID,
		"courses": len(req.Courses),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "validate",
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
	if len(req.Courses) == 0 {
		return nil, contract.NewError(contract.ErrBadRequest, "selection is empty; nothing to validate")
	}
	if !req.Bounds.Valid() {
		return nil, contract.NewError(contract.ErrInvalidBounds,
			"credit bounds [%.1f, %.1f]: need 0 < min <= max", req.Bounds.Min, req.Bounds.Max)
	}

	validator := planner.NewValidator(s.roster.Catalog(), s.rules)
	report := validator.Validate(student, req.Courses, req.SlotAssignments, req.Bounds)
	fields["valid"] = report.Valid

	resp = &contract.ValidateResponse{
		GeneratedAt:  time.Now().UTC(),
		StudentID:    student.ID,
		StudentName:  student.Name,
		TotalCredits: s.roster.Catalog().CreditSum(uniqueCodes(req.Courses)),
		Report:       report,
	}

	if req.Narrative {
		fc := buildFeasibilityContext(student, s.roster.Catalog(), req.Courses, req.Bounds, report.Feasibility)
		if note, noteErr := s.advisor.AnalyzeFeasibility(ctx, fc); noteErr == nil {
			resp.Note = note
		}
	}
	return resp, nil
}

func uniqueCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}
