package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/dataset"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/history"
	"github.com/ffcs-tools/ffcs/internal/planner"
	"github.com/ffcs-tools/ffcs/internal/pool"
)

type recommendService struct {
	roster   *dataset.Roster
	advisor  advisor.Service
	store    history.Store
	rules    domain.ProgramRules
	observer UseCaseObserver
}

func NewRecommendService(
	roster *dataset.Roster,
	adv advisor.Service,
	store history.Store,
	rules domain.ProgramRules,
	observers ...UseCaseObserver,
) RecommendService {
	return &recommendService{
		roster:   roster,
		advisor:  adv,
		store:    store,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req contract.RecommendRequest) (resp *contract.RecommendResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"student": req.StudentID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend",
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

	profile := student.Clone()
	if len(req.Interests) > 0 {
		profile.Interests = req.Interests
	}
	if req.Workload != "" {
		profile.Workload = req.Workload
	}

	gen := pool.NewGenerator(s.roster.Catalog(), s.rules)
	available := gen.Generate(profile, req.Selected, req.Deselected)
	if len(available) == 0 {
		return nil, contract.NewError(contract.ErrEmptyPool,
			"no eligible courses for %s in semester %d", req.StudentID, profile.Semester)
	}
	fields["pool"] = len(available)

	outcome, err := buildStrategies(ctx, s.advisor, gen, profile, available,
		req.Bounds, s.rules, req.Selected, req.Deselected, false)
	if err != nil {
		if errors.Is(err, planner.ErrInfeasible) {
			return nil, contract.NewError(contract.ErrInfeasible,
				"no course load fits [%.1f, %.1f] from %d eligible courses",
				req.Bounds.Min, req.Bounds.Max, len(available))
		}
		return nil, fmt.Errorf("building fallback plan: %w", err)
	}
	fields["source"] = string(outcome.source)
	fields["strategies"] = len(outcome.recs)

	warnings := outcome.warnings
	if req.Save && s.store != nil {
		if saveErr := s.saveEntry(ctx, profile, req, outcome); saveErr != nil {
			warnings = append(warnings, fmt.Sprintf("history not saved: %v", saveErr))
		}
	}

	return &contract.RecommendResponse{
		GeneratedAt:     time.Now().UTC(),
		StudentID:       student.ID,
		StudentName:     student.Name,
		Semester:        profile.Semester,
		PoolSize:        len(available),
		Source:          outcome.source,
		Recommendations: outcome.recs,
		Warnings:        warnings,
	}, nil
}

func (s *recommendService) saveEntry(ctx context.Context, profile *domain.StudentProfile, req contract.RecommendRequest, outcome planOutcome) error {
	return s.store.Append(ctx, history.Entry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		StudentID: profile.ID,
		Semester:  profile.Semester,
		Preferences: history.Preferences{
			MinCredits: req.Bounds.Min,
			MaxCredits: req.Bounds.Max,
			Interests:  profile.Interests,
			Workload:   string(profile.Workload),
			Selected:   req.Selected,
			Deselected: req.Deselected,
		},
		Source:          outcome.source,
		Recommendations: outcome.recs,
	})
}
