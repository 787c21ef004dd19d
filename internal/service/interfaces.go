package service

import (
	"context"

	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

type RecommendService interface {
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
}

type ProjectionService interface {
	ProjectPath(ctx context.Context, req contract.ProjectionRequest) (*contract.ProjectionResponse, error)
}

type ValidateService interface {
	Validate(ctx context.Context, req contract.ValidateRequest) (*contract.ValidateResponse, error)
}

type RosterService interface {
	ListStudents(ctx context.Context) []contract.StudentSummary
	GetStudent(ctx context.Context, id string) (*domain.StudentProfile, error)
	ListCourses(ctx context.Context, filter contract.CourseFilter) []domain.Course
	EligibleCourses(ctx context.Context, studentID string, filter contract.CourseFilter) ([]domain.Course, error)
	CatalogStats(ctx context.Context) contract.CatalogStats
}
