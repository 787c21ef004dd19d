package dataset

import (
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// LoadCatalog reads, validates and converts a catalog file. Validation
// failures are fatal; duplicate codes and unknown prerequisites come back as
// warnings alongside the catalog.
func LoadCatalog(path string, rules domain.ProgramRules) (*domain.Catalog, []string, error) {
	records, err := ReadCourseRecords(path)
	if err != nil {
		return nil, nil, err
	}
	if errs := ValidateCourses(records, rules); len(errs) > 0 {
		return nil, nil, formatValidationErrors("catalog", errs)
	}
	catalog, warnings := BuildCatalog(records)
	return catalog, warnings, nil
}

// LoadStudents reads, validates and converts a roster file.
func LoadStudents(path string, rules domain.ProgramRules) ([]*domain.StudentProfile, error) {
	records, err := ReadStudentRecords(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateStudents(records, rules); len(errs) > 0 {
		return nil, formatValidationErrors("students", errs)
	}
	return BuildStudents(records), nil
}

func formatValidationErrors(name string, errs []error) error {
	msg := fmt.Sprintf("%s validation failed (%d errors):", name, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
