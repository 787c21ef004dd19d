package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// CourseRecord is one catalog entry in the courses JSON file.
type CourseRecord struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       float64  `json:"credits"`
	Type          string   `json:"type"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	YearLevel     int      `json:"year_level"`
	Difficulty    int      `json:"difficulty"`
	Slots         []string `json:"slots"`

	// ProjectSemester is required for PROJECT-type courses: the semester the
	// project is designated for.
	ProjectSemester int `json:"project_semester,omitempty"`
}

// StudentRecord is one roster entry in the students JSON file.
type StudentRecord struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Semester         int              `json:"semester"`
	Interests        []string         `json:"interests,omitempty"`
	Workload         string           `json:"workload,omitempty"`
	CompletedCredits float64          `json:"completed_credits"`
	CGPA             float64          `json:"cgpa"`
	SemesterResults  []SemesterRecord `json:"semester_results,omitempty"`
}

// SemesterRecord is one completed semester inside a student record.
type SemesterRecord struct {
	Semester int            `json:"semester"`
	GPA      float64        `json:"gpa"`
	Courses  []ResultRecord `json:"courses"`
}

// ResultRecord is a single course outcome inside a semester record.
type ResultRecord struct {
	Code    string  `json:"code"`
	Grade   string  `json:"grade"`
	Credits float64 `json:"credits"`
	Status  string  `json:"status"`
}

// ReadCourseRecords reads and parses a catalog JSON file (an array of
// course records).
func ReadCourseRecords(path string) ([]CourseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []CourseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return records, nil
}

// ReadStudentRecords reads and parses a roster JSON file (an array of
// student records).
func ReadStudentRecords(path string) ([]StudentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []StudentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing students file: %w", err)
	}
	return records, nil
}
