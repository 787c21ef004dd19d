package dataset

import "github.com/ffcs-tools/ffcs/internal/domain"

// Roster is the loaded dataset: the course catalog plus student profiles
// indexed by id. It is read-only after construction; services clone
// profiles before mutating them.
type Roster struct {
	catalog  *domain.Catalog
	students map[string]*domain.StudentProfile
	order    []string
}

func NewRoster(catalog *domain.Catalog, students []*domain.StudentProfile) *Roster {
	r := &Roster{
		catalog:  catalog,
		students: make(map[string]*domain.StudentProfile, len(students)),
	}
	for _, s := range students {
		if _, dup := r.students[s.ID]; dup {
			continue
		}
		r.students[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

func (r *Roster) Catalog() *domain.Catalog { return r.catalog }

func (r *Roster) Student(id string) (*domain.StudentProfile, bool) {
	s, ok := r.students[id]
	return s, ok
}

// Students returns profiles in dataset order.
func (r *Roster) Students() []*domain.StudentProfile {
	out := make([]*domain.StudentProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.students[id])
	}
	return out
}

func (r *Roster) Len() int { return len(r.order) }
