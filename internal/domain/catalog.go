package domain

// Catalog is the immutable course catalog for a program: the ordered course
// list plus a by-code index. Duplicate codes resolve last-seen-wins; the
// dataset loader reports duplicates so they are visible, not silent.
type Catalog struct {
	courses []Course
	byCode  map[string]int
}

func NewCatalog(courses []Course) *Catalog {
	c := &Catalog{byCode: make(map[string]int, len(courses))}
	for _, course := range courses {
		if i, ok := c.byCode[course.Code]; ok {
			c.courses[i] = course
			continue
		}
		c.byCode[course.Code] = len(c.courses)
		c.courses = append(c.courses, course)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.courses) }

// Courses returns the catalog in load order. The slice is a copy; the
// catalog itself never changes after construction.
func (c *Catalog) Courses() []Course {
	return append([]Course(nil), c.courses...)
}

func (c *Catalog) ByCode(code string) (Course, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

func (c *Catalog) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// CreditSum adds up catalog credits for the given codes. Codes missing from
// the catalog contribute nothing; duplicates count once per occurrence, so
// callers that need set semantics dedupe first.
func (c *Catalog) CreditSum(codes []string) float64 {
	var total float64
	for _, code := range codes {
		if course, ok := c.ByCode(code); ok {
			total += course.Credits
		}
	}
	return total
}

// Mandatory returns the mandatory-type courses in catalog order.
func (c *Catalog) Mandatory() []Course {
	var out []Course
	for _, course := range c.courses {
		if course.IsMandatory() {
			out = append(out, course)
		}
	}
	return out
}
