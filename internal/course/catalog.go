package course

import (
	"sort"

	e "coursecat/internal/errors"
	"coursecat/pkg/models"
)

// Catalog maps course IDs to courses. It is built once and never changed;
// a new load produces a new Catalog.
type Catalog struct {
	courses     map[string]models.Course
	source      string
	skipped     []*e.ParseError
	overwritten int
}

// NewCatalog builds a catalog from courses. Later entries with the same ID
// replace earlier ones.
func NewCatalog(courses ...models.Course) *Catalog {
	c := &Catalog{courses: make(map[string]models.Course, len(courses))}
	for _, course := range courses {
		c.put(course)
	}
	return c
}

func (c *Catalog) put(course models.Course) {
	if _, ok := c.courses[course.ID]; ok {
		c.overwritten++
	}
	c.courses[course.ID] = course
}

// Lookup finds a course by exact, case-sensitive ID.
func (c *Catalog) Lookup(id string) (models.Course, bool) {
	if c == nil {
		return models.Course{}, false
	}
	course, ok := c.courses[id]
	if !ok {
		return models.Course{}, false
	}
	course.Prerequisites = append([]string(nil), course.Prerequisites...)
	return course, true
}

// Has reports whether id is a course in the catalog.
func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.courses[id]
	return ok
}

// IDs returns the course IDs in no particular order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.courses))
	for id := range c.courses {
		ids = append(ids, id)
	}
	return ids
}

// SortedIDs returns the course IDs in ascending byte order.
func (c *Catalog) SortedIDs() []string {
	ids := c.IDs()
	sort.Strings(ids)
	return ids
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.courses)
}

// Source is the path or name the catalog was loaded from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Skipped lists the malformed lines dropped while loading.
func (c *Catalog) Skipped() []*e.ParseError {
	if c == nil {
		return nil
	}
	return c.skipped
}

// Overwritten counts records that replaced an earlier record with the same ID.
func (c *Catalog) Overwritten() int {
	if c == nil {
		return 0
	}
	return c.overwritten
}
