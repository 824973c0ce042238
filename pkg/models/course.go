package models

// Course is a single catalog entry. Prerequisites are course IDs, kept in the
// order they appeared in the source file.
type Course struct {
	ID            string
	Title         string
	Prerequisites []string
}

// HasPrerequisites reports whether the course lists any prerequisite.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}
