package course

import (
	e "coursecat/internal/errors"
)

// Validate checks that every prerequisite names a course in c. It stops at
// the first dangling prerequisite and returns it as a
// *errors.DanglingPrerequisiteError. Courses are visited in sorted order.
func Validate(c *Catalog) error {
	for _, id := range c.SortedIDs() {
		for _, prereq := range c.courses[id].Prerequisites {
			if !c.Has(prereq) {
				return &e.DanglingPrerequisiteError{CourseID: id, Prerequisite: prereq}
			}
		}
	}
	return nil
}

// Valid reports whether Validate finds no dangling prerequisite.
func Valid(c *Catalog) bool {
	return Validate(c) == nil
}
