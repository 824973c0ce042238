// Package query renders catalog lookups and listings as text.
package query

import (
	"fmt"
	"io"
	"strings"

	"coursecat/internal/course"
	e "coursecat/internal/errors"
)

const noPrerequisites = "None"

// Search writes the course with the given ID. Nothing is written when the
// course is absent; a *errors.NotFoundError is returned instead.
func Search(w io.Writer, c *course.Catalog, id string) error {
	found, ok := c.Lookup(id)
	if !ok {
		return &e.NotFoundError{CourseID: id}
	}

	prereqs := noPrerequisites
	if found.HasPrerequisites() {
		prereqs = strings.Join(found.Prerequisites, " ")
	}

	_, err := fmt.Fprintf(w, "Course Number: %s\nCourse Title: %s\nPrerequisites: %s\n",
		found.ID, found.Title, prereqs)
	return err
}

// ListAll writes "<id>: <title>" for every course, sorted by ID.
func ListAll(w io.Writer, c *course.Catalog) error {
	for _, id := range c.SortedIDs() {
		found, _ := c.Lookup(id)
		if _, err := fmt.Fprintf(w, "%s: %s\n", found.ID, found.Title); err != nil {
			return err
		}
	}
	return nil
}
