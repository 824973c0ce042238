package course

import (
	"strings"

	e "coursecat/internal/errors"
	"coursecat/pkg/models"
)

// DefaultDelimiter separates fields in a catalog line.
const DefaultDelimiter = ','

// ParseRecord turns one delimited line into a course. Tokens are trimmed;
// the first is the ID, the second the title and the rest prerequisites.
func ParseRecord(line string, delim rune) (models.Course, error) {
	tokens := strings.Split(line, string(delim))
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	if len(tokens) < 2 {
		return models.Course{}, &e.ParseError{Raw: line, Reason: e.ErrMalformedRecord.Message}
	}
	if tokens[0] == "" {
		return models.Course{}, &e.ParseError{Raw: line, Reason: "Course number is empty"}
	}

	course := models.Course{
		ID:    tokens[0],
		Title: tokens[1],
	}
	prereqs := tokens[2:]
	// a trailing delimiter leaves one empty token behind; empty tokens
	// elsewhere are kept and surface as dangling prerequisites
	if n := len(prereqs); n > 0 && prereqs[n-1] == "" {
		prereqs = prereqs[:n-1]
	}
	if len(prereqs) > 0 {
		course.Prerequisites = append([]string(nil), prereqs...)
	}

	return course, nil
}
