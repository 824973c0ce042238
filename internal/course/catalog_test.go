package course

import (
	"sort"
	"testing"

	"coursecat/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestNewCatalog_LastWriteWins(t *testing.T) {
	c := NewCatalog(
		models.Course{ID: "CS101", Title: "Old Title", Prerequisites: []string{"X"}},
		models.Course{ID: "CS201", Title: "Data Structures"},
		models.Course{ID: "CS101", Title: "Intro to CS"},
	)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Overwritten())

	course, ok := c.Lookup("CS101")
	assert.True(t, ok)
	assert.Equal(t, "Intro to CS", course.Title)
	assert.Empty(t, course.Prerequisites)
}

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog(models.Course{ID: "CS201", Title: "Data Structures", Prerequisites: []string{"CS101"}})

	_, ok := c.Lookup("cs201")
	assert.False(t, ok, "lookup is case-sensitive")

	course, ok := c.Lookup("CS201")
	assert.True(t, ok)

	course.Prerequisites[0] = "mutated"
	again, _ := c.Lookup("CS201")
	assert.Equal(t, []string{"CS101"}, again.Prerequisites, "returned course must not alias catalog state")
}

func TestCatalog_IDs(t *testing.T) {
	c := NewCatalog(
		models.Course{ID: "CS301"},
		models.Course{ID: "CS101"},
		models.Course{ID: "CS201"},
	)

	ids := c.IDs()
	sort.Strings(ids)
	assert.Equal(t, []string{"CS101", "CS201", "CS301"}, ids)
	assert.Equal(t, []string{"CS101", "CS201", "CS301"}, c.SortedIDs())
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.IDs())
	assert.False(t, c.Has("CS101"))
	_, ok := c.Lookup("CS101")
	assert.False(t, ok)
}
