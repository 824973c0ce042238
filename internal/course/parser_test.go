package course

import (
	"testing"

	e "coursecat/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		id     string
		title  string
		prereq []string
	}{
		{"title only", "CS101,Intro to CS", "CS101", "Intro to CS", nil},
		{"one prereq", "CS201,Data Structures,CS101", "CS201", "Data Structures", []string{"CS101"}},
		{"order kept", "CS301,Algorithms,CS201,CS101", "CS301", "Algorithms", []string{"CS201", "CS101"}},
		{"duplicates kept", "CS400,Capstone,CS301,CS301", "CS400", "Capstone", []string{"CS301", "CS301"}},
		{"trimmed", "  MATH201 , Discrete Math ,  MATH101 \r", "MATH201", "Discrete Math", []string{"MATH101"}},
		{"empty title", "CS102,", "CS102", "", nil},
		{"trailing comma", "CS200,Systems,CS101,", "CS200", "Systems", []string{"CS101"}},
		{"inner empty kept", "CS210,Networks,,CS101", "CS210", "Networks", []string{"", "CS101"}},
		{"only last empty dropped", "CS220,Compilers,CS201,,", "CS220", "Compilers", []string{"CS201", ""}},
		{"blank trailing dropped", "CS230,Databases,CS101, ", "CS230", "Databases", []string{"CS101"}},
		{"inner spaces kept", "CS500,Topics in  AI", "CS500", "Topics in  AI", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := ParseRecord(tt.line, DefaultDelimiter)
			require.NoError(t, err)
			assert.Equal(t, tt.id, course.ID)
			assert.Equal(t, tt.title, course.Title)
			assert.Equal(t, tt.prereq, course.Prerequisites)
		})
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	for _, line := range []string{"", "CS101", "   ", ",Orphan Title"} {
		_, err := ParseRecord(line, DefaultDelimiter)
		require.Error(t, err, "line %q", line)
		assert.Equal(t, e.KindMalformedRecord, e.KindOf(err))
	}
}

func TestParseRecord_CaseSensitiveID(t *testing.T) {
	course, err := ParseRecord("cs101,lowercase", DefaultDelimiter)
	require.NoError(t, err)
	assert.Equal(t, "cs101", course.ID)
}

func TestParseRecord_CustomDelimiter(t *testing.T) {
	course, err := ParseRecord("CS201;Data Structures;CS101", ';')
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", course.Title)
	assert.Equal(t, []string{"CS101"}, course.Prerequisites)
}
