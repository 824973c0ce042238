package shell

import (
	"testing"

	e "coursecat/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	valid := map[string]Choice{
		"1":   ChoiceLoad,
		" 2 ": ChoiceList,
		"3\r": ChoiceSearch,
		"9":   ChoiceExit,
		"09":  ChoiceExit,
	}
	for input, want := range valid {
		got, err := ParseChoice(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "4", "0", "abc", "1abc", "-1", "99"} {
		_, err := ParseChoice(input)
		assert.ErrorIs(t, err, e.ErrInvalidMenuInput, "input %q", input)
	}
}
