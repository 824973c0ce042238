package shell

import (
	"strconv"
	"strings"

	e "coursecat/internal/errors"
)

// Choice is a numbered menu entry.
type Choice int

const (
	ChoiceLoad   Choice = 1
	ChoiceList   Choice = 2
	ChoiceSearch Choice = 3
	ChoiceExit   Choice = 9
)

type menuItem struct {
	Choice Choice
	Label  string
}

var menu = []menuItem{
	{ChoiceLoad, "Load file"},
	{ChoiceList, "Print List"},
	{ChoiceSearch, "Search for Course"},
	{ChoiceExit, "Exit"},
}

// ParseChoice reads a menu selection. Anything that is not one of the listed
// numbers yields errors.ErrInvalidMenuInput.
func ParseChoice(input string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, e.ErrInvalidMenuInput
	}
	for _, item := range menu {
		if Choice(n) == item.Choice {
			return item.Choice, nil
		}
	}
	return 0, e.ErrInvalidMenuInput
}
