// Package shell implements the numbered text menu over a line-oriented
// input stream.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"coursecat/internal/course"
	e "coursecat/internal/errors"
	"coursecat/internal/query"
	"coursecat/internal/session"

	"go.uber.org/zap"
)

// State is the position of the menu loop.
type State int

const (
	AwaitingMenuChoice State = iota
	AwaitingFilePath
	AwaitingCourseNumber
	Exited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingMenuChoice:
		return "AwaitingMenuChoice"
	case AwaitingFilePath:
		return "AwaitingFilePath"
	case AwaitingCourseNumber:
		return "AwaitingCourseNumber"
	case Exited:
		return "Exited"
	default:
		return "Unknown"
	}
}

const listHeader = "Courses in the Computer Science department:"

// CatalogLoader produces a new catalog from a path.
type CatalogLoader interface {
	Load(path string) (*course.Catalog, error)
}

// Shell runs the numbered menu against one session at a time.
type Shell struct {
	in             *bufio.Reader
	readErr        error
	out            io.Writer
	loader         CatalogLoader
	validateOnLoad bool
	state          State
}

// New builds a shell reading choices from in and writing menus and results
// to out.
func New(in io.Reader, out io.Writer, loader CatalogLoader, validateOnLoad bool) *Shell {
	return &Shell{
		in:             bufio.NewReader(in),
		out:            out,
		loader:         loader,
		validateOnLoad: validateOnLoad,
		state:          AwaitingMenuChoice,
	}
}

// State returns where the menu loop currently is.
func (sh *Shell) State() State {
	return sh.state
}

// Run drives the menu until the user exits or the input ends.
func (sh *Shell) Run(sess *session.Session) error {
	logger := sess.Logger()

	for sh.state != Exited {
		switch sh.state {
		case AwaitingMenuChoice:
			sh.printMenu()
			line, ok := sh.readLine()
			if !ok {
				sh.state = Exited
				break
			}
			choice, err := ParseChoice(line)
			if err != nil {
				logger.Debug("Invalid menu input", zap.String("input", line))
				fmt.Fprintln(sh.out, "Invalid choice. Please try again.")
				break
			}
			sh.dispatch(sess, choice)

		case AwaitingFilePath:
			fmt.Fprint(sh.out, "Enter filepath to load: ")
			line, ok := sh.readLine()
			if !ok {
				sh.state = Exited
				break
			}
			sh.HandleLoad(sess, strings.TrimSpace(line))
			sh.state = AwaitingMenuChoice

		case AwaitingCourseNumber:
			fmt.Fprint(sh.out, "Enter course number to search: ")
			line, ok := sh.readLine()
			if !ok {
				sh.state = Exited
				break
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				break
			}
			sh.HandleSearch(sess, fields[0])
			sh.state = AwaitingMenuChoice
		}
	}

	return sh.readErr
}

func (sh *Shell) dispatch(sess *session.Session, choice Choice) {
	switch choice {
	case ChoiceLoad:
		sh.state = AwaitingFilePath
	case ChoiceList:
		sh.HandleList(sess)
	case ChoiceSearch:
		sh.state = AwaitingCourseNumber
	case ChoiceExit:
		fmt.Fprintln(sh.out, "Goodbye!")
		sh.state = Exited
	}
}

// HandleLoad replaces the session catalog with the contents of path. The
// current catalog is kept when the load fails.
func (sh *Shell) HandleLoad(sess *session.Session, path string) {
	catalog, err := sh.loader.Load(path)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}

	sess.Replace(catalog, path)
	fmt.Fprintf(sh.out, "Loaded %d courses from %s.\n", catalog.Len(), path)
	if n := len(catalog.Skipped()); n > 0 {
		fmt.Fprintf(sh.out, "Skipped %d malformed lines.\n", n)
	}

	if sh.validateOnLoad {
		sh.HandleValidate(sess)
	}
}

// HandleValidate reports whether every prerequisite in the session catalog
// is a known course.
func (sh *Shell) HandleValidate(sess *session.Session) bool {
	if err := course.Validate(sess.Catalog); err != nil {
		sess.Logger().Warn("Catalog validation failed", zap.Error(err))
		fmt.Fprintf(sh.out, "Error: %v.\n", err)
		return false
	}
	fmt.Fprintln(sh.out, "Catalog is valid.")
	return true
}

// HandleList prints every course in the session catalog, sorted by ID.
func (sh *Shell) HandleList(sess *session.Session) {
	fmt.Fprintln(sh.out, listHeader)
	if err := query.ListAll(sh.out, sess.Catalog); err != nil {
		sess.Logger().Error("Error writing course list", zap.Error(err))
	}
}

// HandleSearch prints one course or a not-found message.
func (sh *Shell) HandleSearch(sess *session.Session, id string) {
	err := query.Search(sh.out, sess.Catalog, id)
	switch {
	case err == nil:
	case e.Is(err, e.KindNotFound):
		fmt.Fprintf(sh.out, "Error: %v.\n", err)
	default:
		sess.Logger().Error("Error writing course", zap.String("courseID", id), zap.Error(err))
	}
}

func (sh *Shell) printMenu() {
	fmt.Fprintln(sh.out, "Menu:")
	for _, item := range menu {
		fmt.Fprintf(sh.out, "%d. %s\n", item.Choice, item.Label)
	}
	fmt.Fprint(sh.out, "Enter your choice: ")
}

// readLine returns the next input line without its line ending. Lines of any
// length are accepted; a final line without a newline is still returned.
func (sh *Shell) readLine() (string, bool) {
	line, err := sh.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			sh.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}
