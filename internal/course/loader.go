package course

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	e "coursecat/internal/errors"
	"coursecat/pkg/utils"

	"go.uber.org/zap"
)

// maxLineSize caps a single catalog line; longer lines are skipped as malformed.
const maxLineSize = 1 << 20

// Loader reads catalog files into fresh Catalogs.
type Loader struct {
	delimiter rune
	logger    *zap.Logger
}

// NewLoader returns a loader splitting fields on delimiter, or on a comma
// when delimiter is zero.
func NewLoader(delimiter rune, logger *zap.Logger) *Loader {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Loader{
		delimiter: delimiter,
		logger:    logger,
	}
}

// Load opens path and parses every line of it. A source that cannot be
// opened or read yields a *errors.LoadError and no catalog.
func (l *Loader) Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		l.logger.Error("Unable to open file", zap.String("path", path), zap.Error(err))
		return nil, &e.LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return l.LoadReader(f, path)
}

// LoadReader parses r line by line. Malformed lines are logged and skipped.
func (l *Loader) LoadReader(r io.Reader, source string) (*Catalog, error) {
	sw := utils.NewStopwatch("catalog load", l.logger).Start()

	catalog := NewCatalog()
	catalog.source = source

	br := bufio.NewReaderSize(r, 64*1024)

	lineNo := 0
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.Error("Error reading file", zap.String("source", source), zap.Error(err))
			return nil, &e.LoadError{Source: source, Read: true, Err: err}
		}
		lineNo++

		if tooLong {
			perr := &e.ParseError{Line: lineNo, Raw: line, Reason: fmt.Sprintf("%s (over %d bytes)", e.ErrLineTooLong.Message, maxLineSize)}
			catalog.skipped = append(catalog.skipped, perr)
			l.logger.Warn("Skipping malformed line",
				zap.String("source", source),
				zap.Int("line", lineNo),
				zap.Error(perr))
			continue
		}

		course, err := ParseRecord(line, l.delimiter)
		if err != nil {
			var perr *e.ParseError
			if stderrors.As(err, &perr) {
				perr.Line = lineNo
				catalog.skipped = append(catalog.skipped, perr)
			}
			l.logger.Warn("Skipping malformed line",
				zap.String("source", source),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		if catalog.Has(course.ID) {
			l.logger.Debug("Duplicate course number, keeping last", zap.String("courseID", course.ID), zap.Int("line", lineNo))
		}
		catalog.put(course)
	}

	l.logger.Info("Loaded catalog",
		zap.String("source", source),
		zap.Int("courses", catalog.Len()),
		zap.Int("skipped", len(catalog.skipped)),
		zap.Int("overwritten", catalog.overwritten),
		zap.Duration("elapsed", sw.Stop()))

	return catalog, nil
}

// readLine returns the next line without its line ending. A line longer than
// maxLineSize is consumed in full and reported with tooLong set and an empty
// line. io.EOF is returned only once no data is left.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			if rerr == io.EOF && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, rerr
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
