package session

import (
	"time"

	"coursecat/internal/course"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session holds the state of one interactive run: the current catalog and
// where it came from.
type Session struct {
	ID         string
	Catalog    *course.Catalog
	SourcePath string
	StartTime  time.Time
	EndTime    time.Time
	logger     *zap.Logger
}

// New starts a session with an empty catalog.
func New(logger *zap.Logger) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:        id,
		Catalog:   course.NewCatalog(),
		StartTime: time.Now(),
		logger:    logger.With(zap.String("sessionID", id)),
	}
	s.logger.Info("Created new session")
	return s
}

// Logger returns a logger tagged with the session ID.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Replace swaps in a freshly loaded catalog. The previous one is discarded.
func (s *Session) Replace(catalog *course.Catalog, path string) {
	s.Catalog = catalog
	s.SourcePath = path
	s.logger.Info("Replaced catalog", zap.String("path", path), zap.Int("courses", catalog.Len()))
}

// End stamps the end time and logs how long the session lasted.
func (s *Session) End() {
	s.EndTime = time.Now()
	s.logger.Info("Ended session", zap.Duration("duration", s.EndTime.Sub(s.StartTime)))
}
