package session

import (
	"testing"

	"coursecat/internal/course"
	"coursecat/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	s := New(zap.NewNop())

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Catalog.Len())
	assert.Empty(t, s.SourcePath)
	assert.False(t, s.StartTime.IsZero())
}

func TestReplace(t *testing.T) {
	s := New(zap.NewNop())
	first := course.NewCatalog(models.Course{ID: "CS101"})
	second := course.NewCatalog(models.Course{ID: "MATH101"})

	s.Replace(first, "a.txt")
	s.Replace(second, "b.txt")

	assert.Same(t, second, s.Catalog)
	assert.Equal(t, "b.txt", s.SourcePath)
	assert.False(t, s.Catalog.Has("CS101"))
}

func TestLogsCarrySessionID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(zap.New(core))
	s.End()

	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, s.ID, entry.ContextMap()["sessionID"])
	}
	assert.False(t, s.EndTime.Before(s.StartTime))
}
