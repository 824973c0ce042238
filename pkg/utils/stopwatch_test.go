package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStopwatch(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base

	sw := NewStopwatch("load", zap.NewNop())
	sw.now = func() time.Time { return current }

	sw.Start()
	current = base.Add(150 * time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, sw.Elapsed())

	current = base.Add(200 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, sw.Stop())

	current = base.Add(time.Second)
	assert.Equal(t, 200*time.Millisecond, sw.Stop(), "second Stop keeps the first measurement")
	assert.Equal(t, 200*time.Millisecond, sw.Elapsed())
}
