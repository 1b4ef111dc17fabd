package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation_AutoClears(t *testing.T) {
	s := NewConfirmationService(20*time.Millisecond, newTestLogger())

	s.Show("Termin erfolgreich hinzugefügt!")
	assert.Equal(t, "Termin erfolgreich hinzugefügt!", s.Current())

	require.Eventually(t, func() bool { return s.Current() == "" }, time.Second, 5*time.Millisecond)
}

func TestConfirmation_NewerMessageReplacesPendingClear(t *testing.T) {
	s := NewConfirmationService(time.Hour, newTestLogger())

	s.Show("first")
	s.mu.Lock()
	firstGeneration := s.generation
	s.mu.Unlock()

	s.Show("second")
	// The first message's timer firing late must not clear the second.
	s.expire(firstGeneration)
	assert.Equal(t, "second", s.Current())

	s.Clear()
	assert.Equal(t, "", s.Current())
}
