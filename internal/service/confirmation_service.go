package service

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ConfirmationService holds the transient success message shown above the
// appointment list. A message clears itself after the TTL unless a newer
// message replaced it first.
type ConfirmationService struct {
	ttl time.Duration
	log *logrus.Logger

	mu         sync.Mutex
	message    string
	timer      *time.Timer
	generation uint64
}

func NewConfirmationService(ttl time.Duration, log *logrus.Logger) *ConfirmationService {
	return &ConfirmationService{
		ttl: ttl,
		log: log,
	}
}

func (s *ConfirmationService) Show(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimer()
	s.message = message
	if message == "" {
		return
	}

	generation := s.generation
	s.timer = time.AfterFunc(s.ttl, func() {
		s.expire(generation)
	})
	s.log.Debugf("Confirmation shown: %q", message)
}

func (s *ConfirmationService) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *ConfirmationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
	s.message = ""
}

func (s *ConfirmationService) expire(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return
	}
	s.timer = nil
	s.message = ""
}

// Caller must hold s.mu.
func (s *ConfirmationService) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}
