package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// DeepLinkPrefix is the path prefix of shareable appointment links.
const DeepLinkPrefix = "/termin/"

// ErrClipboardUnavailable is returned when the link could not be copied.
var ErrClipboardUnavailable = errors.New("link could not be copied to the clipboard")

type Clipboard interface {
	WriteAll(text string) error
}

// ShareResult carries the link even when copying it failed, so the user can
// copy it by hand.
type ShareResult struct {
	URL    string
	Copied bool
}

type ShareService struct {
	baseURL   string
	clipboard Clipboard
	log       *logrus.Logger
	metrics   *metrics.BookingMetrics
}

func NewShareService(baseURL string, clipboard Clipboard, log *logrus.Logger, m *metrics.BookingMetrics) *ShareService {
	return &ShareService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		clipboard: clipboard,
		log:       log,
		metrics:   m,
	}
}

// LinkFor returns origin + "/termin/" + id.
func (s *ShareService) LinkFor(appointmentID string) string {
	return s.baseURL + DeepLinkPrefix + url.PathEscape(appointmentID)
}

// Share copies the appointment link to the clipboard. On failure the result
// still holds the URL and the error wraps ErrClipboardUnavailable.
func (s *ShareService) Share(appointmentID string) (ShareResult, error) {
	result := ShareResult{URL: s.LinkFor(appointmentID)}

	if s.clipboard == nil {
		s.metrics.ObserveShare(false)
		return result, ErrClipboardUnavailable
	}
	if err := s.clipboard.WriteAll(result.URL); err != nil {
		s.log.Warnf("Failed to copy share link for appointment %s: %+v", appointmentID, err)
		s.metrics.ObserveShare(false)
		return result, fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}

	result.Copied = true
	s.metrics.ObserveShare(true)
	return result, nil
}
