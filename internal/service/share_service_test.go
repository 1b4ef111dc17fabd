package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	written string
	err     error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = text
	return nil
}

func TestShare_CopiesLink(t *testing.T) {
	clip := &fakeClipboard{}
	s := NewShareService("http://localhost:8080/", clip, newTestLogger(), nil)

	result, err := s.Share("0b7e-42")
	require.NoError(t, err)
	assert.True(t, result.Copied)
	assert.Equal(t, "http://localhost:8080/termin/0b7e-42", result.URL)
	assert.Equal(t, result.URL, clip.written)
}

func TestShare_ClipboardFailureKeepsURL(t *testing.T) {
	s := NewShareService("https://termine.example", &fakeClipboard{err: errors.New("no xclip")}, newTestLogger(), nil)

	result, err := s.Share("abc")
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.False(t, result.Copied)
	assert.Equal(t, "https://termine.example/termin/abc", result.URL)
}

func TestShare_NoClipboard(t *testing.T) {
	s := NewShareService("https://termine.example", nil, newTestLogger(), nil)

	result, err := s.Share("abc")
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.Equal(t, "https://termine.example/termin/abc", result.URL)
}
