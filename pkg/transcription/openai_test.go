package transcription

import (
	"errors"
	"testing"
)

func TestSuffixForMime(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"audio/webm;codecs=opus", ".webm"},
		{"audio/ogg", ".ogg"},
		{"audio/opus", ".ogg"},
		{"audio/wav", ".wav"},
		{"audio/mpeg", ".mp3"},
		{"audio/mp3", ".mp3"},
		{"audio/mp4", ".mp4"},
		{"audio/m4a", ".m4a"},
		{"audio/flac", ".flac"},
		{"", ".webm"},
		{"application/octet-stream", ".webm"},
	}
	for _, tc := range cases {
		if got := suffixForMime(tc.mime); got != tc.want {
			t.Errorf("suffixForMime(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

func TestClassifyAudioError(t *testing.T) {
	if got := classifyAudioError(errors.New("code audio_too_short: ...")); !errors.Is(got, ErrAudioTooShort) {
		t.Errorf("got %v, want ErrAudioTooShort", got)
	}
	if got := classifyAudioError(errors.New("Minimum audio length is 0.1 seconds")); !errors.Is(got, ErrAudioTooShort) {
		t.Errorf("got %v, want ErrAudioTooShort", got)
	}
	if got := classifyAudioError(errors.New("Invalid file format: [...]")); !errors.Is(got, ErrUnrecognizedFormat) {
		t.Errorf("got %v, want ErrUnrecognizedFormat", got)
	}
	plain := errors.New("connection refused")
	got := classifyAudioError(plain)
	if errors.Is(got, ErrAudioTooShort) || errors.Is(got, ErrUnrecognizedFormat) {
		t.Errorf("plain transport error misclassified: %v", got)
	}
	if !errors.Is(got, plain) {
		t.Errorf("transport error not wrapped: %v", got)
	}
}
