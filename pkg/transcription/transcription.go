package transcription

import (
	"context"
	"errors"
)

// Typed conditions the voice flow turns into soft user-facing messages
// instead of failing the request.
var (
	ErrAudioTooShort      = errors.New("transcription: audio too short")
	ErrUnrecognizedFormat = errors.New("transcription: unrecognized audio format")
)

// Transcriber converts recorded speech to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// SpeechSynthesizer renders text as playable audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
