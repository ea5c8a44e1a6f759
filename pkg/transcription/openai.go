package transcription

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

// OpenAIAudio implements Transcriber and SpeechSynthesizer on top of the
// OpenAI audio endpoints (whisper-1 and tts-1).
type OpenAIAudio struct {
	client   *goopenai.Client
	language string
	voice    string
}

var (
	_ Transcriber       = &OpenAIAudio{}
	_ SpeechSynthesizer = &OpenAIAudio{}
)

func NewOpenAIAudio(apiKey, language, voice string) *OpenAIAudio {
	if language == "" {
		language = "pt"
	}
	if voice == "" {
		voice = string(goopenai.VoiceAlloy)
	}
	return &OpenAIAudio{
		client:   goopenai.NewClient(apiKey),
		language: language,
		voice:    voice,
	}
}

// Transcribe runs whisper on the raw audio. The mime type only picks the
// filename extension whisper uses to sniff the container format.
func (a *OpenAIAudio) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	resp, err := a.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    goopenai.Whisper1,
		FilePath: "audio" + suffixForMime(mimeType),
		Reader:   bytes.NewReader(audio),
		Language: a.language,
	})
	if err != nil {
		return "", classifyAudioError(err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// Synthesize renders text to mp3 bytes.
func (a *OpenAIAudio) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := a.client.CreateSpeech(ctx, goopenai.CreateSpeechRequest{
		Model: goopenai.TTSModel1,
		Input: text,
		Voice: goopenai.SpeechVoice(a.voice),
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading synthesized audio failed: %w", err)
	}
	return audio, nil
}

// classifyAudioError maps known whisper rejections onto typed conditions the
// voice flow can answer softly.
func classifyAudioError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "audio_too_short") || strings.Contains(msg, "Minimum audio length") {
		return ErrAudioTooShort
	}
	if strings.Contains(msg, "Invalid file format") {
		return ErrUnrecognizedFormat
	}
	return fmt.Errorf("transcription failed: %w", err)
}

func suffixForMime(mimeType string) string {
	m := strings.ToLower(mimeType)
	switch {
	case strings.Contains(m, "webm"):
		return ".webm"
	case strings.Contains(m, "ogg"), strings.Contains(m, "opus"):
		return ".ogg"
	case strings.Contains(m, "wav"):
		return ".wav"
	case strings.Contains(m, "mp3"), strings.Contains(m, "mpeg"), strings.Contains(m, "mpga"):
		return ".mp3"
	case strings.Contains(m, "mp4"):
		return ".mp4"
	case strings.Contains(m, "m4a"):
		return ".m4a"
	case strings.Contains(m, "flac"):
		return ".flac"
	default:
		return ".webm"
	}
}
