package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"rag-support-be/internal/dto"
	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/rag/session"
	"rag-support-be/pkg/rag/synthesis"
	"rag-support-be/pkg/store"
	"rag-support-be/pkg/transcription"
)

// Soft replies for recoverable voice failures. The voice path answers with
// an explanation instead of an HTTP error whenever the user can just retry.
const (
	msgAudioTooShort       = "Não captei sua fala (áudio muito curto). Tente falar por ~1–2 segundos."
	msgUnrecognizedFormat  = "Formato de áudio não reconhecido. Tente novamente ou use Chrome/Edge."
	msgTranscriptionFailed = "Não consegui transcrever o áudio (%s). Tente novamente."
)

// IVoiceService turns a voice recording into a grounded spoken-or-written answer.
type IVoiceService interface {
	Talk(ctx context.Context, sessionId string, audio []byte, mimeType string) (*dto.VoiceTalkResponse, error)
}

type voiceService struct {
	transcriber  transcription.Transcriber
	speech       transcription.SpeechSynthesizer
	synthesizer  *synthesis.Synthesizer
	minAudioSize int
	useServerTTS bool
	logger       logger.ILogger
}

var _ IVoiceService = &voiceService{}

func NewVoiceService(
	transcriber transcription.Transcriber,
	speech transcription.SpeechSynthesizer,
	synthesizer *synthesis.Synthesizer,
	minAudioSize int,
	useServerTTS bool,
	log logger.ILogger,
) IVoiceService {
	return &voiceService{
		transcriber:  transcriber,
		speech:       speech,
		synthesizer:  synthesizer,
		minAudioSize: minAudioSize,
		useServerTTS: useServerTTS,
		logger:       log,
	}
}

// Talk transcribes the audio, runs the same conversational flow as the text
// chat and, when server-side TTS is on, renders the answer as audio. TTS
// failure never fails the request.
func (s *voiceService) Talk(ctx context.Context, sessionId string, audio []byte, mimeType string) (*dto.VoiceTalkResponse, error) {
	if sessionId == "" {
		sessionId = session.NewSessionID()
	}

	// Cheap floor check before spending a transcription call.
	if len(audio) < s.minAudioSize {
		return softReply(sessionId, msgAudioTooShort), nil
	}

	text, err := s.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, transcription.ErrAudioTooShort):
			return softReply(sessionId, msgAudioTooShort), nil
		case errors.Is(err, transcription.ErrUnrecognizedFormat):
			return softReply(sessionId, msgUnrecognizedFormat), nil
		default:
			s.logger.Warn("voice", "transcription failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
			return softReply(sessionId, fmt.Sprintf(msgTranscriptionFailed, err.Error())), nil
		}
	}

	result, err := s.synthesizer.Answer(ctx, sessionId, text)
	if err != nil {
		return nil, err
	}

	response := &dto.VoiceTalkResponse{
		SessionId:     result.SessionID,
		Transcription: text,
		Category:      result.Category,
		Answer:        result.Answer,
		Sources:       result.Evidence,
	}

	if s.useServerTTS && result.Answer != "" {
		if rendered, ttsErr := s.speech.Synthesize(ctx, result.Answer); ttsErr == nil {
			response.AudioBase64 = base64.StdEncoding.EncodeToString(rendered)
		} else {
			s.logger.Warn("voice", "tts failed, returning text only", map[string]interface{}{
				"session_id": sessionId,
				"error":      ttsErr.Error(),
			})
		}
	}

	return response, nil
}

func softReply(sessionId, message string) *dto.VoiceTalkResponse {
	return &dto.VoiceTalkResponse{
		SessionId: sessionId,
		Answer:    message,
		Sources:   []store.EvidenceChunk{},
	}
}
