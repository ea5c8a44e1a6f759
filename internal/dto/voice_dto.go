package dto

import "rag-support-be/pkg/store"

type VoiceTalkResponse struct {
	SessionId     string                `json:"session_id"`
	Transcription string                `json:"transcricao"`
	Category      string                `json:"categoria,omitempty"`
	Answer        string                `json:"resposta"`
	Sources       []store.EvidenceChunk `json:"fontes"`
	AudioBase64   string                `json:"audio_base64,omitempty"`
}
