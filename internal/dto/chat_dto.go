package dto

import "rag-support-be/pkg/store"

type SendMessageRequest struct {
	SessionId string `json:"session_id,omitempty"`
	Message   string `json:"mensagem" validate:"required,min=1"`
}

type SendMessageResponse struct {
	SessionId string                `json:"session_id"`
	Category  string                `json:"categoria"`
	Answer    string                `json:"resposta"`
	Sources   []store.EvidenceChunk `json:"fontes"`
}

type ResetSessionRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

type ResetSessionResponse struct {
	SessionId string `json:"session_id"`
	Reset     bool   `json:"reset"`
}
