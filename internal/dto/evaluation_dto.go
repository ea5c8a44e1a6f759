package dto

import (
	"rag-support-be/pkg/rag/evaluation"
	"rag-support-be/pkg/store"
)

type AskQuestionRequest struct {
	Question string `json:"pergunta" validate:"required,min=1"`
}

type AskQuestionResponse struct {
	Category string                `json:"categoria"`
	Answer   string                `json:"resposta"`
	Sources  []store.EvidenceChunk `json:"fontes"`
	Grading  *evaluation.Result    `json:"avaliacao"`
}

type EvaluationInput struct {
	Question string `json:"pergunta" validate:"required,min=1"`
	Answer   string `json:"resposta" validate:"required,min=1"`
}

type BatchEvaluationRequest struct {
	Evaluations []EvaluationInput `json:"avaliacoes" validate:"required,min=1,dive"`
}

type BatchEvaluationItem struct {
	Question      string   `json:"pergunta"`
	Answer        string   `json:"resposta"`
	Precision     int      `json:"precisao"`
	Coverage      int      `json:"cobertura"`
	RecallAt3     int      `json:"recall3"`
	Justification string   `json:"justificativa"`
	Sources       []string `json:"fontes"`
}

type BatchEvaluationResponse struct {
	Metrics     *evaluation.BatchSummary `json:"metricas"`
	Evaluations []BatchEvaluationItem    `json:"avaliacoes"`
}
