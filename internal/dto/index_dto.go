package dto

import "rag-support-be/pkg/vectorindex"

type CreateIndexRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	Dimension int    `json:"dimension,omitempty" validate:"omitempty,min=1"`
}

type IndexResponse struct {
	Index *vectorindex.IndexDescription `json:"index"`
}

type ListIndexesResponse struct {
	Indexes []vectorindex.IndexDescription `json:"indexes"`
}

type IngestDocumentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type IngestDocumentResponse struct {
	Accepted bool `json:"accepted"`
}
