package vectorindex

import "context"

// Match is a single nearest-neighbor hit as returned by the backing index,
// score-descending order assumed. Metadata keys of interest for this corpus:
// "titulo", "categoria", "content".
type Match struct {
	ID       string            `json:"id"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

// Vector is an embedded chunk ready to be upserted.
type Vector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata"`
}

// VectorIndex is the nearest-neighbor search contract. Filter is an equality
// filter on metadata fields; nil or empty means no filtering.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]Match, error)
	Upsert(ctx context.Context, vectors []Vector) error
}

// IndexDescription reports index admin metadata.
type IndexDescription struct {
	Name        string `json:"name"`
	Dimension   int    `json:"dimension"`
	Metric      string `json:"metric"`
	Host        string `json:"host,omitempty"`
	Status      string `json:"status,omitempty"`
	VectorCount int64  `json:"vectorCount,omitempty"`
}

// IndexAdmin covers index lifecycle operations. The Pinecone backend maps
// these to the control-plane API; the pgvector backend reports its single
// migration-managed table.
type IndexAdmin interface {
	CreateIndex(ctx context.Context, name string, dimension int) (*IndexDescription, error)
	ListIndexes(ctx context.Context) ([]IndexDescription, error)
	DescribeIndex(ctx context.Context, name string) (*IndexDescription, error)
}
