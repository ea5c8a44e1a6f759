package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rag-support-be/pkg/vectorindex"
)

const controlPlaneURL = "https://api.pinecone.io"

// Client is a minimal Pinecone REST client covering the data-plane
// operations the retrieval engine needs plus the control-plane admin calls.
type Client struct {
	apiKey    string
	indexHost string // data-plane host, e.g. myindex-abc123.svc.region.pinecone.io
	client    *http.Client
}

var (
	_ vectorindex.VectorIndex = &Client{}
	_ vectorindex.IndexAdmin  = &Client{}
)

func NewClient(apiKey, indexHost string) *Client {
	return &Client{
		apiKey:    apiKey,
		indexHost: indexHost,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// --- Data plane ---

type queryRequest struct {
	Vector          []float32                 `json:"vector"`
	TopK            int                       `json:"topK"`
	IncludeMetadata bool                      `json:"includeMetadata"`
	Filter          map[string]map[string]any `json:"filter,omitempty"`
}

type queryResponse struct {
	Matches []struct {
		ID       string            `json:"id"`
		Score    float32           `json:"score"`
		Metadata map[string]string `json:"metadata"`
	} `json:"matches"`
}

func (c *Client) Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]vectorindex.Match, error) {
	reqPayload := queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
	}
	if len(filter) > 0 {
		reqPayload.Filter = make(map[string]map[string]any, len(filter))
		for field, value := range filter {
			reqPayload.Filter[field] = map[string]any{"$eq": value}
		}
	}

	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("https://%s/query", c.indexHost), reqPayload, &resp); err != nil {
		return nil, err
	}

	matches := make([]vectorindex.Match, len(resp.Matches))
	for i, m := range resp.Matches {
		md := m.Metadata
		if md == nil {
			md = map[string]string{}
		}
		matches[i] = vectorindex.Match{ID: m.ID, Score: m.Score, Metadata: md}
	}
	return matches, nil
}

type upsertRequest struct {
	Vectors []vectorindex.Vector `json:"vectors"`
}

func (c *Client) Upsert(ctx context.Context, vectors []vectorindex.Vector) error {
	if len(vectors) == 0 {
		return nil
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("https://%s/vectors/upsert", c.indexHost), upsertRequest{Vectors: vectors}, nil)
}

// --- Control plane ---

type createIndexRequest struct {
	Name      string    `json:"name"`
	Dimension int       `json:"dimension"`
	Metric    string    `json:"metric"`
	Spec      indexSpec `json:"spec"`
}

type indexSpec struct {
	Serverless serverlessSpec `json:"serverless"`
}

type serverlessSpec struct {
	Cloud  string `json:"cloud"`
	Region string `json:"region"`
}

type indexModel struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
	Metric    string `json:"metric"`
	Host      string `json:"host"`
	Status    struct {
		State string `json:"state"`
	} `json:"status"`
}

type listIndexesResponse struct {
	Indexes []indexModel `json:"indexes"`
}

func (c *Client) CreateIndex(ctx context.Context, name string, dimension int) (*vectorindex.IndexDescription, error) {
	reqPayload := createIndexRequest{
		Name:      name,
		Dimension: dimension,
		Metric:    "cosine",
		Spec: indexSpec{
			Serverless: serverlessSpec{Cloud: "aws", Region: "us-east-1"},
		},
	}
	var m indexModel
	if err := c.do(ctx, http.MethodPost, controlPlaneURL+"/indexes", reqPayload, &m); err != nil {
		return nil, err
	}
	return describeFromModel(m), nil
}

func (c *Client) ListIndexes(ctx context.Context) ([]vectorindex.IndexDescription, error) {
	var resp listIndexesResponse
	if err := c.do(ctx, http.MethodGet, controlPlaneURL+"/indexes", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]vectorindex.IndexDescription, len(resp.Indexes))
	for i, m := range resp.Indexes {
		out[i] = *describeFromModel(m)
	}
	return out, nil
}

func (c *Client) DescribeIndex(ctx context.Context, name string) (*vectorindex.IndexDescription, error) {
	var m indexModel
	if err := c.do(ctx, http.MethodGet, controlPlaneURL+"/indexes/"+name, nil, &m); err != nil {
		return nil, err
	}
	return describeFromModel(m), nil
}

func describeFromModel(m indexModel) *vectorindex.IndexDescription {
	return &vectorindex.IndexDescription{
		Name:      m.Name,
		Dimension: m.Dimension,
		Metric:    m.Metric,
		Host:      m.Host,
		Status:    m.Status.State,
	}
}

func (c *Client) do(ctx context.Context, method, url string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		jsonBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Pinecone-Api-Version", "2024-07")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("pinecone request failed: %w", err)
	}
	defer resp.Body.Close()

	resBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pinecone error: status %d, body %s", resp.StatusCode, string(resBytes))
	}

	if out != nil && len(resBytes) > 0 {
		if err := json.Unmarshal(resBytes, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
