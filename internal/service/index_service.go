package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"rag-support-be/internal/dto"
	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/vectorindex"
)

// defaultIndexDimension matches the text-embedding-3-small output size.
const defaultIndexDimension = 1536

// IIndexService covers vector index administration plus asynchronous corpus
// ingestion.
type IIndexService interface {
	CreateIndex(ctx context.Context, request *dto.CreateIndexRequest) (*dto.IndexResponse, error)
	ListIndexes(ctx context.Context) (*dto.ListIndexesResponse, error)
	DescribeIndex(ctx context.Context, name string) (*dto.IndexResponse, error)
	PublishDocument(ctx context.Context, request *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
}

type indexService struct {
	admin     vectorindex.IndexAdmin
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

var _ IIndexService = &indexService{}

func NewIndexService(admin vectorindex.IndexAdmin, pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IIndexService {
	return &indexService{
		admin:     admin,
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (s *indexService) CreateIndex(ctx context.Context, request *dto.CreateIndexRequest) (*dto.IndexResponse, error) {
	dimension := request.Dimension
	if dimension == 0 {
		dimension = defaultIndexDimension
	}

	desc, err := s.admin.CreateIndex(ctx, request.Name, dimension)
	if err != nil {
		return nil, err
	}

	s.logger.Info("index", "index created", map[string]interface{}{
		"name":      desc.Name,
		"dimension": desc.Dimension,
	})
	return &dto.IndexResponse{Index: desc}, nil
}

func (s *indexService) ListIndexes(ctx context.Context) (*dto.ListIndexesResponse, error) {
	indexes, err := s.admin.ListIndexes(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ListIndexesResponse{Indexes: indexes}, nil
}

func (s *indexService) DescribeIndex(ctx context.Context, name string) (*dto.IndexResponse, error) {
	desc, err := s.admin.DescribeIndex(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.IndexResponse{Index: desc}, nil
}

// PublishDocument queues one raw document for ingestion. The consumer does
// the chunking and embedding off the request path.
func (s *indexService) PublishDocument(ctx context.Context, request *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	msg := message.NewMessage(watermill.NewUUID(), []byte(request.Content))
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		return nil, err
	}

	s.logger.Info("index", "document queued for ingestion", map[string]interface{}{
		"message_id": msg.UUID,
		"bytes":      len(request.Content),
	})
	return &dto.IngestDocumentResponse{Accepted: true}, nil
}
