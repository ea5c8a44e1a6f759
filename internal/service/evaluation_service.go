package service

import (
	"context"

	"rag-support-be/internal/dto"
	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/rag/evaluation"
	"rag-support-be/pkg/rag/retrieval"
	"rag-support-be/pkg/rag/synthesis"
	"rag-support-be/pkg/store"
)

// batchRetrievalTopK is the unfiltered evidence pull for pre-answered pairs.
// Larger than the recall floor to cut false negatives during grading.
const batchRetrievalTopK = 5

// IEvaluationService grades answers against retrieved evidence.
type IEvaluationService interface {
	AskAndEvaluate(ctx context.Context, request *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error)
	EvaluateBatch(ctx context.Context, request *dto.BatchEvaluationRequest) (*dto.BatchEvaluationResponse, error)
}

type evaluationService struct {
	synthesizer *synthesis.Synthesizer
	retriever   *retrieval.Engine
	grader      *evaluation.Engine
	logger      logger.ILogger
}

var _ IEvaluationService = &evaluationService{}

func NewEvaluationService(
	synthesizer *synthesis.Synthesizer,
	retriever *retrieval.Engine,
	grader *evaluation.Engine,
	log logger.ILogger,
) IEvaluationService {
	return &evaluationService{
		synthesizer: synthesizer,
		retriever:   retriever,
		grader:      grader,
		logger:      log,
	}
}

// AskAndEvaluate answers the question single-shot and grades the answer
// against the very chunks the prompt was built from.
func (s *evaluationService) AskAndEvaluate(ctx context.Context, request *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error) {
	result, err := s.synthesizer.AnswerSingleShot(ctx, request.Question)
	if err != nil {
		return nil, err
	}

	grading, err := s.grader.Evaluate(ctx, request.Question, result.Answer, chunkContents(result.Evidence))
	if err != nil {
		return nil, err
	}

	return &dto.AskQuestionResponse{
		Category: result.Category,
		Answer:   result.Answer,
		Sources:  result.Evidence,
		Grading:  grading,
	}, nil
}

// EvaluateBatch grades pre-answered question/answer pairs. Each pair gets a
// fresh unfiltered retrieval so the grader always sees evidence, then the
// scores are averaged across the batch.
func (s *evaluationService) EvaluateBatch(ctx context.Context, request *dto.BatchEvaluationRequest) (*dto.BatchEvaluationResponse, error) {
	items := make([]dto.BatchEvaluationItem, 0, len(request.Evaluations))
	results := make([]evaluation.Result, 0, len(request.Evaluations))

	for _, input := range request.Evaluations {
		chunks, err := s.retriever.Retrieve(ctx, input.Question, "", batchRetrievalTopK,
			retrieval.WithMinResults(retrieval.MinEvidenceForRecall))
		if err != nil {
			return nil, err
		}

		grading, err := s.grader.Evaluate(ctx, input.Question, input.Answer, chunkContents(chunks))
		if err != nil {
			return nil, err
		}

		items = append(items, dto.BatchEvaluationItem{
			Question:      input.Question,
			Answer:        input.Answer,
			Precision:     grading.Precision,
			Coverage:      grading.Coverage,
			RecallAt3:     grading.RecallAt3,
			Justification: grading.Justification,
			Sources:       grading.SourceChunks,
		})
		results = append(results, *grading)
	}

	summary, err := evaluation.Aggregate(results)
	if err != nil {
		return nil, err
	}

	s.logger.Info("evaluation", "batch graded", map[string]interface{}{
		"batch_size":     len(items),
		"media_precisao": summary.MeanPrecision,
	})

	return &dto.BatchEvaluationResponse{
		Metrics:     summary,
		Evaluations: items,
	}, nil
}

func chunkContents(chunks []store.EvidenceChunk) []string {
	contents := make([]string, len(chunks))
	for i, c := range chunks {
		contents[i] = c.Content
	}
	return contents
}
