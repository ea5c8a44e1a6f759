package evaluation

import (
	"errors"
	"math"
)

// ErrEmptyBatch is returned when aggregation is asked about zero results.
var ErrEmptyBatch = errors.New("evaluation: cannot aggregate an empty batch")

// BatchSummary holds the arithmetic means of a batch, rounded to 2 decimals.
type BatchSummary struct {
	MeanPrecision float64 `json:"mediaPrecisao"`
	MeanCoverage  float64 `json:"mediaCobertura"`
	MeanRecallAt3 float64 `json:"mediaRecall"`
}

// Aggregate averages the scores of a non-empty batch. A singleton batch
// returns its own scores unchanged.
func Aggregate(results []Result) (*BatchSummary, error) {
	if len(results) == 0 {
		return nil, ErrEmptyBatch
	}

	var precision, coverage, recall float64
	for _, r := range results {
		precision += float64(r.Precision)
		coverage += float64(r.Coverage)
		recall += float64(r.RecallAt3)
	}

	n := float64(len(results))
	return &BatchSummary{
		MeanPrecision: round2(precision / n),
		MeanCoverage:  round2(coverage / n),
		MeanRecallAt3: round2(recall / n),
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
