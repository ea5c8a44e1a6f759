package evaluation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	precisionPattern     = regexp.MustCompile(`(?i)Precis[aã]o.*?(\d+)`)
	coveragePattern      = regexp.MustCompile(`(?i)Cobertura.*?(\d+)`)
	recallPattern        = regexp.MustCompile(`(?i)Recall.*?(\d+)`)
	justificationPattern = regexp.MustCompile(`(?i)justificativa.*?:\s*(.+)`)
)

// Decode turns a raw grader reply into a Result. It first tries strict JSON
// and, when that fails, falls back to lexical extraction of the score lines.
// Every score is clamped to [0,10] at this boundary; a field the reply never
// mentions defaults to 0 or the empty string. Decode never fails.
func Decode(reply string, chunks []string) *Result {
	if result, ok := decodeStrict(reply, chunks); ok {
		return result
	}
	return decodeFallback(reply, chunks)
}

// gradedReply mirrors the JSON shape the prompt demands. Scores arrive as
// json.Number so that both 8 and 8.0 decode.
type gradedReply struct {
	Precision     json.Number      `json:"precisao"`
	Coverage      json.Number      `json:"cobertura"`
	RecallAt3     json.Number      `json:"recall3"`
	Justification string           `json:"justificativa"`
	Evidence      []EvidenceRecord `json:"evidencias"`
}

func decodeStrict(reply string, chunks []string) (*Result, bool) {
	dec := json.NewDecoder(strings.NewReader(reply))
	dec.UseNumber()

	var graded gradedReply
	if err := dec.Decode(&graded); err != nil {
		return nil, false
	}

	return &Result{
		Precision:     clampScore(numberToInt(graded.Precision)),
		Coverage:      clampScore(numberToInt(graded.Coverage)),
		RecallAt3:     clampScore(numberToInt(graded.RecallAt3)),
		Justification: strings.TrimSpace(graded.Justification),
		Evidence:      graded.Evidence,
		SourceChunks:  chunks,
	}, true
}

func decodeFallback(reply string, chunks []string) *Result {
	result := &Result{
		Evidence:     []EvidenceRecord{},
		SourceChunks: chunks,
	}

	if m := precisionPattern.FindStringSubmatch(reply); m != nil {
		result.Precision = clampScore(atoiOrZero(m[1]))
	}
	if m := coveragePattern.FindStringSubmatch(reply); m != nil {
		result.Coverage = clampScore(atoiOrZero(m[1]))
	}
	if m := recallPattern.FindStringSubmatch(reply); m != nil {
		result.RecallAt3 = clampScore(atoiOrZero(m[1]))
	}
	if m := justificationPattern.FindStringSubmatch(reply); m != nil {
		result.Justification = strings.TrimSpace(m[1])
	}

	return result
}

func numberToInt(n json.Number) int {
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return int(f)
	}
	return 0
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
