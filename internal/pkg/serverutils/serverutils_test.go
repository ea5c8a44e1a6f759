package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Question string `validate:"required,min=1"`
	Limit    int    `validate:"omitempty,min=1"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(sampleRequest{Question: "qual o limite?", Limit: 5})
	assert.NoError(t, err)
}

func TestValidateRequestReportsFields(t *testing.T) {
	err := ValidateRequest(sampleRequest{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Question")
	assert.Contains(t, err.Error(), "required")
}

func TestValidateRequestFlattensMultipleFailures(t *testing.T) {
	err := ValidateRequest(sampleRequest{Question: "", Limit: -1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Question")
	assert.Contains(t, err.Error(), "Limit")
}

func TestResponseEnvelopes(t *testing.T) {
	ok := SuccessResponse("done", map[string]string{"k": "v"})
	assert.Equal(t, 200, ok.Code)
	assert.Equal(t, "success", ok.Status)
	assert.Equal(t, "done", ok.Message)

	bad := ErrorResponse(422, "validation failed")
	assert.Equal(t, 422, bad.Code)
	assert.Equal(t, "error", bad.Status)
	assert.Nil(t, bad.Data)
}
