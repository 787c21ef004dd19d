package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
}

func TestDecodeStrict_CleanJSON(t *testing.T) {
	raw := `{"verdict":"COMFORTABLE","confidence":0.95}`
	result, err := DecodeStrict[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "COMFORTABLE", result.Verdict)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestDecodeStrict_SurroundingWhitespaceForgiven(t *testing.T) {
	raw := "\n\n  {\"verdict\":\"DIFFICULT\",\"confidence\":0.7}  \n"
	result, err := DecodeStrict[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "DIFFICULT", result.Verdict)
}

func TestDecodeStrict_RejectsCodeFences(t *testing.T) {
	raw := "```json\n{\"verdict\":\"COMFORTABLE\",\"confidence\":0.88}\n```"
	_, err := DecodeStrict[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeStrict_RejectsLeadingProse(t *testing.T) {
	raw := "Here is my assessment:\n{\"verdict\":\"CHALLENGING\",\"confidence\":0.72}"
	_, err := DecodeStrict[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeStrict_RejectsTrailingText(t *testing.T) {
	raw := "{\"verdict\":\"COMFORTABLE\",\"confidence\":0.9}\nHope that helps!"
	_, err := DecodeStrict[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeStrict_RejectsEmptyResponse(t *testing.T) {
	_, err := DecodeStrict[testPayload]("   \n  ", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeStrict_RejectsMalformedJSON(t *testing.T) {
	raw := `{"verdict":"COMFORTABLE", broken}`
	_, err := DecodeStrict[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeStrict_NestedDocument(t *testing.T) {
	type nested struct {
		Verdict string            `json:"verdict"`
		Details map[string]string `json:"details"`
	}
	raw := `{"verdict":"COMFORTABLE","details":{"load":"even"}}`
	result, err := DecodeStrict[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "even", result.Details["load"])
}

func TestDecodeStrict_ValidationFailure(t *testing.T) {
	raw := `{"verdict":"COMFORTABLE","confidence":1.5}`
	validator := func(p *testPayload) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
		}
		return nil
	}
	_, err := DecodeStrict(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestDecodeStrict_ValidationSuccess(t *testing.T) {
	raw := `{"verdict":"TIGHT","confidence":0.9}`
	validator := func(p *testPayload) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence out of range")
		}
		return nil
	}
	result, err := DecodeStrict(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "TIGHT", result.Verdict)
}
