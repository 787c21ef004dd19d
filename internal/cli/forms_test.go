package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredits(t *testing.T) {
	assert.NoError(t, validateCredits(""))
	assert.NoError(t, validateCredits("18"))
	assert.NoError(t, validateCredits("16.5"))
	assert.Error(t, validateCredits("abc"))
	assert.Error(t, validateCredits("0"))
	assert.Error(t, validateCredits("-4"))
}

func TestParseCredits_FallsBackOnBadInput(t *testing.T) {
	assert.Equal(t, 18.0, parseCredits("18", 12))
	assert.Equal(t, 16.5, parseCredits(" 16.5 ", 12))
	assert.Equal(t, 12.0, parseCredits("", 12))
	assert.Equal(t, 12.0, parseCredits("junk", 12))
	assert.Equal(t, 12.0, parseCredits("-3", 12))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"systems", "ml"}, splitCSV("systems, ml"))
	assert.Equal(t, []string{"web"}, splitCSV(" web ,, "))
	assert.Nil(t, splitCSV(""))
	assert.Nil(t, splitCSV(" , "))
}
