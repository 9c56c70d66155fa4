package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mshagov/ecooffer-api/pkg/password"
)

func TestGenerate_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, password.Generate())
}

func TestGenerate_Differs(t *testing.T) {
	// Two consecutive generations must differ with overwhelming probability.
	assert.NotEqual(t, password.Generate(), password.Generate())
}

func TestGenerateN_Length(t *testing.T) {
	// 9 random bytes encode to 12 URL-safe characters.
	assert.Len(t, password.GenerateN(9), 12)
}

func TestGenerateN_NonPositiveFallsBack(t *testing.T) {
	assert.NotEmpty(t, password.GenerateN(0))
	assert.NotEmpty(t, password.GenerateN(-3))
}
