package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
)

func TestNormalizeName_CaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, entity.NormalizeName("foo bar"), entity.NormalizeName("Foo, Bar."))
}

func TestNormalizeName_Idempotent(t *testing.T) {
	for _, name := range []string{
		"Foo, Bar.",
		"Отходы бумаги (несортированные)",
		"  spaced\tout  ",
		"",
	} {
		once := entity.NormalizeName(name)
		assert.Equal(t, once, entity.NormalizeName(once), "normalize(%q) must be idempotent", name)
	}
}

func TestNormalizeName_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "foo bar", entity.NormalizeName("  Foo \t Bar  "))
}

func TestNormalizeName_StripsDiacritics(t *testing.T) {
	assert.Equal(t, entity.NormalizeName("Ежи"), entity.NormalizeName("Ёжи"))
}

func TestNormalizeFKKOCode_StripsSpaces(t *testing.T) {
	assert.Equal(t, "40518301605", entity.NormalizeFKKOCode("4 05 183 01 60 5"))
}

func TestValidateFKKOCode(t *testing.T) {
	valid := []string{"4 05 183 01 60 5", "123", " 1 ", "0"}
	for _, code := range valid {
		assert.True(t, entity.ValidateFKKOCode(code), "code %q must be valid", code)
	}

	invalid := []string{"", "a123", "1-2-3", "1.2", "12a", "код"}
	for _, code := range invalid {
		assert.False(t, entity.ValidateFKKOCode(code), "code %q must be invalid", code)
	}
}

func TestNewWaste_DerivesNormalizedFields(t *testing.T) {
	w := entity.NewWaste("id-1", "Бумага, картон.", "4 05 183 01 60 5")
	assert.Equal(t, entity.NormalizeName("бумага картон"), w.NormalizedName)
	assert.Equal(t, "40518301605", w.NormalizedCode)

	w.Recode("1 11")
	assert.Equal(t, "111", w.NormalizedCode)
	w.Rename("Новое Имя")
	assert.Equal(t, entity.NormalizeName("новое имя"), w.NormalizedName)
}
