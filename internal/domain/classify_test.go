package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_MLText(t *testing.T) {
	result := Classify("Looking for deep learning engineers with pytorch and nlp experience", nil)

	assert.Equal(t, "ml", result.Domain)
	assert.Greater(t, result.Score, 0.0)
}

func TestClassify_SkillsContribute(t *testing.T) {
	result := Classify("Analyst position", []string{"SQL", "Tableau", "Power BI"})

	assert.Equal(t, "data", result.Domain)
}

func TestClassify_NoMatchReturnsGeneral(t *testing.T) {
	result := Classify("We sell artisanal furniture across three showrooms", nil)

	assert.Equal(t, General, result.Domain)
	assert.Zero(t, result.Score)
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("tensorflow and firewall work", nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify("tensorflow and firewall work", nil))
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	result := Classify("", nil)

	assert.Equal(t, General, result.Domain)
}

func TestKeywords_KnownDomain(t *testing.T) {
	kws := Keywords("data")

	assert.Contains(t, kws, "sql")
	assert.Contains(t, kws, "tableau")
}

func TestKeywords_UnknownDomain(t *testing.T) {
	assert.Nil(t, Keywords("astrology"))
}
