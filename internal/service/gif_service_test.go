package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeQuery(t *testing.T) {
	q := sanitizeQuery("frações", "Matemática")
	assert.Contains(t, q, "frações")
	assert.Contains(t, q, "mathematics education")
	assert.Contains(t, q, "educational animated")
}

func TestSanitizeQuery_StripsBlockedTerms(t *testing.T) {
	q := sanitizeQuery("violence in chemistry", "Química")
	assert.NotContains(t, q, "violence")
	assert.Contains(t, q, "chemistry science education")
}

func TestSanitizeQuery_UnknownSubject(t *testing.T) {
	q := sanitizeQuery("história do brasil", "História")
	assert.Contains(t, q, "education learning")
}

func TestIsSafeContent(t *testing.T) {
	assert.True(t, isSafeContent("Math explained", "fun educational gif", []string{"math", "school"}))
	assert.False(t, isSafeContent("Fight scene", "", nil))
	assert.False(t, isSafeContent("ok title", "nsfw description", nil))
	assert.False(t, isSafeContent("ok", "", []string{"beer"}))
}
