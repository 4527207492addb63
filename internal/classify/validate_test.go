package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

func TestValidateTables(t *testing.T) {
	assert.NoError(t, ValidateTables(vocabulary.UniversalKeywords()))
}

func TestValidateTablesFlagsUnreviewedOverlap(t *testing.T) {
	// An exclusion phrase containing a relevance keyword must be declared
	// in the allowlist.
	err := ValidateTables([]string{"get your name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get your name")
}

func TestExclusionAllowlistEntriesExist(t *testing.T) {
	phrases := make(map[string]bool, len(excludedQuestionPhrases))
	for _, p := range excludedQuestionPhrases {
		phrases[p] = true
	}

	for allowed := range exclusionOverlapAllowlist {
		assert.True(t, phrases[allowed],
			"allowlist entry %q is not an exclusion phrase", allowed)
	}
}
