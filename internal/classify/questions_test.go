package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/models"
	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

var roofingRecord = models.InteractionRecord{
	ID:     "call-1",
	Source: models.SourceCall,
}

func roofingClassifier() *QuestionClassifier {
	return NewQuestionClassifier(vocabulary.Resolve("roofing"))
}

func TestClassifyAcceptsCustomerQuestion(t *testing.T) {
	c := roofingClassifier()

	q, ok := c.Classify(models.Segment{Text: "How much does a new roof cost", Speaker: "caller"}, roofingRecord)

	require.True(t, ok)
	assert.Equal(t, "How much does a new roof cost?", q.Question, "question mark is appended")
	assert.Equal(t, models.SourceCall, q.Source)
	assert.Equal(t, "call-1", q.SourceID)
}

func TestClassifyKeepsExistingQuestionMark(t *testing.T) {
	c := roofingClassifier()

	q, ok := c.Classify(models.Segment{Text: "How much does a new roof cost?"}, roofingRecord)

	require.True(t, ok)
	assert.Equal(t, "How much does a new roof cost?", q.Question)
}

func TestClassifyGates(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"below length floor", "Roof cost?"},
		{"intake phrase excluded", "Can I get your phone number"},
		{"no question pattern", "I would like to talk about my roof please"},
		{"question but off topic", "Can you believe they lost the game again"},
		{"greeting excluded", "Hello how are you doing today"},
	}

	c := roofingClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.Classify(models.Segment{Text: tt.text}, roofingRecord)
			assert.False(t, ok)
		})
	}
}

func TestClassifyFallbackVocabularyStillMatchesUniversalTerms(t *testing.T) {
	// No industry: the union vocabulary plus universal keywords apply, so
	// a cost question still comes through.
	c := NewQuestionClassifier(vocabulary.Resolve(""))

	q, ok := c.Classify(models.Segment{Text: "How much does a new roof cost"}, roofingRecord)

	require.True(t, ok)
	assert.Equal(t, "How much does a new roof cost?", q.Question)
}

func TestClassifyDeterministic(t *testing.T) {
	c := roofingClassifier()
	seg := models.Segment{Text: "Do you offer roof inspections on weekends"}

	first, ok := c.Classify(seg, roofingRecord)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := c.Classify(seg, roofingRecord)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
