package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

func TestMatchKeywords(t *testing.T) {
	vocab := vocabulary.Resolve("roofing")

	hits := MatchKeywords("What would a roof replacement cost after the storm damage", vocab)

	assert.Contains(t, hits, "roof")
	assert.Contains(t, hits, "cost")
	assert.Contains(t, hits, "storm damage")
}

func TestMatchServicesIndustryCatalog(t *testing.T) {
	vocab := vocabulary.Resolve("roofing")

	services := MatchServices("I want to schedule a roof inspection before winter", vocab)

	require.NotEmpty(t, services)
	assert.Equal(t, "Roof Inspection", services[0].ServiceLabel)
}

func TestMatchServicesGenericFallback(t *testing.T) {
	vocab := vocabulary.Resolve("roofing")

	services := MatchServices("I need my garage door repaired this week", vocab)

	require.NotEmpty(t, services)
	assert.Equal(t, "Garage Door", services[0].ServiceLabel)
}

func TestMatchServicesShortLabelsDropped(t *testing.T) {
	vocab := vocabulary.Resolve("automotive")

	// "ac" alone is too short to be a usable label.
	services := MatchServices("looking to get my ac fixed", vocab)
	for _, svc := range services {
		assert.Greater(t, len(svc.ServiceLabel), 3)
	}
}

func TestMatchServicesUnresolvedIndustryUsesEveryCatalog(t *testing.T) {
	vocab := vocabulary.Resolve("")

	services := MatchServices("my dog needs a teeth cleaning and the furnace needs a tune-up", vocab)

	var labels []string
	for _, svc := range services {
		labels = append(labels, svc.ServiceLabel)
	}
	assert.Contains(t, labels, "Teeth Cleaning")
}

func TestMatchServicesNoMatches(t *testing.T) {
	vocab := vocabulary.Resolve("roofing")
	assert.Empty(t, MatchServices("just wanted to say thanks for the great work", vocab))
}

func TestMatchServicesDeterministic(t *testing.T) {
	vocab := vocabulary.Resolve("")
	text := "need the drain cleaning done and a panel upgrade quoted"

	first := MatchServices(text, vocab)
	require.NotEmpty(t, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MatchServices(text, vocab))
	}
}
