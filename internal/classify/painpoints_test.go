package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/models"
)

var chatRecord = models.InteractionRecord{ID: "chat-1", Source: models.SourceChat}

func TestClassifyPainPointAccepts(t *testing.T) {
	p, ok := ClassifyPainPoint(models.Segment{
		Text:    "My water heater stopped working last night",
		Speaker: "caller",
	}, chatRecord)

	require.True(t, ok)
	assert.Equal(t, "My water heater stopped working last night", p.Description)
	assert.Equal(t, models.SourceChat, p.Source)
}

func TestClassifyPainPointRejects(t *testing.T) {
	tests := []struct {
		name    string
		segment models.Segment
	}{
		{
			"agent speech by label",
			models.Segment{Text: "I understand the problem with your furnace there", Speaker: "agent"},
		},
		{
			"agent speech by canned greeting",
			models.Segment{Text: "Thank you for calling, we can fix that problem"},
		},
		{
			"below length floor",
			models.Segment{Text: "It is broken now"},
		},
		{
			"above length ceiling",
			models.Segment{Text: "The problem is " + strings.Repeat("really ", 25) + "bad"},
		},
		{
			"irrelevant domain",
			models.Segment{Text: "I am worried about my custody hearing next week"},
		},
		{
			"no pain indicator",
			models.Segment{Text: "I was calling to ask about your opening hours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ClassifyPainPoint(tt.segment, chatRecord)
			assert.False(t, ok)
		})
	}
}

func TestClassifyPainPointIndicators(t *testing.T) {
	tests := []string{
		"The air conditioner is making a loud noise upstairs",
		"We have been waiting three weeks for someone to call back",
		"This repair quote seems way too expensive for the work",
		"There is water leaking through the kitchen ceiling",
		"I need someone out here immediately, this is an emergency",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			p, ok := ClassifyPainPoint(models.Segment{Text: text, Speaker: "caller"}, chatRecord)
			require.True(t, ok)
			assert.Equal(t, text, p.Description)
		})
	}
}
