// Package segment splits raw interaction text into cleaned sentence-like
// units, stripping speaker labels along the way.
package segment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/fieldscout/interactionintel/internal/models"
)

var (
	boundaryPattern = regexp.MustCompile(`[.!?\n]+`)
	speakerPattern  = regexp.MustCompile(`(?i)^(caller|agent|customer|rep|representative)\s*:\s*`)
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	linkPattern     = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks keeps only the anchor text of markdown links and drops
// bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// FlattenMarkdown renders markdown to plain text. Chat and form
// submissions regularly arrive with markdown formatting; call
// transcripts pass through unchanged apart from whitespace.
func FlattenMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := tagPattern.ReplaceAllString(string(output), " ")
	plain := strings.Join(strings.Fields(stripped), " ")
	return RemoveLinks(plain)
}

// Split breaks raw text into cleaned segments. Splitting happens on
// sentence terminators and newlines; each segment has its leading
// speaker label stripped and recorded. Short segments are still emitted;
// minimum-length filtering belongs to the classifiers.
func Split(text string) []models.Segment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var segments []models.Segment
	for _, raw := range boundaryPattern.Split(text, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		speaker := ""
		if loc := speakerPattern.FindStringSubmatchIndex(raw); loc != nil {
			speaker = strings.ToLower(raw[loc[2]:loc[3]])
			raw = strings.TrimSpace(raw[loc[1]:])
		}
		if raw == "" {
			continue
		}

		segments = append(segments, models.Segment{Text: raw, Speaker: speaker})
	}
	return segments
}

// SplitInteraction flattens markdown for chat and form sources, then
// splits. Call transcripts come from speech-to-text and never carry
// markdown, so they skip the render step.
func SplitInteraction(rec models.InteractionRecord) []models.Segment {
	text := rec.Text
	if rec.Source == models.SourceChat || rec.Source == models.SourceForm {
		text = FlattenMarkdown(text)
	}
	return Split(text)
}

// IsAgent reports whether a speaker label identifies the business side
// of the conversation.
func IsAgent(speaker string) bool {
	switch speaker {
	case "agent", "rep", "representative":
		return true
	}
	return false
}
