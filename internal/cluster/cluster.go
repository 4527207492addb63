// Package cluster groups aggregated questions into topic buckets and
// synthesizes a suggested title and outline per bucket.
package cluster

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fieldscout/interactionintel/internal/models"
)

// MinClusterSize is the membership floor: a bucket with a single
// question never becomes a cluster.
const MinClusterSize = 2

const maxOutlineQuestions = 7

// topicBucket defines one topic by its keyword set and title template.
// Declaration order matters: a question joins the first bucket that
// matches.
type topicBucket struct {
	label    string
	keywords []string
	template string
}

var topicBuckets = []topicBucket{
	{
		label:    "cost",
		keywords: []string{"cost", "price", "how much", "charge", "fee", "expensive", "afford"},
		template: "How Much Does {Service} Cost? Complete Pricing Guide",
	},
	{
		label:    "time",
		keywords: []string{"how long", "when", "time", "duration", "wait", "schedule"},
		template: "How Long Does {Service} Take? Timeline & What to Expect",
	},
	{
		label:    "process",
		keywords: []string{"how do", "how does", "process", "steps", "what happens"},
		template: "How {Service} Works: Step-by-Step Guide",
	},
	{
		label:    "comparison",
		keywords: []string{"difference", "better", "vs", "compare", "should i"},
		template: "{Service} Options Compared: Which Is Right for You?",
	},
	{
		label:    "emergency",
		keywords: []string{"emergency", "urgent", "asap", "immediately", "broken"},
		template: "Emergency {Service}: What to Do When Things Go Wrong",
	},
	{
		label:    "warranty",
		keywords: []string{"warranty", "guarantee", "coverage", "insurance"},
		template: "{Service} Warranty Guide: What's Covered & What's Not",
	},
	{
		label:    "maintenance",
		keywords: []string{"maintenance", "prevent", "avoid", "care", "last"},
		template: "{Service} Maintenance Tips to Save Money & Extend Lifespan",
	},
}

var titleStopwords = map[string]bool{
	"about": true, "would": true, "could": true, "should": true,
	"there": true, "where": true, "which": true, "doesn't": true,
}

// Cluster assigns each aggregated question to the first matching topic
// bucket. Buckets with fewer than MinClusterSize members are dropped;
// unmatched questions are simply not clustered and stay visible in the
// raw top-questions list.
func Cluster(questions []models.AggregatedInsight) []models.TopicCluster {
	members := make(map[string][]string, len(topicBuckets))

	for _, q := range questions {
		lower := strings.ToLower(q.Item)
		for _, bucket := range topicBuckets {
			if matchesBucket(lower, bucket) {
				members[bucket.label] = append(members[bucket.label], q.Item)
				break
			}
		}
	}

	var clusters []models.TopicCluster
	for _, bucket := range topicBuckets {
		qs := members[bucket.label]
		if len(qs) < MinClusterSize {
			continue
		}
		clusters = append(clusters, models.TopicCluster{
			TopicLabel:     bucket.label,
			Questions:      qs,
			Keywords:       append([]string(nil), bucket.keywords...),
			SuggestedTitle: buildTitle(bucket, qs),
			Outline:        buildOutline(bucket.label, qs),
		})
	}
	return clusters
}

func matchesBucket(lowerQuestion string, bucket topicBucket) bool {
	for _, kw := range bucket.keywords {
		if strings.Contains(lowerQuestion, kw) {
			return true
		}
	}
	return false
}

// buildTitle fills the bucket's template with the first sufficiently
// long non-stopword token found across the member questions, falling
// back to a generic placeholder.
func buildTitle(bucket topicBucket, questions []string) string {
	service := "Service"

	found := false
	for _, q := range questions {
		for _, word := range strings.Fields(q) {
			word = strings.Trim(word, "?.,!\"'")
			if len(word) > 4 && !titleStopwords[strings.ToLower(word)] {
				service = cases.Title(language.English).String(strings.ToLower(word))
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	return strings.ReplaceAll(bucket.template, "{Service}", service)
}

func buildOutline(label string, questions []string) []string {
	outline := []string{
		fmt.Sprintf("Introduction: Why %s Questions Matter", cases.Title(language.English).String(label)),
	}

	for i, q := range questions {
		if i >= maxOutlineQuestions {
			break
		}
		outline = append(outline, "H2: "+q)
	}

	outline = append(outline,
		"H2: Key Takeaways",
		"H2: When to Call a Professional",
		"Conclusion & Call to Action",
	)
	return outline
}
