// Package textanalysis implements the deterministic text heuristics used by
// the deck composer: topic classification, keyword extraction and bullet
// formatting.
package textanalysis

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/dtroode/deckhub-server/internal/model"
)

type topicRule struct {
	topic    model.Topic
	keywords []string
}

// Rules are checked in order; the first matching topic wins.
var topicRules = []topicRule{
	{model.TopicBusiness, []string{"business", "company", "profit", "market"}},
	{model.TopicTechnology, []string{"tech", "code", "software", "digital"}},
	{model.TopicEducation, []string{"school", "learn", "student", "teach"}},
	{model.TopicMarketing, []string{"market", "brand", "advertis", "campaign"}},
	{model.TopicNature, []string{"nature", "environment", "planet", "green"}},
	{model.TopicHealth, []string{"health", "medical", "wellness", "fitness"}},
}

// ClassifyTopic returns the topic of text by case-insensitive substring match.
// Text matching no rule is classified as general.
func ClassifyTopic(text string) model.Topic {
	folded := cases.Fold().String(text)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.topic
			}
		}
	}
	return model.TopicGeneral
}

// Topics lists every topic label ClassifyTopic can return.
func Topics() []model.Topic {
	out := make([]model.Topic, 0, len(topicRules)+1)
	for _, rule := range topicRules {
		out = append(out, rule.topic)
	}
	return append(out, model.TopicGeneral)
}
