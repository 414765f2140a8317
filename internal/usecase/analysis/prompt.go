package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// FeedbackInput carries everything the feedback stage embeds into its prompt
type FeedbackInput struct {
	Transcript   string
	Emotions     entities.EmotionAnalysis
	FillerWords  entities.FillerWordCounts
	SlideContext string
}

// BuildFeedbackPrompt assembles the single coaching prompt sent to the
// generative model. Scores are embedded raw, not rounded.
func BuildFeedbackPrompt(in FeedbackInput) string {
	var sb strings.Builder

	sb.WriteString("You are an expert speaking coach. Analyze the speaker's presentation based on the data below.\n\n")

	if in.SlideContext != "" {
		sb.WriteString("Slide content:\n")
		sb.WriteString(in.SlideContext)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Speech transcript:\n")
	sb.WriteString(in.Transcript)
	sb.WriteString("\n\n")

	sb.WriteString("Vocal emotion analysis:\n")
	sb.WriteString("Dominant emotions: ")
	for i, e := range in.Emotions.Dominant {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s (%s)", e.Name, formatScore(e.Score))
	}
	sb.WriteString("\nAll emotion scores:\n")
	for _, e := range in.Emotions.Emotions {
		fmt.Fprintf(&sb, "- %s: %s\n", e.Name, formatScore(e.Score))
	}
	sb.WriteString("\n")

	sb.WriteString("Filler words detected:\n")
	if len(in.FillerWords) == 0 {
		sb.WriteString("none\n")
	} else {
		for _, word := range sortedKeys(in.FillerWords) {
			fmt.Fprintf(&sb, "- %q: %d\n", word, in.FillerWords[word])
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Provide:\n")
	sb.WriteString("1. An assessment of the overall delivery and emotional tone\n")
	sb.WriteString("2. Specific feedback on each detected filler word\n")
	sb.WriteString("3. Actionable suggestions for improvement\n")
	sb.WriteString("4. At least two practice exercises the speaker can do\n\n")
	sb.WriteString("Format your response with clear sections and actionable feedback.\n")

	return sb.String()
}

// formatScore renders the raw float without rounding
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}

// sortedKeys gives the filler mapping a stable order inside the prompt
func sortedKeys(counts entities.FillerWordCounts) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
