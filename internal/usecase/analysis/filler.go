package analysis

import (
	"strings"

	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// CountFillerWords counts non-overlapping, case-insensitive substring
// occurrences of each lexicon entry in the transcript. Entries that never
// occur are omitted from the result. Pure and deterministic: the mapping is
// independent of lexicon iteration order, and duplicate lexicon entries
// collapse onto one key.
func CountFillerWords(transcript string, lexicon []string) entities.FillerWordCounts {
	counts := make(entities.FillerWordCounts)
	if transcript == "" {
		return counts
	}

	folded := strings.ToLower(transcript)
	for _, token := range lexicon {
		key := strings.ToLower(strings.TrimSpace(token))
		if key == "" {
			continue
		}
		if n := strings.Count(folded, key); n > 0 {
			counts[key] = n
		}
	}
	return counts
}
