// Package template decides whether a memo reads as an actionable task or
// a reflective note, with a confidence-gated suggestion.
package template

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jotdown-app/jotdown/internal/linguistic"
)

// Scoring weights and thresholds. These are empirically chosen constants;
// they are a reproducibility contract, so keep them exactly as they are.
const (
	highKeywordWeight   = 2.5
	mediumKeywordWeight = 1.5
	actionVerbWeight    = 1.0
	dateTimeWeight      = 1.5

	verbSignalWeight      = 0.3
	adjectiveSignalWeight = 0.3
	nounOnlyBonus         = 0.5

	questionWeight    = 1.0
	exclamationWeight = 0.5

	longTextBonus   = 0.5
	shortTextBonus  = 0.3
	longTextLength  = 100
	shortTextLength = 30

	minTextLength  = 5
	minScore       = 2.0
	scoreNormalize = 5.0
)

// Destinations maps resolved types to external sinks. Unknown resolves to
// the note destination as a harmless default.
type Destinations struct {
	Task string
	Note string
}

// For returns the destination for a resolved type.
func (d Destinations) For(t Type) string {
	if t == TypeTask {
		return d.Task
	}
	return d.Note
}

// Engine scores text into a task/note classification. It is pure apart
// from the injected linguistic analyzer, which is itself a pure function
// of the text.
type Engine struct {
	analyzer linguistic.Analyzer
	dests    Destinations
}

// NewEngine creates a template scoring engine.
func NewEngine(analyzer linguistic.Analyzer, dests Destinations) *Engine {
	return &Engine{analyzer: analyzer, dests: dests}
}

// Classify scores the trimmed text and resolves a suggestion. Text
// shorter than five runes short-circuits to the empty suggestion.
func (e *Engine) Classify(ctx context.Context, text string) Suggestion {
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length < minTextLength {
		return Empty()
	}

	lower := strings.ToLower(trimmed)
	var taskScore, noteScore float64

	taskScore += countHits(lower, highTaskKeywords) * highKeywordWeight
	noteScore += countHits(lower, highNoteKeywords) * highKeywordWeight
	taskScore += countHits(lower, mediumTaskKeywords) * mediumKeywordWeight
	noteScore += countHits(lower, mediumNoteKeywords) * mediumKeywordWeight
	taskScore += countHits(lower, actionVerbKeywords) * actionVerbWeight
	taskScore += countHits(lower, dateTimeKeywords) * dateTimeWeight

	signal := linguistic.SafeAnalyze(ctx, e.analyzer, trimmed)
	if signal.VerbCount >= 2 {
		taskScore += verbSignalWeight * float64(signal.VerbCount)
	}
	if signal.AdjectiveCount >= 2 {
		noteScore += adjectiveSignalWeight * float64(signal.AdjectiveCount)
	}
	if signal.NounCount > 0 && signal.VerbCount == 0 {
		noteScore += nounOnlyBonus
	}

	if containsAny(lower, questionCues) {
		noteScore += questionWeight
	}
	if containsAny(lower, exclamationCues) {
		noteScore += exclamationWeight
	}

	if length > longTextLength {
		noteScore += longTextBonus
	}
	if length < shortTextLength {
		taskScore += shortTextBonus
	}

	if taskScore+noteScore == 0 {
		return Empty()
	}

	switch {
	case taskScore >= noteScore && taskScore >= minScore:
		return Suggestion{
			Type:        TypeTask,
			Confidence:  confidence(taskScore, taskScore+noteScore),
			Destination: e.dests.For(TypeTask),
		}
	case noteScore > taskScore && noteScore >= minScore:
		return Suggestion{
			Type:        TypeNote,
			Confidence:  confidence(noteScore, taskScore+noteScore),
			Destination: e.dests.For(TypeNote),
		}
	default:
		return Empty()
	}
}

// confidence combines the winner's share of the total with its absolute
// magnitude, capped at 1.
func confidence(winner, total float64) float64 {
	c := (winner / total) * (winner / scoreNormalize)
	if c > 1 {
		return 1
	}
	return c
}

func countHits(lower string, keywords []string) float64 {
	var hits float64
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			hits++
		}
	}
	return hits
}

func containsAny(lower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lower, strings.ToLower(cue)) {
			return true
		}
	}
	return false
}
