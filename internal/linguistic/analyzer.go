// Package linguistic provides part-of-speech signal counts for the
// scoring engines. The analyzer is a soft dependency: scoring degrades to
// zero counts when it is unavailable, it never fails the pipeline.
package linguistic

import "context"

// Signal holds token counts by lexical category for a span of text.
type Signal struct {
	VerbCount      int
	NounCount      int
	AdjectiveCount int
}

// Analyzer counts tokens by lexical category over a fixed tokenization.
// Implementations must be pure functions of the text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Signal, error)
}

// NoopAnalyzer reports zero counts, for locales without analyzer support.
type NoopAnalyzer struct{}

// Analyze returns all-zero counts.
func (NoopAnalyzer) Analyze(ctx context.Context, text string) (Signal, error) {
	return Signal{}, nil
}

// SafeAnalyze runs the analyzer and maps any failure (nil analyzer,
// returned error) to zero counts.
func SafeAnalyze(ctx context.Context, analyzer Analyzer, text string) Signal {
	if analyzer == nil {
		return Signal{}
	}
	signal, err := analyzer.Analyze(ctx, text)
	if err != nil {
		return Signal{}
	}
	return signal
}
