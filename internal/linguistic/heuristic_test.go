package linguistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Signal
	}{
		{
			name: "empty text",
			text: "",
			want: Signal{},
		},
		{
			name: "japanese task sentence",
			text: "資料を提出する",
			want: Signal{VerbCount: 1, NounCount: 2},
		},
		{
			name: "hiragana adjective ending",
			text: "これはいい",
			want: Signal{AdjectiveCount: 1},
		},
		{
			name: "katakana run counts as noun",
			text: "ミーティング",
			want: Signal{NounCount: 1},
		},
		{
			name: "single katakana rune ignored",
			text: "ア",
			want: Signal{},
		},
		{
			name: "polite verb inflection",
			text: "買いました",
			want: Signal{VerbCount: 1, NounCount: 1},
		},
		{
			name: "english mixed",
			text: "buy a nice gift",
			want: Signal{VerbCount: 1, NounCount: 1, AdjectiveCount: 1},
		},
		{
			name: "english suffix rules",
			text: "writing useful notes",
			want: Signal{VerbCount: 1, NounCount: 1, AdjectiveCount: 1},
		},
		{
			name: "punctuation only",
			text: "！？…",
			want: Signal{},
		},
	}

	analyzer := NewHeuristicAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analyzer.Analyze(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeuristicAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewHeuristicAnalyzer()
	first, err := analyzer.Analyze(context.Background(), "明日までに資料を書く")
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), "明日までに資料を書く")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(ctx context.Context, text string) (Signal, error) {
	return Signal{VerbCount: 9}, errors.New("analyzer unavailable")
}

func TestSafeAnalyze(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Signal{}, SafeAnalyze(ctx, nil, "text"))
	assert.Equal(t, Signal{}, SafeAnalyze(ctx, failingAnalyzer{}, "text"))
	assert.Equal(t, Signal{}, SafeAnalyze(ctx, NoopAnalyzer{}, "なにか"))

	got := SafeAnalyze(ctx, NewHeuristicAnalyzer(), "資料を提出する")
	assert.Equal(t, Signal{VerbCount: 1, NounCount: 2}, got)
}
