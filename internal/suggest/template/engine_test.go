package template

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotdown-app/jotdown/internal/linguistic"
)

func testEngine() *Engine {
	return NewEngine(linguistic.NewHeuristicAnalyzer(), Destinations{Task: "tasks", Note: "notes"})
}

func TestEngine_Classify_TaskSentence(t *testing.T) {
	engine := testEngine()

	got := engine.Classify(context.Background(), "今日までに資料を提出する")

	assert.Equal(t, TypeTask, got.Type)
	assert.Equal(t, "tasks", got.Destination)
	assert.True(t, got.IsConfident())
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestEngine_Classify_NoteSentence(t *testing.T) {
	engine := testEngine()

	got := engine.Classify(context.Background(), "これはいいアイデアかもしれない")

	assert.Equal(t, TypeNote, got.Type)
	assert.Equal(t, "notes", got.Destination)
	assert.True(t, got.IsConfident())
	// note 4.5 vs task 0.3: (4.5/4.8) * (4.5/5.0)
	assert.InDelta(t, 0.84375, got.Confidence, 1e-9)
}

func TestEngine_Classify_EnglishTask(t *testing.T) {
	engine := testEngine()

	got := engine.Classify(context.Background(), "submit the report by friday today")

	assert.Equal(t, TypeTask, got.Type)
	assert.True(t, got.IsConfident())
}

func TestEngine_Classify_ShortText(t *testing.T) {
	engine := testEngine()

	assert.True(t, engine.Classify(context.Background(), "買う").IsEmpty())
	assert.True(t, engine.Classify(context.Background(), "  あれ  ").IsEmpty())
}

func TestEngine_Classify_NoSignal(t *testing.T) {
	engine := testEngine()

	// Long enough to skip the short-text bonus, matches nothing.
	got := engine.Classify(context.Background(), strings.Repeat("あ", 35))
	assert.True(t, got.IsEmpty())
	assert.Zero(t, got.Confidence)
}

func TestEngine_Classify_BelowThreshold(t *testing.T) {
	engine := testEngine()

	// A lone question cue scores 1.0, under the 2.0 floor.
	got := engine.Classify(context.Background(), "どうしてこうなったのかな")
	assert.True(t, got.IsEmpty())
}

func TestEngine_Classify_ConfidenceBounds(t *testing.T) {
	engine := testEngine()
	texts := []string{
		"今日までに資料を提出する",
		"これはいいアイデアかもしれない",
		"submit the report by friday today",
		"明日会議の準備をする",
		"昨日の旅行は楽しかったと思った",
	}
	for _, text := range texts {
		got := engine.Classify(context.Background(), text)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, text)
		assert.LessOrEqual(t, got.Confidence, 1.0, text)
	}
}

func TestSuggestion_IsConfident(t *testing.T) {
	assert.False(t, Suggestion{Type: TypeNote, Confidence: 0.599}.IsConfident())
	assert.True(t, Suggestion{Type: TypeNote, Confidence: 0.6}.IsConfident())
	assert.True(t, Suggestion{Type: TypeTask, Confidence: 1.0}.IsConfident())
}

func TestSuggestion_Empty(t *testing.T) {
	empty := Empty()
	require.True(t, empty.IsEmpty())
	assert.Equal(t, TypeUnknown, empty.Type)
	assert.False(t, empty.IsConfident())
}

func TestDestinations_For(t *testing.T) {
	dests := Destinations{Task: "tasks", Note: "notes"}
	assert.Equal(t, "tasks", dests.For(TypeTask))
	assert.Equal(t, "notes", dests.For(TypeNote))
	assert.Equal(t, "notes", dests.For(TypeUnknown), "unknown defaults to the note sink")
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, PolicyOff, ParsePolicy("off"))
	assert.Equal(t, PolicySuggestOnly, ParsePolicy("suggestOnly"))
	assert.Equal(t, PolicyAutoSwitch, ParsePolicy("autoSwitch"))
	assert.Equal(t, PolicySuggestOnly, ParsePolicy(""))
	assert.Equal(t, PolicySuggestOnly, ParsePolicy("bogus"))
}
