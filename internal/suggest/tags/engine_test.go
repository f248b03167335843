package tags

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
)

func names(tags []domain.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.Name)
	}
	return out
}

func TestEngine_Score_PolicyOff(t *testing.T) {
	engine := NewEngine()
	got := engine.Score(Input{Text: "会議の資料", Policy: PolicyOff})
	assert.Nil(t, got)
}

func TestEngine_Score_EmptyText(t *testing.T) {
	engine := NewEngine()
	assert.Nil(t, engine.Score(Input{Text: "", Policy: PolicySuggestOnly}))
	assert.Nil(t, engine.Score(Input{Text: "   \n\t", Policy: PolicySuggestOnly}))
}

func TestEngine_Score_PresetNameAndDetector(t *testing.T) {
	engine := NewEngine()
	preset := domain.Tag{ID: uuid.New(), Name: "買い物", State: domain.TagStateSuggested}

	got := engine.Score(Input{
		Text:    "買い物",
		Presets: []domain.Tag{preset},
		Policy:  PolicySuggestOnly,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "買い物", got[0].Name)
	assert.Equal(t, preset.ID, got[0].ID, "candidate reuses the preset identity")
	assert.Equal(t, domain.TagStateSuggested, got[0].State)
}

func TestEngine_Score_CapsCandidates(t *testing.T) {
	engine := NewEngine()

	got := engine.Score(Input{
		Text:   "会議 ランチ ジム 勉強 旅行 アイデア ?",
		Policy: PolicySuggestOnly,
	})

	require.Len(t, got, MaxCandidates)
	// アイデア gets keyword plus detector weight; the keyword-only ties
	// sort by name.
	assert.Equal(t, []string{"アイデア", "仕事", "健康", "勉強", "旅行"}, names(got))
}

func TestEngine_Score_DetectorFiresOnce(t *testing.T) {
	engine := NewEngine()

	// なぜ and だろうか are both question cues; the detector still
	// contributes a single hit, so the only candidate stays below the
	// combined weight.
	got := engine.Score(Input{
		Text:   "これはなぜだろうか",
		Policy: PolicySuggestOnly,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "質問", got[0].Name)
	assert.NotEqual(t, uuid.Nil, got[0].ID, "unknown tags are minted with a fresh identity")
}

func TestEngine_Score_ExcludesAdoptedAndDismissed(t *testing.T) {
	engine := NewEngine()

	got := engine.Score(Input{
		Text:      "会議",
		Dismissed: map[string]bool{"仕事": true},
		Policy:    PolicySuggestOnly,
	})
	assert.Empty(t, got)

	got = engine.Score(Input{
		Text:    "会議",
		Adopted: map[string]bool{"仕事": true},
		Policy:  PolicySuggestOnly,
	})
	assert.Empty(t, got)
}

func TestEngine_Score_FallbackTopRanked(t *testing.T) {
	engine := NewEngine()
	top := domain.Tag{ID: uuid.New(), Name: "散歩Tag", State: domain.TagStateAdopted, UsageCount: 4}

	got := engine.Score(Input{
		Text:   "あれこれそれ",
		Ranked: []domain.Tag{top},
		Policy: PolicySuggestOnly,
	})

	require.Len(t, got, 1)
	assert.Equal(t, top.ID, got[0].ID)
}

func TestEngine_Score_FallbackGeneric(t *testing.T) {
	engine := NewEngine()

	got := engine.Score(Input{
		Text:   "あれこれそれどれこれあれ",
		Policy: PolicySuggestOnly,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "メモ", got[0].Name)
}

func TestEngine_Score_ShortTextNoFallback(t *testing.T) {
	engine := NewEngine()
	top := domain.Tag{ID: uuid.New(), Name: "散歩", UsageCount: 4}

	got := engine.Score(Input{
		Text:   "あれ",
		Ranked: []domain.Tag{top},
		Policy: PolicySuggestOnly,
	})
	assert.Empty(t, got)
}

func TestEngine_Score_PriorityBoostsRank(t *testing.T) {
	engine := NewEngine()
	eats := domain.Tag{ID: uuid.New(), Name: "食事", State: domain.TagStateAdopted, UsageCount: 2}

	got := engine.Score(Input{
		Text:   "会議 ランチ",
		Ranked: []domain.Tag{eats},
		Policy: PolicySuggestOnly,
	})

	require.Len(t, got, 2)
	assert.Equal(t, "食事", got[0].Name, "usage history outranks an equal keyword score")
	assert.Equal(t, "仕事", got[1].Name)
	assert.Equal(t, eats.ID, got[0].ID)
}

func TestEngine_Score_AutoAdoptState(t *testing.T) {
	engine := NewEngine()

	got := engine.Score(Input{Text: "会議", Policy: PolicyAutoAdopt})
	require.Len(t, got, 1)
	assert.Equal(t, domain.TagStateAdopted, got[0].State)
}
