package linguistic

import (
	"context"
	"strings"
	"unicode"
)

// HeuristicAnalyzer is a dictionary-free part-of-speech counter for
// Japanese and English text. It segments the input into runs of a single
// script and classifies each run by suffix shape. The output is a rough
// signal, not a parse; it only needs to be deterministic for fixed input.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer returns an analyzer instance.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// Verb-ish endings of hiragana runs, longest first so the most specific
// inflection wins.
var verbEndings = []string{
	"しましょう", "してください", "しなければ", "します", "しました", "しよう",
	"される", "できる", "ました", "ません", "したい", "する", "した", "して",
	"やる", "いく", "くる", "ます",
}

// Adjective-ish endings of hiragana runs.
var adjectiveEndings = []string{
	"らしい", "っぽい", "やすい", "にくい", "しい", "いい", "よい", "すごい",
}

func (a *HeuristicAnalyzer) Analyze(ctx context.Context, text string) (Signal, error) {
	var signal Signal
	for _, run := range segment(text) {
		switch run.class {
		case classHan:
			signal.NounCount++
		case classKatakana:
			if len([]rune(run.text)) >= 2 {
				signal.NounCount++
			}
		case classHiragana:
			switch {
			case hasAnySuffix(run.text, verbEndings):
				signal.VerbCount++
			case hasAnySuffix(run.text, adjectiveEndings):
				signal.AdjectiveCount++
			}
		case classLatin:
			switch classifyLatin(strings.ToLower(run.text)) {
			case classLatinVerb:
				signal.VerbCount++
			case classLatinAdjective:
				signal.AdjectiveCount++
			case classLatinNoun:
				signal.NounCount++
			}
		}
	}
	return signal, nil
}

type runClass int

const (
	classOther runClass = iota
	classHan
	classHiragana
	classKatakana
	classLatin
)

type run struct {
	text  string
	class runClass
}

// segment splits text into maximal runs of a single script class.
func segment(text string) []run {
	var runs []run
	var current []rune
	currentClass := classOther

	flush := func() {
		if len(current) > 0 && currentClass != classOther {
			runs = append(runs, run{text: string(current), class: currentClass})
		}
		current = current[:0]
	}

	for _, r := range text {
		class := classify(r)
		if class != currentClass {
			flush()
			currentClass = class
		}
		current = append(current, r)
	}
	flush()
	return runs
}

func classify(r rune) runClass {
	switch {
	case unicode.In(r, unicode.Han):
		return classHan
	case unicode.In(r, unicode.Hiragana):
		return classHiragana
	case unicode.In(r, unicode.Katakana) || r == 'ー':
		return classKatakana
	case unicode.IsLetter(r) && r < 0x3000:
		return classLatin
	default:
		return classOther
	}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

type latinClass int

const (
	classLatinOther latinClass = iota
	classLatinVerb
	classLatinAdjective
	classLatinNoun
)

var latinVerbs = map[string]bool{
	"do": true, "make": true, "buy": true, "call": true, "send": true,
	"fix": true, "write": true, "finish": true, "submit": true, "go": true,
	"get": true, "check": true,
}

var latinAdjectives = map[string]bool{
	"good": true, "nice": true, "great": true, "bad": true, "happy": true,
	"sad": true, "big": true, "small": true,
}

func classifyLatin(token string) latinClass {
	switch {
	case latinVerbs[token]:
		return classLatinVerb
	case latinAdjectives[token]:
		return classLatinAdjective
	case strings.HasSuffix(token, "ing") || strings.HasSuffix(token, "ize"):
		return classLatinVerb
	case strings.HasSuffix(token, "ous") || strings.HasSuffix(token, "ful") ||
		strings.HasSuffix(token, "ive") || strings.HasSuffix(token, "able"):
		return classLatinAdjective
	case len(token) >= 3:
		return classLatinNoun
	default:
		return classLatinOther
	}
}

var _ Analyzer = (*HeuristicAnalyzer)(nil)
