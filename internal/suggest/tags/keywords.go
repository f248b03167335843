package tags

// keywordTag maps a content keyword to the tag it evidences.
type keywordTag struct {
	keyword string
	tag     string
}

// staticLexicon is the fixed keyword→tag mapping. Matching is
// case-insensitive substring containment.
var staticLexicon = []keywordTag{
	{"会議", "仕事"},
	{"ミーティング", "仕事"},
	{"打ち合わせ", "仕事"},
	{"資料", "仕事"},
	{"締切", "仕事"},
	{"納期", "仕事"},
	{"meeting", "仕事"},
	{"deadline", "仕事"},

	{"買う", "買い物"},
	{"スーパー", "買い物"},
	{"コンビニ", "買い物"},
	{"牛乳", "買い物"},
	{"注文", "買い物"},
	{"grocery", "買い物"},

	{"ランチ", "食事"},
	{"ディナー", "食事"},
	{"レシピ", "食事"},
	{"食べ", "食事"},
	{"飲み", "食事"},
	{"restaurant", "食事"},

	{"ジム", "健康"},
	{"運動", "健康"},
	{"散歩", "健康"},
	{"睡眠", "健康"},
	{"薬", "健康"},

	{"勉強", "勉強"},
	{"読書", "勉強"},
	{"講座", "勉強"},
	{"試験", "勉強"},

	{"旅行", "旅行"},
	{"ホテル", "旅行"},
	{"飛行機", "旅行"},
	{"新幹線", "旅行"},

	{"アイデア", "アイデア"},
	{"ひらめ", "アイデア"},
	{"思いつ", "アイデア"},
}

// detector is a cue-set pattern that contributes one weighted hit to its
// tag no matter how many of its cues match.
type detector struct {
	tag    string
	weight int
	cues   []string
}

var detectors = []detector{
	{tag: "質問", weight: questionWeight, cues: []string{
		"?", "？", "かな", "だろうか", "でしょうか", "なぜ", "どうして", "how", "why", "what",
	}},
	{tag: "食事", weight: foodWeight, cues: []string{
		"食べたい", "お腹", "ごはん", "ご飯", "カフェ", "lunch", "dinner",
	}},
	{tag: "仕事", weight: taskCueWeight, cues: []string{
		"やること", "タスク", "対応", "提出", "申請", "todo", "task",
	}},
	{tag: "買い物", weight: shoppingWeight, cues: []string{
		"買い物", "購入", "ポチ", "セール", "buy", "order",
	}},
	{tag: "アイデア", weight: ideaWeight, cues: []string{
		"かもしれない", "いいかも", "アイデア", "ひらめいた", "思った", "idea",
	}},
}
