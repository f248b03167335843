package template

// Keyword tiers for the task/note accumulators. Matching is
// case-insensitive substring containment; each keyword contributes its
// tier weight once per evaluation.

var highTaskKeywords = []string{
	"締切", "〆切", "期限", "提出", "予約", "支払", "申し込", "忘れずに",
	"todo", "deadline", "submit", "due",
}

var highNoteKeywords = []string{
	"と思った", "日記", "気持ち", "思い出", "振り返り",
	"diary", "journal", "felt",
}

var mediumTaskKeywords = []string{
	"買う", "行く", "連絡", "電話", "確認", "準備", "予定", "会議", "打ち合わせ",
	"meeting", "call", "buy", "fix", "check",
}

var mediumNoteKeywords = []string{
	"かもしれない", "アイデア", "思う", "感想", "メモ", "よかった", "楽しかった", "疲れた",
	"idea", "maybe", "note",
}

var actionVerbKeywords = []string{
	"する", "やる", "書く", "読む", "送る", "作る", "調べる", "片付ける", "終わらせる",
	"出す", "届ける",
}

var dateTimeKeywords = []string{
	"今日", "明日", "明後日", "今週", "来週", "今月", "来月", "までに",
	"月曜", "火曜", "水曜", "木曜", "金曜", "土曜", "日曜",
	"午前", "午後", "時まで",
	"today", "tomorrow", "tonight", "by friday", "by monday",
}

// Sentence-form cues. Question cues add to the note accumulator;
// exclamatory cues add a smaller note bonus. Each group fires once.
var questionCues = []string{
	"？", "?", "かな", "かしら", "だろうか", "でしょうか", "かもしれない",
}

var exclamationCues = []string{
	"！", "!", "すごい", "やばい",
}
