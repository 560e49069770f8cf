package skk

import "golang.org/x/text/width"

// kanaRule is one terminal node of the romaji trie: the kana produced in
// each of the three kana-rendering columns, plus the romaji left over
// ("carried") after the rule fires.
type kanaRule struct {
	carry   string
	hira    string
	kata    string
	hankaku string
}

type trieNode struct {
	children map[byte]*trieNode
	rule     *kanaRule
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

var ruleRoot = newTrieNode()

// geminatable holds the consonant letters that can double into a sokuon
// ("kk" -> "っ" + carry "k"). "n" is excluded: doubled n is its own rule.
const geminatable = "bcdfghjkmprstvwyz"

type ruleRow struct {
	key  string
	hira string
	kata string
}

func addRule(key, carry, hira, kata string) {
	n := ruleRoot
	for i := 0; i < len(key); i++ {
		c := n.children[key[i]]
		if c == nil {
			c = newTrieNode()
			n.children[key[i]] = c
		}
		n = c
	}
	hankaku := width.Narrow.String(kata)
	n.rule = &kanaRule{carry: carry, hira: hira, kata: kata, hankaku: hankaku}
}

func init() {
	rows := []ruleRow{
		{"a", "あ", "ア"}, {"i", "い", "イ"}, {"u", "う", "ウ"}, {"e", "え", "エ"}, {"o", "お", "オ"},

		{"ka", "か", "カ"}, {"ki", "き", "キ"}, {"ku", "く", "ク"}, {"ke", "け", "ケ"}, {"ko", "こ", "コ"},
		{"kya", "きゃ", "キャ"}, {"kyu", "きゅ", "キュ"}, {"kyo", "きょ", "キョ"},

		{"sa", "さ", "サ"}, {"si", "し", "シ"}, {"shi", "し", "シ"}, {"su", "す", "ス"}, {"se", "せ", "セ"}, {"so", "そ", "ソ"},
		{"sha", "しゃ", "シャ"}, {"shu", "しゅ", "シュ"}, {"sho", "しょ", "ショ"},
		{"sya", "しゃ", "シャ"}, {"syu", "しゅ", "シュ"}, {"syo", "しょ", "ショ"},

		{"ta", "た", "タ"}, {"ti", "ち", "チ"}, {"chi", "ち", "チ"}, {"tu", "つ", "ツ"}, {"tsu", "つ", "ツ"}, {"te", "て", "テ"}, {"to", "と", "ト"},
		{"cha", "ちゃ", "チャ"}, {"chu", "ちゅ", "チュ"}, {"cho", "ちょ", "チョ"},
		{"tya", "ちゃ", "チャ"}, {"tyu", "ちゅ", "チュ"}, {"tyo", "ちょ", "チョ"},

		{"na", "な", "ナ"}, {"ni", "に", "ニ"}, {"nu", "ぬ", "ヌ"}, {"ne", "ね", "ネ"}, {"no", "の", "ノ"},
		{"nya", "にゃ", "ニャ"}, {"nyu", "にゅ", "ニュ"}, {"nyo", "にょ", "ニョ"},

		{"ha", "は", "ハ"}, {"hi", "ひ", "ヒ"}, {"hu", "ふ", "フ"}, {"fu", "ふ", "フ"}, {"he", "へ", "ヘ"}, {"ho", "ほ", "ホ"},
		{"hya", "ひゃ", "ヒャ"}, {"hyu", "ひゅ", "ヒュ"}, {"hyo", "ひょ", "ヒョ"},

		{"ma", "ま", "マ"}, {"mi", "み", "ミ"}, {"mu", "む", "ム"}, {"me", "め", "メ"}, {"mo", "も", "モ"},
		{"mya", "みゃ", "ミャ"}, {"myu", "みゅ", "ミュ"}, {"myo", "みょ", "ミョ"},

		{"ya", "や", "ヤ"}, {"yu", "ゆ", "ユ"}, {"yo", "よ", "ヨ"},

		{"ra", "ら", "ラ"}, {"ri", "り", "リ"}, {"ru", "る", "ル"}, {"re", "れ", "レ"}, {"ro", "ろ", "ロ"},
		{"rya", "りゃ", "リャ"}, {"ryu", "りゅ", "リュ"}, {"ryo", "りょ", "リョ"},

		{"wa", "わ", "ワ"}, {"wi", "ゐ", "ヰ"}, {"wu", "う", "ウ"}, {"we", "ゑ", "ヱ"}, {"wo", "を", "ヲ"},

		{"ga", "が", "ガ"}, {"gi", "ぎ", "ギ"}, {"gu", "ぐ", "グ"}, {"ge", "げ", "ゲ"}, {"go", "ご", "ゴ"},
		{"gya", "ぎゃ", "ギャ"}, {"gyu", "ぎゅ", "ギュ"}, {"gyo", "ぎょ", "ギョ"},

		{"za", "ざ", "ザ"}, {"zi", "じ", "ジ"}, {"ji", "じ", "ジ"}, {"zu", "ず", "ズ"}, {"ze", "ぜ", "ゼ"}, {"zo", "ぞ", "ゾ"},
		{"zya", "じゃ", "ジャ"}, {"zyu", "じゅ", "ジュ"}, {"zyo", "じょ", "ジョ"},
		{"ja", "じゃ", "ジャ"}, {"ju", "じゅ", "ジュ"}, {"jo", "じょ", "ジョ"},

		{"da", "だ", "ダ"}, {"di", "ぢ", "ヂ"}, {"du", "づ", "ヅ"}, {"de", "で", "デ"}, {"do", "ど", "ド"},
		{"dya", "ぢゃ", "ヂャ"}, {"dyu", "ぢゅ", "ヂュ"}, {"dyo", "ぢょ", "ヂョ"},

		{"ba", "ば", "バ"}, {"bi", "び", "ビ"}, {"bu", "ぶ", "ブ"}, {"be", "べ", "ベ"}, {"bo", "ぼ", "ボ"},
		{"bya", "びゃ", "ビャ"}, {"byu", "びゅ", "ビュ"}, {"byo", "びょ", "ビョ"},

		{"pa", "ぱ", "パ"}, {"pi", "ぴ", "ピ"}, {"pu", "ぷ", "プ"}, {"pe", "ぺ", "ペ"}, {"po", "ぽ", "ポ"},
		{"pya", "ぴゃ", "ピャ"}, {"pyu", "ぴゅ", "ピュ"}, {"pyo", "ぴょ", "ピョ"},

		{"va", "ヴぁ", "ヴァ"}, {"vi", "ヴぃ", "ヴィ"}, {"ve", "ヴぇ", "ヴェ"}, {"vo", "ヴぉ", "ヴォ"},

		{".", "。", "。"}, {",", "、", "、"}, {"-", "ー", "ー"},

		{"zl", "→", "→"}, {"zh", "←", "←"}, {"zj", "↓", "↓"}, {"zk", "↑", "↑"},
		{"z/", "・", "・"}, {"z.", "…", "…"}, {"z,", "‥", "‥"}, {"z-", "〜", "〜"},
		{"z[", "『", "『"}, {"z]", "』", "』"},

		{"nn", "ん", "ン"},
	}
	for _, r := range rows {
		addRule(r.key, "", r.hira, r.kata)
	}

	// "n" is terminal (flushes to ん) AND a prefix of na/ni/.../nya/nn; both
	// facts live on the same trie node.
	addRule("n", "", "ん", "ン")

	// vu is special-cased per kana mode: hiragana spells it as う + dakuten,
	// katakana has a dedicated letter. addRule first so the v->u path
	// exists (va/vi/ve/vo above never create a "u" child), then overwrite
	// the hankaku form by hand since there is no single halfwidth
	// katakana codepoint for ヴ.
	addRule("vu", "", "う゛", "ヴ")
	walk(ruleRoot, "vu").rule.hankaku = "ｳﾞ"
}

func walk(root *trieNode, s string) *trieNode {
	n := root
	for i := 0; i < len(s); i++ {
		n = n.children[s[i]]
		if n == nil {
			return nil
		}
	}
	return n
}

// lookupPath walks the trie for s, reporting whether the full path exists.
func lookupPath(s string) (*trieNode, bool) {
	n := walk(ruleRoot, s)
	return n, n != nil
}

func isGeminatable(ch byte) bool {
	for i := 0; i < len(geminatable); i++ {
		if geminatable[i] == ch {
			return true
		}
	}
	return false
}

func isAsciiLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func pickKana(r *kanaRule, mode KanaMode) string {
	switch mode {
	case KanaKatakana:
		return r.kata
	case KanaHankakuKatakana:
		return r.hankaku
	default:
		return r.hira
	}
}

func sokuon(mode KanaMode) string {
	switch mode {
	case KanaKatakana:
		return "ッ"
	case KanaHankakuKatakana:
		return "ｯ"
	default:
		return "っ"
	}
}
