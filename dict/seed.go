package dict

// NewSystemDict returns a small, fixed system dictionary used by the demo
// CLI and by the engine's tests. It is not a parser for the real SKK
// system jisyo format (SKK-JISYO.L and friends use EUC-JP and a line
// format outside this module's scope); it is an in-memory fixture
// documented here because spec.md leaves dictionary *contents*
// unspecified and only pins behavior through example conversions.
//
// Okuri-ari entries are keyed by stem-kana + the lowercase romaji letter
// that started the okurigana (e.g. "はz" for 恥ずかしい, triggered by
// typing the capital Z in "Ha Z u"), matching how Context builds its
// dictionary lookup key.
func NewSystemDict() *UserDict {
	d := NewUserDict()
	seed := []struct {
		key  string
		cand []Candidate
	}{
		{"あい", []Candidate{{Text: "愛"}, {Text: "哀"}}},
		{"あいさつ", []Candidate{{Text: "挨拶"}}},
		{"あかつき", []Candidate{{Text: "暁"}}},
		{"あかね", []Candidate{{Text: "茜"}}},
		{"いぜん", []Candidate{{Text: "以前"}}},
		{"かんじ", []Candidate{{Text: "漢字"}}},
		{"か", []Candidate{{Text: "下"}}},
		{"は", []Candidate{{Text: "破"}, {Text: "葉"}}},
		{"あずま", []Candidate{{Text: "東"}}},
		{"し", []Candidate{{Text: "氏"}}},
		{"ちょう", []Candidate{{Text: "超"}}},
		{"かたかな", nil}, // deliberately absent: forces the DictEdit path in tests
		{"request", []Candidate{{Text: "リクエスト"}}}, // abbrev-mode lookup, key typed verbatim as ASCII
		// okuri-ari entries, key = stem kana + okuri-head romaji letter
		{"はz", []Candidate{{Text: "恥"}}},  // 恥ずかしい
		{"ふn", []Candidate{{Text: "踏"}}},  // 踏んだ
		{"おくn", []Candidate{{Text: "送"}}}, // 送った family; no test in this module types this reading
	}
	for _, s := range seed {
		if s.cand == nil {
			continue
		}
		// Register in reverse so the first listed candidate ends up most
		// preferred (Register/promote puts the newest at the front).
		for i := len(s.cand) - 1; i >= 0; i-- {
			_ = d.Register(s.key, s.cand[i])
		}
	}
	return d
}
