package skk

// midashi is the dictionary headword being assembled while in PreEdit or
// Select state: the stem kana, and — for okuri-ari entries — the romaji
// letter that started the trailing okurigana plus the converter building
// its kana.
type midashi struct {
	kana string

	abbrev    bool // abbrev-mode buffer holds raw ASCII in kana instead
	okuriHead byte // 0 if this isn't an okuri-ari entry (yet)
	okuriConv *RomKanaConverter
}

func newMidashi() *midashi {
	return &midashi{}
}

func (m *midashi) hasOkuri() bool {
	return m.okuriHead != 0
}

// okuriKana is the kana committed so far from the okurigana romaji.
func (m *midashi) okuriKana() string {
	if m.okuriConv == nil {
		return ""
	}
	return m.okuriConv.Output
}

// dictKey is the lookup key presented to the Dictionary: the stem kana,
// plus the okuri-head letter for okuri-ari entries.
func (m *midashi) dictKey() string {
	if m.hasOkuri() {
		return m.kana + string(m.okuriHead)
	}
	return m.kana
}

// okuriComplete reports whether the okuri RomKanaConverter has fully
// resolved its pending romaji into kana, meaning the okurigana entry is
// ready to look up.
func (m *midashi) okuriComplete() bool {
	return m.hasOkuri() && m.okuriConv.Pending == ""
}
