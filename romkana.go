package skk

// KanaMode selects which column of the rule table a RomKanaConverter
// renders into.
type KanaMode int

const (
	KanaHiragana KanaMode = iota
	KanaKatakana
	KanaHankakuKatakana
)

// RomKanaConverter turns a stream of romaji bytes into kana, one keystroke
// at a time. It tracks a pending (not yet resolved) romaji fragment and an
// accumulated output of committed kana.
type RomKanaConverter struct {
	mode    KanaMode
	Pending string
	Output  string

	pendingRule *kanaRule
}

func NewRomKanaConverter(mode KanaMode) *RomKanaConverter {
	return &RomKanaConverter{mode: mode}
}

func (c *RomKanaConverter) SetKanaMode(mode KanaMode) {
	c.mode = mode
}

func (c *RomKanaConverter) KanaMode() KanaMode {
	return c.mode
}

// Reset discards any pending romaji and clears committed output.
func (c *RomKanaConverter) Reset() {
	c.Pending = ""
	c.pendingRule = nil
	c.Output = ""
}

// DrainOutput returns the committed output accumulated so far and clears it.
func (c *RomKanaConverter) DrainOutput() string {
	s := c.Output
	c.Output = ""
	return s
}

// FlushNIfAny, if the pending buffer is a dangling "n", commits it as ん/ン/ﾝ
// and clears the pending buffer. Returns the kana emitted, if any.
func (c *RomKanaConverter) FlushNIfAny() string {
	if c.Pending != "n" {
		return ""
	}
	node, ok := lookupPath("n")
	if !ok || node.rule == nil {
		return ""
	}
	kana := pickKana(node.rule, c.mode)
	c.Output += kana
	c.Pending = ""
	c.pendingRule = nil
	return kana
}

// AppendString feeds each byte of s through Append in turn, returning the
// concatenated kana emitted.
func (c *RomKanaConverter) AppendString(s string) string {
	var out string
	for i := 0; i < len(s); i++ {
		out += c.Append(s[i])
	}
	return out
}

// Append feeds a single romaji byte into the converter, returning whatever
// kana was newly emitted as a result (may be empty).
func (c *RomKanaConverter) Append(ch byte) string {
	extended := c.Pending + string(ch)
	if node, ok := lookupPath(extended); ok {
		if node.rule != nil && len(node.children) == 0 {
			kana := pickKana(node.rule, c.mode)
			c.Output += kana
			c.Pending = node.rule.carry
			c.pendingRule = nil
			if c.Pending != "" {
				if n2, ok2 := lookupPath(c.Pending); ok2 {
					c.pendingRule = n2.rule
				}
			}
			return kana
		}
		c.Pending = extended
		c.pendingRule = node.rule
		return ""
	}

	// Dead end for the extended buffer. Sokuon gemination: a single
	// pending consonant doubled by the same letter.
	if len(c.Pending) == 1 && c.Pending[0] == ch && isGeminatable(ch) {
		kana := sokuon(c.mode)
		c.Output += kana
		c.Pending = string(ch)
		c.pendingRule = nil
		return kana
	}

	var emitted string
	if c.pendingRule != nil {
		emitted = pickKana(c.pendingRule, c.mode)
		c.Output += emitted
	}
	c.Pending = ""
	c.pendingRule = nil

	if node2, ok2 := lookupPath(string(ch)); ok2 {
		if node2.rule != nil && len(node2.children) == 0 {
			kana := pickKana(node2.rule, c.mode)
			c.Output += kana
			c.Pending = node2.rule.carry
			emitted += kana
			return emitted
		}
		c.Pending = string(ch)
		c.pendingRule = node2.rule
		return emitted
	}

	if !isAsciiLetter(ch) {
		c.Output += string(ch)
		emitted += string(ch)
	}
	return emitted
}
