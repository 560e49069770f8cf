package skk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomKanaConverterAppend(t *testing.T) {
	tests := []struct {
		name       string
		mode       KanaMode
		input      string
		wantOutput string
		wantPend   string
	}{
		{"vowel", KanaHiragana, "a", "あ", ""},
		{"ka row", KanaHiragana, "ka", "か", ""},
		{"shi alias", KanaHiragana, "si", "し", ""},
		{"shi digraph", KanaHiragana, "shi", "し", ""},
		{"nn is n", KanaHiragana, "nn", "ん", ""},
		{"n prefix of na", KanaHiragana, "na", "な", ""},
		{"yoon prefix buffers whole", KanaHiragana, "ky", "", "ky"},
		{"min", KanaHiragana, "min", "み", "n"},
		{"sokuon kk", KanaHiragana, "kka", "っか", ""},
		{"sokuon ww carries w", KanaKatakana, "ww", "ッ", "w"},
		{"punctuation dot", KanaHiragana, ".", "。", ""},
		{"n then dot flushes n", KanaKatakana, "n.", "ン。", ""},
		{"z arrow", KanaHiragana, "zl", "→", ""},
		{"vu hiragana", KanaHiragana, "vu", "う゛", ""},
		{"vu katakana", KanaKatakana, "vu", "ヴ", ""},
		{"desu dot", KanaHiragana, "desu.", "です。", ""},
		{"kya yoon", KanaHiragana, "kya", "きゃ", ""},
		{"tsu alias", KanaHiragana, "tsu", "つ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRomKanaConverter(tt.mode)
			c.AppendString(tt.input)
			assert.Equal(t, tt.wantOutput, c.Output, "output")
			assert.Equal(t, tt.wantPend, c.Pending, "pending")
		})
	}
}

func TestRomKanaConverterFlushNIfAny(t *testing.T) {
	c := NewRomKanaConverter(KanaHiragana)
	c.AppendString("n")
	assert.Equal(t, "n", c.Pending)
	flushed := c.FlushNIfAny()
	assert.Equal(t, "ん", flushed)
	assert.Equal(t, "", c.Pending)

	c2 := NewRomKanaConverter(KanaHiragana)
	c2.AppendString("k")
	assert.Equal(t, "", c2.FlushNIfAny(), "FlushNIfAny is a no-op unless pending is exactly n")
}

func TestRomKanaConverterDeadEndDropsUnresolvablePending(t *testing.T) {
	c := NewRomKanaConverter(KanaHiragana)
	c.Append('k')
	assert.Equal(t, "k", c.Pending)
	out := c.Append('q')
	assert.Equal(t, "", out, "a pending consonant with no rule and no continuation is dropped silently")
	assert.Equal(t, "", c.Pending)
}

func TestRomKanaConverterReset(t *testing.T) {
	c := NewRomKanaConverter(KanaHiragana)
	c.AppendString("ka")
	c.Append('k')
	c.Reset()
	assert.Equal(t, "", c.Output)
	assert.Equal(t, "", c.Pending)
}
