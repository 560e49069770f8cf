package skk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiraganaToKatakana(t *testing.T) {
	assert.Equal(t, "カタカナ", hiraganaToKatakana("かたかな"))
	assert.Equal(t, "ヴ", hiraganaToKatakana("う゛"), "the two-codepoint vu spelling collapses to the single katakana letter")
}

func TestKatakanaToHiragana(t *testing.T) {
	assert.Equal(t, "かたかな", katakanaToHiragana("カタカナ"))
	assert.Equal(t, "う゛", katakanaToHiragana("ヴ"), "the single katakana letter expands back to the two-codepoint vu spelling")
}

func TestPreEditCommitTogglesVu(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("V u"))
	require.Equal(t, StatePreEdit, ctx.state)
	require.True(t, ctx.ProcessKeyEvents("q"))
	assert.Equal(t, "ヴ", ctx.GetOutput())
	assert.Equal(t, Katakana, ctx.inputMode)

	ctx2 := newTestContext()
	ctx2.inputMode = Katakana
	ctx2.mainConv.SetKanaMode(KanaKatakana)
	require.True(t, ctx2.ProcessKeyEvents("V u"))
	require.Equal(t, StatePreEdit, ctx2.state)
	require.True(t, ctx2.ProcessKeyEvents("q"))
	assert.Equal(t, "う゛", ctx2.GetOutput())
	assert.Equal(t, Hiragana, ctx2.inputMode)
}
