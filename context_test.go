package skk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atanigu/libskk/dict"
)

func newTestContext() *Context {
	return NewContext(dict.NewSystemDict())
}

func TestDirectInputSokuonThenModeToggle(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("w w q"))
	assert.Equal(t, "っ", ctx.GetOutput())
	assert.Equal(t, Katakana, ctx.inputMode)
}

func TestDirectInputNFlushesBeforeDot(t *testing.T) {
	ctx := newTestContext()
	ctx.inputMode = Katakana
	ctx.prevKana = Katakana
	ctx.mainConv.SetKanaMode(KanaKatakana)
	require.True(t, ctx.ProcessKeyEvents("n ."))
	assert.Equal(t, "ン。", ctx.GetOutput())
}

func TestTabIsNoOpOnEmptyMidashi(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("\\t K a"))
	assert.Equal(t, "▽か", ctx.GetPreedit())
}

func TestPreEditAssemblyAndLookupSelect(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a n j i SPC"))
	assert.Equal(t, StateSelect, ctx.state)
	assert.Equal(t, "▼漢字", ctx.GetPreedit())

	require.True(t, ctx.ProcessKeyEvents(`\n`))
	assert.Equal(t, "漢字", ctx.GetOutput())
	assert.Equal(t, StateNone, ctx.state)
}

func TestOkuriAriStartedFromEmptyPending(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("H a Z u"))
	assert.Equal(t, StateSelect, ctx.state)
	assert.Equal(t, "▼恥ず", ctx.GetPreedit())

	require.True(t, ctx.ProcessKeyEvents(`\n`))
	assert.Equal(t, "恥ず", ctx.GetOutput())
}

func TestOkuriAriResolvesDanglingPendingFirst(t *testing.T) {
	// "ふn" is seeded as an okuri-ari entry for 踏んだ; in "Fu N d a" the
	// capital N starts the okurigana with "n" left pending in the okuri
	// converter, and that dangling "n" must resolve to ん when "d" arrives
	// instead of completing the okuri lookup too early.
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("F u N d a"))
	assert.Equal(t, StateSelect, ctx.state)
	assert.Equal(t, "▼踏んだ", ctx.GetPreedit())
}

func TestDictEditRegistersNewWordAndResumes(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a t a k a n a SPC"))
	require.NotNil(t, ctx.child, "miss must open a DictEdit frame")
	assert.Equal(t, "[DictEdit] かたかな ", ctx.GetPreedit())

	require.True(t, ctx.ProcessKeyEvents("i r o"))
	require.True(t, ctx.ProcessKeyEvents(`\n`))

	assert.Nil(t, ctx.child, "Enter at the frame's idle top level finalizes and closes it")
	assert.Equal(t, StateNone, ctx.state, "a plain PreEdit-miss registration commits straight through, like accepting a Select candidate")
	assert.Equal(t, "いろ", ctx.GetOutput())
	assert.Equal(t, "", ctx.GetPreedit())
}

// TestDictEditRegistersThenCommitsThroughParentMidashi exercises spec.md's
// worked scenario of registering a word for a miss, then committing it:
// inside the DictEdit frame the new word is built from two ordinary
// conversions (か -> 下, は -> 破), and the two Enters commit the inner
// selection and then register and commit 下破 straight to output with
// nothing left in preedit.
func TestDictEditRegistersThenCommitsThroughParentMidashi(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a p a SPC"))
	require.NotNil(t, ctx.child, "かぱ is not in the seeded dictionary")

	require.True(t, ctx.ProcessKeyEvents("K a SPC"))
	require.True(t, ctx.ProcessKeyEvents("H a SPC"))
	require.True(t, ctx.ProcessKeyEvents(`\n`))
	require.True(t, ctx.ProcessKeyEvents(`\n`))

	assert.Nil(t, ctx.child)
	assert.Equal(t, StateNone, ctx.state)
	assert.Equal(t, "下破", ctx.GetOutput())
	assert.Equal(t, "", ctx.GetPreedit())
}

func TestDictEditCancelRestoresPriorState(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("A k a t u k i SPC"))
	require.Equal(t, StateSelect, ctx.state)
	require.True(t, ctx.ProcessKeyEvents("SPC"))
	require.NotNil(t, ctx.child, "exhausting the single candidate opens a DictEdit frame")

	require.True(t, ctx.ProcessKeyEvents("C-g"))
	assert.Nil(t, ctx.child)
	assert.Equal(t, StateSelect, ctx.state)
	assert.Equal(t, "▼暁", ctx.GetPreedit(), "cancelling returns to the same candidate offered before")
}

func TestAbbrevModeLookup(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("/ r e q u e s t SPC"))
	assert.Equal(t, StateSelect, ctx.state)

	require.True(t, ctx.ProcessKeyEvents(`\n`))
	assert.Equal(t, "リクエスト", ctx.GetOutput())
}

func TestKutenCoercesNonDigitsToZero(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents(`\ a 1 a 2`))
	require.True(t, ctx.ProcessKeyEvents(`\n`))
	assert.Equal(t, "、", ctx.GetOutput())
}

func TestKutenCancel(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents(`\ 0 1 0 1`))
	require.True(t, ctx.ProcessKeyEvents("C-g"))
	assert.Equal(t, StateNone, ctx.state)
	assert.Equal(t, "", ctx.GetOutput())
}

func TestSelectPurgeRemovesCandidate(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("A i SPC"))
	require.Equal(t, StateSelect, ctx.state)
	require.Equal(t, "▼愛", ctx.GetPreedit())

	require.True(t, ctx.ProcessKeyEvents("X"))
	assert.Equal(t, "▼哀", ctx.GetPreedit())
}

func TestLatinModeDirectPassthrough(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("l"))
	assert.Equal(t, Latin, ctx.inputMode)
	require.True(t, ctx.ProcessKeyEvents("a"))
	assert.Equal(t, "a", ctx.GetOutput())

	require.True(t, ctx.ProcessKeyEvents("C-j"))
	assert.Equal(t, Hiragana, ctx.inputMode)
}

func TestWideLatinMode(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("L"))
	assert.Equal(t, WideLatin, ctx.inputMode)
	require.True(t, ctx.ProcessKeyEvents("a"))
	assert.Equal(t, "ａ", ctx.GetOutput())
}

func TestPreEditCommitTogglesKanaScript(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a t a k a n a"))
	require.Equal(t, StatePreEdit, ctx.state)
	require.True(t, ctx.ProcessKeyEvents("q"))
	assert.Equal(t, "カタカナ", ctx.GetOutput())
	assert.Equal(t, Katakana, ctx.inputMode)
}

func TestPreEditBackspace(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a n"))
	assert.Equal(t, "▽かn", ctx.GetPreedit())
	require.True(t, ctx.ProcessKeyEvents(`\x7F`))
	assert.Equal(t, "▽か", ctx.GetPreedit())
	require.True(t, ctx.ProcessKeyEvents(`\x7F`))
	assert.Equal(t, "▽", ctx.GetPreedit())
	require.True(t, ctx.ProcessKeyEvents(`\x7F`))
	assert.Equal(t, StateNone, ctx.state)
}

func TestCompletionCyclesDictionaryKeys(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("A i"))
	require.Equal(t, "▽あい", ctx.GetPreedit())
	require.True(t, ctx.ProcessKeyEvents(`\t`))
	assert.Equal(t, "▽あいさつ", ctx.GetPreedit())
}

func TestCompletionClampsAtLastMatch(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("A k a"))
	require.Equal(t, "▽あか", ctx.GetPreedit())
	require.True(t, ctx.ProcessKeyEvents(`\t`))
	require.True(t, ctx.ProcessKeyEvents(`\t`))
	require.True(t, ctx.ProcessKeyEvents(`\t`))
	assert.Equal(t, "▽あかね", ctx.GetPreedit(), "a third Tab past the last match stays put instead of wrapping")
}

func TestIdleEnterIsUnhandled(t *testing.T) {
	ctx := newTestContext()
	assert.False(t, ctx.ProcessKeyEvents(`\n`), "a bare Enter with nothing in progress is unhandled")
	assert.Equal(t, "", ctx.GetOutput())
}

func TestIdleEnterInLatinIsUnhandled(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("l"))
	assert.False(t, ctx.ProcessKeyEvents(`\n`))
}

func TestCtrlHAliasesDelete(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a n"))
	assert.Equal(t, "▽かn", ctx.GetPreedit())
	require.True(t, ctx.ProcessKeyEvents("C-h"))
	assert.Equal(t, "▽か", ctx.GetPreedit())
}

func TestCtrlMAliasesEnter(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a n j i SPC"))
	require.True(t, ctx.ProcessKeyEvents("C-m"))
	assert.Equal(t, "漢字", ctx.GetOutput())
}

func TestDirectInputHankakuToggle(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("C-q"))
	assert.Equal(t, HankakuKatakana, ctx.inputMode)
	require.True(t, ctx.ProcessKeyEvents("C-q"))
	assert.Equal(t, Hiragana, ctx.inputMode)
}

func TestPreEditCommitAsHankaku(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a t a k a n a"))
	require.Equal(t, StatePreEdit, ctx.state)
	require.True(t, ctx.ProcessKeyEvents("C-q"))
	assert.Equal(t, "ｶﾀｶﾅ", ctx.GetOutput())
	assert.Equal(t, HankakuKatakana, ctx.inputMode)
}

func TestAbbrevCommitAsWideLatin(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("/ a a"))
	require.True(t, ctx.ProcessKeyEvents("C-q"))
	assert.Equal(t, "ａａ", ctx.GetOutput())
	assert.Equal(t, StateNone, ctx.state)
}

func TestSelectCtrlJCommits(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a n j i SPC"))
	require.Equal(t, StateSelect, ctx.state)
	require.True(t, ctx.ProcessKeyEvents("C-j"))
	assert.Equal(t, "漢字", ctx.GetOutput())
	assert.Equal(t, StateNone, ctx.state)
}

func TestSelectChainCommand(t *testing.T) {
	ctx := newTestContext()
	require.True(t, ctx.ProcessKeyEvents("K a n j i SPC"))
	require.Equal(t, StateSelect, ctx.state)
	require.True(t, ctx.ProcessKeyEvents(">"))
	assert.Equal(t, "漢字", ctx.GetOutput())
	assert.Equal(t, StatePreEdit, ctx.state)
	assert.Equal(t, "▽>", ctx.GetPreedit())
}
