package skk

import "github.com/atanigu/libskk/dict"

// pushDictEdit opens a nested registration session for key: a fresh
// Context, sharing this Context's dictionary, that the caller types a
// new candidate into directly. The pushing Context's own state is
// snapshotted so it can be restored verbatim if registration is
// cancelled.
func (ctx *Context) pushDictEdit(key string) {
	child := NewContext(ctx.dict)
	child.inputMode = ctx.inputMode
	child.prevKana = ctx.prevKana
	child.isDictEditFrame = true
	child.registeringMidashi = key
	ctx.child = child
}

// handleChildDelegate forwards an event to the innermost active DictEdit
// frame, intercepting Enter and Ctrl-g at that frame's idle top level
// (settled in ConversionState.None with no grandchild of its own) to
// finalize or cancel the registration.
func (ctx *Context) handleChildDelegate(ev KeyEvent) bool {
	child := ctx.child
	if child.child == nil && child.state == StateNone {
		if ev.Enter {
			text := child.mainConv.FlushNIfAny()
			registered := child.output + text
			if registered != "" {
				_ = ctx.dict.Register(child.registeringMidashi, dict.Candidate{Text: registered})
				log.Info().Str("key", child.registeringMidashi).Str("candidate", registered).Msg("registered new word")
			}
			ctx.child = nil
			ctx.resumeAfterDictEdit(true)
			return true
		}
		if ev.Ctrl && (ev.Char == 'g' || ev.Char == 'G') {
			ctx.child = nil
			ctx.resumeAfterDictEdit(false)
			return true
		}
	}
	return child.handleTop(ev)
}

// resumeAfterDictEdit restores the state the DictEdit frame interrupted.
// A plain PreEdit-miss trigger (preDictEditState == StatePreEdit) commits
// the freshly registered word straight to output, the same as accepting a
// Select candidate, since there was never a candidate list to return to.
// A Select-cycle-exhaustion trigger re-enters Select with the now-populated
// candidate list instead, since that's the state registration interrupted.
func (ctx *Context) resumeAfterDictEdit(committed bool) {
	prevState := ctx.preDictEditState
	ctx.state = prevState
	ctx.candIndex = ctx.preDictEditCandIdx
	ctx.preDictEditState = 0
	ctx.preDictEditCandIdx = 0
	if !committed {
		return
	}
	key := ctx.md.dictKey()
	cands, ok := ctx.dict.Lookup(key)
	if !ok || len(cands) == 0 {
		return
	}
	if prevState == StatePreEdit {
		text := cands[0].Text
		if ctx.md.hasOkuri() {
			text += ctx.md.okuriKana()
		}
		ctx.output += text
		ctx.state = StateNone
		ctx.md = nil
		ctx.candidates = nil
		ctx.mainConv.Reset()
		return
	}
	ctx.candidates = cands
	ctx.candIndex = 0
	ctx.state = StateSelect
}
