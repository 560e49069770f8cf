// Package skk implements the conversion core of an SKK-style Japanese
// input method: romaji-to-kana conversion, headword (midashi) assembly,
// dictionary-backed candidate selection, and the supporting abbrev,
// kuten and word-registration sub-modes.
package skk

import (
	"sort"
	"strings"

	"github.com/atanigu/libskk/dict"
)

// InputMode selects how plain letters render before any conversion is
// attempted.
type InputMode int

const (
	Hiragana InputMode = iota
	Katakana
	HankakuKatakana
	Latin
	WideLatin
)

// ConversionState is the phase of the headword/candidate state machine,
// orthogonal to InputMode.
type ConversionState int

const (
	StateNone ConversionState = iota
	StatePreEdit
	StateSelect
	StateKuten
)

// Context is a single, independent conversion session: its own input
// mode, its own in-progress headword, and (while a word is being
// registered) its own stack of nested DictEdit contexts. Context is not
// safe for concurrent use by multiple goroutines; callers serialize
// ProcessKeyEvents themselves, the same way a line editor serializes
// keystrokes.
type Context struct {
	dict      dict.Dictionary
	inputMode InputMode
	prevKana  InputMode // kana mode to restore when leaving Latin/WideLatin
	state     ConversionState

	mainConv *RomKanaConverter
	md       *midashi
	output   string

	candidates []dict.Candidate
	candIndex  int

	completion      []string
	completionIndex int
	completionStem  string

	kuten *kutenState

	child              *Context
	isDictEditFrame    bool
	registeringMidashi string
	preDictEditState   ConversionState
	preDictEditCandIdx int
}

// NewContext creates a fresh Context backed by d, starting in direct
// Hiragana input.
func NewContext(d dict.Dictionary) *Context {
	return &Context{
		dict:      d,
		inputMode: Hiragana,
		prevKana:  Hiragana,
		mainConv:  NewRomKanaConverter(KanaHiragana),
	}
}

func kanaModeFor(m InputMode) KanaMode {
	switch m {
	case Katakana:
		return KanaKatakana
	case HankakuKatakana:
		return KanaHankakuKatakana
	default:
		return KanaHiragana
	}
}

// Reset drops all in-progress conversion state and returns to direct
// input in the current InputMode. It never affects already-committed
// output waiting to be read by GetOutput.
func (ctx *Context) Reset() {
	ctx.state = StateNone
	ctx.md = nil
	ctx.mainConv.Reset()
	ctx.child = nil
	ctx.candidates = nil
	ctx.candIndex = 0
	ctx.completion = nil
	ctx.kuten = nil
}

// GetOutput returns the committed text produced so far and clears the
// internal buffer.
func (ctx *Context) GetOutput() string {
	s := ctx.output
	ctx.output = ""
	return s
}

// GetPreedit renders the text currently being composed: the headword
// under construction, the candidate on offer, the kuten prompt, or (for
// a nested word-registration session) the bracketed DictEdit prefix
// chain followed by the innermost frame's own preedit.
func (ctx *Context) GetPreedit() string {
	depth, inner := ctx.dictEditChain()
	if depth == 0 {
		return ctx.bodyForSelf()
	}
	prefix := strings.Repeat("[", depth) + "DictEdit" + strings.Repeat("]", depth) + " " + inner.registeringMidashi + " "
	return prefix + inner.bodyForSelf()
}

func (ctx *Context) dictEditChain() (int, *Context) {
	depth := 0
	cur := ctx
	for cur.child != nil {
		depth++
		cur = cur.child
	}
	return depth, cur
}

func (ctx *Context) bodyForSelf() string {
	switch ctx.state {
	case StateNone:
		if ctx.isDictEditFrame {
			return ctx.output + ctx.mainConv.Pending
		}
		return ctx.mainConv.Pending
	case StatePreEdit:
		if ctx.md.abbrev {
			return "▽" + ctx.md.kana
		}
		if ctx.md.hasOkuri() {
			return "▽" + ctx.md.kana + "*" + ctx.md.okuriKana() + ctx.md.okuriConv.Pending
		}
		return "▽" + ctx.md.kana + ctx.mainConv.Pending
	case StateSelect:
		cand := ctx.candidates[ctx.candIndex]
		tail := ""
		if ctx.md.hasOkuri() {
			tail = ctx.md.okuriKana()
		}
		return "▼" + cand.Text + tail
	case StateKuten:
		return ctx.kuten.display()
	}
	return ""
}

// ProcessKeyEvents feeds a space-separated key-event string (see
// ParseKeyEvents) through the state machine and reports whether the
// last event was handled.
func (ctx *Context) ProcessKeyEvents(s string) bool {
	handled := true
	for _, ev := range ParseKeyEvents(s) {
		handled = ctx.handleTop(ev)
	}
	return handled
}

func (ctx *Context) handleTop(ev KeyEvent) bool {
	if ctx.child != nil {
		return ctx.handleChildDelegate(ev)
	}
	return ctx.handle(ev)
}

func (ctx *Context) handle(ev KeyEvent) bool {
	switch ctx.state {
	case StateKuten:
		return ctx.handleKuten(ev)
	case StatePreEdit:
		if ctx.md.abbrev {
			return ctx.handleAbbrev(ev)
		}
		return ctx.handlePreEdit(ev)
	case StateSelect:
		return ctx.handleSelect(ev)
	default:
		return ctx.handleNone(ev)
	}
}

// --- direct input (ConversionState.None) ---

func (ctx *Context) handleNone(ev KeyEvent) bool {
	if ev.Tab {
		return true // no-op, never fails
	}
	if ctx.inputMode == Latin || ctx.inputMode == WideLatin {
		return ctx.handleDirectLatin(ev)
	}
	if ev.Enter {
		return false // idle commit is unhandled; lets the caller submit the line
	}
	if ev.Ctrl {
		if ev.Char == 'q' {
			ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
			ctx.output += ctx.mainConv.FlushNIfAny()
			ctx.mainConv.Reset()
			ctx.toggleHankaku()
			return true
		}
		return true
	}
	switch ev.Char {
	case 'q':
		if ev.isLower() {
			ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
			ctx.output += ctx.mainConv.FlushNIfAny()
			ctx.mainConv.Reset()
			ctx.toggleKanaMode()
			return true
		}
	case 'l':
		if ev.isLower() {
			ctx.mainConv.Reset()
			ctx.prevKana = ctx.inputMode
			ctx.inputMode = Latin
			return true
		}
	case 'L':
		ctx.mainConv.Reset()
		ctx.prevKana = ctx.inputMode
		ctx.inputMode = WideLatin
		return true
	case '\\':
		if ev.isPlain() {
			ctx.mainConv.Reset()
			ctx.state = StateKuten
			ctx.kuten = &kutenState{}
			return true
		}
	case '/':
		if ev.isPlain() {
			ctx.mainConv.Reset()
			ctx.md = newMidashi()
			ctx.md.abbrev = true
			ctx.state = StatePreEdit
			return true
		}
	}
	if ev.isUpper() {
		ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
		delta := ctx.mainConv.Append(ev.lower())
		ctx.md = newMidashi()
		ctx.md.kana = delta
		ctx.state = StatePreEdit
		return true
	}
	if !ev.isPlain() {
		return true
	}
	ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
	ctx.output += ctx.mainConv.Append(ev.Char)
	return true
}

func (ctx *Context) handleDirectLatin(ev KeyEvent) bool {
	if ev.Ctrl && ev.Char == 'j' {
		ctx.inputMode = ctx.prevKana
		return true
	}
	if ev.Enter {
		return false // idle commit is unhandled; lets the caller submit the line
	}
	if !ev.isPlain() {
		return true
	}
	if ctx.inputMode == WideLatin {
		ctx.output += widenASCII(string(ev.Char))
	} else {
		ctx.output += string(ev.Char)
	}
	return true
}

func (ctx *Context) toggleKanaMode() {
	from := ctx.inputMode
	switch ctx.inputMode {
	case Hiragana:
		ctx.inputMode = Katakana
	default:
		ctx.inputMode = Hiragana
	}
	log.Info().Str("from", inputModeName(from)).Str("to", inputModeName(ctx.inputMode)).Msg("input mode changed")
}

// toggleHankaku is C-q's direct-input binding: HankakuKatakana from either
// kana mode, or back to Hiragana from HankakuKatakana.
func (ctx *Context) toggleHankaku() {
	from := ctx.inputMode
	if ctx.inputMode == HankakuKatakana {
		ctx.inputMode = Hiragana
	} else {
		ctx.inputMode = HankakuKatakana
	}
	log.Info().Str("from", inputModeName(from)).Str("to", inputModeName(ctx.inputMode)).Msg("input mode changed")
}

func inputModeName(m InputMode) string {
	switch m {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case HankakuKatakana:
		return "hankaku-katakana"
	case Latin:
		return "latin"
	case WideLatin:
		return "wide-latin"
	default:
		return "unknown"
	}
}

// --- PreEdit (headword assembly) ---

func (ctx *Context) handlePreEdit(ev KeyEvent) bool {
	switch {
	case ev.Ctrl && (ev.Char == 'g' || ev.Char == 'G'):
		ctx.state = StateNone
		ctx.md = nil
		ctx.mainConv.Reset()
		return true
	case ev.Ctrl && ev.Char == 'q':
		ctx.commitMidashiHankaku()
		return true
	case ev.Ctrl:
		return true
	case ev.Enter:
		ctx.commitRawMidashi()
		return true
	case ev.Delete:
		ctx.backspacePreEdit()
		return true
	case ev.Tab:
		ctx.cycleCompletion()
		return true
	case ev.Char == ' ' && ev.isPlain():
		ctx.lookupAndSelect()
		return true
	case ev.Char == 'q' && ev.isLower():
		ctx.commitMidashiToggled()
		return true
	case ev.Char == '>' && ev.isPlain():
		ctx.md.kana += ">"
		ctx.lookupAndSelect()
		return true
	case ev.isUpper():
		ctx.completion = nil
		if ctx.md.kana != "" {
			ctx.startOkuri(ev.lower())
		} else {
			ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
			ctx.md.kana += ctx.mainConv.Append(ev.lower())
		}
		ctx.maybeCompleteOkuri()
		return true
	case ev.isLower() || !isAsciiLetter(ev.Char):
		if !ev.isPlain() {
			return true
		}
		ctx.completion = nil
		if ctx.md.hasOkuri() {
			ctx.md.okuriConv.Append(ev.Char)
		} else {
			ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
			ctx.md.kana += ctx.mainConv.Append(ev.Char)
		}
		ctx.maybeCompleteOkuri()
		return true
	default:
		return true
	}
}

// startOkuri begins okurigana assembly on the uppercase-triggered letter
// c. Any romaji already pending in the main converter is resolved first
// (which may itself emit a sokuon into the stem, or flush a dangling
// "n"); whatever romaji is left over seeds the okuri converter instead
// of being re-typed.
func (ctx *Context) startOkuri(c byte) {
	ctx.md.okuriConv = NewRomKanaConverter(kanaModeFor(ctx.inputMode))
	if ctx.mainConv.Pending != "" {
		ctx.mainConv.SetKanaMode(kanaModeFor(ctx.inputMode))
		ctx.md.kana += ctx.mainConv.Append(c)
		ctx.md.okuriHead = c
		if ctx.mainConv.Pending != "" {
			ctx.md.okuriConv.Pending = ctx.mainConv.Pending
			ctx.mainConv.Pending = ""
		}
		return
	}
	ctx.md.okuriHead = c
	ctx.md.okuriConv.Append(c)
}

// maybeCompleteOkuri checks whether an in-progress okuri build has just
// resolved to a clean mora boundary, and if so performs the dictionary
// lookup and transitions out of PreEdit automatically.
func (ctx *Context) maybeCompleteOkuri() {
	if !ctx.md.hasOkuri() || !ctx.md.okuriComplete() {
		return
	}
	ctx.lookupAndSelect()
}

func (ctx *Context) lookupAndSelect() {
	key := ctx.md.dictKey()
	if key == "" {
		return
	}
	cands, ok := ctx.dict.Lookup(key)
	if !ok || len(cands) == 0 {
		log.Debug().Str("key", key).Msg("dictionary miss")
		ctx.preDictEditState = StatePreEdit
		ctx.preDictEditCandIdx = 0
		ctx.pushDictEdit(key)
		return
	}
	ctx.candidates = cands
	ctx.candIndex = 0
	ctx.state = StateSelect
}

func (ctx *Context) commitRawMidashi() {
	flushed := ctx.mainConv.FlushNIfAny()
	text := ctx.md.kana + flushed
	if ctx.md.hasOkuri() {
		text += ctx.md.okuriKana()
	}
	ctx.output += text
	ctx.state = StateNone
	ctx.md = nil
	ctx.mainConv.Reset()
}

func (ctx *Context) commitMidashiToggled() {
	flushed := ctx.mainConv.FlushNIfAny()
	text := ctx.md.kana + flushed
	if ctx.md.hasOkuri() {
		text += ctx.md.okuriKana()
	}
	target := Katakana
	if ctx.inputMode == Katakana || ctx.inputMode == HankakuKatakana {
		target = Hiragana
	}
	if target == Katakana {
		text = hiraganaToKatakana(text)
	} else {
		text = katakanaToHiragana(text)
	}
	ctx.output += text
	ctx.inputMode = target
	ctx.state = StateNone
	ctx.md = nil
	ctx.mainConv.Reset()
}

// commitMidashiHankaku is C-q in PreEdit: commit the headword as halfwidth
// katakana and leave the engine in HankakuKatakana input mode, mirroring
// commitMidashiToggled's hiragana/katakana swap.
func (ctx *Context) commitMidashiHankaku() {
	flushed := ctx.mainConv.FlushNIfAny()
	text := ctx.md.kana + flushed
	if ctx.md.hasOkuri() {
		text += ctx.md.okuriKana()
	}
	ctx.output += narrowKana(hiraganaToKatakana(text))
	ctx.inputMode = HankakuKatakana
	ctx.state = StateNone
	ctx.md = nil
	ctx.mainConv.Reset()
}

func (ctx *Context) backspacePreEdit() {
	if ctx.md.hasOkuri() {
		oc := ctx.md.okuriConv
		switch {
		case oc.Pending != "":
			oc.Pending = oc.Pending[:len(oc.Pending)-1]
		case oc.Output != "":
			oc.Output = popRune(oc.Output)
		default:
			ctx.md.okuriHead = 0
			ctx.md.okuriConv = nil
		}
		return
	}
	switch {
	case ctx.mainConv.Pending != "":
		ctx.mainConv.Pending = ctx.mainConv.Pending[:len(ctx.mainConv.Pending)-1]
	case ctx.md.kana != "":
		ctx.md.kana = popRune(ctx.md.kana)
	default:
		ctx.state = StateNone
		ctx.md = nil
	}
}

func popRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func (ctx *Context) cycleCompletion() {
	if ctx.md.kana == "" {
		return
	}
	if ctx.completion == nil {
		ctx.completionStem = ctx.md.kana
		matches := ctx.dict.Complete(ctx.completionStem)
		sort.Strings(matches)
		out := matches[:0]
		for _, m := range matches {
			if m != ctx.completionStem {
				out = append(out, m)
			}
		}
		ctx.completion = out
		ctx.completionIndex = -1
	}
	if len(ctx.completion) == 0 {
		return
	}
	if ctx.completionIndex+1 < len(ctx.completion) {
		ctx.completionIndex++
	}
	ctx.md.kana = ctx.completion[ctx.completionIndex]
}

// --- Abbrev (PreEdit variant with a raw ASCII buffer) ---

func (ctx *Context) handleAbbrev(ev KeyEvent) bool {
	switch {
	case ev.Ctrl && (ev.Char == 'g' || ev.Char == 'G'):
		ctx.state = StateNone
		ctx.md = nil
		return true
	case ev.Ctrl && ev.Char == 'q':
		ctx.output += widenASCII(ctx.md.kana)
		ctx.state = StateNone
		ctx.md = nil
		return true
	case ev.Ctrl:
		return true
	case ev.Enter:
		ctx.output += ctx.md.kana
		ctx.state = StateNone
		ctx.md = nil
		return true
	case ev.Delete:
		ctx.md.kana = popRune(ctx.md.kana)
		if ctx.md.kana == "" {
			ctx.state = StateNone
			ctx.md = nil
		}
		return true
	case ev.Char == ' ' && ev.isPlain():
		ctx.lookupAndSelect()
		return true
	case ev.isPlain():
		ctx.md.kana += string(ev.Char)
		return true
	default:
		return true
	}
}

// --- Select (candidate offered) ---

func (ctx *Context) handleSelect(ev KeyEvent) bool {
	switch {
	case ev.Enter:
		ctx.commitSelection()
		return true
	case ev.Ctrl && ev.Char == 'j':
		ctx.commitSelection()
		return true
	case ev.Char == ' ' && ev.isPlain():
		ctx.nextCandidate()
		return true
	case ev.Ctrl && (ev.Char == 'g' || ev.Char == 'G'):
		ctx.state = StatePreEdit
		ctx.candidates = nil
		return true
	case ev.Delete:
		ctx.state = StatePreEdit
		ctx.candidates = nil
		return true
	case ev.Char == 'X' && ev.isPlain():
		ctx.purgeCandidate()
		return true
	case ev.Char == '>' && ev.isPlain():
		ctx.commitSelection()
		ctx.md = newMidashi()
		ctx.md.kana = ">"
		ctx.state = StatePreEdit
		return true
	default:
		ctx.commitSelection()
		return ctx.handle(ev)
	}
}

func (ctx *Context) nextCandidate() {
	ctx.candIndex++
	if ctx.candIndex >= len(ctx.candidates) {
		ctx.preDictEditState = StateSelect
		ctx.preDictEditCandIdx = len(ctx.candidates) - 1
		ctx.pushDictEdit(ctx.md.dictKey())
	}
}

func (ctx *Context) commitSelection() {
	if len(ctx.candidates) == 0 {
		ctx.state = StateNone
		ctx.md = nil
		return
	}
	cand := ctx.candidates[ctx.candIndex]
	_ = ctx.dict.Register(ctx.md.dictKey(), cand)
	text := cand.Text
	if ctx.md.hasOkuri() {
		text += ctx.md.okuriKana()
	}
	ctx.output += text
	ctx.state = StateNone
	ctx.md = nil
	ctx.candidates = nil
	ctx.mainConv.Reset()
}

func (ctx *Context) purgeCandidate() {
	if len(ctx.candidates) == 0 {
		return
	}
	key := ctx.md.dictKey()
	cand := ctx.candidates[ctx.candIndex]
	_ = ctx.dict.Purge(key, cand)
	ctx.candidates = append(ctx.candidates[:ctx.candIndex], ctx.candidates[ctx.candIndex+1:]...)
	log.Info().Str("key", key).Str("candidate", cand.Text).Msg("purged candidate")
	if len(ctx.candidates) == 0 {
		ctx.state = StateNone
		ctx.md = nil
		return
	}
	if ctx.candIndex >= len(ctx.candidates) {
		ctx.candIndex = len(ctx.candidates) - 1
	}
}

// --- Kuten ---

func (ctx *Context) handleKuten(ev KeyEvent) bool {
	switch {
	case ev.Ctrl && (ev.Char == 'g' || ev.Char == 'G'):
		ctx.state = StateNone
		ctx.kuten = nil
		return true
	case ev.Ctrl:
		return true
	case ev.Enter:
		if ch, ok := ctx.kuten.resolve(); ok {
			ctx.output += ch
		}
		ctx.state = StateNone
		ctx.kuten = nil
		return true
	case ev.Delete:
		ctx.kuten.backspace()
		return true
	case ev.isPlain():
		ctx.kuten.feed(ev.Char)
		return true
	default:
		return true
	}
}
