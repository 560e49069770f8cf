// Command skkline is a minimal line editor that demonstrates wiring the
// skk conversion engine into github.com/nyaosorg/go-readline-ny. Unlike
// the teacher binding (hymkor-go-readline-skk), which swaps the whole
// keymap between a bare-Latin map and a hiragana-romaji map by hand,
// every key here is always forwarded to a skk.Context and the engine's
// own InputMode decides whether a keystroke is direct Latin passthrough
// or romaji conversion. The line editor only knows how to turn a
// physical keystroke into the token grammar skk.ParseKeyEvents expects
// and how to redraw whatever the engine just produced.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	rl "github.com/nyaosorg/go-readline-ny"
	"github.com/nyaosorg/go-readline-ny/keys"

	skk "github.com/atanigu/libskk"
	"github.com/atanigu/libskk/dict"
)

// lineMode pairs a conversion Context with the position in the current
// line where its live, uncommitted region (already-committed-this-turn
// output plus preedit) begins.
type lineMode struct {
	ctx    *skk.Context
	anchor int
}

func newLineMode(d dict.Dictionary) *lineMode {
	return &lineMode{ctx: skk.New(d)}
}

// redraw asks the engine what changed since the last keystroke and
// repaints the live region of the buffer with it. Output is the part
// that is now permanently committed, so the anchor advances past it;
// preedit is redrawn fresh every time.
func (m *lineMode) redraw(B *rl.Buffer) {
	out := m.ctx.GetOutput()
	pre := m.ctx.GetPreedit()
	B.ReplaceAndRepaint(m.anchor, out+pre)
	m.anchor += len([]rune(out))
}

// feed returns a command that forwards token to the engine and redraws.
func (m *lineMode) feed(token string) func(context.Context, *rl.Buffer) rl.Result {
	return func(_ context.Context, B *rl.Buffer) rl.Result {
		m.ctx.ProcessKeyEvents(token)
		m.redraw(B)
		return rl.CONTINUE
	}
}

// enter commits an in-progress conversion (preedit non-empty) instead of
// submitting the line; a second Enter with nothing pending submits.
func (m *lineMode) enter(_ context.Context, B *rl.Buffer) rl.Result {
	if m.ctx.GetPreedit() != "" {
		m.ctx.ProcessKeyEvents(`\n`)
		m.redraw(B)
		return rl.CONTINUE
	}
	return rl.ENTER
}

func bindSKK(editor *rl.Editor, m *lineMode) {
	for c := rune(0x21); c <= 0x7E; c++ {
		token := string(c)
		editor.BindKey(keys.Code(token), &rl.GoCommand{
			Name: "SKK_KEY_" + token,
			Func: m.feed(token),
		})
	}
	editor.BindKey(keys.Code(" "), &rl.GoCommand{Name: "SKK_SPACE", Func: m.feed("SPC")})
	editor.BindKey(keys.Tab, &rl.GoCommand{Name: "SKK_TAB", Func: m.feed(`\t`)})
	editor.BindKey(keys.Backspace, &rl.GoCommand{Name: "SKK_BACKSPACE", Func: m.feed(`\x7F`)})
	editor.BindKey(keys.Delete, &rl.GoCommand{Name: "SKK_DELETE", Func: m.feed(`\x7F`)})
	editor.BindKey(keys.CtrlG, &rl.GoCommand{Name: "SKK_CANCEL", Func: m.feed("C-g")})
	editor.BindKey(keys.CtrlJ, &rl.GoCommand{Name: "SKK_LATIN_ESCAPE", Func: m.feed("C-j")})
	editor.BindKey(keys.Enter, &rl.GoCommand{Name: "SKK_ENTER", Func: m.enter})
}

func jisyoPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skkline.yaml"
	}
	return filepath.Join(home, ".skkline.yaml")
}

func main() {
	sys := dict.NewSystemDict()
	path := jisyoPath()
	user, err := dict.LoadJisyoFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "skkline: loading user dictionary:", err)
		user, _ = dict.LoadJisyoFile(filepath.Join(os.TempDir(), "skkline-fallback.yaml"))
	}
	d := dict.NewChainDictionary(user, sys)

	editor := &rl.Editor{
		PromptWriter: func(w io.Writer) (int, error) {
			return fmt.Fprint(w, "skk> ")
		},
		Writer: os.Stdout,
	}
	bindSKK(editor, newLineMode(d))

	for {
		line, err := editor.ReadLine(context.Background())
		if err != nil {
			break
		}
		fmt.Println(line)
		if err := user.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "skkline: saving user dictionary:", err)
		}
	}
}
