package skk

import "strings"

// KeyEvent is a single normalized keystroke, as produced by ParseKeyEvents.
type KeyEvent struct {
	Tab    bool
	Enter  bool
	Delete bool // backspace / DEL
	Ctrl   bool
	Char   byte // the literal character; for Ctrl events, the control letter
}

// ParseKeyEvents splits a space-separated token string into KeyEvents. The
// token grammar matches the one used throughout context.c's test fixtures:
// "SPC" for space, the literal two-character spelling "\t"/"\n" for tab and
// enter, the literal four-character spelling "\x7F" for delete, "C-<c>" for
// a control chord (with "C-h"/"C-m" normalized to Delete/Enter, the
// universal aliases spec.md documents for them), and any other single
// character taken literally.
func ParseKeyEvents(s string) []KeyEvent {
	fields := strings.Fields(s)
	events := make([]KeyEvent, 0, len(fields))
	for _, tok := range fields {
		if ev, ok := parseToken(tok); ok {
			events = append(events, ev)
		}
	}
	return events
}

func parseToken(tok string) (KeyEvent, bool) {
	switch tok {
	case "SPC":
		return KeyEvent{Char: ' '}, true
	case `\t`:
		return KeyEvent{Tab: true, Char: '\t'}, true
	case `\n`:
		return KeyEvent{Enter: true, Char: '\n'}, true
	case `\x7F`:
		return KeyEvent{Delete: true, Char: 0x7F}, true
	}
	if len(tok) == 3 && tok[0] == 'C' && tok[1] == '-' {
		switch tok[2] {
		case 'h':
			// C-h is a universal alias for delete.
			return KeyEvent{Delete: true, Char: 0x7F}, true
		case 'm':
			// C-m is a universal alias for commit (carriage return).
			return KeyEvent{Enter: true, Char: '\n'}, true
		}
		return KeyEvent{Ctrl: true, Char: tok[2]}, true
	}
	if len(tok) == 1 {
		return KeyEvent{Char: tok[0]}, true
	}
	return KeyEvent{}, false
}

func (e KeyEvent) isUpper() bool {
	return !e.Ctrl && !e.Tab && !e.Enter && !e.Delete && e.Char >= 'A' && e.Char <= 'Z'
}

func (e KeyEvent) isLower() bool {
	return !e.Ctrl && !e.Tab && !e.Enter && !e.Delete && e.Char >= 'a' && e.Char <= 'z'
}

func (e KeyEvent) lower() byte {
	if e.Char >= 'A' && e.Char <= 'Z' {
		return e.Char - 'A' + 'a'
	}
	return e.Char
}

func (e KeyEvent) isPlain() bool {
	return !e.Ctrl && !e.Tab && !e.Enter && !e.Delete
}
