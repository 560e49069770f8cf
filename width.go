package skk

import "golang.org/x/text/width"

// widenASCII renders plain ASCII as fullwidth ("wide Latin") form, used by
// InputMode WideLatin.
func widenASCII(s string) string {
	return width.Widen.String(s)
}

// narrowKana renders fullwidth katakana as halfwidth katakana; hiragana has
// no halfwidth form and is left unchanged. commitMidashiHankaku converts the
// headword to katakana before passing it here.
func narrowKana(s string) string {
	return width.Narrow.String(s)
}
