package retro

import (
	"strings"
	"unicode"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/gogpu/retro/internal/builtin"
)

// Input holds the text input policy of an Engine.
type Input struct {
	filterText bool
}

func newInput(filterText bool) Input {
	return Input{filterText: filterText}
}

// FilterText reports whether text input is restricted to drawable runes.
func (in Input) FilterText() bool { return in.filterText }

// replacementRune stands in for a Latin or Common script rune the built-in
// font has no glyph for.
const replacementRune = '?'

// Filter returns s unchanged unless text filtering is enabled. When it is,
// the result only contains runes the built-in font can draw:
//
//   - fullwidth and halfwidth forms are folded to their canonical width
//   - accented letters are decomposed and lose their combining marks
//   - remaining Latin and Common script runes become '?'
//   - control runes and runes from any other script are dropped
func (in Input) Filter(s string) string {
	if !in.filterText {
		return s
	}

	s = norm.NFD.String(width.Fold.String(s))

	var b strings.Builder
	b.Grow(len(s))
	dropped := 0
	for _, r := range s {
		switch {
		case drawable(r):
			b.WriteRune(r)
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case unicode.IsControl(r):
			dropped++
		default:
			switch language.LookupScript(r) {
			case language.Latin, language.Common:
				b.WriteRune(replacementRune)
			default:
				dropped++
			}
		}
	}
	if dropped > 0 {
		Logger().Debug("retro: dropped undrawable text input", "runes", dropped)
	}
	return b.String()
}

// drawable reports whether the built-in font has a glyph for r.
func drawable(r rune) bool {
	return r >= builtin.FontFirstRune && r < builtin.FontFirstRune+rune(len(builtin.FontData))
}
