// Package entries contains entry unification and listing use cases.
package entries

import (
	"strings"

	"github.com/spendview/backend/internal/domain/entity"
)

// CleanedCategory is the result of stripping a leading emoji glyph from a
// raw category label.
type CleanedCategory struct {
	Name    string
	RawName string
	Emoji   string
}

// CleanCategoryName strips a single leading emoji glyph and surrounding
// whitespace from a raw category label. The glyph may span several runes
// (variation selectors, skin-tone modifiers, ZWJ sequences). Cleaning an
// already-clean name returns the same name unchanged; an empty result
// falls back to the default expense category.
func CleanCategoryName(raw string) CleanedCategory {
	trimmed := strings.TrimSpace(raw)

	emoji, rest := splitLeadingEmoji(trimmed)
	name := strings.TrimSpace(rest)
	if name == "" {
		name = entity.DefaultExpenseCategory
	}

	return CleanedCategory{
		Name:    name,
		RawName: raw,
		Emoji:   emoji,
	}
}

const (
	zeroWidthJoiner    rune = 0x200d
	variationSelector  rune = 0xfe0f
	skinToneModifierLo rune = 0x1f3fb
	skinToneModifierHi rune = 0x1f3ff
)

// splitLeadingEmoji returns the leading emoji glyph (possibly empty) and
// the remainder of the string.
func splitLeadingEmoji(s string) (string, string) {
	runes := []rune(s)
	if len(runes) == 0 || !isEmojiRune(runes[0]) {
		return "", s
	}

	i := 1
	for i < len(runes) {
		switch {
		case runes[i] == variationSelector:
			i++
		case runes[i] >= skinToneModifierLo && runes[i] <= skinToneModifierHi:
			i++
		case runes[i] == zeroWidthJoiner && i+1 < len(runes) && isEmojiRune(runes[i+1]):
			i += 2
		default:
			return string(runes[:i]), string(runes[i:])
		}
	}
	return string(runes), ""
}

// emojiRanges covers the pictographic blocks the platform uses for
// category emojis.
var emojiRanges = [][2]rune{
	{0x1f1e6, 0x1f1ff}, // regional indicators
	{0x1f300, 0x1f5ff}, // symbols & pictographs
	{0x1f600, 0x1f64f}, // emoticons
	{0x1f680, 0x1f6ff}, // transport & map
	{0x1f900, 0x1f9ff}, // supplemental symbols
	{0x1fa70, 0x1faff}, // symbols extended-A
	{0x2600, 0x26ff},   // miscellaneous symbols
	{0x2700, 0x27bf},   // dingbats
	{0x2b00, 0x2bff},   // arrows & stars
}

func isEmojiRune(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
