package component

import (
	"strings"
	"unicode"
)

// DeriveName converts a file path into a human-readable display name.
// It takes the final path segment, strips the extension, breaks the stem on
// dashes, underscores, and camelCase boundaries, and title-cases each word.
//
//	DeriveName("skills/my-cool_skill.md") == "My Cool Skill"
//	DeriveName("agents/myAgentFile.py")   == "My Agent File"
//
// An empty filename segment yields an empty string.
func DeriveName(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	segments := strings.Split(p, "/")
	base := segments[len(segments)-1]

	// Strip the trailing extension.
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return ""
	}

	// Dashes and underscores become word breaks.
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")

	// Break camelCase at lower-to-upper transitions.
	var b strings.Builder
	runes := []rune(base)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		wr := []rune(w)
		wr[0] = unicode.ToUpper(wr[0])
		words[i] = string(wr)
	}
	return strings.Join(words, " ")
}
