package nlp

import (
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`http\S+`)
	markupPattern = regexp.MustCompile(`\[removed\]|\[deleted\]`)
	charPattern   = regexp.MustCompile(`[^a-z0-9\s.,!?']`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Normalize limpia el texto crudo de un post: minúsculas, sin URLs ni tokens
// de markup, solo [a-z0-9 .,!?'] y espacios colapsados.
// Puede devolver cadena vacía; ese post se marca skipped más arriba.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ToLower(text)
	t = urlPattern.ReplaceAllString(t, "")
	t = markupPattern.ReplaceAllString(t, "")
	t = charPattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(t, " "))
}
