package guidance

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxInterpolatedRunes caps user text copied into generated documents.
const MaxInterpolatedRunes = 200

// Sanitize prepares user-supplied text for interpolation into returned
// documents: whitespace runs collapse to one space, control characters are
// dropped, the result is truncated and HTML-escaped.
func Sanitize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	if runes := []rune(s); len(runes) > MaxInterpolatedRunes {
		s = string(runes[:MaxInterpolatedRunes]) + "…"
	}
	return html.EscapeString(s)
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	// cases.Caser keeps state, so one per call.
	return cases.Title(language.English).String(s)
}

// Render executes t with data and trims surrounding whitespace.
func Render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
