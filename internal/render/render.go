// Package render substitutes named placeholders in template bodies.
// Both {name} and {{name}} token forms are recognized.
package render

import (
	"regexp"
	"strings"
)

// PreviewMarker replaces unmatched placeholders in UI previews.
const PreviewMarker = "…"

var placeholder = regexp.MustCompile(`\{\{?[a-zA-Z0-9_]+\}?\}`)

// Render replaces every occurrence of each variable's placeholder with its
// value. Placeholders with no matching variable are left as literal text;
// this is the behavior of the delivery path.
func Render(body string, vars map[string]string) string {
	out := body
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// Preview renders like Render but replaces any placeholder that has no
// matching variable with a visible marker. Used only for UI display,
// never on the delivery path.
func Preview(body string, vars map[string]string) string {
	return placeholder.ReplaceAllString(Render(body, vars), PreviewMarker)
}
