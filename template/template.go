// Package template renders prompt templates containing {{$name}}
// variable placeholders.
//
// Rendering replaces every placeholder whose name appears in the
// argument map and leaves the rest of the text, including placeholders
// with no supplied argument, byte-for-byte unchanged.
package template

import "strings"

// Render substitutes {{$name}} placeholders in tmpl from args.
// Placeholders accept optional surrounding whitespace ({{ $name }}).
// Anything that does not parse as a placeholder is literal text.
func Render(tmpl string, args map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		open := strings.Index(tmpl[i:], "{{")
		if open < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		open += i
		b.WriteString(tmpl[i:open])

		name, end, ok := parsePlaceholder(tmpl, open)
		if !ok {
			b.WriteString("{{")
			i = open + 2
			continue
		}

		if value, supplied := args[name]; supplied {
			b.WriteString(value)
		} else {
			b.WriteString(tmpl[open:end])
		}
		i = end
	}

	return b.String()
}

// Variables returns the distinct placeholder names in tmpl, in order of
// first appearance.
func Variables(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)

	for i := 0; i < len(tmpl); {
		open := strings.Index(tmpl[i:], "{{")
		if open < 0 {
			break
		}
		open += i

		name, end, ok := parsePlaceholder(tmpl, open)
		if !ok {
			i = open + 2
			continue
		}

		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i = end
	}

	return names
}

// parsePlaceholder reads a {{$name}} placeholder starting at the "{{"
// at position open. It returns the variable name and the index just
// past the closing "}}".
func parsePlaceholder(s string, open int) (name string, end int, ok bool) {
	i := open + 2

	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != '$' {
		return "", 0, false
	}
	i++

	start := i
	for i < len(s) && isIdent(s[i]) {
		i++
	}
	if i == start {
		return "", 0, false
	}
	name = s[start:i]

	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i+1 >= len(s) || s[i] != '}' || s[i+1] != '}' {
		return "", 0, false
	}

	return name, i + 2, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isIdent(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
