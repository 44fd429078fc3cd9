package log

import (
	"fmt"
	"strconv"
	"strings"
)

// templateToken is either a literal text or a property hole of a message template.
type templateToken struct {
	// text is the literal text, or the raw hole (braces included) for properties.
	text     string
	property string
	index    int
}

func (t templateToken) isProperty() bool {
	return t.property != ""
}

// parseTemplate splits a message template like "Started {Name} in {Duration}ms"
// into literal and property tokens. Malformed holes are kept as text.
func parseTemplate(tpl string) []templateToken {
	tokens := make([]templateToken, 0)

	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			tokens = append(tokens, templateToken{text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(tpl); {
		c := tpl[i]

		switch {
		case c == '{' && i+1 < len(tpl) && tpl[i+1] == '{':
			text.WriteByte('{')

			i += 2
		case c == '}' && i+1 < len(tpl) && tpl[i+1] == '}':
			text.WriteByte('}')

			i += 2
		case c == '{':
			end := strings.IndexByte(tpl[i+1:], '}')
			// Unterminated hole
			if end < 0 {
				text.WriteString(tpl[i:])

				i = len(tpl)

				continue
			}

			raw := tpl[i : i+end+2]

			name, ok := parseHoleName(raw[1 : len(raw)-1])
			if !ok {
				text.WriteString(raw)
			} else {
				flushText()

				tok := templateToken{text: raw, property: name, index: -1}
				if idx, err := strconv.Atoi(name); err == nil {
					tok.index = idx
				}

				tokens = append(tokens, tok)
			}

			i += len(raw)
		default:
			text.WriteByte(c)

			i++
		}
	}

	flushText()

	return tokens
}

// parseHoleName extracts the property name of "@Name,-10:format".
func parseHoleName(hole string) (string, bool) {
	hole = strings.TrimPrefix(strings.TrimPrefix(hole, "@"), "$")

	if i := strings.IndexAny(hole, ",:"); i >= 0 {
		hole = hole[:i]
	}

	if hole == "" {
		return "", false
	}

	for _, r := range hole {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'

		if !isLetter && !isDigit && r != '_' {
			return "", false
		}
	}

	return hole, true
}

// renderTemplate binds propertyValues to the template holes and returns the
// rendered message with the bound properties.
// When every hole is numeric, holes bind by index. Otherwise every hole, numeric
// ones included, binds in order of first appearance of its name.
// Values bound to no hole are returned as "__N" properties.
func renderTemplate(tpl string, propertyValues []interface{}) (string, map[string]interface{}) {
	tokens := parseTemplate(tpl)
	fields := map[string]interface{}{}
	named := map[string]int{}
	bound := make([]bool, len(propertyValues))
	byIndex := allNumeric(tokens)

	var sb strings.Builder

	for _, tok := range tokens {
		if !tok.isProperty() {
			sb.WriteString(tok.text)

			continue
		}

		pos := tok.index
		if !byIndex {
			p, ok := named[tok.property]
			if !ok {
				p = len(named)
				named[tok.property] = p
			}

			pos = p
		}

		if pos >= len(propertyValues) {
			sb.WriteString(tok.text)

			continue
		}

		bound[pos] = true
		fields[tok.property] = propertyValues[pos]

		sb.WriteString(fmt.Sprint(propertyValues[pos]))
	}

	extra := 0

	for i, b := range bound {
		if !b {
			fields["__"+strconv.Itoa(extra)] = propertyValues[i]
			extra++
		}
	}

	return sb.String(), fields
}

func allNumeric(tokens []templateToken) bool {
	found := false

	for _, tok := range tokens {
		if !tok.isProperty() {
			continue
		}

		if tok.index < 0 {
			return false
		}

		found = true
	}

	return found
}
