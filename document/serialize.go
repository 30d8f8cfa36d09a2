package document

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Serialize renders v as compact canonical JSON: no inter-token whitespace,
// object keys sorted lexicographically ascending.
func Serialize(v *Value) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v, 0, false); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SerializePretty renders v as canonical pretty JSON: two-space indent per
// nesting level, a newline between members, a space after ':' and after
// ','. This is the on-disk document format (spec.md §6).
func SerializePretty(v *Value) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v, 0, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeValue(sb *strings.Builder, v *Value, depth int, pretty bool) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting exceeds %d", ErrDepth, maxDepth)
	}
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.boolean {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(formatNumber(v.number))
	case KindString:
		writeQuotedString(sb, v.str)
	case KindArray:
		return writeArray(sb, v, depth, pretty)
	case KindObject:
		return writeObject(sb, v, depth, pretty)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrType, v.Kind())
	}
	return nil
}

func writeArray(sb *strings.Builder, v *Value, depth int, pretty bool) error {
	if len(v.arr) == 0 {
		sb.WriteString("[]")
		return nil
	}
	sb.WriteByte('[')
	for i, e := range v.arr {
		if i > 0 {
			sb.WriteByte(',')
		}
		if pretty {
			sb.WriteByte('\n')
			writeIndent(sb, depth+1)
		}
		if err := writeValue(sb, e, depth+1, pretty); err != nil {
			return err
		}
	}
	if pretty {
		sb.WriteByte('\n')
		writeIndent(sb, depth)
	}
	sb.WriteByte(']')
	return nil
}

func writeObject(sb *strings.Builder, v *Value, depth int, pretty bool) error {
	if len(v.obj) == 0 {
		sb.WriteString("{}")
		return nil
	}

	keys := make([]string, len(v.obj))
	for i, p := range v.obj {
		keys[i] = p.key
	}
	sort.Strings(keys)

	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		if pretty {
			sb.WriteByte('\n')
			writeIndent(sb, depth+1)
		}
		writeQuotedString(sb, k)
		sb.WriteByte(':')
		if pretty {
			sb.WriteByte(' ')
		}
		val, _ := v.Member(k)
		if err := writeValue(sb, val, depth+1, pretty); err != nil {
			return err
		}
	}
	if pretty {
		sb.WriteByte('\n')
		writeIndent(sb, depth)
	}
	sb.WriteByte('}')
	return nil
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

// formatNumber implements spec.md §3's integer/general rule: a number equal
// to its truncation to a 64-bit signed integer prints in integer form,
// otherwise it prints in a short general-format representation.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && n >= -9223372036854775808 && n < 9223372036854775808 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// ScalarText renders a null, boolean, number, or string value the way the
// "get" CLI verb prints a raw scalar result: unquoted, one line, with
// numbers in the same integer-or-general form Serialize uses. ok is false
// for an array or object, which have no raw scalar form.
func ScalarText(v *Value) (text string, ok bool) {
	switch v.Kind() {
	case KindNull:
		return "null", true
	case KindBool:
		if v.boolean {
			return "true", true
		}
		return "false", true
	case KindNumber:
		return formatNumber(v.number), true
	case KindString:
		return v.str, true
	default:
		return "", false
	}
}

// writeQuotedString writes s as a JSON string literal: the inverse of the
// parser's decoding. Control characters below 0x20 with no named escape are
// emitted as \u00XX in lowercase hex.
func writeQuotedString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xF])
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
}
