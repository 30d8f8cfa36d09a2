package document

import (
	"errors"
	"testing"
)

func TestParseScalars(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		kind  Kind
	}{
		{"null", `null`, KindNull},
		{"true", `true`, KindBool},
		{"false", `false`, KindBool},
		{"integer", `5`, KindNumber},
		{"negative", `-5`, KindNumber},
		{"fraction", `5.25`, KindNumber},
		{"exponent", `1e10`, KindNumber},
		{"negative exponent", `1.5e-3`, KindNumber},
		{"string", `"hi"`, KindString},
		{"empty array", `[]`, KindArray},
		{"empty object", `{}`, KindObject},
	} {
		t.Run(test.name, func(t *testing.T) {
			v, err := Parse([]byte(test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind() != test.kind {
				t.Errorf("expected kind %v got %v", test.kind, v.Kind())
			}
		})
	}
}

func TestParseEmptyInputReturnsEmptyObject(t *testing.T) {
	v, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != KindObject || v.Len() != 0 {
		t.Errorf("expected empty object for empty input (permissive legacy behavior), got %v", v.Kind())
	}
}

func TestParseObjectWithMembers(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": [1,2,3], "c": {"d": null}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := v.Key("a").AsNumber()
	if a != 1 {
		t.Errorf("expected a=1 got %v", a)
	}
	if v.Key("b").Len() != 3 {
		t.Errorf("expected b to have 3 elements, got %d", v.Key("b").Len())
	}
	if !v.Key("c").Key("d").IsNull() {
		t.Error("expected c.d to be null")
	}
}

func TestParseEscapeStability(t *testing.T) {
	// "\n" in source text must live in memory as a single newline byte.
	v, err := Parse([]byte(`"a\nb"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := v.AsString()
	if s != "a\nb" {
		t.Errorf("expected decoded newline, got %q", s)
	}
}

func TestParseAllNamedEscapes(t *testing.T) {
	v, err := Parse([]byte(`"\"\\\/\b\f\n\r\t"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := v.AsString()
	if s != "\"\\/\b\f\n\r\t" {
		t.Errorf("unexpected decoded string %q", s)
	}
}

func TestParseUnknownEscapePassesThroughVerbatim(t *testing.T) {
	v, err := Parse([]byte(`"\x"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := v.AsString()
	if s != "x" {
		t.Errorf("expected unknown escape to decode to bare char, got %q", s)
	}
}

func TestParseUnicodeEscape(t *testing.T) {
	// \x5c is a backslash, so the input is the JSON escape \u plus "00e9".
	v, err := Parse([]byte("\"\x5cu00e9\""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := v.AsString()
	if s != "é" {
		t.Errorf("expected decoded é, got %q", s)
	}
}

func TestParseUnicodeSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as a UTF-16 surrogate pair.
	v, err := Parse([]byte("\"\x5cud83d\x5cude00\""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := v.AsString()
	if s != "😀" {
		t.Errorf("expected decoded emoji, got %q", s)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"missing closing brace", `{"a": 1`},
		{"missing closing bracket", `[1, 2`},
		{"stray comma", `{,"a":1}`},
		{"trailing comma object", `{"a":1,}`},
		{"trailing comma array", `[1,2,]`},
		{"misplaced colon", `{"a":"b":1}`},
		{"unterminated string", `"abc`},
		{"bad literal", `tru`},
		{"bad number", `1.`},
		{"bare word", `hello`},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.input))
			if err == nil {
				t.Error("expected parse error, got none")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseRejectsOversizedInput(t *testing.T) {
	big := make([]byte, maxInputBytes+1)
	for i := range big {
		big[i] = ' '
	}
	_, err := Parse(big)
	if err == nil {
		t.Error("expected error for oversized input")
	}
}

func TestParseAcceptsTrailingDataNonFatally(t *testing.T) {
	v, err := Parse([]byte(`1 garbage`))
	if err != nil {
		t.Fatalf("expected trailing garbage to be non-fatal, got %v", err)
	}
	n, _ := v.AsNumber()
	if n != 1 {
		t.Errorf("expected parsed prefix 1, got %v", n)
	}
}

func TestParseLenientSwallowsErrors(t *testing.T) {
	v := ParseLenient([]byte(`{not json`))
	if v.Kind() != KindObject || v.Len() != 0 {
		t.Errorf("expected empty object on parse failure, got %v", v.Kind())
	}
}

func TestParseRejectsExcessiveNesting(t *testing.T) {
	var sb []byte
	for i := 0; i < maxDepth+10; i++ {
		sb = append(sb, '[')
	}
	_, err := Parse(sb)
	if err == nil {
		t.Error("expected depth-guard error for pathologically nested array")
	}
}
