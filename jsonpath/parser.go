package jsonpath

import "fmt"

// parser builds the step sequence for the top-level selector grammar:
// $ (.name | .* | ..selector | [bracket])*
type parser struct {
	lex *lexer
	tok token
}

func parseExpr(src string) ([]step, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokRoot {
		return nil, fmt.Errorf("%w: expression must start with '$'", ErrParse)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var steps []step
	for p.tok.kind != tokEOF {
		s, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		steps = append(steps, s...)
	}
	return steps, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseSelector consumes exactly one top-level selector token sequence and
// may return more than one step (".." always expands to a recursiveStep
// plus, when a selector directly follows, that selector's own step).
func (p *parser) parseSelector() ([]step, error) {
	switch p.tok.kind {
	case tokDot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseDottedSelector()
	case tokDotDot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		steps := []step{recursiveStep{}}
		switch p.tok.kind {
		case tokIdent:
			steps = append(steps, childStep{names: []string{p.tok.text}})
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokStar:
			steps = append(steps, wildcardStep{})
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokLBracket:
			s, err := p.parseBracket()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)
		}
		return steps, nil
	case tokLBracket:
		s, err := p.parseBracket()
		if err != nil {
			return nil, err
		}
		return []step{s}, nil
	default:
		return nil, fmt.Errorf("%w: expected '.', '..' or '[' in path expression", ErrParse)
	}
}

// parseDottedSelector handles what follows a single ".": a bare member name
// or "*".
func (p *parser) parseDottedSelector() ([]step, error) {
	switch p.tok.kind {
	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []step{childStep{names: []string{name}}}, nil
	case tokStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []step{wildcardStep{}}, nil
	default:
		return nil, fmt.Errorf("%w: expected a member name or '*' after '.'", ErrParse)
	}
}

// parseBracket consumes a "[...]" selector: "[*]", a name union, an index
// union, a slice, or a "[?(...)]" filter. The leading "[" has already been
// matched by the caller's peek; here we consume it.
func (p *parser) parseBracket() (step, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	switch p.tok.kind {
	case tokStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.expectCloseBracket(wildcardStep{})
	case tokQuestion:
		return p.parseFilterBracket()
	case tokString:
		return p.parseNameUnion()
	case tokNumber, tokColon:
		return p.parseIndexOrSlice()
	default:
		return nil, fmt.Errorf("%w: unsupported bracket selector", ErrParse)
	}
}

func (p *parser) expectCloseBracket(s step) (step, error) {
	if p.tok.kind != tokRBracket {
		return nil, fmt.Errorf("%w: expected ']'", ErrParse)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) parseNameUnion() (step, error) {
	var names []string
	for {
		if p.tok.kind != tokString {
			return nil, fmt.Errorf("%w: expected a quoted name", ErrParse)
		}
		names = append(names, p.tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return p.expectCloseBracket(childStep{names: names})
}

// parseIndexOrSlice disambiguates "[0]", "[0,2,-1]" and "[start:end:step]"
// by looking for a colon after the first optional number.
func (p *parser) parseIndexOrSlice() (step, error) {
	var first *int
	if p.tok.kind == tokNumber {
		i, err := parseIntLiteral(p.tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: expected an integer index", ErrParse)
		}
		first = &i
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if p.tok.kind == tokColon {
		return p.parseSliceTail(first)
	}

	if first == nil {
		return nil, fmt.Errorf("%w: expected an index or slice", ErrParse)
	}
	indices := []int{*first}
	for p.tok.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokNumber {
			return nil, fmt.Errorf("%w: expected an integer index", ErrParse)
		}
		i, err := parseIntLiteral(p.tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: expected an integer index", ErrParse)
		}
		indices = append(indices, i)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return p.expectCloseBracket(indexStep{indices: indices})
}

func (p *parser) parseSliceTail(start *int) (step, error) {
	if err := p.advance(); err != nil { // consume ':'
		return nil, err
	}
	var end *int
	if p.tok.kind == tokNumber {
		i, err := parseIntLiteral(p.tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: expected an integer slice bound", ErrParse)
		}
		end = &i
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	hasStep := false
	stepSize := 1
	if p.tok.kind == tokColon {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokNumber {
			i, err := parseIntLiteral(p.tok.text)
			if err != nil {
				return nil, fmt.Errorf("%w: expected an integer step", ErrParse)
			}
			hasStep = true
			stepSize = i
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return p.expectCloseBracket(sliceStep{start: start, end: end, hasStep: hasStep, stepSize: stepSize})
}

func (p *parser) parseFilterBracket() (step, error) {
	if err := p.advance(); err != nil { // consume '?'
		return nil, err
	}
	if p.tok.kind != tokLParen {
		return nil, fmt.Errorf("%w: expected '(' after '?'", ErrParse)
	}

	// The filter body is re-lexed as its own sub-expression starting from
	// the current rune position so nested parens, strings and operators
	// are handled by the shared filter grammar rather than hand-matched.
	bodyStart := p.lex.pos - 1 // position of the '(' we just consumed via advance()
	depth := 0
	i := bodyStart
	runes := p.lex.input
	for ; i < len(runes); i++ {
		switch runes[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				i++
				goto found
			}
		case '\'', '"':
			quote := runes[i]
			i++
			for i < len(runes) && runes[i] != quote {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
		}
	}
	return nil, fmt.Errorf("%w: unterminated filter expression", ErrParse)

found:
	body := string(runes[bodyStart+1 : i-1])
	expr, err := parseFilterExpr(body)
	if err != nil {
		return nil, err
	}

	p.lex.pos = i
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.expectCloseBracket(filterStep{expr: expr})
}
