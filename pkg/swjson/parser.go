/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package swjson

// maxDepth bounds container nesting. Firmware payloads nest two or three
// levels; the limit only guards against pathological input.
const maxDepth = 64

type parser struct {
	sc    *scanner
	depth int
}

// Parse reads one quasi-JSON value from data. Trailing whitespace is
// allowed; any other trailing content is a *ParseError.
func Parse(data []byte) (Value, error) {
	p := &parser{sc: newScanner(data)}

	tok, err := p.sc.next()
	if err != nil {
		return Value{}, err
	}

	v, err := p.parseValue(tok)
	if err != nil {
		return Value{}, err
	}

	tok, err = p.sc.next()
	if err != nil {
		return Value{}, err
	}

	if tok.kind != tokEOF {
		return Value{}, p.sc.errorf(tok.line, tok.col, "unexpected %s after value", tok.kind)
	}

	return v, nil
}

func (p *parser) parseValue(tok token) (Value, error) {
	switch tok.kind {
	case tokLBrace:
		return p.parseObject(tok)
	case tokLBracket:
		return p.parseArray(tok)
	case tokNumber:
		return Value{Type: TypeNumber, Num: tok.num}, nil
	case tokString, tokIdent:
		// Bareword values are taken as strings, same as the firmware's own
		// tolerant reader.
		return Value{Type: TypeString, Str: tok.text}, nil
	default:
		return Value{}, p.sc.errorf(tok.line, tok.col, "unexpected %s, expected a value", tok.kind)
	}
}

func (p *parser) parseObject(open token) (Value, error) {
	if p.depth++; p.depth > maxDepth {
		return Value{}, p.sc.errorf(open.line, open.col, "nesting too deep")
	}
	defer func() { p.depth-- }()

	obj := NewObject()

	tok, err := p.sc.next()
	if err != nil {
		return Value{}, err
	}

	for tok.kind != tokRBrace {
		if tok.kind != tokIdent && tok.kind != tokString {
			return Value{}, p.sc.errorf(tok.line, tok.col, "unexpected %s, expected an object key", tok.kind)
		}

		key := tok.text

		tok, err = p.sc.next()
		if err != nil {
			return Value{}, err
		}

		if tok.kind != tokColon {
			return Value{}, p.sc.errorf(tok.line, tok.col, "unexpected %s, expected ':'", tok.kind)
		}

		tok, err = p.sc.next()
		if err != nil {
			return Value{}, err
		}

		val, err := p.parseValue(tok)
		if err != nil {
			return Value{}, err
		}

		obj.Set(key, val)

		tok, err = p.sc.next()
		if err != nil {
			return Value{}, err
		}

		switch tok.kind {
		case tokComma:
			tok, err = p.sc.next()
			if err != nil {
				return Value{}, err
			}
		case tokRBrace:
		default:
			return Value{}, p.sc.errorf(tok.line, tok.col, "unexpected %s, expected ',' or '}'", tok.kind)
		}
	}

	return Value{Type: TypeObject, Obj: obj}, nil
}

func (p *parser) parseArray(open token) (Value, error) {
	if p.depth++; p.depth > maxDepth {
		return Value{}, p.sc.errorf(open.line, open.col, "nesting too deep")
	}
	defer func() { p.depth-- }()

	items := []Value{}

	tok, err := p.sc.next()
	if err != nil {
		return Value{}, err
	}

	for tok.kind != tokRBracket {
		val, err := p.parseValue(tok)
		if err != nil {
			return Value{}, err
		}

		items = append(items, val)

		tok, err = p.sc.next()
		if err != nil {
			return Value{}, err
		}

		switch tok.kind {
		case tokComma:
			tok, err = p.sc.next()
			if err != nil {
				return Value{}, err
			}
		case tokRBracket:
		default:
			return Value{}, p.sc.errorf(tok.line, tok.col, "unexpected %s, expected ',' or ']'", tok.kind)
		}
	}

	return Value{Type: TypeArray, Items: items}, nil
}
