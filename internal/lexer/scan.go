package lexer

// scanIdentifier scans an identifier or keyword.
//
// RULES:
// - The first rune has already been checked (ASCII letter, '_' or XID_Start)
// - Continues with ASCII letters, digits and '_', or any XID_Continue rune
// - Reserved words and type names map to their own kinds
// - Otherwise the kind is TokenIdentifierUnicode if any non-ASCII rune was
//   consumed, TokenIdentifierASCII if not
func (l *Lexer) scanIdentifier(seenUnicode bool) Token {
	for !l.isAtEnd() {
		c := l.source[l.pos]
		if c < 0x80 {
			if !isASCIIAlnum(c) && c != '_' {
				break
			}
			l.advanceByte()
			continue
		}
		if r, _ := l.peekRune(); !IsXIDContinue(r) {
			break
		}
		seenUnicode = true
		l.advanceRune()
	}

	text := l.source[l.start.Offset:l.pos]
	if kind, ok := LookupKeyword(text); ok {
		return l.makeToken(kind)
	}
	if seenUnicode {
		return l.makeToken(TokenIdentifierUnicode)
	}
	return l.makeToken(TokenIdentifierASCII)
}

// scanNumber scans a decimal numeric literal.
//
// SUPPORTED FORMATS:
// - Integers with '_' separators: 42, 1_000_000
// - Floats: 3.14 (the '.' is consumed only when a digit follows it)
// - Scientific notation: 1e10, 2.5E-3
// - Type suffixes: 42u, 7U, 8i8, 10u32, 3.0f64
//
// The trailing-dot rule makes "123.toString" lex as NUMERIC DOT IDENTIFIER.
// Neither the exponent nor the suffix digits are validated: "1e", "1e+" and
// "1i17" are each a single NUMERIC.
func (l *Lexer) scanNumber() Token {
	// Integer part
	l.consumeWhile(isDigitOrUnderscore)

	// Fractional part
	if l.peekByte(0) == '.' && isDigit(l.peekByte(1)) {
		l.advanceByte()
		l.consumeWhile(isDigitOrUnderscore)
	}

	// Exponent: e/E and an optional sign are taken even when no digit
	// follows, so "1e" and "1e+" are single (malformed) NUMERIC tokens.
	if c := l.peekByte(0); c == 'e' || c == 'E' {
		l.advanceByte()
		if sign := l.peekByte(0); sign == '+' || sign == '-' {
			l.advanceByte()
		}
		l.consumeWhile(isDigit)
	}

	// Type suffix
	s, s1 := l.peekByte(0), l.peekByte(1)
	bareUnsigned := (s == 'u' || s == 'U') && !isASCIIAlnum(s1)
	sized := (s == 'i' || s == 'u' || s == 'f') && isDigit(s1)
	if bareUnsigned || sized {
		l.advanceByte()
		l.consumeWhile(isDigit)
	}

	return l.makeToken(TokenNumeric)
}

// scanHashNumber scans a '#'-prefixed binary, octal or hexadecimal literal.
//
// EXAMPLES: #b1010, #o755u, #xDEAD_BEEFu
//
// A '#' followed by any other byte is an error covering '#' and that
// codepoint. A valid tag without a digit after it is an error covering just
// the two prefix bytes; whatever follows is lexed again by the next call.
func (l *Lexer) scanHashNumber() Token {
	l.advanceByte() // '#'
	if l.isAtEnd() {
		return l.errorToken()
	}

	switch l.peekByte(0) {
	case 'b':
		return l.scanRadix(TokenBinary, isBinaryDigit)
	case 'o':
		return l.scanRadix(TokenOctal, isOctalDigit)
	case 'x':
		return l.scanRadix(TokenHexadecimal, isHexDigit)
	}

	l.advanceRune()
	return l.errorToken()
}

// scanRadix scans the digits after a '#b', '#o' or '#x' tag. The cursor is
// on the tag byte.
func (l *Lexer) scanRadix(kind TokenKind, isRadixDigit func(byte) bool) Token {
	l.advanceByte() // tag
	if l.isAtEnd() || !isRadixDigit(l.peekByte(0)) {
		return l.errorToken()
	}
	l.consumeWhile(func(c byte) bool { return isRadixDigit(c) || c == '_' })

	// 'u' and 'U' are never digits in any radix, so they end the digit run.
	if s := l.peekByte(0); (s == 'u' || s == 'U') && !isASCIIAlnum(l.peekByte(1)) {
		l.advanceByte()
	}
	return l.makeToken(kind)
}

// scanString scans a double-quoted string literal.
//
// Escapes are skipped, not interpreted. A newline or carriage return ends an
// unterminated literal without being consumed; the literal still lexes as
// TokenStringLiteral and the parser is left to reject it. Other runes are
// consumed whole so multi-byte characters never split.
func (l *Lexer) scanString() Token {
	l.advanceByte() // opening '"'

	for !l.isAtEnd() {
		switch l.peekByte(0) {
		case '"':
			l.advanceByte()
			return l.makeToken(TokenStringLiteral)
		case '\\':
			l.advanceByte()
			l.skipEscape()
		case '\n', '\r':
			return l.makeToken(TokenStringLiteral)
		default:
			l.advanceRune()
		}
	}
	return l.makeToken(TokenStringLiteral)
}

// scanChar scans a single-quoted character literal: an opening quote, one
// escape or codepoint, and a closing quote if present.
//
// EXAMPLES: 'a', '\n', 'é', '\u00E9'
func (l *Lexer) scanChar() Token {
	l.advanceByte() // opening '\''

	if !l.isAtEnd() {
		if l.peekByte(0) == '\\' {
			l.advanceByte()
			l.skipEscape()
		} else {
			l.advanceRune()
		}
	}

	if l.peekByte(0) == '\'' {
		l.advanceByte()
	}
	return l.makeToken(TokenCharLiteral)
}

// skipEscape consumes the escape body after a backslash.
//
// \u takes up to 4 hex digits and \U up to 8; every other escape is the
// single codepoint after the backslash.
func (l *Lexer) skipEscape() {
	if l.isAtEnd() {
		return
	}
	switch l.advanceRune() {
	case 'u':
		l.skipHexDigits(4)
	case 'U':
		l.skipHexDigits(8)
	}
}

func (l *Lexer) skipHexDigits(limit int) {
	for i := 0; i < limit && !l.isAtEnd() && isHexDigit(l.peekByte(0)); i++ {
		l.advanceByte()
	}
}

// scanOperator scans an operator or punctuation token.
//
// Two-character operators win over their one-character prefix (longest
// match). Any unrecognised byte becomes a TokenError; when that byte leads a
// multi-byte UTF-8 sequence the rest of the sequence goes into the same
// error token.
func (l *Lexer) scanOperator() Token {
	c0 := l.advanceByte()
	c1 := l.peekByte(0) // lookahead, not yet consumed

	switch c0 {
	case '+':
		switch c1 {
		case '=':
			return l.extend(TokenPlusEqual)
		case '+':
			return l.extend(TokenPlusPlus)
		}
		return l.makeToken(TokenPlus)
	case '-':
		switch c1 {
		case '=':
			return l.extend(TokenMinusEqual)
		case '-':
			return l.extend(TokenMinusMinus)
		}
		return l.makeToken(TokenMinus)
	case '=':
		if c1 == '=' {
			return l.extend(TokenEqualEqual)
		}
		return l.makeToken(TokenEqual)
	case '!':
		if c1 == '=' {
			return l.extend(TokenNotEqual)
		}
		return l.makeToken(TokenNot)
	case '<':
		switch c1 {
		case '=':
			return l.extend(TokenLessEqual)
		case '<':
			return l.extend(TokenShiftLeft)
		}
		return l.makeToken(TokenLess)
	case '>':
		switch c1 {
		case '=':
			return l.extend(TokenGreaterEqual)
		case '>':
			return l.extend(TokenShiftRight)
		}
		return l.makeToken(TokenGreater)
	case '|':
		if c1 == '|' {
			return l.extend(TokenOrOr)
		}
		return l.makeToken(TokenOr)
	case '&':
		if c1 == '&' {
			return l.extend(TokenAndAnd)
		}
		return l.makeToken(TokenAnd)
	case '%':
		if c1 == '=' {
			return l.extend(TokenPercentEqual)
		}
		return l.makeToken(TokenPercent)
	case '^':
		if c1 == '=' {
			return l.extend(TokenXorEqual)
		}
		return l.makeToken(TokenXor)

	// Single-character tokens
	case '*':
		return l.makeToken(TokenStar)
	case '/':
		return l.makeToken(TokenSlash)
	case ':':
		return l.makeToken(TokenColon)
	case ',':
		return l.makeToken(TokenComma)
	case '.':
		return l.makeToken(TokenDot)
	case ';':
		return l.makeToken(TokenSemicolon)
	case '(':
		return l.makeToken(TokenOpenParen)
	case ')':
		return l.makeToken(TokenCloseParen)
	case '[':
		return l.makeToken(TokenOpenBracket)
	case ']':
		return l.makeToken(TokenCloseBracket)
	case '{':
		return l.makeToken(TokenOpenBrace)
	case '}':
		return l.makeToken(TokenCloseBrace)
	}

	// Unknown byte. Pull in the continuation bytes of its UTF-8 sequence.
	for want := sequenceLen(c0) - 1; want > 0 && !l.isAtEnd() && isContinuation(l.peekByte(0)); want-- {
		l.advanceByte()
	}
	return l.errorToken()
}

// extend consumes the second byte of a two-character operator.
func (l *Lexer) extend(kind TokenKind) Token {
	l.advanceByte()
	return l.makeToken(kind)
}
