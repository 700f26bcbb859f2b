package lexer

// TokenKind is the lexeme category of a token.
//
// ORGANIZATION: kinds are grouped the way the scanners produce them:
// 1. Two-character operators (tried first by the longest-match scanner)
// 2. Single-character operators
// 3. Keywords
// 4. Identifiers
// 5. Numeric, string and character literals
// 6. Delimiters
// 7. Primitive type names
// 8. Housekeeping (Semicolon, EOF, Error)
//
// The range predicates (IsKeyword, IsOperator, ...) depend on this order.
//
// DESIGN CHOICE: A uint8 with a fixed-size name array rather than a string
// type because:
// - Every kind test in the scanners is a single byte comparison
// - Category checks are range comparisons on contiguous blocks
// - String() is an array index; an out-of-range value renders as UNKNOWN
type TokenKind uint8

const (
	// Two-character operators
	TokenPlusEqual    TokenKind = iota // +=
	TokenMinusEqual                    // -=
	TokenEqualEqual                    // ==
	TokenNotEqual                      // !=
	TokenLessEqual                     // <=
	TokenGreaterEqual                  // >=
	TokenPlusPlus                      // ++
	TokenMinusMinus                    // --
	TokenOrOr                          // ||
	TokenAndAnd                        // &&
	TokenShiftLeft                     // <<
	TokenShiftRight                    // >>
	TokenPercentEqual                  // %=
	TokenXorEqual                      // ^=

	// Single-character operators
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenLess    // <
	TokenGreater // >
	TokenNot     // !
	TokenXor     // ^
	TokenPercent // %
	TokenOr      // |
	TokenAnd     // &
	TokenEqual   // =
	TokenColon   // :
	TokenComma   // ,
	TokenDot     // .

	// Keywords
	TokenKeywordFun
	TokenKeywordIf
	TokenKeywordElse
	TokenKeywordReturn
	TokenKeywordWhile
	TokenKeywordFor
	TokenKeywordMain
	TokenKeywordVar
	TokenKeywordConst
	TokenKeywordNullptr
	TokenKeywordBreak
	TokenKeywordContinue
	TokenKeywordBool

	// Identifiers
	TokenIdentifierASCII   // [a-zA-Z_][a-zA-Z0-9_]*
	TokenIdentifierUnicode // XID_Start XID_Continue*, with at least one non-ASCII rune

	// Numeric literals
	TokenNumeric     // decimal, float, scientific, optional suffix
	TokenBinary      // #b[01_]+[uU]?
	TokenOctal       // #o[0-7_]+[uU]?
	TokenHexadecimal // #x[0-9a-fA-F_]+[uU]?

	// String and character literals; Text includes the quotes.
	TokenStringLiteral
	TokenCharLiteral

	// Delimiters
	TokenOpenParen    // (
	TokenCloseParen   // )
	TokenOpenBracket  // [
	TokenCloseBracket // ]
	TokenOpenBrace    // {
	TokenCloseBrace   // }

	// Primitive types
	TokenTypeI8
	TokenTypeI16
	TokenTypeI32
	TokenTypeI64
	TokenTypeU8
	TokenTypeU16
	TokenTypeU32
	TokenTypeU64
	TokenTypeF32
	TokenTypeF64
	TokenTypeChar
	TokenTypeString
	TokenTypeBool

	// Housekeeping
	TokenSemicolon // ;
	TokenEOF
	TokenError

	tokenKindCount
)

// kindNames holds the canonical SCREAMING_SNAKE name of every kind.
// Several kinds intentionally share a name: both identifier flavours render
// as IDENTIFIER, and the literal/type pairs for string, char and bool share
// STRING, CHAR and BOOL.
var kindNames = [tokenKindCount]string{
	TokenPlusEqual:    "PLUS_EQUAL",
	TokenMinusEqual:   "MINUS_EQUAL",
	TokenEqualEqual:   "EQUAL_EQUAL",
	TokenNotEqual:     "NOT_EQUAL",
	TokenLessEqual:    "LESS_EQUAL",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenPlusPlus:     "PLUS_PLUS",
	TokenMinusMinus:   "MINUS_MINUS",
	TokenOrOr:         "OR_OR",
	TokenAndAnd:       "AND_AND",
	TokenShiftLeft:    "SHIFT_LEFT",
	TokenShiftRight:   "SHIFT_RIGHT",
	TokenPercentEqual: "PERCENT_EQUAL",
	TokenXorEqual:     "XOR_EQUAL",

	TokenPlus:    "PLUS",
	TokenMinus:   "MINUS",
	TokenStar:    "STAR",
	TokenSlash:   "SLASH",
	TokenLess:    "LESS",
	TokenGreater: "GREATER",
	TokenNot:     "NOT",
	TokenXor:     "XOR",
	TokenPercent: "PERCENT",
	TokenOr:      "OR",
	TokenAnd:     "AND",
	TokenEqual:   "EQUAL",
	TokenColon:   "COLON",
	TokenComma:   "COMMA",
	TokenDot:     "DOT",

	TokenKeywordFun:      "FUN",
	TokenKeywordIf:       "IF",
	TokenKeywordElse:     "ELSE",
	TokenKeywordReturn:   "RETURN",
	TokenKeywordWhile:    "WHILE",
	TokenKeywordFor:      "FOR",
	TokenKeywordMain:     "MAIN",
	TokenKeywordVar:      "VAR",
	TokenKeywordConst:    "CONST",
	TokenKeywordNullptr:  "NULLPTR",
	TokenKeywordBreak:    "BREAK",
	TokenKeywordContinue: "CONTINUE",
	TokenKeywordBool:     "BOOL",

	TokenIdentifierASCII:   "IDENTIFIER",
	TokenIdentifierUnicode: "IDENTIFIER",

	TokenNumeric:     "NUMERIC",
	TokenBinary:      "BINARY",
	TokenOctal:       "OCTAL",
	TokenHexadecimal: "HEX",

	TokenStringLiteral: "STRING",
	TokenCharLiteral:   "CHAR",

	TokenOpenParen:    "OPEN_PAREN",
	TokenCloseParen:   "CLOSE_PAREN",
	TokenOpenBracket:  "OPEN_BRACKET",
	TokenCloseBracket: "CLOSE_BRACKET",
	TokenOpenBrace:    "OPEN_BRACE",
	TokenCloseBrace:   "CLOSE_BRACE",

	TokenTypeI8:     "I8",
	TokenTypeI16:    "I16",
	TokenTypeI32:    "I32",
	TokenTypeI64:    "I64",
	TokenTypeU8:     "U8",
	TokenTypeU16:    "U16",
	TokenTypeU32:    "U32",
	TokenTypeU64:    "U64",
	TokenTypeF32:    "F32",
	TokenTypeF64:    "F64",
	TokenTypeChar:   "CHAR",
	TokenTypeString: "STRING",
	TokenTypeBool:   "BOOL",

	TokenSemicolon: "SEMICOLON",
	TokenEOF:       "EOF",
	TokenError:     "ERROR",
}

// String returns the canonical name of the kind, used in diagnostics.
func (k TokenKind) String() string {
	if k < tokenKindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// AllKinds returns every kind in declaration order.
func AllKinds() []TokenKind {
	kinds := make([]TokenKind, tokenKindCount)
	for k := range tokenKindCount {
		kinds[k] = k
	}
	return kinds
}

// IsOperator reports whether k is a one- or two-character operator.
func (k TokenKind) IsOperator() bool {
	return k <= TokenDot
}

// IsKeyword reports whether k is a reserved keyword (not a type name).
func (k TokenKind) IsKeyword() bool {
	return k >= TokenKeywordFun && k <= TokenKeywordBool
}

// IsType reports whether k is a primitive type name.
func (k TokenKind) IsType() bool {
	return k >= TokenTypeI8 && k <= TokenTypeBool
}

// IsIdentifier reports whether k is either identifier flavour.
func (k TokenKind) IsIdentifier() bool {
	return k == TokenIdentifierASCII || k == TokenIdentifierUnicode
}

// IsLiteral reports whether k is a numeric, string or character literal.
func (k TokenKind) IsLiteral() bool {
	return k >= TokenNumeric && k <= TokenCharLiteral
}

// IsDelimiter reports whether k is a bracket of any shape.
func (k TokenKind) IsDelimiter() bool {
	return k >= TokenOpenParen && k <= TokenCloseBrace
}

// keywords maps reserved words to their kinds. It is never modified.
var keywords = map[string]TokenKind{
	"fun":      TokenKeywordFun,
	"if":       TokenKeywordIf,
	"else":     TokenKeywordElse,
	"return":   TokenKeywordReturn,
	"while":    TokenKeywordWhile,
	"for":      TokenKeywordFor,
	"main":     TokenKeywordMain,
	"var":      TokenKeywordVar,
	"const":    TokenKeywordConst,
	"nullptr":  TokenKeywordNullptr,
	"break":    TokenKeywordBreak,
	"continue": TokenKeywordContinue,
	"bool":     TokenKeywordBool,

	"i8":     TokenTypeI8,
	"i16":    TokenTypeI16,
	"i32":    TokenTypeI32,
	"i64":    TokenTypeI64,
	"u8":     TokenTypeU8,
	"u16":    TokenTypeU16,
	"u32":    TokenTypeU32,
	"u64":    TokenTypeU64,
	"f32":    TokenTypeF32,
	"f64":    TokenTypeF64,
	"char":   TokenTypeChar,
	"string": TokenTypeString,
}

// LookupKeyword returns the keyword or type kind for text.
// The second result is false when text is an ordinary identifier.
func LookupKeyword(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}
