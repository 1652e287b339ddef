package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	IDENT
	NUMBER
	BIGINT
	STRING
	REGEXP
	TEMPLATE_NOSUB
	TEMPLATE_HEAD
	TEMPLATE_MIDDLE
	TEMPLATE_TAIL
	JSX_TEXT

	// Punctuators
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	SEMICOLON
	COMMA
	COLON
	DOT
	ELLIPSIS
	ARROW
	QUESTION

	// Operators
	ASSIGN
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	STARSTAR

	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	STARSTAR_ASSIGN
	LSHIFT_ASSIGN
	RSHIFT_ASSIGN
	URSHIFT_ASSIGN
	BAND_ASSIGN
	BOR_ASSIGN
	BXOR_ASSIGN

	EQ
	NEQ
	EQ_STRICT
	NEQ_STRICT
	LT
	GT
	LE
	GE

	LOGICAL_AND
	LOGICAL_OR
	LOGICAL_NOT

	BAND
	BOR
	BXOR
	BNOT
	LSHIFT
	RSHIFT
	URSHIFT

	INC
	DEC

	// Reserved words (always reserved)
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	EXPORT
	EXTENDS
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	NEW
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	NULL_LIT
	TRUE_LIT
	FALSE_LIT

	// Future-reserved (strict-mode only)
	IMPLEMENTS
	INTERFACE
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC

	// Contextual keywords (identifiers outside their special position)
	LET
	STATIC
	ASYNC
	AWAIT
	YIELD
	OF
	AS
	FROM
	GET
	SET
)

// Flag bits carried by every Kind, consulted by the parser with a single
// bitwise AND instead of a switch over named constants.
type Flag uint16

const (
	FlagIdentifier Flag = 1 << iota
	FlagReserved
	FlagFutureReserved
	FlagContextual
	FlagBindingPatternStart
	FlagAssignOp
	FlagBinaryOp
	FlagUpdateOp
	FlagUnaryOp
	FlagStringLiteral
)

type kindInfo struct {
	name       string
	flags      Flag
	precedence int
}

// Precedence levels. Matches the climbing order a Pratt-style expression
// parser needs; LOWEST never appears as an operator's own precedence.
const (
	LOWEST = iota
	PREC_ASSIGN
	PREC_CONDITIONAL
	PREC_LOGICAL_OR
	PREC_LOGICAL_AND
	PREC_BITOR
	PREC_BITXOR
	PREC_BITAND
	PREC_EQUALITY
	PREC_RELATIONAL
	PREC_SHIFT
	PREC_ADDITIVE
	PREC_MULTIPLICATIVE
	PREC_EXPONENT
)

var kinds = map[Kind]kindInfo{
	ILLEGAL:         {"ILLEGAL", 0, LOWEST},
	EOF:             {"EOF", 0, LOWEST},
	IDENT:           {"IDENT", FlagIdentifier, LOWEST},
	NUMBER:          {"NUMBER", 0, LOWEST},
	BIGINT:          {"BIGINT", 0, LOWEST},
	STRING:          {"STRING", FlagStringLiteral, LOWEST},
	REGEXP:          {"REGEXP", 0, LOWEST},
	TEMPLATE_NOSUB:  {"TEMPLATE_NOSUB", 0, LOWEST},
	TEMPLATE_HEAD:   {"TEMPLATE_HEAD", 0, LOWEST},
	TEMPLATE_MIDDLE: {"TEMPLATE_MIDDLE", 0, LOWEST},
	TEMPLATE_TAIL:   {"TEMPLATE_TAIL", 0, LOWEST},
	JSX_TEXT:        {"JSX_TEXT", 0, LOWEST},

	LBRACE:    {"{", FlagBindingPatternStart, LOWEST},
	RBRACE:    {"}", 0, LOWEST},
	LPAREN:    {"(", 0, LOWEST},
	RPAREN:    {")", 0, LOWEST},
	LBRACKET:  {"[", FlagBindingPatternStart, LOWEST},
	RBRACKET:  {"]", 0, LOWEST},
	SEMICOLON: {";", 0, LOWEST},
	COMMA:     {",", 0, LOWEST},
	COLON:     {":", 0, LOWEST},
	DOT:       {".", 0, LOWEST},
	ELLIPSIS:  {"...", 0, LOWEST},
	ARROW:     {"=>", 0, LOWEST},
	QUESTION:  {"?", 0, PREC_CONDITIONAL},

	ASSIGN:   {"=", FlagAssignOp, PREC_ASSIGN},
	PLUS:     {"+", FlagBinaryOp | FlagUnaryOp, PREC_ADDITIVE},
	MINUS:    {"-", FlagBinaryOp | FlagUnaryOp, PREC_ADDITIVE},
	STAR:     {"*", FlagBinaryOp, PREC_MULTIPLICATIVE},
	SLASH:    {"/", FlagBinaryOp, PREC_MULTIPLICATIVE},
	PERCENT:  {"%", FlagBinaryOp, PREC_MULTIPLICATIVE},
	STARSTAR: {"**", FlagBinaryOp, PREC_EXPONENT},

	PLUS_ASSIGN:     {"+=", FlagAssignOp, PREC_ASSIGN},
	MINUS_ASSIGN:    {"-=", FlagAssignOp, PREC_ASSIGN},
	STAR_ASSIGN:     {"*=", FlagAssignOp, PREC_ASSIGN},
	SLASH_ASSIGN:    {"/=", FlagAssignOp, PREC_ASSIGN},
	PERCENT_ASSIGN:  {"%=", FlagAssignOp, PREC_ASSIGN},
	STARSTAR_ASSIGN: {"**=", FlagAssignOp, PREC_ASSIGN},
	LSHIFT_ASSIGN:   {"<<=", FlagAssignOp, PREC_ASSIGN},
	RSHIFT_ASSIGN:   {">>=", FlagAssignOp, PREC_ASSIGN},
	URSHIFT_ASSIGN:  {">>>=", FlagAssignOp, PREC_ASSIGN},
	BAND_ASSIGN:     {"&=", FlagAssignOp, PREC_ASSIGN},
	BOR_ASSIGN:      {"|=", FlagAssignOp, PREC_ASSIGN},
	BXOR_ASSIGN:     {"^=", FlagAssignOp, PREC_ASSIGN},

	EQ:         {"==", FlagBinaryOp, PREC_EQUALITY},
	NEQ:        {"!=", FlagBinaryOp, PREC_EQUALITY},
	EQ_STRICT:  {"===", FlagBinaryOp, PREC_EQUALITY},
	NEQ_STRICT: {"!==", FlagBinaryOp, PREC_EQUALITY},
	LT:         {"<", FlagBinaryOp, PREC_RELATIONAL},
	GT:         {">", FlagBinaryOp, PREC_RELATIONAL},
	LE:         {"<=", FlagBinaryOp, PREC_RELATIONAL},
	GE:         {">=", FlagBinaryOp, PREC_RELATIONAL},

	LOGICAL_AND: {"&&", FlagBinaryOp, PREC_LOGICAL_AND},
	LOGICAL_OR:  {"||", FlagBinaryOp, PREC_LOGICAL_OR},
	LOGICAL_NOT: {"!", FlagUnaryOp, LOWEST},

	BAND:    {"&", FlagBinaryOp, PREC_BITAND},
	BOR:     {"|", FlagBinaryOp, PREC_BITOR},
	BXOR:    {"^", FlagBinaryOp, PREC_BITXOR},
	BNOT:    {"~", FlagUnaryOp, LOWEST},
	LSHIFT:  {"<<", FlagBinaryOp, PREC_SHIFT},
	RSHIFT:  {">>", FlagBinaryOp, PREC_SHIFT},
	URSHIFT: {">>>", FlagBinaryOp, PREC_SHIFT},

	INC: {"++", FlagUpdateOp, LOWEST},
	DEC: {"--", FlagUpdateOp, LOWEST},

	BREAK:      {"break", FlagReserved, LOWEST},
	CASE:       {"case", FlagReserved, LOWEST},
	CATCH:      {"catch", FlagReserved, LOWEST},
	CLASS:      {"class", FlagReserved, LOWEST},
	CONST:      {"const", FlagReserved, LOWEST},
	CONTINUE:   {"continue", FlagReserved, LOWEST},
	DEBUGGER:   {"debugger", FlagReserved, LOWEST},
	DEFAULT:    {"default", FlagReserved, LOWEST},
	DELETE:     {"delete", FlagReserved | FlagUnaryOp, LOWEST},
	DO:         {"do", FlagReserved, LOWEST},
	ELSE:       {"else", FlagReserved, LOWEST},
	EXPORT:     {"export", FlagReserved, LOWEST},
	EXTENDS:    {"extends", FlagReserved, LOWEST},
	FINALLY:    {"finally", FlagReserved, LOWEST},
	FOR:        {"for", FlagReserved, LOWEST},
	FUNCTION:   {"function", FlagReserved, LOWEST},
	IF:         {"if", FlagReserved, LOWEST},
	IMPORT:     {"import", FlagReserved, LOWEST},
	IN:         {"in", FlagReserved | FlagBinaryOp, PREC_RELATIONAL},
	INSTANCEOF: {"instanceof", FlagReserved | FlagBinaryOp, PREC_RELATIONAL},
	NEW:        {"new", FlagReserved, LOWEST},
	RETURN:     {"return", FlagReserved, LOWEST},
	SUPER:      {"super", FlagReserved, LOWEST},
	SWITCH:     {"switch", FlagReserved, LOWEST},
	THIS:       {"this", FlagReserved, LOWEST},
	THROW:      {"throw", FlagReserved, LOWEST},
	TRY:        {"try", FlagReserved, LOWEST},
	TYPEOF:     {"typeof", FlagReserved | FlagUnaryOp, LOWEST},
	VAR:        {"var", FlagReserved, LOWEST},
	VOID:       {"void", FlagReserved | FlagUnaryOp, LOWEST},
	WHILE:      {"while", FlagReserved, LOWEST},
	WITH:       {"with", FlagReserved, LOWEST},
	NULL_LIT:   {"null", FlagReserved, LOWEST},
	TRUE_LIT:   {"true", FlagReserved, LOWEST},
	FALSE_LIT:  {"false", FlagReserved, LOWEST},

	IMPLEMENTS: {"implements", FlagFutureReserved | FlagIdentifier, LOWEST},
	INTERFACE:  {"interface", FlagFutureReserved | FlagIdentifier, LOWEST},
	PACKAGE:    {"package", FlagFutureReserved | FlagIdentifier, LOWEST},
	PRIVATE:    {"private", FlagFutureReserved | FlagIdentifier, LOWEST},
	PROTECTED:  {"protected", FlagFutureReserved | FlagIdentifier, LOWEST},
	PUBLIC:     {"public", FlagFutureReserved | FlagIdentifier, LOWEST},

	LET:    {"let", FlagContextual | FlagIdentifier, LOWEST},
	STATIC: {"static", FlagContextual | FlagIdentifier, LOWEST},
	ASYNC:  {"async", FlagContextual | FlagIdentifier, LOWEST},
	AWAIT:  {"await", FlagContextual | FlagIdentifier | FlagFutureReserved, LOWEST},
	YIELD:  {"yield", FlagContextual | FlagIdentifier | FlagFutureReserved, LOWEST},
	OF:     {"of", FlagContextual | FlagIdentifier, LOWEST},
	AS:     {"as", FlagContextual | FlagIdentifier, LOWEST},
	FROM:   {"from", FlagContextual | FlagIdentifier, LOWEST},
	GET:    {"get", FlagContextual | FlagIdentifier, LOWEST},
	SET:    {"set", FlagContextual | FlagIdentifier, LOWEST},
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Flags returns the bit-flags attached to this Kind.
func (k Kind) Flags() Flag { return kinds[k].flags }

// Is reports whether all bits of f are set on k's flags.
func (k Kind) Is(f Flag) bool { return kinds[k].flags&f == f }

// Precedence returns the binary-operator climbing precedence for k, or
// LOWEST if k is not an operator.
func (k Kind) Precedence() int { return kinds[k].precedence }

// Keywords maps reserved-word, future-reserved-word and contextual-keyword
// spellings to their Kind.
var Keywords = map[string]Kind{
	"break": BREAK, "case": CASE, "catch": CATCH, "class": CLASS,
	"const": CONST, "continue": CONTINUE, "debugger": DEBUGGER,
	"default": DEFAULT, "delete": DELETE, "do": DO, "else": ELSE,
	"export": EXPORT, "extends": EXTENDS, "finally": FINALLY, "for": FOR,
	"function": FUNCTION, "if": IF, "import": IMPORT, "in": IN,
	"instanceof": INSTANCEOF, "new": NEW, "return": RETURN, "super": SUPER,
	"switch": SWITCH, "this": THIS, "throw": THROW, "try": TRY,
	"typeof": TYPEOF, "var": VAR, "void": VOID, "while": WHILE, "with": WITH,
	"null": NULL_LIT, "true": TRUE_LIT, "false": FALSE_LIT,
	"implements": IMPLEMENTS, "interface": INTERFACE, "package": PACKAGE,
	"private": PRIVATE, "protected": PROTECTED, "public": PUBLIC,
	"let": LET, "static": STATIC, "async": ASYNC, "await": AWAIT,
	"yield": YIELD, "of": OF, "as": AS, "from": FROM, "get": GET, "set": SET,
}

// LookupIdent classifies a scanned identifier spelling, returning IDENT for
// anything that is not a reserved or contextual keyword.
func LookupIdent(ident string) Kind {
	if k, ok := Keywords[ident]; ok {
		return k
	}
	return IDENT
}

// Position is a line/column/offset triple. Lines are one-based, offsets are
// zero-based, and columns are zero-based UTF-16 code-unit offsets reset on every line
// terminator.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"-"`
}

// RegexPayload carries the verbatim, unvalidated body of a regular
// expression literal.
type RegexPayload struct {
	Pattern string
	Flags   string
}

// Token is a tagged scanner output. Value holds the scanned literal value:
// a float64 for numbers, a *big.Int for BigInts, and for strings/templates
// a lexer-owned value that lexer.HadLegacyOctalEscape inspects (the cooked
// text itself is in Cooked); it is nil for other kinds. Raw holds the exact source slice when raw capture is requested.
type Token struct {
	Kind    Kind
	Literal string // decoded identifier/keyword spelling, or operator text
	Raw     string
	Value   any

	Regex *RegexPayload

	// Cooked holds the decoded text of a string or template fragment.
	Cooked string

	Start Position
	End   Position

	// AfterNewline is set when a LineTerminator was consumed between the
	// previous token and this one — the ASI and restricted-production signal.
	AfterNewline bool
}

func (t Token) String() string {
	return fmt.Sprintf("{%s %q @%d:%d}", t.Kind, t.Literal, t.Start.Line, t.Start.Column)
}

// IsAssignTarget reports whether a kind can appear as a simple or compound
// assignment operator.
func (k Kind) IsAssignTarget() bool { return k.Is(FlagAssignOp) }
