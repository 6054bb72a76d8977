package lang

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Position locates a byte offset in script source.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String renders the position as "line L, column C".
func (pos Position) String() string {
	return fmt.Sprintf("line %d, column %d", pos.Line, pos.Column)
}

func positionOf(src string, offset int) Position {
	offset = min(max(offset, 0), len(src))
	head := src[:offset]

	return Position{
		Offset: offset,
		Line:   strings.Count(head, "\n") + 1,
		Column: offset - strings.LastIndexByte(head, '\n'),
	}
}

// parser evaluates source text directly against a Context.
//
// There is no token stream and no tree: each parse function consumes the
// construct at pos and performs its effect before returning. The end field
// bounds every read so that a loop condition can be re-parsed over its
// original character range.
type parser struct {
	ctx        context.Context
	c          *Context
	src        string
	pos        int
	end        int
	scope      int
	iterations int
}

func newParser(ctx context.Context, c *Context, src string) *parser {
	return &parser{ctx: ctx, c: c, src: src, end: len(src)}
}

// run executes statements until the input is exhausted or one fails.
func (p *parser) run() error {
	for {
		p.skipSpace()

		if p.eof() {
			return nil
		}

		if err := p.canceled(p.pos); err != nil {
			return err
		}

		if err := p.statement(); err != nil {
			return err
		}
	}
}

// statement parses and executes one statement.
func (p *parser) statement() error {
	p.skipSpace()
	start := p.pos
	word := p.word()

	p.c.logger.TraceContext(p.ctx, "statement",
		slog.String("keyword", word),
		slog.Int("offset", start),
		slog.Int("scope", p.scope),
	)

	switch word {
	case "int":
		return p.declareInteger()
	case "set":
		return p.assign()
	case "to":
		return p.assignRemote()
	case "if":
		return p.conditional()
	case "loop":
		return p.loop()
	}

	if word == "" {
		if p.eof() {
			return p.syntaxError(start, "unexpected end of input, expected statement")
		}

		word = p.src[p.pos : p.pos+1]
	}

	return p.syntaxError(start, "expected statement at %q", word)
}

// declareInteger parses: 'int' Ident Expression.
func (p *parser) declareInteger() error {
	p.skipSpace()
	at := p.pos

	name, err := p.identifier()
	if err != nil {
		return err
	}

	v, err := p.expression()
	if err != nil {
		return err
	}

	n, err := v.ToInteger()
	if err != nil {
		return p.fail(err, at)
	}

	return p.fail(p.c.declare(name, FromInteger(n), p.scope), at)
}

// assign parses: 'set' 'local' Ident Expression | 'set' Ident Expression.
func (p *parser) assign() error {
	p.skipSpace()
	at := p.pos

	name, err := p.identifier()
	if err != nil {
		return err
	}

	local := name == "local"
	if local {
		if name, err = p.identifier(); err != nil {
			return err
		}
	}

	v, err := p.expression()
	if err != nil {
		return err
	}

	if local {
		return p.fail(p.c.SetVariable(name, v), at)
	}

	return p.fail(p.c.SetProperty(name, v), at)
}

// assignRemote parses: 'to' Ident Ident Expression.
func (p *parser) assignRemote() error {
	p.skipSpace()
	at := p.pos

	module, err := p.module()
	if err != nil {
		return err
	}

	name, err := p.identifier()
	if err != nil {
		return err
	}

	if name == "local" {
		return ErrRemoteAccess.
			Wrapf(`cannot set value "local" of remote object`).
			WithPosition(positionOf(p.src, at))
	}

	v, err := p.expression()
	if err != nil {
		return err
	}

	return p.fail(module.SetProperty(name, v), at)
}

// conditional parses: 'if' Expression ':' Block '.'.
func (p *parser) conditional() error {
	p.skipSpace()
	start := p.pos

	cond, err := p.expression()
	if err != nil {
		return err
	}

	text := p.src[start:p.pos]

	truth, err := cond.ToBoolean()
	if err != nil {
		return p.fail(err, start)
	}

	if err := p.expectColon(text); err != nil {
		return err
	}

	if truth {
		return p.block()
	}

	return p.skipBlock()
}

// loop parses: 'loop' Expression ':' Block '.'.
//
// The condition is tested before every iteration by re-parsing the
// characters it originally spanned.
func (p *parser) loop() error {
	p.skipSpace()
	condStart := p.pos

	cond, err := p.expression()
	if err != nil {
		return err
	}

	condEnd := p.pos

	if err := p.expectColon(p.src[condStart:condEnd]); err != nil {
		return err
	}

	bodyStart, bodyEnd := p.pos, -1

	for {
		truth, err := cond.ToBoolean()
		if err != nil {
			return p.fail(err, condStart)
		}

		if !truth {
			break
		}

		if err := p.iterate(condStart); err != nil {
			return err
		}

		p.pos = bodyStart

		if err := p.block(); err != nil {
			return err
		}

		bodyEnd = p.pos

		if cond, err = p.reevaluate(condStart, condEnd); err != nil {
			return err
		}
	}

	if bodyEnd < 0 {
		p.pos = bodyStart

		return p.skipBlock()
	}

	p.pos = bodyEnd

	return nil
}

func (p *parser) reevaluate(start, end int) (Value, error) {
	saved := p.end
	p.pos, p.end = start, end

	v, err := p.expression()

	p.end = saved

	return v, err
}

func (p *parser) iterate(at int) error {
	p.iterations++

	if err := p.canceled(at); err != nil {
		return err
	}

	if limit := p.c.maxLoop; limit > 0 && p.iterations > limit {
		return ErrLoopLimit.
			Wrapf("more than %d iterations", limit).
			With(slog.Int("limit", limit)).
			WithPosition(positionOf(p.src, at))
	}

	p.c.logger.TraceContext(p.ctx, "loop iteration",
		slog.Int("iteration", p.iterations),
		slog.Int("offset", at),
	)

	return nil
}

// block executes statements up to and including the closing '.'.
// Variables declared inside the block are removed when it exits, including
// when a statement fails.
func (p *parser) block() error {
	p.scope++
	depth := p.scope

	defer p.exitScope(depth)

	for {
		p.skipSpace()

		if p.eof() {
			return p.syntaxError(p.pos,
				"unexpected end of input before end of scope")
		}

		if p.peek() == '.' {
			p.pos++

			return nil
		}

		if err := p.canceled(p.pos); err != nil {
			return err
		}

		if err := p.statement(); err != nil {
			return err
		}
	}
}

func (p *parser) exitScope(depth int) {
	removed := 0

	for name, v := range p.c.variables {
		if v.scope >= depth {
			delete(p.c.variables, name)

			removed++
		}
	}

	p.scope = depth - 1

	p.c.logger.TraceContext(p.ctx, "block exit",
		slog.Int("scope", depth),
		slog.Int("removed", removed),
	)
}

// skipBlock advances past the '.' matching an already consumed ':' without
// executing anything. Quoted strings and numeric literals are skipped whole
// so that the ':' and '.' inside them do not count.
func (p *parser) skipBlock() error {
	start := p.pos
	depth := 1

	for !p.eof() {
		switch ch := p.peek(); {
		case ch == '"':
			if _, err := p.stringLiteral(); err != nil {
				return err
			}
		case ch == ':':
			depth++
			p.pos++
		case ch == '.':
			depth--
			p.pos++

			if depth == 0 {
				return nil
			}
		case isDigit(ch, 10):
			p.scanNumber()
		case IsIdentifier(ch):
			p.scanWord()
		default:
			p.pos++
		}
	}

	return p.syntaxError(start, "unexpected end of input before end of scope")
}

func (p *parser) expectColon(cond string) error {
	p.skipSpace()

	if p.eof() || p.peek() != ':' {
		return p.syntaxError(p.pos, "expected ':' after %q",
			strings.TrimSpace(cond))
	}

	p.pos++

	return nil
}

// expression parses: Term (('+'|'-') Term)*.
func (p *parser) expression() (Value, error) {
	left, err := p.term()
	if err != nil {
		return Null(), err
	}

	for {
		p.skipSpace()

		if p.eof() || (p.peek() != '+' && p.peek() != '-') {
			return left, nil
		}

		at, op := p.pos, p.peek()
		p.pos++

		right, err := p.term()
		if err != nil {
			return Null(), err
		}

		if left, err = arithmetic(op, left, right); err != nil {
			return Null(), p.fail(err, at)
		}
	}
}

// term parses: Factor (('*'|'/'|'%') Factor)*.
func (p *parser) term() (Value, error) {
	left, err := p.factor()
	if err != nil {
		return Null(), err
	}

	for {
		p.skipSpace()

		if p.eof() {
			return left, nil
		}

		at, op := p.pos, p.peek()
		if op != '*' && op != '/' && op != '%' {
			return left, nil
		}

		p.pos++

		right, err := p.factor()
		if err != nil {
			return Null(), err
		}

		if left, err = arithmetic(op, left, right); err != nil {
			return Null(), p.fail(err, at)
		}
	}
}

// factor parses a literal, a parenthesized sub-expression, or an access.
func (p *parser) factor() (Value, error) {
	p.skipSpace()
	start := p.pos

	if p.eof() {
		return Null(), p.syntaxError(start,
			"unexpected end of input, expected expression")
	}

	switch ch := p.peek(); {
	case ch == '(':
		p.pos++

		v, err := p.expression()
		if err != nil {
			return Null(), err
		}

		p.skipSpace()

		if p.eof() || p.peek() != ')' {
			return Null(), p.syntaxError(p.pos, "expected ')'")
		}

		p.pos++

		return v, nil
	case ch == '"':
		return p.stringLiteral()
	case isDigit(ch, 10):
		return p.numberLiteral()
	}

	word := p.word()

	switch word {
	case "true":
		return FromBoolean(true), nil
	case "false":
		return FromBoolean(false), nil
	case "get":
		return p.get(start)
	case "from":
		return p.from(start)
	case "local":
		name, err := p.identifier()
		if err != nil {
			return Null(), err
		}

		return p.local(name, start)
	}

	if word == "" {
		word = p.src[p.pos : p.pos+1]
	}

	return Null(), p.syntaxError(start,
		"expected literal, sub-expression, or access at %q", word)
}

// get parses the remainder of: 'get' 'local' Ident | 'get' Ident.
func (p *parser) get(at int) (Value, error) {
	name, err := p.identifier()
	if err != nil {
		return Null(), err
	}

	if name == "local" {
		if name, err = p.identifier(); err != nil {
			return Null(), err
		}

		return p.local(name, at)
	}

	return p.property(p.c, name, at)
}

// from parses the remainder of: 'from' Ident ['get'] Ident.
func (p *parser) from(at int) (Value, error) {
	module, err := p.module()
	if err != nil {
		return Null(), err
	}

	name, err := p.identifier()
	if err != nil {
		return Null(), err
	}

	if name == "get" {
		if name, err = p.identifier(); err != nil {
			return Null(), err
		}
	}

	if name == "local" {
		return Null(), ErrRemoteAccess.
			Wrapf(`cannot get value "local" of remote object`).
			WithPosition(positionOf(p.src, at))
	}

	return p.property(module, name, at)
}

func (p *parser) module() (*Context, error) {
	p.skipSpace()
	at := p.pos

	name, err := p.identifier()
	if err != nil {
		return nil, err
	}

	m, ok := p.c.GetModule(name)
	if !ok || m == nil {
		return nil, ErrNoSuchModule.
			Wrapf("%q", name).
			With(slog.String("module", name)).
			WithPosition(positionOf(p.src, at))
	}

	return m, nil
}

func (p *parser) local(name string, at int) (Value, error) {
	v, ok := p.c.LookupVariable(name)
	if !ok {
		return Null(), ErrNameNotFound.
			Wrapf("undefined variable %q", name).
			With(slog.String("variable", name)).
			WithPosition(positionOf(p.src, at))
	}

	return v, nil
}

func (p *parser) property(c *Context, name string, at int) (Value, error) {
	v, _ := c.property(name)
	if v.IsNull() {
		return Null(), ErrNameNotFound.
			Wrapf("undefined property %q", name).
			With(slog.String("property", name)).
			WithPosition(positionOf(p.src, at))
	}

	return v, nil
}

func (p *parser) stringLiteral() (Value, error) {
	start := p.pos
	p.pos++

	n := strings.IndexByte(p.src[p.pos:p.end], '"')
	if n < 0 {
		p.pos = start

		return Null(), p.syntaxError(start, "unterminated string literal")
	}

	s := p.src[p.pos : p.pos+n]
	p.pos += n + 1

	return FromString(s), nil
}

func (p *parser) numberLiteral() (Value, error) {
	start := p.pos
	p.scanNumber()
	text := p.src[start:p.pos]

	if strings.IndexByte(text, '.') >= 0 {
		f, ok := ParseFloating(text)
		if !ok {
			return Null(), p.syntaxError(start,
				"invalid floating point literal %q", text)
		}

		return FromFloating(f), nil
	}

	n, ok := ParseInteger(text)
	if !ok {
		return Null(), p.syntaxError(start, "invalid integer literal %q", text)
	}

	return FromInteger(n), nil
}

// scanNumber advances over a numeric literal. A run of decimal digits
// directly followed by '.' and another identifier character continues as
// the fraction of a floating literal; otherwise the '.' is left in place to
// close a scope.
func (p *parser) scanNumber() {
	start := p.pos
	p.scanWord()

	if !allDigits(p.src[start:p.pos], 10) {
		return
	}

	if p.pos+1 < p.end && p.src[p.pos] == '.' && IsIdentifier(p.src[p.pos+1]) {
		p.pos++
		p.scanWord()
	}
}

func (p *parser) identifier() (string, error) {
	p.skipSpace()
	at := p.pos

	if name := p.word(); name != "" {
		return name, nil
	}

	if p.eof() {
		return "", p.syntaxError(at,
			"unexpected end of input, expected identifier")
	}

	return "", p.syntaxError(at, "expected identifier at %q",
		p.src[p.pos:p.pos+1])
}

// word skips whitespace and consumes a maximal run of identifier
// characters, which may be empty.
func (p *parser) word() string {
	p.skipSpace()
	start := p.pos
	p.scanWord()

	return p.src[start:p.pos]
}

func (p *parser) scanWord() {
	for !p.eof() && IsIdentifier(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) skipSpace() {
	for !p.eof() && isWhitespace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool { return p.pos >= p.end }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) canceled(at int) error {
	if err := p.ctx.Err(); err != nil {
		return ErrCanceled.Wrap(err).WithPosition(positionOf(p.src, at))
	}

	return nil
}

func (p *parser) syntaxError(at int, format string, args ...any) *Error {
	pos := positionOf(p.src, at)

	return ErrSyntax.
		Wrapf("%s (%s)", fmt.Sprintf(format, args...), pos).
		WithPosition(pos)
}

// fail attaches the source position at to err, which may be nil.
func (p *parser) fail(err error, at int) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e.WithPosition(positionOf(p.src, at))
	}

	return err
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isSyntax reports whether c is an ASCII punctuation character that
// delimits identifiers. The period is excluded; see [IsIdentifier].
func isSyntax(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return c != '.'
	case c >= ':' && c <= '@', c >= '[' && c <= '`', c >= '{' && c <= '~':
		return true
	default:
		return false
	}
}

// IsIdentifier reports whether c may appear in an identifier.
// The period closes scopes and separates the fraction of a numeric literal,
// so it is never part of a word.
func IsIdentifier(c byte) bool {
	return c != '.' && !isWhitespace(c) && !isSyntax(c)
}

var keywords = []string{"false", "from", "get", "if", "int", "local", "loop", "set", "to", "true"}

// Keywords returns the reserved words of the language in sorted order.
func Keywords() []string { return slices.Clone(keywords) }
