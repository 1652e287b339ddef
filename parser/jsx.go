package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/token"
)

// JSX parsing walks its own grammar largely outside the ordinary
// token-stream model the rest of the parser uses: tag and attribute
// names permit '-' (ScanJSXIdentifier), and an opening tag's closing '>'
// must not be allowed to merge with whatever follows it (the adjacent
// child text, which Next would otherwise try to combine into ">=" or
// ">>"). So instead of p.advance(), the functions below drive p.lex
// directly against its raw cursor (SkipTrivia/CurrentRune/Pos) and only
// resync into an ordinary token (jsxResync/jsxResyncChild) at the
// handful of points spec.md §4.3 calls out as genuine token boundaries:
// '=', the tag-closing '/'+'>', and the start of a `{expr}` container.
//
// Because p.tok/p.prev don't track this raw movement the way ordinary
// p.advance() does, every function here threads its own end position
// explicitly (as a return value, or a local captured right after the
// raw scan that produced it) rather than relying on finishNode's
// p.prev.End convention.

// parseJSXElement parses a JSX element used as an ordinary expression,
// p.tok already positioned on its opening '<'.
func (p *Parser) parseJSXElement(ctx Context) ast.Expression {
	return p.parseJSXElementNode(ctx, false)
}

// parseJSXElementNode is the shared implementation for both a top-level
// JSX expression and a JSX element nested inside another element's
// children. asChild suppresses the final resync to an ordinary token,
// since a nested element's caller (parseJSXChildren) always re-derives
// the next token itself from the raw cursor.
func (p *Parser) parseJSXElementNode(ctx Context, asChild bool) ast.Expression {
	start := p.pos()
	opening, selfClosing, end := p.parseJSXOpeningElement(ctx)

	elem := &ast.JSXElement{OpeningElement: opening}
	if !selfClosing {
		elem.Children = p.parseJSXChildren(ctx)
		closing, closeEnd := p.parseJSXClosingElement()
		openName, closeName := jsxElementNameString(opening.Name), jsxElementNameString(closing.Name)
		if closeName != openName {
			p.fail(start, "closing tag name %q does not match opening tag name %q", closeName, openName)
		}
		elem.ClosingElement = closing
		end = closeEnd
	}
	p.setNodeRange(&elem.NodeBase, start, end)
	if !asChild {
		p.jsxResync()
	}
	return elem
}

// jsxResync fetches the next token under ordinary (non-JSXChild)
// tokenization, used whenever the raw cursor sits on a character that
// cannot be mistaken for part of a JSX identifier ('.', ':', '{') or
// once a whole element has finished. ExprAllowed is always false: JSX
// grammar positions never expect a leading '/' to start a regex.
func (p *Parser) jsxResync() {
	p.prev = p.tok
	p.tok = p.lex.Next(lexer.Context{Module: p.moduleMode})
	p.exprAllowed = exprAllowedAfter(p.tok)
}

// jsxResyncChild fetches the next token with JSXChild set, used
// specifically for the '/' and '>' that close a tag: under this context
// '>' is always a lone token, never merged with a following '=' or '>'
// the way ordinary tokenization would (spec.md §4.3).
func (p *Parser) jsxResyncChild() {
	p.prev = p.tok
	p.tok = p.lex.Next(lexer.Context{JSXChild: true, Module: p.moduleMode})
	p.exprAllowed = exprAllowedAfter(p.tok)
}

// parseJSXOpeningElement parses `<Name attr="v" {...rest}>` or its
// self-closing form `<Name ... />`. p.tok is the already-scanned leading
// '<'. It returns the parsed element, whether it was self-closing, and
// the raw cursor position right after the closing '>'.
func (p *Parser) parseJSXOpeningElement(ctx Context) (*ast.JSXOpeningElement, bool, token.Position) {
	start := p.pos()
	name := p.parseJSXElementName(p.tok.End)

	var attrs []ast.Node
attrLoop:
	for {
		p.lex.SkipTrivia()
		switch {
		case p.lex.AtIdentifierStart():
			attrs = append(attrs, p.parseJSXAttribute(ctx))
		case p.lex.CurrentRune() == '{':
			attrs = append(attrs, p.parseJSXSpreadAttribute(ctx))
		default:
			break attrLoop
		}
	}

	p.jsxResyncChild()
	selfClosing := p.at(token.SLASH)
	if selfClosing {
		p.jsxResyncChild()
	}
	if !p.at(token.GT) {
		p.failTok(p.tok, "expected '>' to close JSX opening tag")
	}
	end := p.lex.Pos()

	opening := &ast.JSXOpeningElement{Name: name, Attributes: attrs, SelfClosing: selfClosing}
	p.setNodeRange(&opening.NodeBase, start, end)
	// The lexer's raw cursor already sits exactly after '>' (jsxResyncChild
	// fully scanned it): that's where JSX child scanning - or, for a
	// self-closing tag, whatever follows it - begins.
	return opening, selfClosing, end
}

// parseJSXElementName parses a tag/attribute name: a plain identifier, a
// dotted member chain (`Foo.Bar`), or a namespaced name (`ns:name`). It
// never goes through ordinary tokenization for the identifier segments
// themselves, only for the '.'/':' separators between them, so hyphenated
// names like `data-foo` scan correctly. start is the raw cursor position
// where the first segment begins.
func (p *Parser) parseJSXElementName(start token.Position) ast.Node {
	id := p.scanJSXIdentifierNode(start)
	var node ast.Node = id

	if p.lex.CurrentRune() == ':' {
		p.jsxResync()
		nsName := p.scanJSXIdentifierNode(p.lex.Pos())
		ns := &ast.JSXNamespacedName{Namespace: id, Name: nsName}
		p.setNodeRange(&ns.NodeBase, start, p.lex.Pos())
		return ns
	}

	for p.lex.CurrentRune() == '.' {
		p.jsxResync()
		prop := p.scanJSXIdentifierNode(p.lex.Pos())
		member := &ast.JSXMemberExpression{Object: node, Property: prop}
		p.setNodeRange(&member.NodeBase, start, p.lex.Pos())
		node = member
	}
	return node
}

// scanJSXIdentifierNode scans one JSX identifier segment directly against
// the raw lexer cursor at start, without touching p.tok.
func (p *Parser) scanJSXIdentifierNode(start token.Position) *ast.JSXIdentifier {
	tok := p.lex.ScanJSXIdentifier(start)
	id := &ast.JSXIdentifier{Name: tok.Literal}
	p.setNodeRange(&id.NodeBase, start, p.lex.Pos())
	return id
}

// parseJSXAttribute parses one `name`, `name="value"` or `name={expr}`
// entry of an opening tag's attribute list. p.lex's raw cursor is
// positioned on the attribute name's first character.
func (p *Parser) parseJSXAttribute(ctx Context) ast.Node {
	start := p.lex.Pos()
	name := p.parseJSXElementName(start)
	end := p.lex.Pos()
	attr := &ast.JSXAttribute{Name: name}

	p.lex.SkipTrivia()
	if p.lex.CurrentRune() == '=' {
		p.jsxResync()
		value, valueEnd := p.parseJSXAttributeValue(ctx, p.tok.End)
		attr.Value = value
		end = valueEnd
	}
	p.setNodeRange(&attr.NodeBase, start, end)
	return attr
}

// parseJSXAttributeValue parses the value half of `name=value`: a quoted
// string (scanned with no escape processing, per spec.md §4.3) or a
// `{expr}` container. valueStart is the raw cursor position right after
// the already-consumed '='.
func (p *Parser) parseJSXAttributeValue(ctx Context, valueStart token.Position) (ast.Node, token.Position) {
	r := p.lex.CurrentRune()
	if r == '"' || r == '\'' {
		tok := p.lex.ScanJSXAttributeString(valueStart)
		end := p.lex.Pos()
		lit := &ast.Literal{Value: tok.Literal, Raw: tok.Literal}
		p.setNodeRange(&lit.NodeBase, valueStart, end)
		return lit, end
	}

	p.jsxResync() // '{'
	p.advance()   // consume '{', land on the expression's first token
	expr := p.parseAssignment(ctx)
	p.jsxExpectRBrace()
	end := p.lex.Pos()
	container := &ast.JSXExpressionContainer{Expression: expr}
	p.setNodeRange(&container.NodeBase, valueStart, end)
	return container, end
}

// parseJSXSpreadAttribute parses `{...expr}` in an opening tag's
// attribute list. p.lex's raw cursor is positioned on the leading '{'.
func (p *Parser) parseJSXSpreadAttribute(ctx Context) ast.Node {
	start := p.lex.Pos()
	p.jsxResync() // '{'
	p.advance()   // consume '{'
	p.expect(token.ELLIPSIS)
	arg := p.parseAssignment(ctx)
	p.jsxExpectRBrace()
	spread := &ast.JSXSpreadAttribute{Argument: arg}
	p.setNodeRange(&spread.NodeBase, start, p.lex.Pos())
	return spread
}

// jsxExpectRBrace verifies (without advancing past it) that p.tok is the
// '}' closing a `{...}` construct. The caller must not consume it via
// ordinary Next: whatever follows - another attribute's possibly
// hyphenated name, or JSX child text - needs raw-cursor interpretation,
// not ordinary tokenization.
func (p *Parser) jsxExpectRBrace() {
	if !p.at(token.RBRACE) {
		p.failTok(p.tok, "unexpected token %s, expected }", p.tok.Kind)
	}
}

// parseJSXChildren scans JSX children up to (but not including) the "</"
// that starts the closing tag, alternating NextJSXText (raw text) with
// ordinary parsing of nested elements and `{expr}` containers.
func (p *Parser) parseJSXChildren(ctx Context) []ast.Node {
	var children []ast.Node
	for {
		textStart := p.lex.Pos()
		text := p.lex.NextJSXText()
		if text.Literal != "" {
			txt := &ast.JSXText{Value: text.Literal, Raw: text.Literal}
			p.setNodeRange(&txt.NodeBase, textStart, p.lex.Pos())
			children = append(children, txt)
		}

		p.jsxResyncChild()
		switch {
		case p.at(token.EOF):
			p.failTok(p.tok, "unterminated JSX element")
		case p.at(token.LT) && p.tok.Literal == "</":
			return children
		case p.at(token.LT):
			children = append(children, p.parseJSXElementNode(ctx, true))
		case p.at(token.LBRACE):
			children = append(children, p.parseJSXChild(ctx))
		default:
			p.failTok(p.tok, "unexpected token %s in JSX children", p.tok.Kind)
		}
	}
}

// parseJSXChild parses a child-position `{expr}`, `{...expr}` or an empty
// `{}` slot. p.tok is the leading '{', already fetched ordinarily by the
// caller's jsxResyncChild.
func (p *Parser) parseJSXChild(ctx Context) ast.Node {
	start := p.pos()
	p.advance() // '{'

	if p.at(token.RBRACE) {
		end := p.lex.Pos()
		empty := &ast.JSXEmptyExpression{}
		p.setNodeRange(&empty.NodeBase, start, end)
		container := &ast.JSXExpressionContainer{Expression: empty}
		p.setNodeRange(&container.NodeBase, start, end)
		return container
	}
	if p.at(token.ELLIPSIS) {
		p.advance()
		expr := p.parseAssignment(ctx)
		p.jsxExpectRBrace()
		spread := &ast.JSXSpreadChild{Expression: expr}
		p.setNodeRange(&spread.NodeBase, start, p.lex.Pos())
		return spread
	}
	expr := p.parseAssignment(ctx)
	p.jsxExpectRBrace()
	container := &ast.JSXExpressionContainer{Expression: expr}
	p.setNodeRange(&container.NodeBase, start, p.lex.Pos())
	return container
}

// parseJSXClosingElement parses `</Name>`, p.tok holding the two-character
// "</" token produced under the JSXChild lexer context. It returns the
// closing element and the raw cursor position right after its '>'; the
// caller (parseJSXElementNode) decides whether an ordinary resync is
// needed next.
func (p *Parser) parseJSXClosingElement() (*ast.JSXClosingElement, token.Position) {
	start := p.pos()
	name := p.parseJSXElementName(p.tok.End)

	p.lex.SkipTrivia()
	p.jsxResyncChild()
	if !p.at(token.GT) {
		p.failTok(p.tok, "expected '>' to close JSX closing tag")
	}
	end := p.lex.Pos()

	closing := &ast.JSXClosingElement{Name: name}
	p.setNodeRange(&closing.NodeBase, start, end)
	return closing, end
}

// jsxElementNameString renders a JSX element name back to source text for
// the opening/closing tag-name equality check (spec.md §4.3: "checked
// textually between opening and closing elements; mismatch is fatal").
func jsxElementNameString(n ast.Node) string {
	switch v := n.(type) {
	case *ast.JSXIdentifier:
		return v.Name
	case *ast.JSXMemberExpression:
		return jsxElementNameString(v.Object) + "." + jsxElementNameString(v.Property)
	case *ast.JSXNamespacedName:
		return jsxElementNameString(v.Namespace) + ":" + jsxElementNameString(v.Name)
	default:
		return ""
	}
}
