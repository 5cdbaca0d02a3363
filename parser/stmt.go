package parser

import (
	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// parseBlock parses a statement sequence that either sits inline on the
// same source line as its introducing colon ("produce Text: Return
// name.") or is indented beneath it on following lines. Both forms
// terminate each statement with a DOT.
func (p *Parser) parseBlock() *ast.Block {
	start := p.cur().Span.Start
	var stmts []ast.Stmt

	if p.atKind(token.NEWLINE) {
		p.advance()
		if p.atKind(token.INDENT) {
			p.advance()
			for !p.atKind(token.DEDENT) && !p.atEOF() {
				p.skipNewlines()
				if p.atKind(token.DEDENT) || p.atEOF() {
					break
				}
				stmts = append(stmts, p.parseStmt())
				p.skipNewlines()
			}
			if p.atKind(token.DEDENT) {
				p.advance()
			}
		}
	} else {
		for !p.atKind(token.NEWLINE) && !p.atKind(token.DEDENT) && !p.atEOF() {
			stmts = append(stmts, p.parseStmt())
		}
	}

	end := start
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].Span().End
	}
	return &ast.Block{Stmts: stmts, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.atKeyword("Let"):
		return p.parseLetStmt()
	case p.atKeyword("Return"):
		return p.parseReturnStmt()
	case p.atKeyword("If"):
		return p.parseIfStmt()
	case p.atKeyword("Match"):
		return p.parseMatchStmt()
	case p.atKeyword("Start"):
		return p.parseStartStmt()
	case p.atKeyword("Wait"):
		return p.parseWaitStmt()
	case p.atKeyword("Try"):
		return p.parseTryStmt()
	case p.atKeyword("Workflow"):
		return p.parseWorkflowStmt()
	default:
		start := p.cur().Span.Start
		e := p.parseExpr()
		p.expectDot()
		return &ast.ExprStmt{Value: e, SpanV: source.Span{Start: start, End: e.Span().End}}
	}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Let'
	name := p.advance().Value
	var typ ast.Type
	if p.atKind(token.COLON) {
		p.advance()
		typ = p.parseType()
	}
	p.expectKeyword("be")
	value := p.parseExpr()
	end := value.Span().End
	p.expectDot()
	return &ast.LetStmt{Name: name, Type: typ, Value: value, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Return'
	value := p.parseExpr()
	end := value.Span().End
	p.expectDot()
	return &ast.ReturnStmt{Value: value, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'If'
	cond := p.parseExpr()
	if !p.atKind(token.COLON) {
		p.errorUnexpected("':'")
	} else {
		p.advance()
	}
	then := p.parseBlock()
	end := then.SpanV.End
	var elseBlock *ast.Block
	p.skipNewlines()
	if p.atKeyword("Otherwise") {
		p.advance()
		if p.atKind(token.COLON) {
			p.advance()
		}
		elseBlock = p.parseBlock()
		end = elseBlock.SpanV.End
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseMatchStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Match'
	subject := p.parseExpr()
	if p.atKind(token.COLON) {
		p.advance()
	}
	p.skipNewlines()
	if p.atKind(token.INDENT) {
		p.advance()
	}
	var cases []ast.MatchCaseStmt
	for p.atKeyword("When") {
		caseStart := p.cur().Span.Start
		p.advance()
		pattern := p.parseExpr()
		if p.atKind(token.COLON) {
			p.advance()
		}
		body := p.parseBlock()
		cases = append(cases, ast.MatchCaseStmt{
			Pattern: pattern, Body: body,
			SpanV: source.Span{Start: caseStart, End: body.SpanV.End},
		})
		p.skipNewlines()
	}
	end := subject.Span().End
	if len(cases) > 0 {
		end = cases[len(cases)-1].SpanV.End
	}
	if p.atKind(token.DEDENT) {
		p.advance()
	}
	return &ast.MatchStmt{Subject: subject, Cases: cases, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseStartStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Start'
	task := p.advance().Value
	p.expectKeyword("as")
	p.expectKeyword("async")
	call := p.parseExpr()
	end := call.Span().End
	p.expectDot()
	return &ast.StartStmt{Task: task, Call: call, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseWaitStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Wait'
	p.expectKeyword("for")
	nameTok := p.advance()
	end := nameTok.Span.End
	p.expectDot()
	return &ast.WaitStmt{Task: nameTok.Value, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseTryStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Try'
	if p.atKind(token.COLON) {
		p.advance()
	}
	body := p.parseBlock()
	end := body.SpanV.End
	p.skipNewlines()
	var catchName string
	var handler *ast.Block
	if p.atKeyword("Catch") {
		p.advance()
		catchName = p.advance().Value
		if p.atKind(token.COLON) {
			p.advance()
		}
		handler = p.parseBlock()
		end = handler.SpanV.End
	}
	return &ast.TryStmt{Body: body, CatchName: catchName, Handler: handler, SpanV: source.Span{Start: start, End: end}}
}

func (p *Parser) parseWorkflowStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // 'Workflow'
	name := p.advance().Value
	if p.atKind(token.COLON) {
		p.advance()
	}
	inner := p.parseBlock()
	steps := make([]ast.WorkflowStep, 0, len(inner.Stmts))
	for _, s := range inner.Stmts {
		steps = append(steps, ast.WorkflowStep{Stmt: s, SpanV: s.Span()})
	}
	return &ast.WorkflowStmt{Name: name, Steps: steps, SpanV: source.Span{Start: start, End: inner.SpanV.End}}
}
