package internal

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

const maxFunctionParams = 255

func (p *parser) parse() {
	for !p.isAtEnd() {
		// Stray layout tokens are left behind by error recovery
		if p.match(tkNewline, tkDedent) {
			continue
		}
		st := p.parseStmt()
		if st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

func (p *parser) parseStmt() (st stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseAbort); !ok {
				panic(r)
			}
			p.synchronize()
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	if p.match(tkDef) {
		return p.fn()
	}
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkTry) {
		return p.try()
	}
	if p.check(tkIndent) {
		p.state.fatalError(errUnexpectedIndent, p.peek())
	}
	s := p.simple()
	p.consume(tkNewline, errExpectedNewline)
	return s
}

func (p *parser) simple() stmt {
	if p.match(tkBreak) {
		return &breakStmt{keyword: p.previous()}
	}
	if p.match(tkContinue) {
		return &continueStmt{keyword: p.previous()}
	}
	if p.match(tkPass) {
		return &passStmt{keyword: p.previous()}
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	return &exprStmt{expression: p.expression()}
}

// body parses the statements after ':' either as an indented block
// or as a single statement on the same line
func (p *parser) body() stmt {
	p.consume(tkColon, errExpectedColon)
	if p.match(tkNewline) {
		return &blockStmt{stmts: p.block()}
	}
	s := p.simple()
	p.consume(tkNewline, errExpectedNewline)
	return s
}

func (p *parser) block() []stmt {
	p.consume(tkIndent, errExpectedIndent)
	stmts := make([]stmt, 0)
	for !p.check(tkDedent) && !p.isAtEnd() {
		if p.match(tkNewline) {
			continue
		}
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.match(tkDedent)
	return stmts
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)

	var superclass *variableExpr
	if p.match(tkLeftParen) {
		superclass = &variableExpr{
			name: p.consume(tkIdentifier, errExpectedSuperclass),
		}
		p.consume(tkRightParen, errUnclosedParen)
	}

	p.consume(tkColon, errExpectedColon)
	p.consume(tkNewline, errExpectedNewline)
	p.consume(tkIndent, errExpectedIndent)

	methods := make([]*fnStmt, 0)
	for !p.check(tkDedent) && !p.isAtEnd() {
		if p.match(tkNewline) {
			continue
		}
		if p.match(tkPass) {
			p.consume(tkNewline, errExpectedNewline)
			continue
		}
		if !p.match(tkDef) {
			p.state.fatalError(errExpectedMethod, p.peek())
		}
		methods = append(methods, p.fn())
	}
	p.match(tkDedent)

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (p *parser) fn() *fnStmt {
	name := p.consume(tkIdentifier, errExpectedFunctionName)

	p.consume(tkLeftParen, errExpectedParen)

	params := make([]*token, 0)
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.fatalError(errMaxParameters, p.peek())
			}
			params = append(params, p.consume(tkIdentifier, errExpectedFunctionParam))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParams)

	var body []stmt
	switch b := p.body().(type) {
	case *blockStmt:
		body = b.stmts
	default:
		body = []stmt{b}
	}

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	st.condition = p.expression()
	st.thenBranch = p.body()

	for p.match(tkElif) {
		st.elifs = append(st.elifs, &elifBranch{
			condition:  p.expression(),
			thenBranch: p.body(),
		})
	}

	if p.match(tkElse) {
		st.elseBranch = p.body()
	}

	return st
}

func (p *parser) while() stmt {
	keyword := p.previous()
	cond := p.expression()
	body := p.body()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) forLoop() stmt {
	keyword := p.previous()
	identifier := p.consume(tkIdentifier, errExpectedIdentifier)
	p.consume(tkIn, errExpectedIn)
	collection := p.expression()
	body := p.body()
	return &forStmt{
		keyword:    keyword,
		identifier: identifier,
		collection: collection,
		body:       body,
	}
}

func (p *parser) try() stmt {
	st := &tryStmt{
		keyword: p.previous(),
	}
	st.tryBody = p.body()

	p.consume(tkExcept, errExpectedExcept)
	if p.match(tkIdentifier) {
		st.name = p.previous()
	}
	st.exceptBody = p.body()

	if p.match(tkFinally) {
		st.finallyBody = p.body()
	}
	return st
}

func (p *parser) ret() stmt {
	var value expr
	keyword := p.previous()
	if !p.check(tkNewline) && !p.check(tkDedent) && !p.isAtEnd() {
		value = p.expression()
	}
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) expression() expr {
	return p.assignment()
}

var compoundOperators = map[tokenType]tokenType{
	tkPlusEqual:  tkPlus,
	tkMinusEqual: tkMinus,
	tkStarEqual:  tkStar,
	tkSlashEqual: tkSlash,
}

func (p *parser) assignment() expr {
	target := p.or()
	if p.match(tkEqual, tkPlusEqual, tkMinusEqual, tkStarEqual, tkSlashEqual) {
		equal := p.previous()
		value := p.assignment()

		// x op= v is read as x = x op v
		if op, ok := compoundOperators[equal.token]; ok {
			value = &binaryExpr{
				left: target,
				operator: &token{
					token:  op,
					lexeme: equal.lexeme[:1],
					line:   equal.line,
				},
				right: value,
			}
		}

		switch t := target.(type) {
		case *variableExpr:
			return &assignExpr{
				name:  t.name,
				value: value,
			}
		case *getExpr:
			return &setExpr{
				object: t.object,
				name:   t.name,
				value:  value,
			}
		}

		p.state.fatalError(errInvalidAssignment, equal)
	}
	return target
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkSlash, tkMod, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkNot, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedProp)
			expr = &getExpr{
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.state.fatalError(errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedArguments)
	return &callExpr{
		callee:    callee,
		arguments: arguments,
		paren:     paren,
	}
}

func (p *parser) primary() expr {
	if p.match(tkNumber) {
		return &literalExpr{value: pulseNumber(p.previous().literal.(float64))}
	}
	if p.match(tkString) {
		return &literalExpr{value: pulseString(p.previous().literal.(string))}
	}
	if p.match(tkTensor) {
		return &tensorExpr{literal: p.previous()}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: pulseBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: pulseBool(true)}
	}
	if p.match(tkNone) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkThis) {
		return &thisExpr{keyword: p.previous()}
	}
	if p.match(tkSuper) {
		keyword := p.previous()
		p.consume(tkDot, errExpectedDot)
		return &superExpr{
			keyword: keyword,
			method:  p.consume(tkIdentifier, errExpectedSuperMethod),
		}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.state.fatalError(errUndefinedExpr, p.peek())
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.state.fatalError(err, p.peek())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens up to the end of the statement that failed,
// including any block that belongs to it
func (p *parser) synchronize() {
	depth := 0
	for !p.isAtEnd() {
		switch p.peek().token {
		case tkIndent:
			depth++
		case tkDedent:
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		case tkNewline:
			if depth == 0 {
				p.advance()
				if !p.check(tkIndent) {
					return
				}
				continue
			}
		}
		p.advance()
	}
}
