package parser

import "golang.org/x/exp/slices"

type scope struct {
	outer        *scope
	allowIn      bool
	inIteration  bool
	inSwitch     bool
	inFuncParams bool
	inFunction   bool
	allowAwait   bool
	allowYield   bool

	labels []string
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer:   p.scope,
		allowIn: true,
	}
}

// openFunctionScope opens the scope of a function body, parameter list or
// class element initializer.
func (p *parser) openFunctionScope(async, generator bool) {
	p.openScope()
	p.scope.inFunction = true
	p.scope.allowAwait = async
	p.scope.allowYield = generator
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (s *scope) hasLabel(name string) bool {
	if slices.Contains(s.labels, name) {
		return true
	}
	if s.outer != nil && !s.inFunction {
		return s.outer.hasLabel(name)
	}
	return false
}
