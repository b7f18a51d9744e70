package ast

import "github.com/t14raptor/replify/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		VisitableNode
		_expr()
	}

	// BindingTarget is the left side of a declarator, a parameter, a catch
	// parameter or a for-in/of head.
	BindingTarget struct {
		Target
	}

	// Target is implemented by identifiers, object and array patterns, and
	// (in assignment position only) member expressions.
	Target interface {
		Expr
		_bindingTarget()
	}

	YieldExpression struct {
		Yield    Idx
		Argument *Expression `optional:"true"`
		Delegate bool
	}

	AwaitExpression struct {
		Await    Idx
		Argument *Expression
	}

	// ImportExpression is the dynamic module-load primitive, import(source).
	ImportExpression struct {
		Import           Idx
		Source           *Expression
		Options          *Expression `optional:"true"`
		RightParenthesis Idx
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	// ArrayPattern elements are binding targets, holes (an empty
	// Expression) or defaulted targets written as an AssignExpression.
	ArrayPattern struct {
		LeftBracket  Idx
		RightBracket Idx
		Elements     Expressions
		Rest         *Expression `optional:"true"`
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	MemberExpression struct {
		Object   *Expression
		Property *MemberProperty
	}

	MemberProperty struct {
		Prop MemberProp
	}

	// MemberProp is either an *Identifier (a.b) or a *ComputedProperty (a[b]).
	MemberProp interface {
		Node
		VisitableNode
		_memberProperty()
	}

	ComputedProperty struct {
		LeftBracket  Idx
		Expr         *Expression
		RightBracket Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	PrivateDotExpression struct {
		Left       *Expression
		Identifier *PrivateIdentifier
	}

	// OptionalChain wraps a whole a?.b.c chain so that short-circuiting
	// stops at its boundary.
	OptionalChain struct {
		Base *Expression
	}

	// Optional marks the object or callee that is followed by ?.
	Optional struct {
		Expr *Expression
	}

	ConciseBody struct {
		Body Body
	}

	// Body is the body of an arrow function: *BlockStatement or *Expression.
	Body interface {
		Node
		VisitableNode
		_conciseBody()
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList ParameterList
		Body          *ConciseBody
		Async         bool
	}

	PrivateIdentifier struct {
		Identifier *Identifier
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	// ObjectPattern properties are *PropertyShort (with an optional default)
	// or *PropertyKeyed whose value is a target or a defaulted target.
	ObjectPattern struct {
		LeftBrace  Idx
		RightBrace Idx
		Properties Properties
		Rest       *Expression `optional:"true"`
	}

	SpreadElement struct {
		Ellipsis   Idx
		Expression *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	TemplateElements []TemplateElement

	TemplateElement struct {
		Idx     Idx
		Literal string
		Parsed  string
		Valid   bool
	}

	TemplateLiteral struct {
		OpenQuote   Idx
		CloseQuote  Idx
		Tag         *Expression `optional:"true"`
		Elements    TemplateElements
		Expressions Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	SuperExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // If a prefix operation
		Operand  *Expression
		Postfix  bool
	}

	MetaProperty struct {
		Meta, Property *Identifier
		Idx            Idx
	}
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*Identifier) _memberProperty()       {}
func (*ComputedProperty) _memberProperty() {}

func (*ArrayPattern) _bindingTarget()      {}
func (*MemberExpression) _bindingTarget()  {}
func (*ObjectPattern) _bindingTarget()     {}
func (*Identifier) _bindingTarget()        {}
func (*InvalidExpression) _bindingTarget() {}

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*YieldExpression) _expr()       {}
func (*AwaitExpression) _expr()       {}
func (*ImportExpression) _expr()      {}
func (*InvalidExpression) _expr()     {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*PrivateDotExpression) _expr()  {}
func (*ArrowFunctionLiteral) _expr()  {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*TemplateLiteral) _expr()       {}
func (*ThisExpression) _expr()        {}
func (*SuperExpression) _expr()       {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*MetaProperty) _expr()          {}
func (*ObjectPattern) _expr()         {}
func (*ArrayPattern) _expr()          {}
func (*OptionalChain) _expr()         {}
func (*Optional) _expr()              {}
func (*SpreadElement) _expr()         {}
func (*PrivateIdentifier) _expr()     {}

// IsNone reports whether the expression slot is empty (an array hole or an
// omitted optional child).
func (e *Expression) IsNone() bool {
	return e == nil || e.Expr == nil
}
