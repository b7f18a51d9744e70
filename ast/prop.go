package ast

type PropertyKind string

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindGet    PropertyKind = "get"
	PropertyKindSet    PropertyKind = "set"
	PropertyKindMethod PropertyKind = "method"
)

type (
	Properties []Property

	Property struct {
		Prop `optional:"true"`
	}

	// Prop is *PropertyShort, *PropertyKeyed or *SpreadElement.
	Prop interface {
		Node
		VisitableNode
		_property()
	}

	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression `optional:"true"`
	}

	// PropertyKeyed keys are an *Identifier, *StringLiteral or
	// *NumberLiteral, any expression when Computed, or a
	// *PrivateIdentifier in class bodies.
	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
func (*SpreadElement) _property() {}

func (*PropertyShort) _expr() {}
func (*PropertyKeyed) _expr() {}
