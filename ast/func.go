package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList ParameterList
		Body          *BlockStatement

		Async, Generator bool
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators
		Rest    *BindingTarget `optional:"true"`
		Closing Idx
	}
)

func (*FunctionLiteral) _expr() {}
