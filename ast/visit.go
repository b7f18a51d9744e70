package ast

// Visitor has one method per node type. Embed NoopVisitor and set its V
// field to the embedding visitor to override only the methods of interest.
type Visitor interface {
	VisitProgram(n *Program)
	VisitExpression(n *Expression)
	VisitStatement(n *Statement)
	VisitBindingTarget(n *BindingTarget)
	VisitProperty(n *Property)
	VisitClassElement(n *ClassElement)
	VisitImportSpecifier(n *ImportSpecifier)
	VisitMemberProperty(n *MemberProperty)
	VisitConciseBody(n *ConciseBody)
	VisitForLoopInitializer(n *ForLoopInitializer)
	VisitForInto(n *ForInto)
	VisitExpressions(n *Expressions)
	VisitStatements(n *Statements)
	VisitProperties(n *Properties)
	VisitClassElements(n *ClassElements)
	VisitVariableDeclarators(n *VariableDeclarators)
	VisitImportSpecifiers(n *ImportSpecifiers)
	VisitCaseStatements(n *CaseStatements)
	VisitIdentifier(n *Identifier)
	VisitPrivateIdentifier(n *PrivateIdentifier)
	VisitNullLiteral(n *NullLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitRegExpLiteral(n *RegExpLiteral)
	VisitTemplateLiteral(n *TemplateLiteral)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitArrayPattern(n *ArrayPattern)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitObjectPattern(n *ObjectPattern)
	VisitPropertyShort(n *PropertyShort)
	VisitPropertyKeyed(n *PropertyKeyed)
	VisitSpreadElement(n *SpreadElement)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitClassLiteral(n *ClassLiteral)
	VisitFieldDefinition(n *FieldDefinition)
	VisitMethodDefinition(n *MethodDefinition)
	VisitClassStaticBlock(n *ClassStaticBlock)
	VisitParameterList(n *ParameterList)
	VisitAssignExpression(n *AssignExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitSequenceExpression(n *SequenceExpression)
	VisitCallExpression(n *CallExpression)
	VisitNewExpression(n *NewExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitComputedProperty(n *ComputedProperty)
	VisitPrivateDotExpression(n *PrivateDotExpression)
	VisitOptionalChain(n *OptionalChain)
	VisitOptional(n *Optional)
	VisitThisExpression(n *ThisExpression)
	VisitSuperExpression(n *SuperExpression)
	VisitMetaProperty(n *MetaProperty)
	VisitYieldExpression(n *YieldExpression)
	VisitAwaitExpression(n *AwaitExpression)
	VisitImportExpression(n *ImportExpression)
	VisitInvalidExpression(n *InvalidExpression)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitBadStatement(n *BadStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitCaseStatement(n *CaseStatement)
	VisitCatchStatement(n *CatchStatement)
	VisitDebuggerStatement(n *DebuggerStatement)
	VisitDoWhileStatement(n *DoWhileStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitIfStatement(n *IfStatement)
	VisitLabelledStatement(n *LabelledStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitWithStatement(n *WithStatement)
	VisitForStatement(n *ForStatement)
	VisitForInStatement(n *ForInStatement)
	VisitForOfStatement(n *ForOfStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitImportDefaultSpecifier(n *ImportDefaultSpecifier)
	VisitImportNamespaceSpecifier(n *ImportNamespaceSpecifier)
	VisitImportNamedSpecifier(n *ImportNamedSpecifier)
}

// NoopVisitor walks every child of every node. V is the visitor that
// receives the nested calls, so that overridden methods are reached.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBindingTarget(n *BindingTarget) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(n *Property) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElement(n *ClassElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportSpecifier(n *ImportSpecifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberProperty(n *MemberProperty) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConciseBody(n *ConciseBody) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForLoopInitializer(n *ForLoopInitializer) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForInto(n *ForInto) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElements(n *ClassElements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarators(n *VariableDeclarators) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportSpecifiers(n *ImportSpecifiers) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCaseStatements(n *CaseStatements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(n *Identifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateIdentifier(n *PrivateIdentifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitRegExpLiteral(n *RegExpLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTemplateLiteral(n *TemplateLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayPattern(n *ArrayPattern) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectPattern(n *ObjectPattern) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassStaticBlock(n *ClassStaticBlock) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(n *ParameterList) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitComputedProperty(n *ComputedProperty) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateDotExpression(n *PrivateDotExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitOptionalChain(n *OptionalChain) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitOptional(n *Optional) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSuperExpression(n *SuperExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMetaProperty(n *MetaProperty) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitYieldExpression(n *YieldExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAwaitExpression(n *AwaitExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportExpression(n *ImportExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitInvalidExpression(n *InvalidExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBadStatement(n *BadStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCaseStatement(n *CaseStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDebuggerStatement(n *DebuggerStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitLabelledStatement(n *LabelledStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(n *TryStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWithStatement(n *WithStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForStatement(n *ForStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForOfStatement(n *ForOfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportDeclaration(n *ImportDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportDefaultSpecifier(n *ImportDefaultSpecifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportNamespaceSpecifier(n *ImportNamespaceSpecifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportNamedSpecifier(n *ImportNamedSpecifier) { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Expression) VisitWith(v Visitor) {
	if n != nil && n.Expr != nil {
		v.VisitExpression(n)
	}
}
func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Statement) VisitWith(v Visitor) {
	if n != nil && n.Stmt != nil {
		v.VisitStatement(n)
	}
}
func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *BindingTarget) VisitWith(v Visitor) {
	if n != nil && n.Target != nil {
		v.VisitBindingTarget(n)
	}
}
func (n *BindingTarget) VisitChildrenWith(v Visitor) {
	if n.Target != nil {
		n.Target.VisitWith(v)
	}
}

func (n *Property) VisitWith(v Visitor) {
	if n != nil && n.Prop != nil {
		v.VisitProperty(n)
	}
}
func (n *Property) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *ClassElement) VisitWith(v Visitor) {
	if n != nil && n.Element != nil {
		v.VisitClassElement(n)
	}
}
func (n *ClassElement) VisitChildrenWith(v Visitor) {
	if n.Element != nil {
		n.Element.VisitWith(v)
	}
}

func (n *ImportSpecifier) VisitWith(v Visitor) {
	if n != nil && n.ImportSpec != nil {
		v.VisitImportSpecifier(n)
	}
}
func (n *ImportSpecifier) VisitChildrenWith(v Visitor) {
	if n.ImportSpec != nil {
		n.ImportSpec.VisitWith(v)
	}
}

func (n *MemberProperty) VisitWith(v Visitor) {
	if n != nil && n.Prop != nil {
		v.VisitMemberProperty(n)
	}
}
func (n *MemberProperty) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *ConciseBody) VisitWith(v Visitor) {
	if n != nil && n.Body != nil {
		v.VisitConciseBody(n)
	}
}
func (n *ConciseBody) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *ForLoopInitializer) VisitWith(v Visitor) {
	if n != nil && n.Initializer != nil {
		v.VisitForLoopInitializer(n)
	}
}
func (n *ForLoopInitializer) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *ForInto) VisitWith(v Visitor) {
	if n != nil && n.Into != nil {
		v.VisitForInto(n)
	}
}
func (n *ForInto) VisitChildrenWith(v Visitor) {
	if n.Into != nil {
		n.Into.VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) {
	if n != nil {
		v.VisitExpressions(n)
	}
}
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) {
	if n != nil {
		v.VisitStatements(n)
	}
}
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Properties) VisitWith(v Visitor) {
	if n != nil {
		v.VisitProperties(n)
	}
}
func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *ClassElements) VisitWith(v Visitor) {
	if n != nil {
		v.VisitClassElements(n)
	}
}
func (n *ClassElements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *VariableDeclarators) VisitWith(v Visitor) {
	if n != nil {
		v.VisitVariableDeclarators(n)
	}
}
func (n *VariableDeclarators) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *ImportSpecifiers) VisitWith(v Visitor) {
	if n != nil {
		v.VisitImportSpecifiers(n)
	}
}
func (n *ImportSpecifiers) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *CaseStatements) VisitWith(v Visitor) {
	if n != nil {
		v.VisitCaseStatements(n)
	}
}
func (n *CaseStatements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Identifier) VisitWith(v Visitor) {
	if n != nil {
		v.VisitIdentifier(n)
	}
}
func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *PrivateIdentifier) VisitWith(v Visitor) {
	if n != nil {
		v.VisitPrivateIdentifier(n)
	}
}
func (n *PrivateIdentifier) VisitChildrenWith(v Visitor) {
	n.Identifier.VisitWith(v)
}

func (n *NullLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitNullLiteral(n)
	}
}
func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *BooleanLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitBooleanLiteral(n)
	}
}
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitNumberLiteral(n)
	}
}
func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitStringLiteral(n)
	}
}
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *RegExpLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitRegExpLiteral(n)
	}
}
func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *TemplateLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitTemplateLiteral(n)
	}
}
func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	n.Tag.VisitWith(v)
	n.Expressions.VisitWith(v)
}

func (n *ArrayLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitArrayLiteral(n)
	}
}
func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *ArrayPattern) VisitWith(v Visitor) {
	if n != nil {
		v.VisitArrayPattern(n)
	}
}
func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	n.Elements.VisitWith(v)
	n.Rest.VisitWith(v)
}

func (n *ObjectLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitObjectLiteral(n)
	}
}
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *ObjectPattern) VisitWith(v Visitor) {
	if n != nil {
		v.VisitObjectPattern(n)
	}
}
func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	n.Properties.VisitWith(v)
	n.Rest.VisitWith(v)
}

func (n *PropertyShort) VisitWith(v Visitor) {
	if n != nil {
		v.VisitPropertyShort(n)
	}
}
func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	n.Initializer.VisitWith(v)
}

func (n *PropertyKeyed) VisitWith(v Visitor) {
	if n != nil {
		v.VisitPropertyKeyed(n)
	}
}
func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *SpreadElement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitSpreadElement(n)
	}
}
func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *FunctionLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitFunctionLiteral(n)
	}
}
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ArrowFunctionLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitArrowFunctionLiteral(n)
	}
}
func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassLiteral) VisitWith(v Visitor) {
	if n != nil {
		v.VisitClassLiteral(n)
	}
}
func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	n.SuperClass.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *FieldDefinition) VisitWith(v Visitor) {
	if n != nil {
		v.VisitFieldDefinition(n)
	}
}
func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Initializer.VisitWith(v)
}

func (n *MethodDefinition) VisitWith(v Visitor) {
	if n != nil {
		v.VisitMethodDefinition(n)
	}
}
func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassStaticBlock) VisitWith(v Visitor) {
	if n != nil {
		v.VisitClassStaticBlock(n)
	}
}
func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

func (n *ParameterList) VisitWith(v Visitor) {
	if n != nil {
		v.VisitParameterList(n)
	}
}
func (n *ParameterList) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
	n.Rest.VisitWith(v)
}

func (n *AssignExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitAssignExpression(n)
	}
}
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitBinaryExpression(n)
	}
}
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitUnaryExpression(n)
	}
}
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitUpdateExpression(n)
	}
}
func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitConditionalExpression(n)
	}
}
func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitSequenceExpression(n)
	}
}
func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitCallExpression(n)
	}
}
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitNewExpression(n)
	}
}
func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *MemberExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitMemberExpression(n)
	}
}
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *ComputedProperty) VisitWith(v Visitor) {
	if n != nil {
		v.VisitComputedProperty(n)
	}
}
func (n *ComputedProperty) VisitChildrenWith(v Visitor) {
	n.Expr.VisitWith(v)
}

func (n *PrivateDotExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitPrivateDotExpression(n)
	}
}
func (n *PrivateDotExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Identifier.VisitWith(v)
}

func (n *OptionalChain) VisitWith(v Visitor) {
	if n != nil {
		v.VisitOptionalChain(n)
	}
}
func (n *OptionalChain) VisitChildrenWith(v Visitor) {
	n.Base.VisitWith(v)
}

func (n *Optional) VisitWith(v Visitor) {
	if n != nil {
		v.VisitOptional(n)
	}
}
func (n *Optional) VisitChildrenWith(v Visitor) {
	n.Expr.VisitWith(v)
}

func (n *ThisExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitThisExpression(n)
	}
}
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *SuperExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitSuperExpression(n)
	}
}
func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *MetaProperty) VisitWith(v Visitor) {
	if n != nil {
		v.VisitMetaProperty(n)
	}
}
func (n *MetaProperty) VisitChildrenWith(v Visitor) {
	n.Meta.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *YieldExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitYieldExpression(n)
	}
}
func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *AwaitExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitAwaitExpression(n)
	}
}
func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *ImportExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitImportExpression(n)
	}
}
func (n *ImportExpression) VisitChildrenWith(v Visitor) {
	n.Source.VisitWith(v)
	n.Options.VisitWith(v)
}

func (n *InvalidExpression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitInvalidExpression(n)
	}
}
func (n *InvalidExpression) VisitChildrenWith(v Visitor) {}

func (n *VariableDeclarator) VisitWith(v Visitor) {
	if n != nil {
		v.VisitVariableDeclarator(n)
	}
}
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	n.Initializer.VisitWith(v)
}

func (n *BadStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitBadStatement(n)
	}
}
func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitBlockStatement(n)
	}
}
func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BreakStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitBreakStatement(n)
	}
}
func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
}

func (n *ContinueStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitContinueStatement(n)
	}
}
func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
}

func (n *CaseStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitCaseStatement(n)
	}
}
func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
}

func (n *CatchStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitCatchStatement(n)
	}
}
func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	n.Parameter.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *DebuggerStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitDebuggerStatement(n)
	}
}
func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitDoWhileStatement(n)
	}
}
func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitEmptyStatement(n)
	}
}
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitExpressionStatement(n)
	}
}
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitIfStatement(n)
	}
}
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *LabelledStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitLabelledStatement(n)
	}
}
func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitReturnStatement(n)
	}
}
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *SwitchStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitSwitchStatement(n)
	}
}
func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ThrowStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitThrowStatement(n)
	}
}
func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *TryStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitTryStatement(n)
	}
}
func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Catch.VisitWith(v)
	n.Finally.VisitWith(v)
}

func (n *WhileStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitWhileStatement(n)
	}
}
func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *WithStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitWithStatement(n)
	}
}
func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitForStatement(n)
	}
}
func (n *ForStatement) VisitChildrenWith(v Visitor) {
	n.Initializer.VisitWith(v)
	n.Test.VisitWith(v)
	n.Update.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitForInStatement(n)
	}
}
func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitWith(v Visitor) {
	if n != nil {
		v.VisitForOfStatement(n)
	}
}
func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *FunctionDeclaration) VisitWith(v Visitor) {
	if n != nil {
		v.VisitFunctionDeclaration(n)
	}
}
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) {
	if n != nil {
		v.VisitClassDeclaration(n)
	}
}
func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *VariableDeclaration) VisitWith(v Visitor) {
	if n != nil {
		v.VisitVariableDeclaration(n)
	}
}
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *ImportDeclaration) VisitWith(v Visitor) {
	if n != nil {
		v.VisitImportDeclaration(n)
	}
}
func (n *ImportDeclaration) VisitChildrenWith(v Visitor) {
	n.Specifiers.VisitWith(v)
	n.Source.VisitWith(v)
	n.Attributes.VisitWith(v)
}

func (n *ImportDefaultSpecifier) VisitWith(v Visitor) {
	if n != nil {
		v.VisitImportDefaultSpecifier(n)
	}
}
func (n *ImportDefaultSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ImportNamespaceSpecifier) VisitWith(v Visitor) {
	if n != nil {
		v.VisitImportNamespaceSpecifier(n)
	}
}
func (n *ImportNamespaceSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ImportNamedSpecifier) VisitWith(v Visitor) {
	if n != nil {
		v.VisitImportNamedSpecifier(n)
	}
}
func (n *ImportNamedSpecifier) VisitChildrenWith(v Visitor) {
	n.Imported.VisitWith(v)
	n.Local.VisitWith(v)
}
