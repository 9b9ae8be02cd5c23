package js

// startsExpr returns true if the token can start an expression, used for the optional argument of yield.
func startsExpr(tt TokenType) bool {
	switch tt {
	case OpenBracketToken, OpenBraceToken, OpenParenToken, TemplateToken, TemplateStartToken, DivToken, DivEqToken,
		NotToken, BitNotToken, AddToken, SubToken, IncrToken, DecrToken, StringToken, PrivateIdentifierToken, LtToken,
		FunctionToken, ClassToken, NewToken, ThisToken, SuperToken, NullToken, TrueToken, FalseToken, TypeofToken,
		VoidToken, DeleteToken, ImportToken:
		return true
	}
	return IsNumeric(tt) || IsIdentifier(tt)
}

// isBareArrow returns true for an arrow function that is not enclosed in parentheses, which ends an assignment expression.
func isBareArrow(expr IExpr) bool {
	arrow, ok := expr.(*ArrowFunctionExpression)
	return ok && !arrow.Parenthesized()
}

// mixesCoalesce returns true if an operand of a logical operator is an unparenthesized logical expression of the other kind.
func mixesCoalesce(op TokenType, operand IExpr) bool {
	logical, ok := operand.(*LogicalExpression)
	if !ok || logical.Parenthesized() {
		return false
	}
	return (op == NullishToken) != (logical.Operator == "??")
}

// isPrivateMember returns true for a member expression or optional chain ending in a private name.
func isPrivateMember(expr IExpr) bool {
	if chain, ok := expr.(*ChainExpression); ok {
		expr = chain.Expression
	}
	member, ok := expr.(*MemberExpression)
	if !ok {
		return false
	}
	_, ok = member.Property.(*PrivateIdentifier)
	return ok
}

// isProtoProperty returns true for a __proto__: value property, which sets the prototype of the object.
func isProtoProperty(prop *Property) bool {
	if prop.Computed || prop.Shorthand || prop.Method || prop.Kind != "init" {
		return false
	}
	return propertyName(prop.Key) == "__proto__"
}

// propertyName returns the name of a non-computed property key that is an identifier or string.
func propertyName(key IExpr) string {
	switch key := key.(type) {
	case *Identifier:
		return key.Name
	case *Literal:
		if s, ok := key.Value.(string); ok && key.Regex == nil {
			return s
		}
	}
	return ""
}

// exportName returns the name of an exported identifier or string.
func exportName(name IExpr) string {
	if id, ok := name.(*Identifier); ok {
		return id.Name
	}
	return propertyName(name)
}
