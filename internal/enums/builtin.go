package enums

// The framework's own selector enums. Value order mirrors the runtime's
// enum declarations; changing it changes every materialized ordinal.
func init() {
	mustRegister("AstArithmeticExprType", []string{
		"ADD", "SUB", "MUL", "DIV", "MOD",
	})
	mustRegister("AstComparisonExprType", []string{
		"EQUAL", "NOT_EQUAL", "LESS_THAN", "LESS_EQUAL", "GREATER_THAN", "GREATER_EQUAL",
	})
	mustRegister("FISimpleOperandShapeCategory", []string{
		"LITERAL_NONZERO", "ZERO", "VARIABLE",
	})
	mustRegister("FIOperandShapeCategory", []string{
		"COMPLEX", "LITERAL_NONZERO", "ZERO", "VARIABLE",
		"VARPTR_DEREF", "VARPTR_VAR", "VARPTR_LIT_NONZERO",
	})
}

func mustRegister(name string, values []string) {
	if err := Default.Register(name, values); err != nil {
		panic(err)
	}
}
