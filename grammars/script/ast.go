package script

// Expr is an expression node of the syntax tree.
type Expr interface {
	expr()
}

// Expression nodes.
type (
	Bool   struct{ Value bool }
	Number struct{ Value float64 }
	String struct{ Value string } // escape sequences are kept as written
	Ident  struct{ Name string }
	Tuple  struct{ Elements []Expr }

	// Block is a sequence of statements, optionally followed by an
	// expression which is the value of the block. Last is nil if there is
	// none.
	Block struct {
		Stmts []Stmt
		Last  Expr
	}

	// If is a conditional expression. Else is nil if there is no else-branch.
	If struct {
		Test, Then, Else Expr
	}

	Call struct {
		Callee    Expr
		Arguments []Expr
	}

	Property struct {
		Target Expr
		Name   string
	}
)

func (Bool) expr()     {}
func (Number) expr()   {}
func (String) expr()   {}
func (Ident) expr()    {}
func (Tuple) expr()    {}
func (Block) expr()    {}
func (If) expr()       {}
func (Call) expr()     {}
func (Property) expr() {}

// Stmt is a statement node of the syntax tree.
type Stmt interface {
	stmt()
}

// Statement nodes.
type (
	Let struct {
		Name string
		Init Expr
	}

	DefFn struct {
		Name   string
		Params []string
		Body   Expr
	}

	// Return returns from a function. Body is nil for a bare return.
	Return struct{ Body Expr }

	While struct {
		Test, Body Expr
	}

	Break struct{}

	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct{ Expr Expr }
)

func (Let) stmt()      {}
func (DefFn) stmt()    {}
func (Return) stmt()   {}
func (While) stmt()    {}
func (Break) stmt()    {}
func (ExprStmt) stmt() {}
