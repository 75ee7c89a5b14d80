package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascals/internal/ast"
	"pascals/internal/errors"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, err := ParseSource(source)
	require.NoError(t, err)
	return prog
}

// wrap builds a full program around a single statement.
func wrap(stmt string) string {
	return "program p;\nmulai\n  " + stmt + "\nselesai."
}

func firstStmt(t *testing.T, source string) ast.Stmt {
	t.Helper()
	prog := parse(t, source)
	require.NotEmpty(t, prog.Block.Body.Stmts)
	return prog.Block.Body.Stmts[0]
}

func TestMinimalProgram(t *testing.T) {
	prog := parse(t, "program kosong;\nmulai\nselesai.")
	assert.Equal(t, "kosong", prog.Name)
	assert.Empty(t, prog.Block.Decls)
	require.Len(t, prog.Block.Body.Stmts, 1)
	assert.IsType(t, &ast.EmptyStmt{}, prog.Block.Body.Stmts[0])
}

func TestVarDeclarations(t *testing.T) {
	prog := parse(t, `program p;
variabel
  x, y: integer;
  r: real;
mulai
selesai.`)

	require.Len(t, prog.Block.Decls, 2)

	first := prog.Block.Decls[0].(*ast.VarDecl)
	assert.Equal(t, []string{"x", "y"}, first.Names)
	assert.Equal(t, "integer", first.Type.(*ast.SimpleType).Name)

	second := prog.Block.Decls[1].(*ast.VarDecl)
	assert.Equal(t, []string{"r"}, second.Names)
	assert.Equal(t, "real", second.Type.(*ast.SimpleType).Name)
}

func TestConstDeclarations(t *testing.T) {
	prog := parse(t, `program p;
konstanta
  batas = 100;
  pi = 3.14;
  nama = 'teks';
  aktif = benar;
mulai
selesai.`)

	require.Len(t, prog.Block.Decls, 4)

	batas := prog.Block.Decls[0].(*ast.ConstDecl)
	assert.Equal(t, "batas", batas.Name)
	assert.Equal(t, int64(100), batas.Value.(*ast.NumberLit).Int)

	pi := prog.Block.Decls[1].(*ast.ConstDecl)
	assert.True(t, pi.Value.(*ast.NumberLit).IsReal)

	nama := prog.Block.Decls[2].(*ast.ConstDecl)
	assert.Equal(t, "teks", nama.Value.(*ast.StringLit).Value)

	aktif := prog.Block.Decls[3].(*ast.ConstDecl)
	assert.True(t, aktif.Value.(*ast.BoolLit).Value)
}

func TestArrayTypeDeclaration(t *testing.T) {
	prog := parse(t, `program p;
tipe
  baris = larik [1..10] dari integer;
mulai
selesai.`)

	decl := prog.Block.Decls[0].(*ast.TypeDecl)
	assert.Equal(t, "baris", decl.Name)

	arr := decl.Type.(*ast.ArrayType)
	assert.Equal(t, int64(1), arr.Low.(*ast.NumberLit).Int)
	assert.Equal(t, int64(10), arr.High.(*ast.NumberLit).Int)
	assert.Equal(t, "integer", arr.Elem.(*ast.SimpleType).Name)
}

func TestRecordTypeDeclaration(t *testing.T) {
	prog := parse(t, `program p;
tipe
  titik = rekaman
    x, y: integer;
    label: char
  selesai;
mulai
selesai.`)

	rec := prog.Block.Decls[0].(*ast.TypeDecl).Type.(*ast.RecordType)
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, []string{"x", "y"}, rec.Fields[0].Names)
	assert.Equal(t, []string{"label"}, rec.Fields[1].Names)
}

func TestProcedureAndFunctionDeclarations(t *testing.T) {
	prog := parse(t, `program p;
prosedur tulis(n: integer);
mulai
selesai;
fungsi tambah(a, b: integer): integer;
mulai
  tambah := a + b
selesai;
mulai
selesai.`)

	require.Len(t, prog.Block.Decls, 2)

	proc := prog.Block.Decls[0].(*ast.ProcDecl)
	assert.Equal(t, "tulis", proc.Name)
	require.Len(t, proc.Params, 1)
	assert.Equal(t, []string{"n"}, proc.Params[0].Names)

	fn := prog.Block.Decls[1].(*ast.FuncDecl)
	assert.Equal(t, "tambah", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params[0].Names)
	assert.Equal(t, "integer", fn.Result.(*ast.SimpleType).Name)
}

func TestIfElseStatement(t *testing.T) {
	stmt := firstStmt(t, wrap("jika x < 10 maka y := 1 selain-itu y := 2"))

	ifStmt := stmt.(*ast.IfStmt)
	cond := ifStmt.Cond.(*ast.BinaryExpr)
	assert.Equal(t, "<", cond.Op)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestWhileStatement(t *testing.T) {
	stmt := firstStmt(t, wrap("selama x > 0 lakukan x := x - 1"))

	while := stmt.(*ast.WhileStmt)
	assert.Equal(t, ">", while.Cond.(*ast.BinaryExpr).Op)
	assert.IsType(t, &ast.AssignStmt{}, while.Body)
}

func TestForDowntoStatement(t *testing.T) {
	stmt := firstStmt(t, wrap("untuk i := 10 turun-ke 1 lakukan tulis(i)"))

	forStmt := stmt.(*ast.ForStmt)
	assert.Equal(t, "i", forStmt.Var)
	assert.Equal(t, "downto", forStmt.Direction)
	assert.Equal(t, int64(10), forStmt.Start.(*ast.NumberLit).Int)
	assert.IsType(t, &ast.CallStmt{}, forStmt.Body)
}

func TestRepeatStatement(t *testing.T) {
	stmt := firstStmt(t, wrap("ulangi x := x + 1 sampai x = 10"))

	repeat := stmt.(*ast.RepeatStmt)
	require.Len(t, repeat.Stmts, 1)
	assert.Equal(t, "=", repeat.Cond.(*ast.BinaryExpr).Op)
}

func TestCaseStatement(t *testing.T) {
	stmt := firstStmt(t, wrap("kasus x dari 1, 2: y := 1; 3: y := 2 selesai"))

	caseStmt := stmt.(*ast.CaseStmt)
	require.Len(t, caseStmt.Arms, 2)
	assert.Len(t, caseStmt.Arms[0].Constants, 2)
	assert.Len(t, caseStmt.Arms[1].Constants, 1)
}

func TestOperatorPrecedence(t *testing.T) {
	stmt := firstStmt(t, wrap("x := 1 + 2 * 3"))

	value := stmt.(*ast.AssignStmt).Value.(*ast.BinaryExpr)
	assert.Equal(t, "+", value.Op)

	right := value.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", right.Op)
	assert.Equal(t, int64(2), right.Left.(*ast.NumberLit).Int)
	assert.Equal(t, int64(3), right.Right.(*ast.NumberLit).Int)
}

func TestLeftAssociativity(t *testing.T) {
	stmt := firstStmt(t, wrap("x := 10 - 4 - 3"))

	outer := stmt.(*ast.AssignStmt).Value.(*ast.BinaryExpr)
	assert.Equal(t, "-", outer.Op)
	assert.Equal(t, int64(3), outer.Right.(*ast.NumberLit).Int)

	inner := outer.Left.(*ast.BinaryExpr)
	assert.Equal(t, int64(10), inner.Left.(*ast.NumberLit).Int)
	assert.Equal(t, int64(4), inner.Right.(*ast.NumberLit).Int)
}

func TestWordOperatorsLowercased(t *testing.T) {
	stmt := firstStmt(t, wrap("b := x DAN benar ATAU salah"))

	outer := stmt.(*ast.AssignStmt).Value.(*ast.BinaryExpr)
	assert.Equal(t, "atau", outer.Op)
	assert.Equal(t, "dan", outer.Left.(*ast.BinaryExpr).Op)
}

func TestUnaryNot(t *testing.T) {
	stmt := firstStmt(t, wrap("b := tidak selesai2"))

	unary := stmt.(*ast.AssignStmt).Value.(*ast.UnaryExpr)
	assert.Equal(t, "not", unary.Op)
	assert.Equal(t, "selesai2", unary.Operand.(*ast.Variable).Name)
}

func TestChainedVariableAccess(t *testing.T) {
	stmt := firstStmt(t, wrap("a[i].f := 1"))

	target := stmt.(*ast.AssignStmt).Target
	assert.Equal(t, "a", target.Name)
	assert.Equal(t, "i", target.Index.(*ast.Variable).Name)
	assert.Empty(t, target.Field)

	require.NotNil(t, target.Next)
	assert.Equal(t, "f", target.Next.Field)
	assert.Nil(t, target.Next.Next)
}

func TestSingleLinkIndexAndField(t *testing.T) {
	// A bare field access after the identifier stays on the base link.
	stmt := firstStmt(t, wrap("a.f := 1"))

	target := stmt.(*ast.AssignStmt).Target
	assert.Equal(t, "a", target.Name)
	assert.Equal(t, "f", target.Field)
	assert.Nil(t, target.Next)
}

func TestFunctionCallExpression(t *testing.T) {
	stmt := firstStmt(t, wrap("x := tambah(1, y)"))

	call := stmt.(*ast.AssignStmt).Value.(*ast.CallExpr)
	assert.Equal(t, "tambah", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "y", call.Args[1].(*ast.Variable).Name)
}

func TestMissingExpressionFailsFast(t *testing.T) {
	_, err := ParseSource("program p; mulai x := ; selesai .")

	var tokErr *errors.UnexpectedTokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, "expression", tokErr.Expected)
}

func TestTrailingTokensRejected(t *testing.T) {
	_, err := ParseSource("program p; mulai selesai . extra")

	var tokErr *errors.UnexpectedTokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, "end of file", tokErr.Expected)
}

func TestMissingProgramKeyword(t *testing.T) {
	_, err := ParseSource("mulai selesai .")

	var tokErr *errors.UnexpectedTokenError
	require.ErrorAs(t, err, &tokErr)
}

func TestUnexpectedEOF(t *testing.T) {
	_, err := ParseSource("program p; mulai")

	var eofErr *errors.UnexpectedEOFError
	require.ErrorAs(t, err, &eofErr)
}

func TestNegativeNumberLiteral(t *testing.T) {
	stmt := firstStmt(t, wrap("x := -5"))

	num := stmt.(*ast.AssignStmt).Value.(*ast.NumberLit)
	assert.Equal(t, int64(-5), num.Int)
}
