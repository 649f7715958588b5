package fnl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintModule(t *testing.T) {
	testCases := []struct {
		module *Module
		want   string
	}{
		{NewModule([]*Function{}), "(module main)"},
		{sampleModule(), `(module main
  (fn main ()
    (let x Int 5)
    (let y Int 10)
    (let z Int (call add x y))
    (print z)))`},
		{NewModule([]*Function{
			NewFunction("f",
				[]*ArgumentDefinition{
					NewArgumentDefinition("a", TypeInt),
					NewArgumentDefinition("b", TypeInt),
				},
				[]Stmt{NewReturnStmt(NewCallExpr("g", []Expr{}))}),
			NewFunction("g", []*ArgumentDefinition{}, []Stmt{}),
		}), `(module main
  (fn f ((a Int) (b Int))
    (return (call g)))
  (fn g ()))`},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.module))
	}
}

func TestPrintExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{NewIntExpr(-3), "-3"},
		{NewNameExpr("x"), "x"},
		{NewAddExpr(NewIntExpr(1), NewNameExpr("x")), "(+ 1 x)"},
		{NewCallExpr("f", []Expr{NewAddExpr(NewIntExpr(1), NewIntExpr(2))}), "(call f (+ 1 2))"},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.PrintExpr(tc.expr))
	}
}
