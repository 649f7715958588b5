package fnl

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders a module as nested S-expressions, one function per line
// group and one statement per line:
//
//	(module main
//	  (fn main ()
//	    (let x Int 5)
//	    (print x)))
type AstPrinter struct{}

func (printer *AstPrinter) Print(module *Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(module %s", module.Name)
	for _, fn := range module.Functions {
		sb.WriteString("\n  ")
		printer.writeFunction(&sb, fn)
	}
	sb.WriteString(")")
	return sb.String()
}

func (printer *AstPrinter) writeFunction(sb *strings.Builder, fn *Function) {
	args := make([]string, len(fn.Args))
	for i, arg := range fn.Args {
		args[i] = fmt.Sprintf("(%s %s)", arg.Name, arg.Type)
	}
	fmt.Fprintf(sb, "(fn %s (%s)", fn.Name, strings.Join(args, " "))
	for _, stmt := range fn.Body {
		s, _ := stmt.Accept(printer)
		fmt.Fprintf(sb, "\n    %v", s)
	}
	sb.WriteString(")")
}

// PrintExpr renders a single expression.
func (printer *AstPrinter) PrintExpr(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	return fmt.Sprintf(
		"(let %s %s %s)",
		stmt.Name,
		stmt.Type,
		printer.PrintExpr(stmt.Value),
	), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return fmt.Sprintf("(print %s)", printer.PrintExpr(stmt.Value)), nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	return fmt.Sprintf("(return %s)", printer.PrintExpr(stmt.Value)), nil
}

func (printer *AstPrinter) VisitAddExpr(expr *AddExpr) (interface{}, error) {
	return fmt.Sprintf(
		"(+ %s %s)",
		printer.PrintExpr(expr.Lhs),
		printer.PrintExpr(expr.Rhs),
	), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	parts := []string{"call", expr.Callee}
	for _, arg := range expr.Args {
		parts = append(parts, printer.PrintExpr(arg))
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}

func (printer *AstPrinter) VisitIntExpr(expr *IntExpr) (interface{}, error) {
	return strconv.FormatInt(int64(expr.Value), 10), nil
}

func (printer *AstPrinter) VisitNameExpr(expr *NameExpr) (interface{}, error) {
	return expr.Name, nil
}
