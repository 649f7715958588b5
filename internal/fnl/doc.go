/*
Package fnl is the front-end of a tiny statically typed language made of
top-level functions over integers. Source text goes through the Scanner, which
never fails, and then through the Parser, which stops at the first grammar
violation.

Grammars

	program    --> ( function | ANY )* ;
	function   --> "fn" IDENT params block ;
	params     --> "(" ( param ( "," | &")" ) )* ")" ;
	param      --> IDENT ":" type ;
	type       --> "Int" ;
	block      --> "{" stmt* "}" ;
	stmt       --> letStmt
	             | printStmt
	             | returnStmt ;
	letStmt    --> "let" IDENT ":" type "=" expr ";" ;
	printStmt  --> "print_int" "(" expr ")" ";" ;
	returnStmt --> "return" expr ";" ;
	expr       --> INT
	             | IDENT args?
	             | IDENT ;
	args       --> "(" ( expr ( "," | &")" ) )* ")" ;

Tokens that are not "fn" at the top level are skipped. "print_int" and
"return" are plain identifiers to the scanner; only the statement rule gives
them meaning.
*/
package fnl

//go:generate go run ../cmd/ast_codegen ../fnl
