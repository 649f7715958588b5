package fnl

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how Dump renders a module.
type Format string

const (
	FormatSExpr Format = "sexpr"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists every format Dump understands.
var Formats = []Format{FormatSExpr, FormatYAML, FormatJSON}

// ParseFormat checks that name is a known output format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Dump renders the module in the given format, without a trailing newline.
func Dump(module *Module, format Format) (string, error) {
	switch format {
	case FormatSExpr:
		printer := &AstPrinter{}
		return printer.Print(module), nil
	case FormatYAML:
		out, err := yaml.Marshal(newModuleNode(module))
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case FormatJSON:
		out, err := json.MarshalIndent(newModuleNode(module), "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(out), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// The node types below give the tree a stable field order when marshalled.
// Statements and expressions become single-key maps keyed by their kind.

type moduleNode struct {
	Name      string         `yaml:"name" json:"name"`
	Functions []functionNode `yaml:"functions" json:"functions"`
}

type functionNode struct {
	Name string        `yaml:"name" json:"name"`
	Args []argNode     `yaml:"args" json:"args"`
	Body []interface{} `yaml:"body" json:"body"`
}

type argNode struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

type letNode struct {
	Name  string      `yaml:"name" json:"name"`
	Type  string      `yaml:"type" json:"type"`
	Value interface{} `yaml:"value" json:"value"`
}

type callNode struct {
	Callee string        `yaml:"callee" json:"callee"`
	Args   []interface{} `yaml:"args" json:"args"`
}

type addNode struct {
	Lhs interface{} `yaml:"lhs" json:"lhs"`
	Rhs interface{} `yaml:"rhs" json:"rhs"`
}

func newModuleNode(module *Module) moduleNode {
	builder := &treeBuilder{}
	node := moduleNode{Name: module.Name, Functions: make([]functionNode, 0)}
	for _, fn := range module.Functions {
		fnNode := functionNode{
			Name: fn.Name,
			Args: make([]argNode, 0),
			Body: make([]interface{}, 0),
		}
		for _, arg := range fn.Args {
			fnNode.Args = append(fnNode.Args, argNode{arg.Name, arg.Type.String()})
		}
		for _, stmt := range fn.Body {
			s, _ := stmt.Accept(builder)
			fnNode.Body = append(fnNode.Body, s)
		}
		node.Functions = append(node.Functions, fnNode)
	}
	return node
}

// treeBuilder turns statements and expressions into plain values that both
// encoders can handle.
type treeBuilder struct{}

func (b *treeBuilder) expr(expr Expr) interface{} {
	v, _ := expr.Accept(b)
	return v
}

func (b *treeBuilder) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	return map[string]interface{}{
		"let": letNode{stmt.Name, stmt.Type.String(), b.expr(stmt.Value)},
	}, nil
}

func (b *treeBuilder) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return map[string]interface{}{"print": b.expr(stmt.Value)}, nil
}

func (b *treeBuilder) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	return map[string]interface{}{"return": b.expr(stmt.Value)}, nil
}

func (b *treeBuilder) VisitAddExpr(expr *AddExpr) (interface{}, error) {
	return map[string]interface{}{
		"add": addNode{b.expr(expr.Lhs), b.expr(expr.Rhs)},
	}, nil
}

func (b *treeBuilder) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	args := make([]interface{}, 0, len(expr.Args))
	for _, arg := range expr.Args {
		args = append(args, b.expr(arg))
	}
	return map[string]interface{}{"call": callNode{expr.Callee, args}}, nil
}

func (b *treeBuilder) VisitIntExpr(expr *IntExpr) (interface{}, error) {
	return map[string]interface{}{"int": expr.Value}, nil
}

func (b *treeBuilder) VisitNameExpr(expr *NameExpr) (interface{}, error) {
	return map[string]interface{}{"name": expr.Name}, nil
}
