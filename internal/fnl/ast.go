package fnl

// ModuleName is the name given to every parsed module. There is only ever one
// translation unit, so the name is not derived from the source.
const ModuleName = "main"

// Module is the root of the syntax tree and owns every function declared in
// the source, in declaration order.
type Module struct {
	Name      string
	Functions []*Function
}

func NewModule(Functions []*Function) *Module {
	return &Module{ModuleName, Functions}
}

// Function is a top-level `fn` declaration.
type Function struct {
	Name string
	Args []*ArgumentDefinition
	Body []Stmt
}

func NewFunction(Name string, Args []*ArgumentDefinition, Body []Stmt) *Function {
	return &Function{Name, Args, Body}
}

type ArgumentDefinition struct {
	Name string
	Type Type
}

func NewArgumentDefinition(Name string, Type Type) *ArgumentDefinition {
	return &ArgumentDefinition{Name, Type}
}

// Type enumerates the value types a declaration can name.
type Type uint

const (
	TypeInt Type = iota
)

var typeNames = map[string]Type{
	"Int": TypeInt,
}

// LookupType resolves a type name as written in the source.
func LookupType(name string) (Type, bool) {
	typ, ok := typeNames[name]
	return typ, ok
}

func (typ Type) String() string {
	switch typ {
	case TypeInt:
		return "Int"
	}
	return "Type(?)"
}
