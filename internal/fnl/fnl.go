package fnl

// SampleSource is the program the `sample` command runs through the
// front-end.
const SampleSource = `
fn main() {
    let x: Int = 5;
    let y: Int = 10;
    let z: Int = add(x, y);
    print_int(z);
}`

// Compile lexes and parses source in one go. The tokens are returned even when
// parsing fails so callers can show what the parser saw.
func Compile(source string) (*Module, []*Token, error) {
	tokens := Lex(source)
	module, err := Parse(tokens)
	if err != nil {
		return nil, tokens, err
	}
	return module, tokens, nil
}
