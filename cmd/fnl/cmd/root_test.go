package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letung3105/fnl/internal/fnl"
)

// execute runs the CLI with an empty config file so the environment of the
// test machine does not leak in.
func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "fnl.toml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0644))

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config=" + cfgPath, "--no-color"}, args...))
	code := run(root, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.fnl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestSampleCommand(t *testing.T) {
	code, stdout, stderr := execute(t, "", "sample")

	assert := assert.New(t)
	assert.Equal(exitOK, code, stderr)
	assert.Contains(stdout, "Source\n"+fnl.SampleSource)
	assert.Contains(stdout, "Tokens\n"+fnl.FormatTokens(fnl.Lex(fnl.SampleSource)))
	assert.Contains(stdout, "Module\n(module main\n  (fn main ()")
	assert.Contains(stdout, "(let z Int (call add x y))")
}

func TestTokensCommand(t *testing.T) {
	src := "fn main() { return 1; }"
	path := writeSource(t, src)

	code, stdout, _ := execute(t, "", "tokens", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, fnl.FormatTokens(fnl.Lex(src))+"\n", stdout)

	code, stdout, _ = execute(t, "let # x", "tokens", "-")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "[Let, Name(\"x\"), EndOfFile]\n", stdout)

	code, stdout, _ = execute(t, "fn\nf", "tokens", "--lines", "-")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "   1 Fn\n   2 Name(\"f\")\n   2 EndOfFile\n", stdout)
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "fn f(a: Int) { return a; }")

	code, stdout, stderr := execute(t, "", "parse", path)
	assert.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "(module main\n  (fn f ((a Int))\n    (return a)))\n", stdout)

	code, stdout, _ = execute(t, "", "parse", "--format", "json", path)
	assert.Equal(t, exitOK, code)
	assert.JSONEq(t, `{"name": "main", "functions": [{"name": "f",
		"args": [{"name": "a", "type": "Int"}],
		"body": [{"return": {"name": "a"}}]}]}`, stdout)

	code, stdout, _ = execute(t, "", "parse", "-f", "yaml", "--tokens", path)
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "[Fn, Name(\"f\")"))
	assert.Contains(t, stdout, "name: main\n")
}

func TestParseCommandErrors(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		stdin  string
		code   int
		stderr string
	}{
		{"parse error", []string{"parse", "-"}, "fn main() { let x: Int = 5 }",
			exitDataErr, "[line 1] Error at '}': Expected semicolon\n"},
		{"unknown type", []string{"parse", "-"}, "fn f(a: Bool) { }",
			exitDataErr, "[line 1] Error at 'Bool': Unknown type\n"},
		{"missing argument", []string{"parse"}, "",
			exitUsage, "Error: accepts 1 arg(s), received 0\n"},
		{"unknown flag", []string{"parse", "--bogus", "-"}, "",
			exitUsage, "Error: unknown flag: --bogus\n"},
		{"unknown format", []string{"parse", "-f", "xml", "-"}, "",
			exitUsage, "Error: unknown format \"xml\"\n"},
		{"missing file", []string{"parse", "/does/not/exist.fnl"}, "",
			exitFailure, "Error: read /does/not/exist.fnl: "},
		{"watch stdin", []string{"parse", "--watch", "-"}, "",
			exitUsage, "Error: cannot watch standard input\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tc.stdin, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, tc.stderr), stderr)
		})
	}
}

func TestBadConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--config=" + filepath.Join(t.TempDir(), "missing.toml"), "sample"})

	assert.Equal(t, exitConfig, run(root, &stderr))
	assert.Contains(t, stderr.String(), "config file not found")
}

func TestVerboseLogsPhases(t *testing.T) {
	code, _, stderr := execute(t, "fn f() {}", "--verbose", "parse", "-")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "lexed source")
	assert.Contains(t, stderr, "parsed module")
	assert.Contains(t, stderr, "functions=1")
}
