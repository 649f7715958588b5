package fnl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	r := NewSimpleReporter(io.Discard)
	assert.False(t, r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := NewParseError(NewToken(SEMICOLON, ";", 3), ErrStructural, "Expected int or name")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.Contains(out.String(), "[line 3] Error at ';': Expected int or name")
}

func TestSimpleReporterReset(t *testing.T) {
	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(errors.New("Test error"))

	r.Reset()
	assert.False(t, r.HadError())
}
