package syasi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-syasi/pkg/syasi"
)

func TestRunStringEvaluatesEachTopLevelForm(t *testing.T) {
	interp := syasi.New()
	result, err := interp.RunString(`
		(define (square x) (* x x))
		(square 6)`)
	require.NoError(t, err)
	assert.Equal(t, "36", syasi.Repr(result))
}

func TestRunStringOnEmptySourceReturnsUnspecified(t *testing.T) {
	interp := syasi.New()
	result, err := interp.RunString("   ; only a comment\n")
	require.NoError(t, err)
	assert.Equal(t, "#<Unspecified>", syasi.Repr(result))
}

func TestRunStringPropagatesReaderErrors(t *testing.T) {
	interp := syasi.New()
	_, err := interp.RunString("(1 2")
	assert.Error(t, err)
}

func TestRunStringPropagatesEvalErrors(t *testing.T) {
	interp := syasi.New()
	_, err := interp.RunString("(no-such-procedure 1 2)")
	assert.Error(t, err)
}

func TestSetOutputCapturesDisplayedText(t *testing.T) {
	interp := syasi.New()
	var buf strings.Builder
	interp.SetOutput(&buf)

	_, err := interp.RunString(`(display "hello, world") (newline)`)
	require.NoError(t, err)
	assert.Equal(t, "hello, world\n", buf.String())
}

func TestEnvironmentAllowsHostDefinedBindings(t *testing.T) {
	interp := syasi.New()
	interp.Environment().Define(interp.Store(), interp.Store().Intern("host-value"), interp.Store().Intern("injected"))

	result, err := interp.RunString("host-value")
	require.NoError(t, err)
	assert.Equal(t, "injected", syasi.Repr(result))
}

func TestRecursiveProgramsDoNotOverflowTheHostStack(t *testing.T) {
	interp := syasi.New()
	result, err := interp.RunString(`
		(define (sum-to n acc)
		  (if (= n 0) acc (sum-to (- n 1) (+ acc n))))
		(sum-to 50000 0)`)
	require.NoError(t, err)
	assert.Equal(t, "1250025000", syasi.Repr(result))
}
