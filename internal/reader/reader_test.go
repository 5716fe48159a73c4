package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-syasi/internal/runtime"
)

func read(t *testing.T, src string) runtime.Value {
	t.Helper()
	st := runtime.NewStore()
	v, err := Read(st, src)
	require.NoError(t, err)
	return v
}

func TestReadAtoms(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"integer", "42", "42"},
		{"negative integer", "-7", "-7"},
		{"rational", "1/2", "1/2"},
		{"real", "3.5", "3.5"},
		{"symbol", "hello-world", "hello-world"},
		{"plus symbol", "+", "+"},
		{"minus symbol", "-", "-"},
		{"ellipsis symbol", "...", "..."},
		{"true", "#t", "#t"},
		{"false", "#f", "#f"},
		{"string", `"hi there"`, `"hi there"`},
		{"string escape", `"a\nb"`, "\"a\nb\""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(read(t, c.src)))
		})
	}
}

func TestReadComplex(t *testing.T) {
	st := runtime.NewStore()
	v, err := Read(st, "3+4i")
	require.NoError(t, err)
	_, ok := v.(*runtime.Complex)
	assert.True(t, ok, "3+4i parses as a complex number")
}

func TestReadCharacters(t *testing.T) {
	cases := []struct {
		src  string
		want rune
	}{
		{`#\a`, 'a'},
		{`#\space`, ' '},
		{`#\newline`, '\n'},
		{`#\tab`, '\t'},
	}
	for _, c := range cases {
		v := read(t, c.src)
		ch, ok := v.(*runtime.Character)
		require.True(t, ok, "expected a character for %q", c.src)
		assert.Equal(t, c.want, ch.Rune())
	}
}

func TestReadList(t *testing.T) {
	assert.Equal(t, "(1 2 3)", runtime.Repr(read(t, "(1 2 3)")))
	assert.Equal(t, "()", runtime.Repr(read(t, "()")))
	assert.Equal(t, "(1 . 2)", runtime.Repr(read(t, "(1 . 2)")))
	assert.Equal(t, "(1 2 . 3)", runtime.Repr(read(t, "(1 2 . 3)")))
}

func TestReadNestedList(t *testing.T) {
	assert.Equal(t, "(1 (2 3) 4)", runtime.Repr(read(t, "(1 (2 3) 4)")))
}

func TestReadVector(t *testing.T) {
	st := runtime.NewStore()
	v, err := Read(st, "#(1 2 3)")
	require.NoError(t, err)
	_, ok := v.(*runtime.Vector)
	assert.True(t, ok)
	assert.Equal(t, "#(1 2 3)", runtime.Repr(v))
}

func TestReadMacroAbbreviations(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"'a", "(quote a)"},
		{"`a", "(quasiquote a)"},
		{",a", "(unquote a)"},
		{",@a", "(unquote-splicing a)"},
		{"'(1 2)", "(quote (1 2))"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, runtime.Repr(read(t, c.src)))
	}
}

func TestReadAllParsesMultipleForms(t *testing.T) {
	st := runtime.NewStore()
	forms, err := ReadAll(st, "1 2 (+ 1 2)")
	require.NoError(t, err)
	require.Len(t, forms, 3)
	assert.Equal(t, "1", runtime.Repr(forms[0]))
	assert.Equal(t, "2", runtime.Repr(forms[1]))
	assert.Equal(t, "(+ 1 2)", runtime.Repr(forms[2]))
}

func TestReadSkipsComments(t *testing.T) {
	st := runtime.NewStore()
	forms, err := ReadAll(st, "; a leading comment\n(+ 1 2) ; trailing\n")
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "(+ 1 2)", runtime.Repr(forms[0]))
}

func TestReadReturnsNilAtEOF(t *testing.T) {
	st := runtime.NewStore()
	rd := New(st, "  ; only a comment\n")
	v, err := rd.Read()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReadErrorsOnUnterminatedList(t *testing.T) {
	st := runtime.NewStore()
	_, err := Read(st, "(1 2")
	assert.Error(t, err)
}

func TestReadErrorsOnUnterminatedString(t *testing.T) {
	st := runtime.NewStore()
	_, err := Read(st, `"unterminated`)
	assert.Error(t, err)
}

func TestReadErrorsOnStrayCloseParen(t *testing.T) {
	st := runtime.NewStore()
	_, err := Read(st, ")")
	assert.Error(t, err)
}
