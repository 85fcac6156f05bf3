package argfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guadalsistema/go-sqltemplate"
)

func TestDecode(t *testing.T) {
	src := `
- 42
- 1.5
- "O'Brien"
- true
- null
- [1, 2, x]
- {name: Bob, age: 30}
- !omit
- 2024-01-15
`
	got, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	want := []any{
		sqltemplate.Int(42),
		sqltemplate.Float(1.5),
		sqltemplate.String("O'Brien"),
		sqltemplate.Bool(true),
		sqltemplate.Null(),
		sqltemplate.List(sqltemplate.Int(1), sqltemplate.Int(2), sqltemplate.String("x")),
		sqltemplate.Assoc(
			sqltemplate.Pair{Key: "name", Value: sqltemplate.String("Bob")},
			sqltemplate.Pair{Key: "age", Value: sqltemplate.Int(30)},
		),
		sqltemplate.Omit(),
		sqltemplate.String("2024-01-15"),
	}
	assert.Equal(t, want, got)
}

func TestDecodeJSON(t *testing.T) {
	got, err := Decode(strings.NewReader(`[5, "x", {"b": 1, "a": [true]}]`))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assoc := got[2].(sqltemplate.Value)
	assert.Equal(t, sqltemplate.KindAssoc, assoc.Kind())

	q, err := sqltemplate.Render("SELECT ?d, ? {, ?a}", got...)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 5, `x` , `b` = 1, `a` = '1'", q)
}

func TestDecodeAlias(t *testing.T) {
	got, err := Decode(strings.NewReader("- &id 7\n- *id\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{sqltemplate.Int(7), sqltemplate.Int(7)}, got)
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRejectsMapping(t *testing.T) {
	_, err := Decode(strings.NewReader("a: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arguments must be a sequence")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 1\n- !omit\n"), 0o600))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []any{sqltemplate.Int(1), sqltemplate.Omit()}, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
