package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guadalsistema/go-sqltemplate"
	"github.com/Guadalsistema/go-sqltemplate/internal/testutil"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(WithLogger(testutil.NewTestLogger(t)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderInlineQuery(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	argsPath := writeFile(t, dir, "args.yaml", "- {name: Bob}\n- 3\n")

	out, err := run(t, "", "render", "-q", "UPDATE t SET ?a WHERE id = ?d", "--args", argsPath)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE t SET `name` = 'Bob' WHERE id = 3\n", out)
}

func TestRenderTemplateFileWithStdinArgs(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	tplPath := writeFile(t, dir, "query.sql", "SELECT * FROM t WHERE id = ?d{ AND del = ?d}\n")

	out, err := run(t, "- 5\n- !omit\n", "render", tplPath, "--args", "-")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE id = 5\n", out)
}

func TestRenderTemplateFromStdin(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := run(t, "SELECT 1\n", "render", "-")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1\n", out)
}

func TestRenderBooleanStyleFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, "sqltemplate.yaml", "booleans: legacy\n")
	argsPath := writeFile(t, dir, "args.yaml", "- false\n")

	out, err := run(t, "", "render", "-q", "SELECT ?d AS flag", "-a", argsPath)
	require.NoError(t, err)
	assert.Equal(t, "SELECT  AS flag\n", out)

	out, err = run(t, "", "--booleans", "numeric", "render", "-q", "SELECT ?d AS flag", "-a", argsPath)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 0 AS flag\n", out)
}

func TestRenderStrictFlag(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	argsPath := writeFile(t, dir, "args.yaml", "- 1\n- 2\n")

	_, err := run(t, "", "--strict", "render", "-q", "SELECT ?d", "-a", argsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template uses 1 arguments, 2 given")
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	argsPath := writeFile(t, dir, "args.yaml", "- [1, 2]\n")

	_, err := run(t, "", "render", "-q", "SELECT ?", "-a", argsPath)
	require.Error(t, err)
	assert.True(t, sqltemplate.IsIncompatibleTypeErr(err))

	_, err = run(t, "", "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a template is required")

	_, err = run(t, "", "render", "-q", "SELECT 1", "query.sql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")

	_, err = run(t, "", "render", "-q", "SELECT ?d")
	require.Error(t, err)
	assert.ErrorIs(t, err, sqltemplate.ErrMissing)
}

func TestVersion(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "sqltemplate "+Version+" ("+GitCommit+")\n", out)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
