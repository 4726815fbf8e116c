package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// storeArgs writes seed files into a temp dir and returns the flags that
// point every command at them.
func storeArgs(t *testing.T) (args []string, dir string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.csv"), []byte("alice,secret\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.json"), []byte(`[
		{"title": "Dune", "author": "Herbert", "publisher": "Ace", "year": 1965},
		{"title": "Solaris", "author": "Lem", "publisher": "MON", "year": 1961}
	]`), 0644))

	return []string{
		"-db", filepath.Join(dir, "library.db"),
		"-users", filepath.Join(dir, "user.csv"),
		"-books", filepath.Join(dir, "books.json"),
		"-export", filepath.Join(dir, "export.json"),
		"-log-level", "error",
	}, dir
}

func TestBootstrapCommand(t *testing.T) {
	args, dir := storeArgs(t)

	cmd := NewBootstrapCommand()
	var out bytes.Buffer
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Store created")
	assert.FileExists(t, filepath.Join(dir, "library.db"))

	again := NewBootstrapCommand()
	out.Reset()
	again.Out = &out
	require.NoError(t, again.ParseFlags(args))
	require.NoError(t, again.Run())
	assert.Contains(t, out.String(), "nothing to do")
}

func TestExportCommand(t *testing.T) {
	args, dir := storeArgs(t)

	cmd := NewExportCommand()
	var out bytes.Buffer
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Exported 2 books to "+filepath.Join(dir, "export.json"))
	records, err := importers.ReadBooksFile(filepath.Join(dir, "export.json"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListCommand(t *testing.T) {
	args, dir := storeArgs(t)

	cmd := NewListCommand()
	var out bytes.Buffer
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "| Dune ")
	assert.Contains(t, out.String(), "| Solaris ")
	assert.FileExists(t, filepath.Join(dir, "export.json"))
}

func TestSearchCommand(t *testing.T) {
	t.Run("requires keyword", func(t *testing.T) {
		args, _ := storeArgs(t)

		err := NewSearchCommand().ParseFlags(args)

		assert.Error(t, err)
	})

	t.Run("prints matches", func(t *testing.T) {
		args, _ := storeArgs(t)

		cmd := NewSearchCommand()
		var out bytes.Buffer
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags(append(args, "-q", "1961")))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "| Solaris ")
		assert.NotContains(t, out.String(), "| Dune ")
	})

	t.Run("no match is a not-found error", func(t *testing.T) {
		args, _ := storeArgs(t)

		cmd := NewSearchCommand()
		cmd.Out = &bytes.Buffer{}
		require.NoError(t, cmd.ParseFlags(append(args, "-q", "Asimov")))

		assert.ErrorIs(t, cmd.Run(), apperr.ErrNotFound)
	})
}

func TestRunCommand(t *testing.T) {
	args, _ := storeArgs(t)

	cmd := NewRunCommand()
	var out bytes.Buffer
	cmd.In = strings.NewReader("alice\nsecret\n4\nLem\n\n")
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "| Solaris ")
}
