package local_fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T) *LocalFS {
	t.Helper()
	dir := t.TempDir()
	l, err := NewClient(&Config{Path: dir, NoteExt: ".md"})
	require.NoError(t, err)
	return l
}

func TestNewClient_PathChecks(t *testing.T) {
	_, err := NewClient(&Config{Path: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)

	// ext 自动补点号
	l, err := NewClient(&Config{Path: t.TempDir(), NoteExt: "md"})
	require.NoError(t, err)
	assert.Equal(t, ".md", l.NoteExt())
}

func TestCreateGetRead(t *testing.T) {
	l := newTestVault(t)

	note, err := l.Get("Daily Notes/2024-01-01.md")
	require.NoError(t, err)
	assert.Nil(t, note, "missing file should yield nil handle")

	require.NoError(t, l.Create("Daily Notes/2024-01-01.md", "# 2024-01-01\n\n"))

	note, err = l.Get("Daily Notes/2024-01-01.md")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "Daily Notes/2024-01-01.md", note.Path)

	content, err := l.Read("Daily Notes/2024-01-01.md")
	require.NoError(t, err)
	assert.Equal(t, "# 2024-01-01\n\n", content)
}

func TestOverwriteAndAppend(t *testing.T) {
	l := newTestVault(t)
	require.NoError(t, l.Create("note.md", "one"))

	require.NoError(t, l.Append("note.md", "-two"))
	content, err := l.Read("note.md")
	require.NoError(t, err)
	assert.Equal(t, "one-two", content)

	require.NoError(t, l.Overwrite("note.md", "three"))
	content, err = l.Read("note.md")
	require.NoError(t, err)
	assert.Equal(t, "three", content)
}

func TestListNotes(t *testing.T) {
	l := newTestVault(t)

	require.NoError(t, l.Create("a.md", "a"))
	require.NoError(t, l.Create("sub/b.md", "b"))
	require.NoError(t, l.Create("sub/ignored.txt", "x"))
	// 点号目录需要被跳过
	require.NoError(t, os.MkdirAll(filepath.Join(l.Root(), ".obsidian"), os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(l.Root(), ".obsidian", "hidden.md"), []byte("h"), 0644))

	notes, err := l.ListNotes()
	require.NoError(t, err)

	paths := make([]string, 0, len(notes))
	for _, n := range notes {
		paths = append(paths, n.Path)
	}
	assert.ElementsMatch(t, []string{"a.md", "sub/b.md"}, paths)
}

func TestPathEscapeRejected(t *testing.T) {
	l := newTestVault(t)

	_, err := l.Read("../outside.md")
	assert.Error(t, err)

	err = l.Overwrite("/etc/hosts", "x")
	assert.Error(t, err)
}
