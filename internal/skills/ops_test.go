package skills

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"skillhub/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{"a.md": "# A"})

	got, err := ReadFile(filepath.Join(root, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "# A", got)

	_, err = ReadFile(filepath.Join(root, "missing.md"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWriteFile_CreatesParents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "new", "nested", "skill.md")

	require.NoError(t, WriteFile(path, "first"))
	require.NoError(t, WriteFile(path, "second"))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestCreateFile(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{"taken.md": "original"})

	path, err := CreateFile(root, "fresh.md", "hello")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "fresh.md"), path)

	content, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	_, err = CreateFile(root, "taken.md", "overwrite?")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	content, err = ReadFile(filepath.Join(root, "taken.md"))
	require.NoError(t, err)
	assert.Equal(t, "original", content, "existing file must not be overwritten")
}

func TestCreateFile_RejectsBadNames(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"", "..", "../escape.md", "a/b.md"} {
		_, err := CreateFile(root, name, "x")
		assert.ErrorIs(t, err, apperrors.ErrInvalid, "name %q", name)
	}
	assert.False(t, fileExists(filepath.Join(filepath.Dir(root), "escape.md")))
}

func TestCreateFile_MissingFolder(t *testing.T) {
	_, err := CreateFile(filepath.Join(t.TempDir(), "nope"), "a.md", "x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateFolder(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"existing/":  "",
		"file-there": "x",
	})

	path, err := CreateFolder(root, "brand-new")
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	nested, err := CreateFolder(filepath.Join(root, "missing-parent"), "child")
	require.NoError(t, err)
	assert.True(t, fileExists(nested))

	_, err = CreateFolder(root, "existing")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	_, err = CreateFolder(root, "file-there")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestDelete(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"file.md":           "x",
		"dir/":              "",
		"dir/inner/":        "",
		"dir/inner/deep.md": "y",
	})

	require.NoError(t, Delete(filepath.Join(root, "file.md")))
	assert.False(t, fileExists(filepath.Join(root, "file.md")))

	require.NoError(t, Delete(filepath.Join(root, "dir")))
	assert.False(t, fileExists(filepath.Join(root, "dir")))

	err := Delete(filepath.Join(root, "dir"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCopy_File(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"notes.md":        "v1",
		"target/":         "",
		"target/notes.md": "already here",
	})
	src := filepath.Join(root, "notes.md")
	dst := filepath.Join(root, "target", "notes.md")

	first, err := Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "target", "notes_copy1.md"), first)

	second, err := Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "target", "notes_copy2.md"), second)

	for _, p := range []string{first, second} {
		got, err := ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "v1", got)
	}

	kept, err := ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "already here", kept)

	created, err := Copy(src, filepath.Join(root, "fresh", "dir", "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "fresh", "dir", "notes.md"), created)
}

func TestCopy_Directory(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"skill/":           "",
		"skill/SKILL.md":   "main",
		"skill/ref/":       "",
		"skill/ref/a.json": "{}",
	})
	src := filepath.Join(root, "skill")

	got, err := Copy(src, src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "skill_copy1"), got)

	content, err := ReadFile(filepath.Join(got, "ref", "a.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", content)
}

func TestCopy_LinkedSourceDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	root := createTempDirStructure(t, map[string]string{
		"real/":         "",
		"real/SKILL.md": "linked",
	})
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), link))

	got, err := Copy(link, filepath.Join(root, "copy"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "copy"), got)

	content, err := ReadFile(filepath.Join(got, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "linked", content)

	info, err := os.Lstat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "copy must be a real directory, not a link")
}

func TestCopy_NestedLinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	root := createTempDirStructure(t, map[string]string{
		"src/":           "",
		"src/SKILL.md":   "main",
		"other/":         "",
		"other/ref.json": "{}",
	})
	src := filepath.Join(root, "src")
	require.NoError(t, os.Symlink(filepath.Join(root, "other"), filepath.Join(src, "lnk")))
	require.NoError(t, os.Symlink(src, filepath.Join(src, "loop")))

	got, err := Copy(src, filepath.Join(root, "dst"))
	require.NoError(t, err)

	content, err := ReadFile(filepath.Join(got, "lnk", "ref.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", content)

	content, err = ReadFile(filepath.Join(got, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "main", content)

	assert.False(t, fileExists(filepath.Join(got, "loop")), "a link back into the source is not copied")
}

func TestCopy_MissingSource(t *testing.T) {
	root := t.TempDir()
	_, err := Copy(filepath.Join(root, "ghost.md"), filepath.Join(root, "copy.md"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMove(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"a.md":          "A",
		"b.md":          "B",
		"dest/":         "",
		"dest/a.md":     "occupied",
		"folder/":       "",
		"folder/x.yaml": "x: 1",
	})

	moved, err := Move(filepath.Join(root, "a.md"), filepath.Join(root, "dest", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "dest", "a_1.md"), moved)
	assert.False(t, fileExists(filepath.Join(root, "a.md")))

	content, err := ReadFile(moved)
	require.NoError(t, err)
	assert.Equal(t, "A", content)

	moved, err = Move(filepath.Join(root, "b.md"), filepath.Join(root, "new", "place", "b.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "new", "place", "b.md"), moved)

	moved, err = Move(filepath.Join(root, "folder"), filepath.Join(root, "dest", "folder"))
	require.NoError(t, err)
	assert.True(t, fileExists(filepath.Join(moved, "x.yaml")))
}

func TestMove_Errors(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"dir/":     "",
		"dir/a.md": "a",
	})

	_, err := Move(filepath.Join(root, "ghost"), filepath.Join(root, "x"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = Move(filepath.Join(root, "dir"), filepath.Join(root, "dir", "inside"))
	assert.ErrorIs(t, err, apperrors.ErrInvalid)
	assert.True(t, fileExists(filepath.Join(root, "dir", "a.md")))
}

func TestList(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"a.md":      "",
		"notes.txt": "",
		"sub/":      "",
		".hidden":   "",
	})

	entries, err := List(root)
	require.NoError(t, err)

	got := map[string]bool{}
	for _, e := range entries {
		got[e.Name] = e.IsDir
		assert.Equal(t, filepath.Join(root, e.Name), e.Path)
	}
	assert.Equal(t, map[string]bool{"a.md": false, "notes.txt": false, "sub": true}, got)

	_, err = List(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
