package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"My Report 2024.PDF", "my-report-2024.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\pupil\homework.txt`, "homework.txt"},
		{"archive.tar.gz", "archive-tar.gz"},
		{".profile", "profile"},
		{"README", "readme"},
		{"", ""},
		{"..", ""},
		{"/", ""},
		{"...", ""},
		{"???.!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestLocalStorage_SaveUniqueNames(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, false)
	require.NoError(t, err)

	first, err := storage.Save(newFileHeader(t, "notes.txt", []byte("first version")))
	require.NoError(t, err)
	second, err := storage.Save(newFileHeader(t, "notes.txt", []byte("second")))
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", first.FileName)
	assert.True(t, strings.HasSuffix(first.StoredName, "_notes.txt"))
	assert.NotEqual(t, first.StoredName, second.StoredName)
	assert.EqualValues(t, len("first version"), first.FileSize)
	assert.Contains(t, first.MimeType, "text/plain")

	content, err := os.ReadFile(filepath.Join(dir, first.StoredName))
	require.NoError(t, err)
	assert.Equal(t, "first version", string(content))
}

func TestLocalStorage_SavePreserveNamesOverwrites(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, true)
	require.NoError(t, err)

	first, err := storage.Save(newFileHeader(t, "notes.txt", []byte("first version")))
	require.NoError(t, err)
	second, err := storage.Save(newFileHeader(t, "notes.txt", []byte("second")))
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", first.StoredName)
	assert.Equal(t, first.StoredName, second.StoredName)

	content, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestLocalStorage_SaveRejectsUnusableNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), false)
	require.NoError(t, err)

	_, err = storage.Save(nil)
	assert.ErrorIs(t, err, apperrors.ErrNoFileSelected)

	_, err = storage.Save(newFileHeader(t, "???", []byte("x")))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilename)
}

func TestLocalStorage_PathAndDelete(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), false)
	require.NoError(t, err)

	stored, err := storage.Save(newFileHeader(t, "plan.md", []byte("# plan")))
	require.NoError(t, err)

	path, err := storage.Path(stored.StoredName)
	require.NoError(t, err)
	assert.FileExists(t, path)

	require.NoError(t, storage.Delete(stored.StoredName))
	_, err = storage.Path(stored.StoredName)
	assert.ErrorIs(t, err, apperrors.ErrBlobMissing)

	// deleting twice is fine
	assert.NoError(t, storage.Delete(stored.StoredName))
}

func TestLocalStorage_PathRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), false)
	require.NoError(t, err)

	for _, name := range []string{"", "..", "../secret", "a/b"} {
		_, err := storage.Path(name)
		assert.ErrorIs(t, err, apperrors.ErrBlobMissing, name)
	}
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "upload")
	_, err := NewLocalStorage(dir, false)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
