package codebase

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const animalsDocument = `
classes:
  - name: animals.Dog
    super_class: animals.Animal
  - name: animals.Animal
    abstract: true
`

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestScanSkipsDocumentsByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "model", "animals.yaml"), []byte(animalsDocument))

	cb := New()
	require.NoError(t, cb.Scan("", dir))
	assert.Equal(t, 0, cb.Len())
}

func TestScanWithDocumentPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "model", "animals.yaml"), []byte(animalsDocument))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("not a model"))

	cb := New()
	require.NoError(t, cb.Scan("**/*.yaml", dir))

	require.Equal(t, 2, cb.Len())
	dog := cb.FindClass("animals.Dog")
	require.NotNil(t, dog)
	assert.Equal(t, filepath.Join(dir, "model", "animals.yaml"), dog.Source)
}

func TestScanExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.yaml")
	writeFile(t, path, []byte(animalsDocument))

	cb := New()
	require.NoError(t, cb.Scan("", path))
	assert.NotNil(t, cb.FindClass("animals.Animal"))
	assert.Equal(t, []string{path}, cb.Sources())
}

func TestScanKeepsGoingAfterFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.yaml"), []byte(animalsDocument))
	writeFile(t, filepath.Join(dir, "classes", "Broken.class"), []byte("not a class"))

	cb := New()
	err := cb.Scan("**/*.{class,yaml}", dir, filepath.Join(dir, "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken.class")
	assert.Contains(t, err.Error(), "stat")
	assert.Equal(t, 2, cb.Len())
}

func TestScanInvalidPattern(t *testing.T) {
	err := New().Scan("[", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input pattern")
}

func TestLoadIgnoresUnsupportedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	writeFile(t, path, []byte("# Animals"))

	cb := New()
	require.NoError(t, cb.Load(path))
	assert.Empty(t, cb.Sources())
}

func zipFile(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoadArchiveSkipsUnreadableEntries(t *testing.T) {
	nested := zipFile(t, map[string][]byte{"b/Inner.class": []byte("garbage")})
	path := filepath.Join(t.TempDir(), "dist.zip")
	writeFile(t, path, zipFile(t, map[string][]byte{
		"README.txt":      []byte("hello"),
		"a/Broken.class":  []byte("garbage"),
		"lib/library.jar": nested,
		"model.yaml":      []byte(animalsDocument),
	}))

	cb := New()
	require.NoError(t, cb.Load(path))
	assert.Equal(t, []string{path}, cb.Sources())
	assert.Equal(t, 0, cb.Len())
}

func TestLoadCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jar")
	writeFile(t, path, []byte("not a zip"))

	err := New().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open archive")
}

func TestSupported(t *testing.T) {
	for path, want := range map[string]bool{
		"A.class": true, "lib.JAR": true, "dist.zip": true, "model.yaml": true, "model.jsonc": true,
		"A.java": false, "README.md": false,
	} {
		assert.Equal(t, want, Supported(path), path)
	}
}

// classBytes returns a class file declaring only the given internal name.
func classBytes(internalName string) []byte {
	var buf bytes.Buffer
	u2 := func(v uint16) { binary.Write(&buf, binary.BigEndian, v) }
	binary.Write(&buf, binary.BigEndian, uint32(0xCAFEBABE))
	u2(0)  // minor
	u2(52) // major
	u2(3)  // constant pool count
	buf.WriteByte(1)
	u2(uint16(len(internalName)))
	buf.WriteString(internalName)
	buf.WriteByte(7)
	u2(1)
	u2(0x0021) // public super
	u2(2)      // this class
	u2(0)      // no super class
	u2(0)      // interfaces
	u2(0)      // fields
	u2(0)      // methods
	u2(0)      // attributes
	return buf.Bytes()
}

func TestLoadArchiveReadsOneNestedLevel(t *testing.T) {
	deepest := zipFile(t, map[string][]byte{"c/Deep.class": classBytes("c/Deep")})
	nested := zipFile(t, map[string][]byte{
		"b/Nested.class": classBytes("b/Nested"),
		"lib/deep.jar":   deepest,
	})
	path := filepath.Join(t.TempDir(), "app.jar")
	writeFile(t, path, zipFile(t, map[string][]byte{
		"a/Top.class":    classBytes("a/Top"),
		"lib/nested.jar": nested,
	}))

	cb := New()
	require.NoError(t, cb.Load(path))

	assert.NotNil(t, cb.FindClass("a.Top"))
	nestedClass := cb.FindClass("b.Nested")
	require.NotNil(t, nestedClass)
	assert.Equal(t, path+"!/lib/nested.jar!/b/Nested.class", nestedClass.Source)
	assert.Nil(t, cb.FindClass("c.Deep"))
}

func TestLoadArchiveSkipsOversizedNestedArchives(t *testing.T) {
	defer func(size int64) { maxNestedArchiveSize = size }(maxNestedArchiveSize)
	maxNestedArchiveSize = 16

	nested := zipFile(t, map[string][]byte{"b/Nested.class": classBytes("b/Nested")})
	path := filepath.Join(t.TempDir(), "app.jar")
	writeFile(t, path, zipFile(t, map[string][]byte{
		"a/Top.class":    classBytes("a/Top"),
		"lib/nested.jar": nested,
	}))

	cb := New()
	require.NoError(t, cb.Load(path))

	assert.NotNil(t, cb.FindClass("a.Top"))
	assert.Nil(t, cb.FindClass("b.Nested"))
}
