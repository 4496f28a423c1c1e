package fs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryFileSystem(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.NotNil(t, fs)
	assert.IsType(t, &afero.MemMapFs{}, fs.Fs)
}

func TestNewOsFileSystem(t *testing.T) {
	fs := NewOsFileSystem()
	assert.NotNil(t, fs)
	assert.IsType(t, &afero.OsFs{}, fs.Fs)
}

func TestWriteFile(t *testing.T) {
	fs := NewMemoryFileSystem()
	err := fs.WriteFile("test/file.txt", "Olá, Mundo!")
	assert.NoError(t, err)

	content, err := afero.ReadFile(fs.Fs, "test/file.txt")
	assert.NoError(t, err)
	assert.Equal(t, "Olá, Mundo!", string(content))
}

func TestIsDir(t *testing.T) {
	fs := NewMemoryFileSystem()
	err := fs.Fs.MkdirAll("test/dir", 0755)
	assert.NoError(t, err)

	isDir := fs.IsDir("test/dir")
	assert.True(t, isDir)

	isDir = fs.IsDir("test/nonexistent")
	assert.False(t, isDir)
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		storeName string
		want      string
	}{
		{"Loja Top!", "politica-de-trocas-loja_top_.txt"},
		{"", "politica-de-trocas-sua-loja.txt"},
		{"Moda Rápida", "politica-de-trocas-moda_r_pida.txt"},
		{"ABC123", "politica-de-trocas-abc123.txt"},
		{"../etc", "politica-de-trocas-___etc.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.storeName, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.storeName))
		})
	}
}

func TestExportPolicy(t *testing.T) {
	fs := NewMemoryFileSystem()

	path, err := fs.ExportPolicy("out", "Loja Top!", "Política de Trocas")
	assert.NoError(t, err)
	assert.Equal(t, "out/politica-de-trocas-loja_top_.txt", path)

	content, err := afero.ReadFile(fs.Fs, path)
	assert.NoError(t, err)
	assert.Equal(t, "Política de Trocas", string(content))
}

func TestExportPolicyRejectsFileAsDir(t *testing.T) {
	fs := NewMemoryFileSystem()
	require.NoError(t, afero.WriteFile(fs.Fs, "out", []byte("x"), 0644))

	_, err := fs.ExportPolicy("out", "Loja", "Política")
	assert.EqualError(t, err, "output path out is not a directory")
}
