package fs

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

const (
	exportPrefix   = "politica-de-trocas-"
	exportFallback = "sua-loja"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportFileName derives the download name for a store's policy:
// every character outside [A-Za-z0-9] becomes "_" and the result is lower-cased.
func ExportFileName(storeName string) string {
	slug := strings.ToLower(nonAlphanumeric.ReplaceAllString(storeName, "_"))
	if slug == "" {
		slug = exportFallback
	}
	return exportPrefix + slug + ".txt"
}

// ExportPolicy writes text as UTF-8 into dir and returns the written path.
// dir is created when missing; an existing non-directory is an error.
func (fs *FileSystem) ExportPolicy(dir, storeName, text string) (string, error) {
	if exists, _ := afero.Exists(fs.Fs, dir); exists && !fs.IsDir(dir) {
		return "", fmt.Errorf("output path %s is not a directory", dir)
	}
	path := filepath.Join(dir, ExportFileName(storeName))
	if err := fs.WriteFile(path, text); err != nil {
		return "", err
	}
	return path, nil
}
