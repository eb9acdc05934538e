package codebase

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dhamidi/umldoc/java"
)

// DefaultPattern selects the inputs picked up from directories. Model
// documents are only read from directories when the pattern asks for them,
// since YAML and JSON files are often something else entirely.
const DefaultPattern = "**/*.{class,jar,zip}"

// Scan loads every path: directories are searched with pattern, all other
// paths are loaded directly. Files that fail to load are logged and skipped;
// the returned error joins those failures.
func (c *Codebase) Scan(pattern string, paths ...string) error {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid input pattern %q", pattern)
	}

	var errs []error
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("stat %s: %w", path, err))
			continue
		}
		if !info.IsDir() {
			if err := c.Load(path); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := c.scanDirectory(path, pattern); err != nil {
			errs = append(errs, err)
		}
	}
	log.Infof("Loaded %d classes.", c.Len())
	return errors.Join(errs...)
}

func (c *Codebase) scanDirectory(dir, pattern string) error {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	var errs []error
	for _, match := range matches {
		if err := c.Load(filepath.Join(dir, filepath.FromSlash(match))); err != nil {
			log.Warningf("%s", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load reads one input file and replaces whatever was loaded from it before.
// Files of unknown type are ignored.
func (c *Codebase) Load(path string) error {
	if !Supported(path) {
		log.Debugf("Ignoring %s.", path)
		return nil
	}
	classes, err := ReadFile(path)
	if err != nil {
		return err
	}
	log.Debugf("Loaded %d classes from %s.", len(classes), path)
	c.Update(path, classes)
	return nil
}

// Supported reports whether Load understands the file by its extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".class", ".jar", ".zip":
		return true
	}
	return java.IsDocument(path)
}

// ReadFile returns the class models in a class file, archive or model
// document. Unsupported files yield nothing.
func ReadFile(path string) ([]*java.ClassModel, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".class":
		model, err := java.ClassModelFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if model == nil {
			return nil, nil
		}
		return []*java.ClassModel{model}, nil
	case ext == ".jar" || ext == ".zip":
		return readArchive(path)
	case java.IsDocument(path):
		return java.ClassModelsFromDocument(path)
	}
	return nil, nil
}

func readArchive(path string) ([]*java.ClassModel, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()
	return readZip(path, &r.Reader, 0)
}

// maxNestedArchiveSize bounds the archives read into memory from inside
// another archive.
var maxNestedArchiveSize int64 = 64 << 20

// readZip also descends into archives nested one level deep, as found in
// distribution zips and fat jars. Deeper archives are skipped.
func readZip(name string, r *zip.Reader, depth int) ([]*java.ClassModel, error) {
	var classes []*java.ClassModel
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entry := name + "!/" + f.Name
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".class":
			model, err := readZipClass(f)
			if err != nil {
				log.Warningf("Skipping %s: %s", entry, err)
				continue
			}
			if model != nil {
				model.Source = entry
				classes = append(classes, model)
			}
		case ".jar":
			if depth > 0 {
				log.Infof("Skipping %s: archives are read one level deep.", entry)
				continue
			}
			nested, err := openNestedZip(f)
			if err != nil {
				log.Warningf("Skipping %s: %s", entry, err)
				continue
			}
			models, err := readZip(entry, nested, depth+1)
			if err != nil {
				return nil, err
			}
			classes = append(classes, models...)
		}
	}
	return classes, nil
}

func readZipClass(f *zip.File) (*java.ClassModel, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return java.ClassModelFromReader(rc)
}

func openNestedZip(f *zip.File) (*zip.Reader, error) {
	if f.UncompressedSize64 > uint64(maxNestedArchiveSize) {
		return nil, fmt.Errorf("archive larger than %d bytes", maxNestedArchiveSize)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, maxNestedArchiveSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxNestedArchiveSize {
		return nil, fmt.Errorf("archive larger than %d bytes", maxNestedArchiveSize)
	}
	return zip.NewReader(bytes.NewReader(data), int64(len(data)))
}

// walkDirectories calls fn for every directory below root, skipping hidden ones.
func walkDirectories(root string, fn func(dir string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fn(path)
	})
}
