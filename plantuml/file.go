// Package plantuml writes rendered diagrams to PlantUML source files.
package plantuml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/umldoc/config"
	"github.com/dhamidi/umldoc/uml"
)

var log = commonlog.GetLogger("umldoc.plantuml")

// Extensions lists the file extensions PlantUML reads diagram sources from.
var Extensions = []string{".puml", ".plantuml", ".pu", ".txt"}

type File struct {
	path string
}

// FromFile returns the output file for path, or false when the extension
// is not one of Extensions.
func FromFile(path string) (*File, bool) {
	if path == "" {
		return nil, false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range Extensions {
		if ext == known {
			return &File{path: path}, true
		}
	}
	log.Debugf("Not a PlantUML file: %s", path)
	return nil, false
}

// ForType places the diagram of t below the configured output directory,
// in a subdirectory per package segment.
func ForType(cfg *config.Config, t uml.Type) (*File, bool) {
	pkg := t.PackageName()
	name := strings.TrimPrefix(t.QualifiedName(), pkg+".")
	dir := filepath.Join(cfg.Output.Directory, filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")))
	return FromFile(filepath.Join(dir, name+cfg.Output.Extension))
}

// Name is the path the file was created with.
func (f *File) Name() string { return f.path }

func (f *File) String() string { return filepath.Base(f.path) }

// Write replaces the file with the output of diagram, creating missing
// parent directories.
func (f *File) Write(diagram io.WriterTo) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("could not create writer for %s: %w", f.path, err)
	}
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("could not create writer for %s: %w", f.path, err)
	}
	if _, err := diagram.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	log.Infof("Wrote %s.", f.path)
	return nil
}
