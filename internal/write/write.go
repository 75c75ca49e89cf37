package write

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// allow letters, digits, dot, underscore, dash
	invalidDirChars = regexp.MustCompile(`[^a-z0-9._-]+`)
	multiDash       = regexp.MustCompile(`-{2,}`)
)

// SafeDirName turns a workspace name into a kebab-case directory name, or
// returns fallback when nothing usable is left.
func SafeDirName(name, fallback string) string {
	trim := invalidDirChars.ReplaceAllString(strcase.ToKebab(name), "-")
	trim = multiDash.ReplaceAllString(trim, "-")
	trim = strings.Trim(trim, "-.")
	if trim == "" {
		return fallback
	}
	return trim
}

// Writer stores encoded values under a root directory.
type Writer struct {
	fs     afero.Fs
	format string
}

func New(fs afero.Fs, format string) (*Writer, error) {
	switch format {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Writer{fs: fs, format: format}, nil
}

// Ext is the file extension for the writer's format, without the dot.
func (w *Writer) Ext() string {
	return w.format
}

// Write encodes v to dir/name.<ext> and returns the file path.
func (w *Writer) Write(dir, name string, v any) (string, error) {
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+"."+w.format)
	f, err := w.fs.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := w.encode(f, v); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, nil
}

func (w *Writer) encode(out io.Writer, v any) error {
	if w.format == "yaml" {
		// go through JSON so keys and omitempty follow the json tags
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
