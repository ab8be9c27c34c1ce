package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/seitarof/gen-reflect/internal/resolver"
)

//go:embed templates/*.h.tmpl
var templateFS embed.FS

// Generator renders reflection records into a header.
type Generator interface {
	Generate(cfg Config, records []resolver.ReflectionRecord) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
	IncludePaths() []string
	ReflectNamespaceName() string
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	writer FileWriter
	tmpl   *template.Template
}

type atomicFileWriter struct {
	fs afero.Fs
}

type templateData struct {
	Includes         []string
	ReflectNamespace string
	Records          []recordTemplateData
}

type recordTemplateData struct {
	TypeName string
	Members  []string
}

// New creates a header generator.
func New(w FileWriter) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.h.tmpl"))
	return &generatorImpl{writer: w, tmpl: tmpl}
}

// NewFileWriter creates a writer that replaces the target file in one
// rename, so readers never observe a truncated header.
func NewFileWriter(fs afero.Fs) FileWriter {
	return &atomicFileWriter{fs: fs}
}

func (g *generatorImpl) Generate(cfg Config, records []resolver.ReflectionRecord) error {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "reflect.h.tmpl", buildTemplateData(cfg, records)); err != nil {
		return fmt.Errorf("template: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (w *atomicFileWriter) Write(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(filename)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", filename, err)
	}
	tmpName := tmp.Name()

	var writeErr error
	if _, err := tmp.Write(data); err != nil {
		writeErr = fmt.Errorf("write temp file %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("close temp file %q: %w", tmpName, err)
	}
	if writeErr != nil {
		_ = w.fs.Remove(tmpName)
		return writeErr
	}

	if err := w.fs.Chmod(tmpName, 0o644); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("chmod temp file %q: %w", tmpName, err)
	}
	if err := w.fs.Rename(tmpName, filename); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("replace %q: %w", filename, err)
	}
	return nil
}

func buildTemplateData(cfg Config, records []resolver.ReflectionRecord) templateData {
	out := make([]recordTemplateData, 0, len(records))
	for _, rec := range records {
		members := rec.Members()
		exprs := make([]string, 0, len(members))
		for _, m := range members {
			exprs = append(exprs, m.Expression)
		}
		out = append(out, recordTemplateData{
			TypeName: rec.TypeName,
			Members:  exprs,
		})
	}
	return templateData{
		Includes:         cfg.IncludePaths(),
		ReflectNamespace: cfg.ReflectNamespaceName(),
		Records:          out,
	}
}
