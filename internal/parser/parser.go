package parser

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/seitarof/gen-reflect/internal/logger"
	"github.com/seitarof/gen-reflect/internal/matcher"
)

// ErrNamespaceNotFound is returned when the input has no block for the
// requested namespace.
var ErrNamespaceNotFound = errors.New("namespace not found")

// NamespaceError reports which namespace was missing. It matches
// ErrNamespaceNotFound under errors.Is.
type NamespaceError struct {
	Namespace string
}

func (e *NamespaceError) Error() string {
	return fmt.Sprintf("could not find 'namespace %s' in input", e.Namespace)
}

func (e *NamespaceError) Is(target error) bool {
	return target == ErrNamespaceNotFound
}

// Parser extracts struct metadata from a C++ header.
type Parser interface {
	Parse(src string, namespace string) ([]*StructInfo, error)
	ParseFile(path string, namespace string) ([]*StructInfo, error)
}

type parserImpl struct {
	fs          afero.Fs
	structMatch matcher.StructMatcher
	fieldMatch  matcher.FieldMatcher
}

// New returns default parser reading files from fs.
func New(fs afero.Fs, sm matcher.StructMatcher, fm matcher.FieldMatcher) Parser {
	return &parserImpl{fs: fs, structMatch: sm, fieldMatch: fm}
}

func (p *parserImpl) ParseFile(path string, namespace string) ([]*StructInfo, error) {
	src, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return p.Parse(string(src), namespace)
}

func (p *parserImpl) Parse(src string, namespace string) ([]*StructInfo, error) {
	body, ok := FindNamespace(StripComments(src), namespace)
	if !ok {
		return nil, &NamespaceError{Namespace: namespace}
	}

	decls := p.structMatch.MatchStructs(body)
	infos := make([]*StructInfo, len(decls))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, decl := range decls {
		g.Go(func() error {
			infos[i] = p.buildStruct(decl, namespace)
			return nil
		})
	}
	// buildStruct cannot fail; the group only bounds the fan-out.
	_ = g.Wait()
	return infos, nil
}

func (p *parserImpl) buildStruct(decl matcher.StructDecl, namespace string) *StructInfo {
	decls, skipped := p.fieldMatch.Match(decl.Body)
	for _, s := range skipped {
		logger.Default().Debug("statement skipped", "struct", decl.Name, "reason", s.Reason, "statement", s.Statement)
	}

	fields := make([]FieldInfo, 0, len(decls))
	for _, d := range decls {
		fields = append(fields, FieldInfo{
			Name:        d.Name,
			TypeStr:     d.Type,
			ArraySuffix: d.ArraySuffix,
		})
	}
	return &StructInfo{
		Name:      decl.Name,
		Namespace: namespace,
		Fields:    fields,
	}
}
