package parser

// StructInfo holds the ordered fields of one struct declared in the scanned
// namespace.
type StructInfo struct {
	Name      string
	Namespace string
	Fields    []FieldInfo
}

// QualifiedName returns the namespace-qualified C++ type name.
func (s *StructInfo) QualifiedName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "::" + s.Name
}

// FieldInfo stores one parsed field declaration.
type FieldInfo struct {
	Name        string
	TypeStr     string
	ArraySuffix string
}

// IsArray reports whether the field was declared with one or more
// `[N]` suffixes.
func (f FieldInfo) IsArray() bool {
	return f.ArraySuffix != ""
}
