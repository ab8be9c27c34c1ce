package resolver

import (
	"github.com/seitarof/gen-reflect/internal/parser"
)

// AccessorPlan describes how one field is exposed in the member list.
type AccessorPlan struct {
	Field      parser.FieldInfo
	Strategy   AccessorStrategy
	Expression string
}

// ReflectionRecord is the resolved member list of one struct.
type ReflectionRecord struct {
	Struct    *parser.StructInfo
	TypeName  string
	Accessors []AccessorPlan
}

// Members returns the accessors that are emitted, in declaration order.
func (r ReflectionRecord) Members() []AccessorPlan {
	out := make([]AccessorPlan, 0, len(r.Accessors))
	for _, a := range r.Accessors {
		if a.Strategy == StrategySkip {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Skipped returns the accessors that could not be emitted.
func (r ReflectionRecord) Skipped() []AccessorPlan {
	var out []AccessorPlan
	for _, a := range r.Accessors {
		if a.Strategy == StrategySkip {
			out = append(out, a)
		}
	}
	return out
}

// AccessorStrategy identifies how a field is reached.
type AccessorStrategy int

const (
	StrategyMember AccessorStrategy = iota
	StrategyArrayMember
	StrategyNestedMember
	StrategySkip
)

func (s AccessorStrategy) String() string {
	switch s {
	case StrategyMember:
		return "member"
	case StrategyArrayMember:
		return "array-member"
	case StrategyNestedMember:
		return "nested-member"
	case StrategySkip:
		return "skip"
	default:
		return "unknown"
	}
}

// MemberExpression returns the pointer-to-member expression for a field of
// the record's `type` alias.
func MemberExpression(fieldName string) string {
	return "&type::" + fieldName
}
