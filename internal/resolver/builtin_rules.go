package resolver

import (
	"strings"

	"github.com/seitarof/gen-reflect/internal/parser"
)

// DefaultRules returns built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		&ReferenceRule{},
		&ArrayMemberRule{},
		&NestedMemberRule{},
		&MemberRule{},
	}
}

// ReferenceRule: reference members cannot be named by a pointer to member.
type ReferenceRule struct{}

func (r *ReferenceRule) Name() string { return "reference" }

func (r *ReferenceRule) Try(field parser.FieldInfo) (AccessorPlan, bool) {
	if field.IsArray() || !strings.HasSuffix(field.TypeStr, "&") {
		return AccessorPlan{}, false
	}
	return AccessorPlan{Field: field, Strategy: StrategySkip}, true
}

// ArrayMemberRule: `T name[N]...` -> pointer to the whole array member.
// Element-wise handling belongs to the consumer.
type ArrayMemberRule struct{}

func (r *ArrayMemberRule) Name() string { return "array-member" }

func (r *ArrayMemberRule) Try(field parser.FieldInfo) (AccessorPlan, bool) {
	if !field.IsArray() {
		return AccessorPlan{}, false
	}
	return newPlan(field, StrategyArrayMember), true
}

// NestedMemberRule: field whose type is another reflected struct.
type NestedMemberRule struct {
	nested NestedSet
}

func (r *NestedMemberRule) Name() string { return "nested-member" }

func (r *NestedMemberRule) SetNestedSet(set NestedSet) { r.nested = set }

func (r *NestedMemberRule) Try(field parser.FieldInfo) (AccessorPlan, bool) {
	if _, ok := r.nested[baseTypeName(field.TypeStr)]; !ok {
		return AccessorPlan{}, false
	}
	return newPlan(field, StrategyNestedMember), true
}

// MemberRule: any other field -> plain pointer to member.
type MemberRule struct{}

func (r *MemberRule) Name() string { return "member" }

func (r *MemberRule) Try(field parser.FieldInfo) (AccessorPlan, bool) {
	return newPlan(field, StrategyMember), true
}

func newPlan(field parser.FieldInfo, strategy AccessorStrategy) AccessorPlan {
	return AccessorPlan{
		Field:      field,
		Strategy:   strategy,
		Expression: MemberExpression(field.Name),
	}
}

// baseTypeName strips cv-qualifiers and any namespace qualification so
// `const soa::Vec2` and `Vec2` compare equal.
func baseTypeName(typeStr string) string {
	var kept []string
	for _, tok := range strings.Fields(typeStr) {
		if tok == "const" || tok == "volatile" {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) != 1 {
		return ""
	}
	name := kept[0]
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	return name
}
