package resolver

import (
	"github.com/seitarof/gen-reflect/internal/parser"
)

// Resolver turns parsed structs into reflection records.
type Resolver interface {
	Resolve(structs []*parser.StructInfo) []ReflectionRecord
}

// Rule tries to produce an accessor plan for one field.
type Rule interface {
	Name() string
	Try(field parser.FieldInfo) (AccessorPlan, bool)
}

type resolverImpl struct {
	rules     []Rule
	nestedSet NestedSet
}

// New builds resolver with rule chain.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

func (r *resolverImpl) Resolve(structs []*parser.StructInfo) []ReflectionRecord {
	r.nestedSet = buildNestedSet(r.nestedSet, structs)
	for _, rule := range r.rules {
		if aware, ok := rule.(NestedAware); ok {
			aware.SetNestedSet(r.nestedSet)
		}
	}

	records := make([]ReflectionRecord, 0, len(structs))
	for _, s := range structs {
		plans := make([]AccessorPlan, 0, len(s.Fields))
		for _, f := range s.Fields {
			plans = append(plans, r.resolveOne(f))
		}
		records = append(records, ReflectionRecord{
			Struct:    s,
			TypeName:  s.QualifiedName(),
			Accessors: plans,
		})
	}
	return records
}

func (r *resolverImpl) resolveOne(field parser.FieldInfo) AccessorPlan {
	for _, rule := range r.rules {
		if plan, ok := rule.Try(field); ok {
			return plan
		}
	}
	return AccessorPlan{Field: field, Strategy: StrategySkip}
}

func buildNestedSet(reuse NestedSet, structs []*parser.StructInfo) NestedSet {
	if reuse == nil {
		reuse = make(NestedSet, len(structs))
	} else {
		clear(reuse)
	}
	for _, s := range structs {
		reuse[s.Name] = struct{}{}
	}
	return reuse
}
