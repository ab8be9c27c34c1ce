package cli

import (
	"fmt"

	"github.com/seitarof/gen-reflect/internal/generator"
	"github.com/seitarof/gen-reflect/internal/logger"
	"github.com/seitarof/gen-reflect/internal/parser"
	"github.com/seitarof/gen-reflect/internal/resolver"
)

// Runner orchestrates parser/resolver/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser    parser.Parser
	resolver  resolver.Resolver
	generator generator.Generator
}

// NewRunner creates a default runner implementation.
func NewRunner(p parser.Parser, r resolver.Resolver, g generator.Generator) Runner {
	return &runnerImpl{
		parser:    p,
		resolver:  r,
		generator: g,
	}
}

// Run executes a single generation cycle. Nothing is written unless the
// input parsed and the whole header rendered.
func (r *runnerImpl) Run(cfg *Config) error {
	infos, err := r.parser.ParseFile(cfg.InputPath, cfg.Namespace)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	records := r.resolver.Resolve(infos)
	logAccessors(records)

	if err := r.generator.Generate(cfg, records); err != nil {
		return fmt.Errorf("generate %q: %w", cfg.OutputPath, err)
	}
	logger.Default().Info("reflection header written", "output", cfg.OutputPath, "structs", len(records))
	return nil
}

// logAccessors reports how each field was classified. Skipped fields are
// warnings since they are missing from the generated header.
func logAccessors(records []resolver.ReflectionRecord) {
	log := logger.Default()
	for _, rec := range records {
		for _, plan := range rec.Accessors {
			if plan.Strategy == resolver.StrategySkip {
				log.Warn(
					"field has no pointer-to-member form, skipped",
					"struct", rec.TypeName,
					"field", plan.Field.Name,
					"type", plan.Field.TypeStr,
				)
				continue
			}
			log.Debug(
				"field resolved",
				"struct", rec.TypeName,
				"field", plan.Field.Name,
				"strategy", plan.Strategy.String(),
			)
		}
	}
}
