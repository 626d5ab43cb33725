// Package ddgtrans implements the pre-scheduling graph transformations
// described in the owning specification: Transitive Reduction (package
// tred) and the Static Node-Superiority ILP Transformation (package
// nodesup), mutating a Data Dependence Graph (package ddg) in place.
//
// Pipeline is the pre-pass layer mentioned by the specification's system
// overview: it invokes the configured transformations, in the order they
// were configured, against one ddg.Graph.
//
//	p := ddgtrans.NewPipeline(ddgtrans.WithTRED(), ddgtrans.WithNodeSuperiority())
//	result, err := p.Run(g)
//
// A Pipeline can also be built directly from a loaded config.Config:
//
//	cfg, err := config.Load(path)
//	p := ddgtrans.NewPipelineFromConfig(cfg)
//	result, err := p.Run(g)
package ddgtrans

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ddgtrans/config"
	"github.com/katalvlaran/ddgtrans/ddg"
	"github.com/katalvlaran/ddgtrans/nodesup"
	"github.com/katalvlaran/ddgtrans/tred"
)

// stageKind identifies which transformation a configured stage runs.
type stageKind uint8

const (
	stageTRED stageKind = iota
	stageNodeSup
)

// Option customizes a Pipeline before it runs. Options are applied, and
// stages recorded, in the order they are supplied to NewPipeline.
type Option func(p *Pipeline)

// WithTRED appends the Transitive Reduction pass to the pipeline.
func WithTRED() Option {
	return func(p *Pipeline) { p.stages = append(p.stages, stageTRED) }
}

// WithNodeSuperiority appends the Node-Superiority ILP Transformation to
// the pipeline.
func WithNodeSuperiority() Option {
	return func(p *Pipeline) { p.stages = append(p.stages, stageNodeSup) }
}

// WithLogger installs logger as the sink for both transformations'
// diagnostic output. The default is a no-op logger (spec §6: "Logger
// ... MAY be a null sink").
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithMaxNodes installs a node-count safety cap: Run skips the
// Node-Superiority stage (logging instead of running it) for any graph
// larger than n (spec §5: "Callers decide whether to skip NSUP on
// oversized regions"). n <= 0 means no cap, the default.
func WithMaxNodes(n int) Option {
	return func(p *Pipeline) { p.maxNodes = n }
}

// Pipeline runs a configured sequence of graph transformations against a
// single ddg.Graph. A Pipeline carries no per-run state; it may be reused
// across multiple Run calls on different graphs.
type Pipeline struct {
	stages   []stageKind
	logger   zerolog.Logger
	maxNodes int
}

// NewPipeline builds a Pipeline from the given options, applied in order.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPipelineFromConfig builds a Pipeline from a loaded config.Config
// (spec §6: "recognized entries in the caller's config ... {ilp.nodesup:
// enabled? yes/no, tred: enabled? yes/no}"), translating its toggles and
// MaxNodes cap into the equivalent Options. Any opts passed are applied
// afterward, so a caller may still override the logger or re-enable a
// stage the config disabled.
func NewPipelineFromConfig(cfg config.Config, opts ...Option) *Pipeline {
	var stageOpts []Option
	if cfg.TRED {
		stageOpts = append(stageOpts, WithTRED())
	}
	if cfg.ILP.NodeSup {
		stageOpts = append(stageOpts, WithNodeSuperiority())
	}
	if cfg.ILP.MaxNodes > 0 {
		stageOpts = append(stageOpts, WithMaxNodes(cfg.ILP.MaxNodes))
	}
	return NewPipeline(append(stageOpts, opts...)...)
}

// Result aggregates the statistics of every stage a Pipeline ran.
type Result struct {
	TRED    tred.Stats
	NodeSup nodesup.Stats
}

// Run executes every configured stage against g, in configuration order,
// and returns the combined statistics. A stage's failure aborts the
// pipeline immediately; g is left in whatever state the failed stage's
// partial mutation produced (spec §7: "unchanged ... or partially
// transformed but still acyclic").
func (p *Pipeline) Run(g *ddg.Graph) (Result, error) {
	var result Result
	for _, stage := range p.stages {
		switch stage {
		case stageTRED:
			stats, err := tred.Run(g, p.logger)
			result.TRED = stats
			if err != nil {
				return result, err
			}
		case stageNodeSup:
			if p.maxNodes > 0 && g.NodeCount() > p.maxNodes {
				p.logger.Warn().
					Int("node_count", g.NodeCount()).
					Int("max_nodes", p.maxNodes).
					Msg("skipping node-superiority transformation: graph exceeds configured node cap")
				continue
			}
			stats, err := nodesup.Run(g, p.logger)
			result.NodeSup = stats
			if err != nil {
				return result, err
			}
		}
	}
	return result, nil
}
