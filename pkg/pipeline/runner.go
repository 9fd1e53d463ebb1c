package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mwendler/ribbons/pkg/flow"
	flowio "github.com/mwendler/ribbons/pkg/io"
	"github.com/mwendler/ribbons/pkg/layout"
	"github.com/mwendler/ribbons/pkg/palette"
	"github.com/mwendler/ribbons/pkg/render"
	"github.com/mwendler/ribbons/pkg/render/sink"
)

// Runner executes the visualization pipeline. It is stateless except for
// the logger; multiple goroutines can share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this pipeline run in logs and artifacts.
	RunID string

	// Dataset is the validated input.
	Dataset *flow.Dataset

	// Layout is the computed geometry.
	Layout *layout.Layout

	// Diagram holds the assembled drawable primitives.
	Diagram *render.Diagram

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount  int
	LabelCount   int
	StripCount   int
	ValidateTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// Execute runs the complete validate → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if deprecated := opts.deprecated(); len(deprecated) > 0 {
		r.Logger.Warn("the following options are deprecated and should be removed",
			"options", strings.Join(deprecated, ", "))
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Validate
	validateStart := time.Now()
	dataset, err := r.Validate(opts)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Dataset = dataset
	result.Stats.ValidateTime = time.Since(validateStart)
	result.Stats.RecordCount = dataset.Len()
	result.Stats.LabelCount = len(dataset.AllLabels())

	r.Logger.Info("validated dataset",
		"run", result.RunID,
		"records", dataset.Len(),
		"labels", result.Stats.LabelCount,
		"duration", result.Stats.ValidateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := layout.Compute(dataset, opts.Aspect)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.StripCount = len(l.Strips)

	r.Logger.Info("computed layout",
		"strips", len(l.Strips),
		"topEdge", l.TopEdge,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	diagram, artifacts, err := r.Render(dataset, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Diagram = diagram
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	// Compatibility side effect: figureName writes a PNG next to the caller.
	if opts.FigureName != "" {
		if err := r.saveFigure(diagram, opts); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Validate builds the dataset from the input slices and applies explicit
// label orderings.
func (r *Runner) Validate(opts Options) (*flow.Dataset, error) {
	dataset, err := flow.New(opts.Left, opts.Right, opts.LeftWeight, opts.RightWeight)
	if err != nil {
		return nil, err
	}
	if err := dataset.SetLabelOrder(opts.LeftLabels, opts.RightLabels); err != nil {
		return nil, err
	}
	return dataset, nil
}

// Render resolves colors, assembles the diagram, and produces one artifact
// per requested format.
func (r *Runner) Render(dataset *flow.Dataset, l *layout.Layout, opts Options) (*render.Diagram, map[string][]byte, error) {
	explicit, err := palette.ParseHexMap(opts.Colors)
	if err != nil {
		return nil, nil, err
	}
	colors, err := palette.Resolve(explicit, dataset.AllLabels())
	if err != nil {
		return nil, nil, err
	}

	diagram := render.Build(l, colors, render.Options{
		RightColor: opts.RightColor,
		FontSize:   opts.FontSize,
	})

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(format, dataset, l, diagram, colors, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return diagram, artifacts, nil
}

func (r *Runner) renderFormat(format string, dataset *flow.Dataset, l *layout.Layout, diagram *render.Diagram, colors palette.Map, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(diagram), nil
	case FormatPNG:
		return sink.RenderPNG(diagram, pngOptions(opts)...)
	case FormatJSON:
		var buf bytes.Buffer
		if err := flowio.WriteLayoutJSON(l, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(sink.ToDOT(dataset, colors)), nil
	case FormatNodelink:
		return sink.GraphvizSVG(sink.ToDOT(dataset, colors))
	default:
		return nil, ValidateFormat(format)
	}
}

func pngOptions(opts Options) []sink.PNGOption {
	var pngOpts []sink.PNGOption
	if opts.FigWidth > 0 && opts.FigHeight > 0 {
		pngOpts = append(pngOpts, sink.WithFigSize(opts.FigWidth, opts.FigHeight))
	}
	return pngOpts
}

// saveFigure writes the diagram to <figureName>.png, the legacy output path.
func (r *Runner) saveFigure(diagram *render.Diagram, opts Options) error {
	data, err := sink.RenderPNG(diagram, pngOptions(opts)...)
	if err != nil {
		return fmt.Errorf("render figure: %w", err)
	}
	path := opts.FigureName + ".png"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	r.Logger.Info("flow diagram generated", "path", path)
	return nil
}

// applyLogger ensures opts carries the runner's logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
