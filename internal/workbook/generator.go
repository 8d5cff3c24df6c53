package workbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"workbook-generator/internal/diagnostic"
	"workbook-generator/internal/introspect"
	"workbook-generator/internal/logging"
	"workbook-generator/internal/match"
	"workbook-generator/internal/model"
	"workbook-generator/internal/schema"
	"workbook-generator/internal/sheet"
)

// Introspector produces a raw introspection document from a schema source.
type Introspector interface {
	Introspect(ctx context.Context, source any) (*introspect.Document, error)
}

// SourceConfig is the schema source plus the caller's workbook properties.
type SourceConfig struct {
	// Source is a URL string, an SDL string, a schema instance, raw
	// introspection JSON bytes or a decoded *introspect.Document.
	Source any
	model.WorkbookProperties
}

// Result is the outcome of one generation call.
type Result struct {
	// ID identifies the run in logs.
	ID          string
	Workbook    *model.Workbook
	Diagnostics diagnostic.Diagnostics
	// Objects is the extracted universe the sheets were generated from.
	Objects []schema.Object
}

// Generator runs the workbook pipeline.
type Generator struct {
	introspector Introspector
	opts         Options
}

// NewGenerator creates a Generator. A nil introspector uses introspect.New().
func NewGenerator(in Introspector, opts Options) *Generator {
	if in == nil {
		in = introspect.New()
	}

	return &Generator{introspector: in, opts: opts.withDefaults()}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate builds a workbook from a source with the default generator.
func Generate(ctx context.Context, cfg SourceConfig, overrides []model.SheetOverride) (*Result, error) {
	return NewGenerator(nil, Options{}).Generate(ctx, cfg, overrides)
}

// Generate introspects cfg.Source and builds the workbook. Fatal failures
// (invalid source, fetch failure, malformed schema) return an error and no
// result.
func (g *Generator) Generate(ctx context.Context, cfg SourceConfig, overrides []model.SheetOverride) (*Result, error) {
	id := uuid.NewString()
	logger := logging.WithFields(ctx, "generation_id", id)
	ctx = logging.NewContext(ctx, logger)

	logger.Debug("introspecting source", "source_kind", fmt.Sprintf("%T", cfg.Source))

	doc, err := g.introspector.Introspect(ctx, cfg.Source)
	if err != nil {
		logger.Error("introspection failed", "error", err)
		return nil, err
	}

	res, err := g.build(ctx, doc, cfg.WorkbookProperties, overrides)
	if err != nil {
		return nil, err
	}

	res.ID = id

	return res, nil
}

// FromDocument builds the workbook from an already introspected document.
func (g *Generator) FromDocument(
	ctx context.Context,
	doc *introspect.Document,
	props model.WorkbookProperties,
	overrides []model.SheetOverride,
) (*Result, error) {
	id := uuid.NewString()
	ctx = logging.NewContext(ctx, logging.WithFields(ctx, "generation_id", id))

	res, err := g.build(ctx, doc, props, overrides)
	if err != nil {
		return nil, err
	}

	res.ID = id

	return res, nil
}

func (g *Generator) build(
	ctx context.Context,
	doc *introspect.Document,
	props model.WorkbookProperties,
	overrides []model.SheetOverride,
) (*Result, error) {
	logger := logging.FromContext(ctx)

	objects, err := schema.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("extract objects: %w", err)
	}

	universe := schema.NewUniverse(objects)

	var diags diagnostic.Diagnostics

	reportUnmatched(objects, universe, overrides, &diags)

	candidates, err := g.generateSheets(ctx, objects, overrides, &diags)
	if err != nil {
		return nil, err
	}

	var sheets []model.Sheet

	switch g.opts.ReferenceCheck {
	case ReferenceCheckUniverse:
		sheets = CheckReferences(candidates, universe, &diags)
	default:
		sheets = CheckSurviving(candidates, &diags)
	}

	wb := &model.Workbook{
		WorkbookProperties: props.Clone(),
		Sheets:             sheets,
	}
	if wb.Name == "" {
		wb.Name = g.opts.DefaultName
	}

	if wb.Sheets == nil {
		wb.Sheets = []model.Sheet{}
	}

	logDiagnostics(logger, diags)
	logger.Info("workbook generated",
		"name", wb.Name,
		"objects", len(objects),
		"sheets", len(wb.Sheets),
		"dropped", len(candidates)-len(wb.Sheets),
		"warnings", len(diags.Warnings),
	)

	return &Result{Workbook: wb, Diagnostics: diags, Objects: objects}, nil
}

// generateSheets fans sheet generation out across workers and merges the
// per-object diagnostics back in object order.
func (g *Generator) generateSheets(
	ctx context.Context,
	objects []schema.Object,
	overrides []model.SheetOverride,
	diags *diagnostic.Diagnostics,
) ([]model.Sheet, error) {
	sheets := make([]model.Sheet, len(objects))
	perObject := make([]diagnostic.Diagnostics, len(objects))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)

	for i, obj := range objects {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			sheets[i] = sheet.Generate(obj, overrides, &perObject[i])

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate sheets: %w", err)
	}

	for _, d := range perObject {
		diags.Merge(d)
	}

	return sheets, nil
}

func reportUnmatched(objects []schema.Object, universe schema.Universe, overrides []model.SheetOverride, diags *diagnostic.Diagnostics) {
	names := make([]string, 0, len(objects))
	for _, o := range objects {
		names = append(names, o.Name)
	}

	for _, o := range overrides {
		if universe.Contains(o.Slug) {
			continue
		}

		msg := fmt.Sprintf("override slug %q matches no object type", o.Slug)
		if s, ok := match.Suggest(o.Slug, names); ok {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}

		diags.AddWarning(diagnostic.CodeOverrideUnmatched, msg, o.Slug, "")
	}
}

func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		logger.Debug("diagnostic",
			"severity", d.Severity.String(),
			"code", d.Code,
			"object", d.Object,
			"field", d.Field,
			"message", d.Message,
		)
	}
}
