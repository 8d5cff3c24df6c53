package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"workbook-generator/internal/common"
	"workbook-generator/internal/config"
	"workbook-generator/internal/export"
	"workbook-generator/internal/manifest"
	"workbook-generator/internal/model"
	"workbook-generator/internal/platform"
	"workbook-generator/internal/workbook"
)

// ErrStrict is returned by generate --strict when warnings were recorded.
var ErrStrict = errors.New("generation produced warnings")

type generateFlags struct {
	manifest       string
	name           string
	output         string
	template       string
	referenceCheck string
	strict         bool
	publish        bool
	space          string
	headers        []string
}

// job is one workbook to generate.
type job struct {
	source         any
	props          model.WorkbookProperties
	overrides      []model.SheetOverride
	headers        map[string]string
	referenceCheck string
}

// GenerateCmd returns the generate command.
func GenerateCmd(cfg *config.Config) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [source]",
		Short: "Generate a workbook from a GraphQL schema",
		Long: `Generate a workbook descriptor from a GraphQL schema.

The source is a GraphQL endpoint URL, an SDL file, an introspection result
(.json) or inline SDL. With --manifest, sources, workbook properties and
sheet overrides come from a YAML manifest instead.

Examples:
  workbook-generator generate https://example.test/graphql
  workbook-generator generate schema.graphql --name Movies -o movies.yaml
  workbook-generator generate --manifest workbooks.yaml --template import.xlsx
  workbook-generator generate schema.graphql --publish --space us_sp_123`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := buildJobs(cmd, flags, args)
			if err != nil {
				return err
			}

			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, flags, jobs)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.manifest, "manifest", "m", "", "YAML manifest describing one or more workbooks")
	f.StringVar(&flags.name, "name", "", "workbook name (default \""+workbook.DefaultName+"\")")
	f.StringVarP(&flags.output, "output", "o", "", "output file (.json, .yaml, .yml or .xlsx); JSON to stdout when empty")
	f.StringVar(&flags.template, "template", "", "also write an .xlsx import template to this path")
	f.StringVar(&flags.referenceCheck, "reference-check", "", "reference check: surviving or universe (default from GENERATION_REFERENCE_CHECK)")
	f.BoolVar(&flags.strict, "strict", false, "fail when any warning diagnostic is recorded")
	f.BoolVar(&flags.publish, "publish", false, "create the workbook on the platform (needs PLATFORM_API_URL and PLATFORM_API_KEY)")
	f.StringVar(&flags.space, "space", "", "space id used with --publish")
	f.StringArrayVarP(&flags.headers, "header", "H", nil, "extra request header for URL sources (key=value, repeatable)")

	return cmd
}

func buildJobs(cmd *cobra.Command, flags generateFlags, args []string) ([]job, error) {
	headers, err := parseHeaders(flags.headers)
	if err != nil {
		return nil, err
	}

	if flags.manifest == "" {
		if len(args) == 0 {
			return nil, errors.New("a source argument or --manifest is required")
		}

		source, err := readSource(args[0])
		if err != nil {
			return nil, err
		}

		return []job{{
			source:         source,
			props:          model.WorkbookProperties{Name: flags.name, SpaceID: flags.space},
			headers:        headers,
			referenceCheck: flags.referenceCheck,
		}}, nil
	}

	if len(args) > 0 {
		return nil, errors.New("a source argument cannot be combined with --manifest")
	}

	mf, err := manifest.LoadFile(flags.manifest)
	if err != nil {
		return nil, err
	}

	if res := manifest.Validate(mf); !res.IsValid() {
		printDiagnostics(cmd.ErrOrStderr(), res)
		return nil, fmt.Errorf("invalid manifest %s: %w", flags.manifest, res.Error())
	}

	jobs := make([]job, 0, len(mf.Workbooks))

	for i := range mf.Workbooks {
		w := &mf.Workbooks[i]

		source, err := mf.Resolve(w.Source)
		if err != nil {
			return nil, err
		}

		h := maps.Clone(w.Source.Headers)
		if h == nil {
			h = map[string]string{}
		}

		maps.Copy(h, headers)

		props := w.Properties()
		if flags.name != "" && len(mf.Workbooks) == 1 {
			props.Name = flags.name
		}

		if flags.space != "" {
			props.SpaceID = flags.space
		}

		rc := w.ReferenceCheck
		if flags.referenceCheck != "" {
			rc = flags.referenceCheck
		}

		jobs = append(jobs, job{
			source:         source,
			props:          props,
			overrides:      w.Sheets,
			headers:        h,
			referenceCheck: rc,
		})
	}

	return jobs, nil
}

func runGenerate(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, flags generateFlags, jobs []job) error {
	var creator platform.Creator

	if flags.publish {
		if !cfg.Platform.Enabled() {
			return errors.New("--publish needs PLATFORM_API_URL and PLATFORM_API_KEY")
		}

		client, err := platform.NewClient(cfg.Platform.URL, cfg.Platform.APIKey)
		if err != nil {
			return err
		}

		creator = client
	}

	strictFailed := false

	for i, j := range jobs {
		rc, err := workbook.ParseReferenceCheck(common.FirstNonEmpty(j.referenceCheck, cfg.Generation.ReferenceCheck))
		if err != nil {
			return err
		}

		gen := workbook.NewGenerator(newIntrospector(cfg, j.headers), workbook.Options{
			ReferenceCheck: rc,
			Workers:        cfg.Generation.Workers,
		})

		res, err := gen.Generate(ctx, workbook.SourceConfig{Source: j.source, WorkbookProperties: j.props}, j.overrides)
		if err != nil {
			return fmt.Errorf("generate workbook: %w", err)
		}

		printDiagnostics(stderr, &res.Diagnostics)
		printSummary(stderr, res.Workbook.Name, len(res.Workbook.Sheets), &res.Diagnostics)

		if flags.strict && res.Diagnostics.HasWarnings() {
			strictFailed = true
			continue
		}

		if err := writeOutputs(stdout, flags, res.Workbook, i, len(jobs)); err != nil {
			return err
		}

		if creator != nil {
			id, err := creator.CreateWorkbook(ctx, flags.space, res.Workbook)
			if err != nil {
				return fmt.Errorf("publish workbook %q: %w", res.Workbook.Name, err)
			}

			fmt.Fprintf(stderr, "published %q as %s\n", res.Workbook.Name, id)
		}
	}

	if strictFailed {
		return ErrStrict
	}

	return nil
}

func writeOutputs(stdout io.Writer, flags generateFlags, wb *model.Workbook, index, total int) error {
	if flags.output == "" {
		if err := export.WriteJSON(stdout, wb); err != nil {
			return err
		}
	} else if err := export.WriteFile(indexedPath(flags.output, index, total), wb); err != nil {
		return err
	}

	if flags.template != "" {
		return export.WriteTemplate(indexedPath(flags.template, index, total), wb)
	}

	return nil
}

// indexedPath numbers output files when a manifest yields several workbooks.
func indexedPath(path string, index, total int) string {
	if total <= 1 {
		return path
	}

	ext := filepath.Ext(path)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), index+1, ext)
}
