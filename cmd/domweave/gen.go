package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/internal/preview"
	"github.com/domweave/domweave/pkg/gen"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code and docs from the schema",
		Long: `Generate artifacts from the binding schema.

Types:
  bindings  Generate element, attribute, and event constructor sources
  docs      Render the schema reference to a static HTML file

Examples:
  domweave gen bindings                 # Regenerate *_gen.go sources
  domweave gen docs                     # Render dist/reference.html
  domweave gen docs -o docs/ref.html`,
	}

	cmd.AddCommand(
		genBindingsCmd(),
		genDocsCmd(),
	)

	return cmd
}

// =============================================================================
// domweave gen bindings
// =============================================================================

func genBindingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Generate constructor sources from the schema",
		Long: `Read the binding schema and regenerate the constructor sources.

Six files are written: element, attribute, and event constructors for
the core package, plus thin wrappers for the facade package. Output is
deterministic, so rerunning without schema changes is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenBindings()
		},
	}

	return cmd
}

func runGenBindings() error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	s, sourceName, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	info("Schema: %d elements, %d attributes, %d events",
		len(s.Elements), len(s.Attributes), len(s.Events))

	g := gen.New(s, gen.Options{
		HdomDir:        cfg.Output.Dir,
		FacadeDir:      cfg.Output.FacadeDir,
		HdomImportPath: cfg.Output.ImportPath,
		SourceName:     sourceName,
	})

	root := projectRoot(cfg)
	files, err := g.Files()
	if err != nil {
		return err
	}
	if err := g.WriteFiles(root); err != nil {
		return err
	}

	for _, f := range files {
		info("Wrote %s", f.Path)
	}
	success("Generated %d files", len(files))
	return nil
}

// =============================================================================
// domweave gen docs
// =============================================================================

func genDocsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the schema reference to a static HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenDocs(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default from domweave.json)")

	return cmd
}

func runGenDocs(output string) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	s, _, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	doc, err := preview.RenderReferenceDoc(s)
	if err != nil {
		return err
	}

	if output == "" {
		output = filepath.Join(projectRoot(cfg), cfg.Output.Docs)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return errors.FromError(err, "E203")
	}
	if err := os.WriteFile(output, doc, 0o644); err != nil {
		return errors.FromError(err, "E203")
	}

	success("Rendered %s (%d bytes)", output, len(doc))
	return nil
}
