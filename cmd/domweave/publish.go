package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/internal/preview"
	"github.com/domweave/domweave/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the rendered schema reference to S3",
		Long: `Render the schema reference and upload it to the publish bucket.

The rendered page and the schema source are uploaded under the
configured prefix. Stale objects from previous publishes are removed,
so the prefix always mirrors the latest render.

Credentials come from the standard AWS credential chain.

Examples:
  domweave publish
  domweave publish --bucket=ui-docs --prefix=ref/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from domweave.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from domweave.json)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from domweave.json)")

	return cmd
}

func runPublish(ctx context.Context, bucket, prefix, region string) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}

	s, sourceName, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	doc, err := preview.RenderReferenceDoc(s)
	if err != nil {
		return err
	}

	files := []publish.File{
		{Key: "reference.html", Body: doc},
	}
	if cfg.Schema != "" {
		data, err := os.ReadFile(filepath.Join(projectRoot(cfg), cfg.Schema))
		if err != nil {
			return errors.FromError(err, "E101")
		}
		files = append(files, publish.File{Key: sourceName, Body: data})
	}

	p, err := publish.Connect(ctx, cfg.Publish)
	if err != nil {
		return err
	}

	info("Publishing %d file(s) to s3://%s/%s", len(files), cfg.Publish.Bucket, cfg.Publish.Prefix)
	result, err := p.Publish(ctx, files)
	if err != nil {
		return err
	}

	if result.Deleted > 0 {
		info("Removed %d stale object(s)", result.Deleted)
	}
	success("Published %d file(s)", result.Uploaded)
	return nil
}
