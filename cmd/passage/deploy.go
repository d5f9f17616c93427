package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passage-dev/passage/internal/config"
	"github.com/passage-dev/passage/internal/deploy"
	"github.com/passage-dev/passage/internal/errors"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		prune  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload built assets to S3",
		Long: `Upload the build output directory to an S3 bucket.

Bucket, prefix, and region default to the deploy section of
passage.json. Credentials come from the standard AWS credential
chain (environment, shared config, instance role).

Examples:
  passage deploy
  passage deploy --bucket=my-app-assets --region=us-east-1
  passage deploy --prune --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd.Context(), bucket, prefix, region, prune, dryRun)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (default from passage.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from passage.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from passage.json)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote objects with no local counterpart")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without uploading")

	return cmd
}

func runDeploy(ctx context.Context, bucket, prefix, region string, prune, dryRun bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if bucket == "" {
		bucket = cfg.Deploy.Bucket
	}
	if prefix == "" {
		prefix = cfg.Deploy.Prefix
	}
	if region == "" {
		region = cfg.Deploy.Region
	}

	if bucket == "" {
		return errors.New("E301").
			WithDetail("No target bucket configured").
			WithSuggestion("Set deploy.bucket in passage.json or pass --bucket")
	}

	client, err := deploy.NewClient(ctx, region)
	if err != nil {
		return err
	}

	syncer := deploy.NewSyncer(client, bucket,
		deploy.WithPrefix(prefix),
		deploy.WithPrune(prune),
		deploy.WithDryRun(dryRun),
	)

	printBanner()
	fmt.Printf("  deploy → s3://%s\n\n", bucket)

	result, err := syncer.Sync(ctx, cfg.OutputPath())
	if err != nil {
		return err
	}

	success("Uploaded %d files", len(result.Uploaded))
	if prune {
		info("Pruned %d stale objects", len(result.Deleted))
	}
	if dryRun {
		info("Dry run: no changes were made")
	}
	return nil
}
