// Package deploy uploads built application assets to S3-compatible
// object storage.
//
// The syncer walks the build output directory and writes each file to
// the bucket under its relative path, setting content type and cache
// headers appropriate for a single-page application. Optional pruning
// removes remote objects that were deleted locally.
//
//	client, err := deploy.NewClient(ctx, cfg.Deploy.Region)
//	if err != nil {
//	    return err
//	}
//	syncer := deploy.NewSyncer(client, cfg.Deploy.Bucket,
//	    deploy.WithPrefix(cfg.Deploy.Prefix),
//	    deploy.WithPrune(true))
//	result, err := syncer.Sync(ctx, cfg.OutputPath())
package deploy
