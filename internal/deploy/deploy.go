package deploy

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/passage-dev/passage/internal/errors"
)

// Client is the subset of the S3 API the syncer uses. *s3.Client
// satisfies it.
type Client interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewClient builds an S3 client from the default AWS credential chain.
func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, errors.New("E301").
			WithDetail("Failed to load AWS configuration: " + err.Error()).
			WithSuggestion("Check your AWS credentials and region settings")
	}

	return s3.NewFromConfig(cfg), nil
}

// Syncer uploads a build output directory to an S3 bucket.
type Syncer struct {
	client Client
	bucket string
	prefix string
	prune  bool
	dryRun bool
	logger *slog.Logger
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithPrefix sets the object key prefix inside the bucket.
func WithPrefix(prefix string) Option {
	return func(s *Syncer) {
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		s.prefix = prefix
	}
}

// WithPrune removes remote objects that no longer exist locally.
func WithPrune(prune bool) Option {
	return func(s *Syncer) { s.prune = prune }
}

// WithDryRun logs what would be uploaded without touching the bucket.
func WithDryRun(dryRun bool) Option {
	return func(s *Syncer) { s.dryRun = dryRun }
}

// WithLogger sets the logger for sync progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Syncer) { s.logger = logger }
}

// NewSyncer creates a syncer targeting the given bucket.
func NewSyncer(client Client, bucket string, opts ...Option) *Syncer {
	s := &Syncer{
		client: client,
		bucket: bucket,
		logger: slog.Default().With("component", "deploy"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result summarizes a completed sync.
type Result struct {
	// Uploaded lists the object keys written to the bucket.
	Uploaded []string

	// Deleted lists the object keys pruned from the bucket.
	Deleted []string
}

// Sync uploads every file under dir to the bucket, keyed by its path
// relative to dir. When pruning is enabled, remote objects under the
// prefix with no local counterpart are deleted afterwards.
func (s *Syncer) Sync(ctx context.Context, dir string) (*Result, error) {
	files, err := collectFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("E302").
			WithDetail("No files found in " + dir)
	}

	result := &Result{}
	local := make(map[string]bool, len(files))

	for _, rel := range files {
		key := s.prefix + filepath.ToSlash(rel)
		local[key] = true

		if s.dryRun {
			s.logger.Info("would upload", "key", key)
			result.Uploaded = append(result.Uploaded, key)
			continue
		}

		if err := s.putFile(ctx, filepath.Join(dir, rel), key); err != nil {
			return result, err
		}

		s.logger.Info("uploaded", "key", key)
		result.Uploaded = append(result.Uploaded, key)
	}

	if s.prune {
		deleted, err := s.pruneRemote(ctx, local)
		result.Deleted = deleted
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// putFile uploads a single file to the bucket.
func (s *Syncer) putFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New("E301").Wrap(err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String(contentTypeFor(path)),
		CacheControl: aws.String(cacheControlFor(path)),
	})
	if err != nil {
		return errors.New("E301").
			WithDetail("Failed to upload " + key + ": " + err.Error()).
			WithSuggestion("Check that the bucket exists and your credentials allow s3:PutObject")
	}
	return nil
}

// pruneRemote deletes objects under the prefix that were not uploaded.
func (s *Syncer) pruneRemote(ctx context.Context, local map[string]bool) ([]string, error) {
	var deleted []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return deleted, errors.New("E301").Wrap(err)
		}

		for _, obj := range page.Contents {
			if obj.Key == nil || local[*obj.Key] {
				continue
			}

			if s.dryRun {
				s.logger.Info("would delete", "key", *obj.Key)
				deleted = append(deleted, *obj.Key)
				continue
			}

			_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				return deleted, errors.New("E301").Wrap(err)
			}

			s.logger.Info("deleted", "key", *obj.Key)
			deleted = append(deleted, *obj.Key)
		}
	}

	return deleted, nil
}

// collectFiles lists regular files under dir, relative to dir.
func collectFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.New("E302").
			WithDetail("Output directory " + dir + " does not exist")
	}

	var files []string
	err = filepath.Walk(dir, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.New("E301").Wrap(err)
	}

	return files, nil
}

// contentTypeFor guesses a MIME type from the file extension.
func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cacheControlFor returns the cache policy for a file. The HTML shell
// must revalidate on every load so clients pick up new asset references;
// everything else is fingerprinted and can be cached hard.
func cacheControlFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return "no-cache"
	}
	return "public, max-age=31536000, immutable"
}
