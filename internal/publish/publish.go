package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/domweave/domweave/internal/config"
	"github.com/domweave/domweave/internal/errors"
)

// File is a single document to publish.
type File struct {
	// Key is the object key relative to the configured prefix.
	Key string

	// ContentType overrides the extension-based content type when set.
	ContentType string

	// Body is the file content.
	Body []byte
}

// Result summarizes a publish run.
type Result struct {
	Uploaded int
	Deleted  int
}

// s3API is the slice of the S3 client the publisher uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, opts ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	s3.ListObjectsV2APIClient
}

// Publisher uploads rendered docs to an S3 bucket.
type Publisher struct {
	client s3API
	bucket string
	prefix string
}

// New creates a publisher for the given bucket and key prefix.
func New(client s3API, bucket, prefix string) (*Publisher, error) {
	if bucket == "" {
		return nil, errors.New("E402")
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix}, nil
}

// Connect creates a publisher from the project publish settings,
// using the ambient AWS credential chain.
func Connect(ctx context.Context, cfg config.PublishConfig) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E402")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Newf(errors.CategoryCLI, "load AWS configuration: %v", err)
	}

	return New(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix)
}

// Publish uploads every file and removes stale objects under the
// prefix that are not part of this publish.
func (p *Publisher) Publish(ctx context.Context, files []File) (*Result, error) {
	result := &Result{}
	keep := make(map[string]bool, len(files))

	for _, f := range files {
		key := p.prefix + f.Key
		keep[key] = true

		contentType := f.ContentType
		if contentType == "" {
			contentType = contentTypeFor(f.Key)
		}

		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(f.Body),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return result, errors.FromError(err, "E403").
				WithDetail(fmt.Sprintf("put s3://%s/%s", p.bucket, key))
		}
		result.Uploaded++
	}

	deleted, err := p.cleanupStale(ctx, keep)
	result.Deleted = deleted
	if err != nil {
		return result, err
	}
	return result, nil
}

// cleanupStale lists everything under the prefix and deletes keys not
// in the keep set, in batches of up to 1000 per DeleteObjects call.
func (p *Publisher) cleanupStale(ctx context.Context, keep map[string]bool) (int, error) {
	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})

	var stale []types.ObjectIdentifier
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, errors.FromError(err, "E403").
				WithDetail(fmt.Sprintf("list s3://%s/%s", p.bucket, p.prefix))
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || keep[*obj.Key] {
				continue
			}
			stale = append(stale, types.ObjectIdentifier{Key: obj.Key})
		}
	}

	deleted := 0
	for len(stale) > 0 {
		batch := stale
		if len(batch) > 1000 {
			batch = batch[:1000]
		}
		stale = stale[len(batch):]

		_, err := p.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(p.bucket),
			Delete: &types.Delete{Objects: batch},
		})
		if err != nil {
			return deleted, errors.FromError(err, "E403").
				WithDetail(fmt.Sprintf("delete %d stale objects from s3://%s", len(batch), p.bucket))
		}
		deleted += len(batch)
	}

	return deleted, nil
}

// contentTypeFor maps a key's extension to its content type.
func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
