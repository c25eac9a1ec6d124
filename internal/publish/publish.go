// Package publish uploads generated documents to S3-compatible storage.
package publish

import (
	"bytes"
	"context"
	"encoding/hex"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/zeebo/blake3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cyb3rnet/xhtml/internal/errors"
)

const tracerName = "github.com/cyb3rnet/xhtml/internal/publish"

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// ChecksumKey is the object metadata key holding the body's BLAKE3 digest.
const ChecksumKey = "blake3"

// API is the subset of the S3 client used by a Publisher.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// ClientOptions configures the S3 client.
type ClientOptions struct {
	Region    string
	Endpoint  string
	PathStyle bool
}

// NewClient creates an S3 client. Credentials come from AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN; requests are anonymous when
// they are unset.
func NewClient(opts ClientOptions) *s3.Client {
	region := opts.Region
	if region == "" {
		region = DefaultRegion
	}

	o := s3.Options{
		Region:       region,
		Credentials:  envCredentials(),
		UsePathStyle: opts.PathStyle,
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o)
}

func envCredentials() aws.CredentialsProvider {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.AnonymousCredentials{}
	}
	token := os.Getenv("AWS_SESSION_TOKEN")
	return aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    token,
			Source:          "environment",
		}, nil
	})
}

// Result describes a finished upload.
type Result struct {
	Bucket   string
	Key      string
	Bytes    int
	Checksum string
	ETag     string

	// Skipped is set when the stored object already had the same checksum.
	Skipped bool
}

// Publisher uploads documents to one bucket.
type Publisher struct {
	client API
	bucket string
	force  bool
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the publisher's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithForce uploads even when the stored object is unchanged.
func WithForce(force bool) Option {
	return func(p *Publisher) {
		p.force = force
	}
}

// New creates a publisher for bucket.
func New(client API, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client: client,
		bucket: bucket,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Checksum returns the hex BLAKE3 digest of body.
func Checksum(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Publish uploads body under key. The upload is skipped when the stored
// object carries the same checksum, unless the publisher is forced.
func (p *Publisher) Publish(ctx context.Context, key string, body []byte, contentType string) (*Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "publish.Publish",
		trace.WithAttributes(
			attribute.String("xhtml.bucket", p.bucket),
			attribute.String("xhtml.key", key),
			attribute.Int("xhtml.bytes", len(body)),
		),
	)
	defer span.End()

	result, err := p.publish(ctx, key, body, contentType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("xhtml.skipped", result.Skipped))
	span.SetStatus(codes.Ok, "")
	return result, nil
}

func (p *Publisher) publish(ctx context.Context, key string, body []byte, contentType string) (*Result, error) {
	if p.bucket == "" {
		return nil, errors.New(errors.CodePublishFailed).
			WithDetail("no bucket configured").
			WithSuggestion(`Set "publish.bucket" in xhtml.json`)
	}
	if key == "" {
		return nil, errors.New(errors.CodePublishFailed).WithDetail("empty object key")
	}

	result := &Result{
		Bucket:   p.bucket,
		Key:      key,
		Bytes:    len(body),
		Checksum: Checksum(body),
	}

	if !p.force {
		head, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		})
		// A failed HEAD usually means the object does not exist yet.
		if err == nil && head.Metadata[ChecksumKey] == result.Checksum {
			p.logger.Info("object unchanged", "bucket", p.bucket, "key", key)
			result.Skipped = true
			result.ETag = aws.ToString(head.ETag)
			return result, nil
		}
	}

	out, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			ChecksumKey: result.Checksum,
		},
	})
	if err != nil {
		return nil, errors.New(errors.CodePublishFailed).
			WithDetailf("s3://%s/%s", p.bucket, key).
			Wrap(err)
	}

	result.ETag = aws.ToString(out.ETag)
	p.logger.Info("object published", "bucket", p.bucket, "key", key, "bytes", len(body))
	return result, nil
}
