package history

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

const s3Scheme = "s3://"

// ObjectGetter is the part of the S3 API the loader needs
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3ClientFactory builds an S3 client on first use
type S3ClientFactory func(ctx context.Context) (ObjectGetter, error)

// NewS3Client loads the default AWS credential chain.
func NewS3Client(ctx context.Context) (ObjectGetter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Loader resolves a location, local path or s3://bucket/key, and imports it with
// the importer registered for its file extension.
type Loader struct {
	registry Registry
	s3       S3ClientFactory
}

func NewLoader(registry Registry, s3Factory S3ClientFactory) *Loader {
	if s3Factory == nil {
		s3Factory = NewS3Client
	}
	return &Loader{registry: registry, s3: s3Factory}
}

func (l *Loader) Load(ctx context.Context, location string) ([]domain.HistoricalRecord, error) {
	format := FormatOf(location)
	importer, err := l.registry.Get(format)
	if err != nil {
		return nil, err
	}

	body, err := l.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := body.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("location", location).Msg("failed to close history source")
		}
	}()

	records, err := importer.Import(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", location, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("location", location).
		Str("format", format).
		Int("records", len(records)).
		Msg("loaded history")
	return records, nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", location, err)
		}
		return f, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location %q, expected s3://bucket/key", location)
	}

	client, err := l.s3(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object %s: %w", location, err)
	}
	return out.Body, nil
}

// FormatOf derives the import format from the file extension of location.
func FormatOf(location string) string {
	ext := filepath.Ext(location)
	if strings.HasPrefix(location, s3Scheme) {
		ext = path.Ext(location)
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
