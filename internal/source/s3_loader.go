package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"numduo/internal/model"
	"numduo/internal/pairs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used to fetch input objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for reading input files from AWS S3.
type s3Loader struct {
	client ObjectGetter
	bucket string
	base   zerolog.Logger
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based input loader using the default AWS
// credential chain.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	loader := NewS3LoaderWithClient(s3.NewFromConfig(cfg), bucket, logger)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 loader initialised")

	return loader, nil
}

// NewS3LoaderWithClient creates an S3 loader around an existing client.
func NewS3LoaderWithClient(client ObjectGetter, bucket string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		base:   logger,
		logger: logger.With().Str("component", "s3-input-loader").Logger(),
	}
}

// Load reads the input object stored under key.
func (l *s3Loader) Load(ctx context.Context, key string) (*pairs.Finder, error) {
	if err := pairs.ValidateInputFile(key); err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading input file from S3")

	// Get object from S3
	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		if isNotFound(err) {
			return nil, model.NewValidationError(
				model.ErrCodeFileNotFound,
				fmt.Sprintf("input file s3://%s/%s not found", l.bucket, key),
				err,
			)
		}
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := pairs.ReadSequence(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse S3 object %s: %w", key, err)
	}

	if err := pairs.ValidatePositiveNumbers(data); err != nil {
		return nil, fmt.Errorf("invalid S3 object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("values_loaded", len(data)).
		Msg("input file loaded successfully from S3")

	return pairs.NewFinder(data, l.base), nil
}

// isNotFound reports whether err means the object does not exist.
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// fallbackLoader implements a loader that tries S3 first, then falls back to local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Prefix   string
	logger     zerolog.Logger
	s3Enabled  bool
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to local file system.
// If s3Loader is nil, it will only use the file loader.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Prefix string, s3Enabled bool, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Prefix:   s3Prefix,
		s3Enabled:  s3Enabled,
		logger:     logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts to load from S3 first, then falls back to local file system.
// The S3 key is the prefix followed by the base name of path.
func (l *fallbackLoader) Load(ctx context.Context, path string) (*pairs.Finder, error) {
	// Try S3 first if enabled and s3Loader is configured
	if l.s3Enabled && l.s3Loader != nil {
		s3Key := l.s3Prefix + filepath.Base(path)

		l.logger.Info().
			Str("s3_key", s3Key).
			Str("local_fallback", path).
			Msg("attempting to load from S3")

		finder, err := l.s3Loader.Load(ctx, s3Key)
		if err == nil {
			l.logger.Info().
				Str("s3_key", s3Key).
				Msg("successfully loaded from S3")
			return finder, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", s3Key).
			Msg("failed to load from S3, falling back to local file system")
	} else {
		l.logger.Debug().
			Bool("s3_enabled", l.s3Enabled).
			Bool("has_s3_loader", l.s3Loader != nil).
			Msg("S3 disabled or not configured, using local file system")
	}

	// Fall back to local file system
	l.logger.Info().
		Str("file_path", path).
		Msg("loading input from local file system")

	return l.fileLoader.Load(ctx, path)
}
