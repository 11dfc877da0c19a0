package ingest

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"

	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
	"github.com/dd0wney/cluso-netcentrality/pkg/metrics"
)

// Source schemes, also used as metric labels.
const (
	SchemeFile  = "file"
	SchemeStdin = "stdin"
	SchemeS3    = "s3"
)

// StdinSource is the location that reads from standard input.
const StdinSource = "-"

// objectGetter is the subset of the S3 client used for reads.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader opens edge-list locations and parses them.
type Loader struct {
	opts    Options
	logger  logging.Logger
	metrics *metrics.Registry
	stdin   io.Reader

	s3Once sync.Once
	s3     objectGetter
	s3Err  error
}

// NewLoader creates a loader. A nil logger or registry disables that concern.
func NewLoader(opts Options, logger logging.Logger, reg *metrics.Registry) *Loader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Loader{
		opts:    opts,
		logger:  logger.With(logging.Component("ingest")),
		metrics: reg,
		stdin:   os.Stdin,
	}
}

// SetStdin replaces the reader used for the "-" location.
func (l *Loader) SetStdin(r io.Reader) {
	l.stdin = r
}

// Scheme classifies a location.
func Scheme(location string) string {
	switch {
	case location == StdinSource:
		return SchemeStdin
	case strings.HasPrefix(location, "s3://"):
		return SchemeS3
	default:
		return SchemeFile
	}
}

// compressed reports whether a location holds snappy-framed data.
func compressed(location string) bool {
	return strings.HasSuffix(location, ".sz") || strings.HasSuffix(location, ".snappy")
}

// Load reads and parses every edge at location.
func (l *Loader) Load(ctx context.Context, location string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scheme := Scheme(location)
	timer := logging.StartTimer(l.logger, "edge source loaded", logging.Source(location))

	body, closer, err := l.open(ctx, scheme, location)
	if err != nil {
		timer.EndError(err)
		return nil, err
	}
	defer closer()

	if compressed(location) {
		body = snappy.NewReader(body)
	}

	res, err := ReadEdges(body, location, l.opts)
	if err != nil {
		timer.EndError(err)
		return nil, err
	}

	if res.Malformed > 0 {
		l.logger.Warn("skipped malformed lines",
			logging.Source(location),
			logging.Int("malformed", res.Malformed),
			logging.Error(res.FirstError))
	}
	if l.metrics != nil {
		l.metrics.RecordIngest(scheme, len(res.Edges), res.Malformed, res.Bytes)
	}
	timer.End(logging.Int("edges", len(res.Edges)), logging.Int("lines", res.Lines))
	return res, nil
}

func (l *Loader) open(ctx context.Context, scheme, location string) (io.Reader, func(), error) {
	switch scheme {
	case SchemeStdin:
		if l.stdin == nil {
			return nil, nil, fmt.Errorf("%w: stdin is not available", ErrSourceUnavailable)
		}
		return l.stdin, func() {}, nil
	case SchemeS3:
		return l.openS3(ctx, location)
	default:
		return openFile(location)
	}
}

// openFile memory-maps a local file.
func openFile(path string) (io.Reader, func(), error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	section := io.NewSectionReader(reader, 0, int64(reader.Len()))
	return section, func() { reader.Close() }, nil
}

// ParseS3Location splits s3://bucket/key.
func ParseS3Location(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid s3 url %q: %v", ErrSourceUnavailable, location, err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q is not s3://bucket/key", ErrSourceUnavailable, location)
	}
	return bucket, key, nil
}

func (l *Loader) openS3(ctx context.Context, location string) (io.Reader, func(), error) {
	bucket, key, err := ParseS3Location(location)
	if err != nil {
		return nil, nil, err
	}

	client, err := l.s3Client(ctx)
	if err != nil {
		return nil, nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: fetch %s: %v", ErrSourceUnavailable, location, err)
	}
	return out.Body, func() { out.Body.Close() }, nil
}

func (l *Loader) s3Client(ctx context.Context) (objectGetter, error) {
	l.s3Once.Do(func() {
		if l.s3 != nil {
			return
		}
		var optFns []func(*awsconfig.LoadOptions) error
		if l.opts.S3Region != "" {
			optFns = append(optFns, awsconfig.WithRegion(l.opts.S3Region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			l.s3Err = fmt.Errorf("%w: load aws config: %v", ErrSourceUnavailable, err)
			return
		}
		l.s3 = s3.NewFromConfig(cfg)
	})
	return l.s3, l.s3Err
}
