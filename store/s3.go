package store

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"
)

// S3API is the subset of *s3.Client used by the transfer managers.
type S3API interface {
	manager.DownloadAPIClient
	manager.UploadAPIClient
}

type S3Store struct {
	client S3API
	bucket string
	key    string
}

func NewS3Store(client S3API, bucket, key string) *S3Store {
	return &S3Store{client: client, bucket: bucket, key: key}
}

func (s *S3Store) Read(ctx context.Context) ([]byte, error) {
	log := logger.Logger().With().Str("bucket", s.bucket).Str("key", s.key).Logger()
	start := time.Now()

	buf := manager.NewWriteAtBuffer(nil)
	w := NewProgressTrackingWriter(buf)
	_, err := manager.NewDownloader(s.client).Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, errors.Wrap(err, "downloading object")
	}
	log.Debug().Int64("bytes", w.Total()).Dur("took", time.Since(start)).Msg("downloaded")
	return buf.Bytes(), nil
}

func (s *S3Store) Write(ctx context.Context, data []byte) error {
	_, err := manager.NewUploader(s.client).Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Body:   bytes.NewReader(data),
	})
	return errors.Wrap(err, "uploading object")
}

func (s *S3Store) String() string { return "s3://" + s.bucket + "/" + s.key }

// ProgressTrackingWriter wraps a WriterAt and counts the bytes written through
// it. Parts may arrive concurrently and out of order.
type ProgressTrackingWriter struct {
	underlying io.WriterAt
	totalBytes atomic.Int64
}

func NewProgressTrackingWriter(writer io.WriterAt) *ProgressTrackingWriter {
	return &ProgressTrackingWriter{underlying: writer}
}

func (ptw *ProgressTrackingWriter) WriteAt(p []byte, offset int64) (int, error) {
	n, err := ptw.underlying.WriteAt(p, offset)
	total := ptw.totalBytes.Add(int64(n))
	log := logger.Logger()
	log.Trace().
		Float64("gb", bytesToGigabytes(total)).
		Int64("offset", offset).
		Msg("download progress")
	return n, err
}

// Total is the number of bytes written so far.
func (ptw *ProgressTrackingWriter) Total() int64 {
	return ptw.totalBytes.Load()
}

func bytesToGigabytes(bytes int64) float64 {
	const bytesPerGigabyte = 1024 * 1024 * 1024
	return float64(bytes) / float64(bytesPerGigabyte)
}
