package store

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseS3URI(t *testing.T) {
	bucket, key, ok, err := ParseS3URI("s3://proofs/segments/0.cbor")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "proofs", bucket)
	require.Equal(t, "segments/0.cbor", key)

	_, _, ok, err = ParseS3URI("out/stream.json")
	require.NoError(t, err)
	require.False(t, ok)

	_, _, _, err = ParseS3URI("s3://proofs")
	require.Error(t, err)
}

func TestFileStreamRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := hints.Stream{
		{babybear.NewFelt(2)},
		{babybear.NewFelt(5), babybear.NewFelt(babybear.Modulus - 1)},
	}
	for _, name := range []string{"stream.json", "nested/stream.cbor"} {
		uri := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveStream(ctx, uri, s, hints.FormatFromPath(uri)))
		got, err := LoadStream(ctx, uri)
		require.NoError(t, err)
		require.Equal(t, s.Uint64s(), got.Uint64s(), name)
	}
}

func TestFileStoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FileStore{Path: filepath.Join(t.TempDir(), "x")}.Read(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart not supported")
}

func (f *fakeS3) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart not supported")
}

func (f *fakeS3) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart not supported")
}

func (f *fakeS3) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errors.New("multipart not supported")
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{objects: map[string][]byte{}}
	st := NewS3Store(client, "proofs", "a/b.json")
	require.Equal(t, "s3://proofs/a/b.json", st.String())

	require.NoError(t, st.Write(ctx, []byte(`[[1],[2,3]]`)))
	require.Equal(t, []byte(`[[1],[2,3]]`), client.objects["proofs/a/b.json"])

	data, err := st.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, `[[1],[2,3]]`, string(data))

	_, err = NewS3Store(client, "proofs", "missing").Read(ctx)
	require.Error(t, err)
}

func TestProgressTrackingWriter(t *testing.T) {
	buf := make(writeAtBuffer, 8)
	w := NewProgressTrackingWriter(buf)
	_, err := w.WriteAt([]byte{1, 2, 3}, 4)
	require.NoError(t, err)
	_, err = w.WriteAt([]byte{9}, 0)
	require.NoError(t, err)
	require.EqualValues(t, 4, w.Total())
	require.Equal(t, writeAtBuffer{9, 0, 0, 0, 1, 2, 3, 0}, buf)
}

type writeAtBuffer []byte

func (b writeAtBuffer) WriteAt(p []byte, off int64) (int, error) {
	return copy(b[off:], p), nil
}
