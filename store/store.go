// Package store reads and writes hint artifacts on the local filesystem or S3.
package store

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lido333/openvm/hints"
	"github.com/pkg/errors"
)

// Store is a single named blob.
type Store interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	String() string
}

// Open returns an S3 store for s3://bucket/key URIs and a file store
// otherwise. S3 credentials come from the default AWS config chain.
func Open(ctx context.Context, uri string) (Store, error) {
	bucket, key, ok, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	if !ok {
		return FileStore{Path: uri}, nil
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading aws config")
	}
	return NewS3Store(s3.NewFromConfig(cfg), bucket, key), nil
}

// ParseS3URI splits s3://bucket/key. ok is false for any other scheme.
func ParseS3URI(uri string) (bucket, key string, ok bool, err error) {
	if !strings.HasPrefix(uri, "s3://") {
		return "", "", false, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", false, errors.Wrapf(err, "parsing %s", uri)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", false, errors.Errorf("s3 uri %q needs a bucket and a key", uri)
	}
	return u.Host, key, true, nil
}

// FileStore is a file on the local filesystem.
type FileStore struct {
	Path string
}

func (f FileStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	return data, nil
}

// Write creates missing parent directories.
func (f FileStore) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "creating directory")
		}
	}
	return errors.Wrap(os.WriteFile(f.Path, data, 0644), "writing file")
}

func (f FileStore) String() string { return f.Path }

// LoadStream reads a hint stream from uri, picking the transport from its
// extension.
func LoadStream(ctx context.Context, uri string) (hints.Stream, error) {
	st, err := Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	data, err := st.Read(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", st)
	}
	return hints.DecodeStream(data, hints.FormatFromPath(uri))
}

func SaveStream(ctx context.Context, uri string, s hints.Stream, format hints.Format) error {
	data, err := hints.EncodeStream(s, format)
	if err != nil {
		return err
	}
	st, err := Open(ctx, uri)
	if err != nil {
		return err
	}
	return errors.Wrapf(st.Write(ctx, data), "saving %s", st)
}

// LoadJSON decodes the JSON document at uri into v.
func LoadJSON(ctx context.Context, uri string, v any) error {
	st, err := Open(ctx, uri)
	if err != nil {
		return err
	}
	data, err := st.Read(ctx)
	if err != nil {
		return errors.Wrapf(err, "loading %s", st)
	}
	return errors.Wrapf(json.Unmarshal(data, v), "decoding %s", st)
}

func SaveJSON(ctx context.Context, uri string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	st, err := Open(ctx, uri)
	if err != nil {
		return err
	}
	return errors.Wrapf(st.Write(ctx, data), "saving %s", st)
}
