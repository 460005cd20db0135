package localstore

import (
	"context"
	"io"
	"sort"
	"strings"

	"shiptrack/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

type archiveStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewArchiveStore stores documents under prefix in bucket.
func NewArchiveStore(bucket *blob.Bucket, prefix string) repository.ArchiveStore {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &archiveStore{bucket: bucket, prefix: prefix}
}

func (s *archiveStore) Put(ctx context.Context, name string, data []byte) error {
	key := s.prefix + name
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *archiveStore) List(ctx context.Context) ([]string, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: s.prefix})

	var names []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", s.prefix)
		}
		if obj.IsDir {
			continue
		}
		names = append(names, strings.TrimPrefix(obj.Key, s.prefix))
	}
	sort.Strings(names)

	return names, nil
}
