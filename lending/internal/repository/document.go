package repository

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Document names, one per collection.
const (
	UsersDocument   = "users"
	BooksDocument   = "books"
	CDsDocument     = "cds"
	LoansDocument   = "loans"
	CDLoansDocument = "cd_loans"
	FinesDocument   = "fines"
	CDFinesDocument = "cd_fines"
)

// DocumentIO reads and writes whole named documents. Read returns
// errs.ErrDocumentNotFound for a document that was never written.
type DocumentIO interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// BlobIO keeps every document as a <name>.json object in a bucket.
type BlobIO struct {
	bucket *blob.Bucket
}

func NewBlobIO(bucket *blob.Bucket) *BlobIO {
	return &BlobIO{bucket: bucket}
}

// OpenBlobIO opens a bucket by URL, e.g. file:///var/lib/lending?create_dir=true
// or mem://.
func OpenBlobIO(ctx context.Context, url string) (*BlobIO, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", url)
	}
	return NewBlobIO(bucket), nil
}

func (b *BlobIO) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := b.bucket.ReadAll(ctx, key(name))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errs.ErrDocumentNotFound
		}
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}

func (b *BlobIO) Write(ctx context.Context, name string, data []byte) error {
	err := b.bucket.WriteAll(ctx, key(name), data, &blob.WriterOptions{
		ContentType: "application/json",
	})
	return errors.Wrapf(err, "write %s", name)
}

func (b *BlobIO) Close() error {
	return b.bucket.Close()
}

func key(name string) string {
	return name + ".json"
}
