// Package s3 implements the pathkit backend for Amazon S3. Paths have
// the form s3://bucket/key; the bucket is taken from the path itself, so
// one adapter serves every bucket the credentials can reach.
//
// S3 has no real directories. A directory "exists" when any object
// carries its prefix, and empty directories are materialized as
// zero-byte placeholder objects whose key ends with a slash.
package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/gobeaver/pathkit"
)

// Adapter provides an S3 implementation of pathkit.Backend
type Adapter struct {
	client *s3.Client
}

// New creates a new S3 backend adapter
func New(client *s3.Client) *Adapter {
	return &Adapter{client: client}
}

// location splits an S3 path into bucket and key.
func location(p pathkit.Path) (string, string) {
	return p.Container(), p.Key()
}

// dirPrefix returns the listing prefix for a directory key: "key/" or
// "" at the bucket root.
func dirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// Exists implements pathkit.FileReader
func (a *Adapter) Exists(ctx context.Context, p pathkit.Path) (bool, error) {
	bucket, key := location(p)

	if key == "" {
		_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		if err != nil {
			if isNotFound(err) {
				return false, nil
			}
			return false, mapS3Error("exists", p.String(), err)
		}
		return true, nil
	}

	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if !isNotFound(err) {
		return false, mapS3Error("exists", p.String(), err)
	}

	// No object at the exact key; the path may still name a directory,
	// which exists when anything carries its prefix.
	return a.prefixExists(ctx, bucket, dirPrefix(key))
}

// prefixExists reports whether any object (placeholder included) lives
// under the given prefix.
func (a *Adapter) prefixExists(ctx context.Context, bucket, prefix string) (bool, error) {
	resp, err := a.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, mapS3Error("exists", prefix, err)
	}
	return len(resp.Contents) > 0 || len(resp.CommonPrefixes) > 0, nil
}

// Stat implements pathkit.FileReader
func (a *Adapter) Stat(ctx context.Context, p pathkit.Path) (*pathkit.FileInfo, error) {
	bucket, key := location(p)

	if key != "" {
		resp, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return &pathkit.FileInfo{
				Name:    p.Base(),
				Path:    p,
				Size:    aws.ToInt64(resp.ContentLength),
				ModTime: aws.ToTime(resp.LastModified),
				IsDir:   false,
			}, nil
		}
		if !isNotFound(err) {
			return nil, mapS3Error("stat", p.String(), err)
		}
	}

	ok, err := a.prefixExists(ctx, bucket, dirPrefix(key))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pathkit.NewPathError("stat", p.String(), pathkit.ErrNotExist)
	}
	return &pathkit.FileInfo{
		Name:  p.Base(),
		Path:  p,
		IsDir: true,
	}, nil
}

// List implements pathkit.FileReader. Immediate children only: objects
// directly under the prefix plus one directory entry per common prefix.
func (a *Adapter) List(ctx context.Context, p pathkit.Path) ([]pathkit.FileInfo, error) {
	bucket, key := location(p)
	prefix := dirPrefix(key)

	var infos []pathkit.FileInfo
	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, mapS3Error("list", p.String(), err)
		}

		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), prefix), "/")
			if name == "" {
				continue
			}
			infos = append(infos, pathkit.FileInfo{
				Name:  name,
				Path:  p.Join(name),
				IsDir: true,
			})
		}

		for _, obj := range page.Contents {
			objKey := aws.ToString(obj.Key)
			// Skip the directory's own placeholder object.
			if objKey == prefix {
				continue
			}
			name := strings.TrimPrefix(objKey, prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			infos = append(infos, pathkit.FileInfo{
				Name:    name,
				Path:    p.Join(name),
				Size:    aws.ToInt64(obj.Size),
				ModTime: aws.ToTime(obj.LastModified),
				IsDir:   false,
			})
		}
	}
	return infos, nil
}

// Open implements pathkit.FileReader
func (a *Adapter) Open(ctx context.Context, p pathkit.Path) (io.ReadCloser, error) {
	bucket, key := location(p)
	resp, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapS3Error("open", p.String(), err)
	}
	return resp.Body, nil
}

// Write implements pathkit.FileWriter. Unknown readers are buffered;
// PutObject needs the content length up front.
func (a *Adapter) Write(ctx context.Context, p pathkit.Path, r io.Reader, opts ...pathkit.Option) (int64, error) {
	o := pathkit.ApplyOptions(opts...)
	bucket, key := location(p)

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, pathkit.NewPathError("write", p.String(), err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if o.ContentType != "" {
		input.ContentType = aws.String(o.ContentType)
	}

	if _, err := a.client.PutObject(ctx, input); err != nil {
		return 0, mapS3Error("write", p.String(), err)
	}
	return int64(len(data)), nil
}

// Delete implements pathkit.FileWriter
func (a *Adapter) Delete(ctx context.Context, p pathkit.Path) error {
	bucket, key := location(p)
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return mapS3Error("delete", p.String(), err)
	}
	return nil
}

// CreateDir implements pathkit.FileWriter by writing a zero-byte
// placeholder object so the empty directory survives a round trip.
func (a *Adapter) CreateDir(ctx context.Context, p pathkit.Path) error {
	bucket, key := location(p)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(dirPrefix(key)),
		Body:          bytes.NewReader(nil),
		ContentLength: aws.Int64(0),
		ContentType:   aws.String(pathkit.MIMETypeDirectory),
	})
	if err != nil {
		return mapS3Error("mkdir", p.String(), err)
	}
	return nil
}

// DeleteDir implements pathkit.FileWriter by deleting every object under
// the prefix in batches.
func (a *Adapter) DeleteDir(ctx context.Context, p pathkit.Path) error {
	bucket, key := location(p)
	prefix := dirPrefix(key)

	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return mapS3Error("rmdir", p.String(), err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}
		_, err = a.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{
				Objects: objects,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return mapS3Error("rmdir", p.String(), err)
		}
	}
	return nil
}

// isNotFound reports whether err is any of the SDK's not-found shapes.
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	var nsb *types.NoSuchBucket
	return errors.As(err, &nsk) || errors.As(err, &nf) || errors.As(err, &nsb)
}

// mapS3Error maps SDK errors onto pathkit sentinels.
func mapS3Error(op, path string, err error) error {
	if isNotFound(err) {
		return pathkit.NewPathError(op, path, pathkit.ErrNotExist)
	}
	return pathkit.NewPathError(op, path, err)
}
