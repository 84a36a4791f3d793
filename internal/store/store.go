// Package store persists generated maps to a directory or an S3 bucket.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink receives finished map files.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
	// Location describes where name ends up, for log lines.
	Location(name string) string
}

// FileSink writes files into Dir, which must exist.
type FileSink struct {
	Dir string
}

func (s FileSink) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.Dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", s.Dir)
	}
	if err := os.WriteFile(s.Location(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s FileSink) Location(name string) string {
	return filepath.Join(s.Dir, name)
}

// Target is a parsed output path.
type Target struct {
	Bucket string // set for s3:// targets
	Prefix string
	Dir    string
}

// IsS3 reports whether the target is a bucket.
func (t Target) IsS3() bool { return t.Bucket != "" }

// ParseTarget splits "s3://bucket/prefix" from a plain directory.
func ParseTarget(path string) (Target, error) {
	rest, ok := strings.CutPrefix(path, "s3://")
	if !ok {
		if path == "" {
			path = "."
		}
		return Target{Dir: path}, nil
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Target{}, fmt.Errorf("invalid s3 path %q: missing bucket", path)
	}
	return Target{Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
}

// Open returns the sink for path. region is only used for S3 targets and
// may be empty to use the environment's default.
func Open(path, region string) (Sink, error) {
	t, err := ParseTarget(path)
	if err != nil {
		return nil, err
	}
	if !t.IsS3() {
		return FileSink{Dir: t.Dir}, nil
	}
	sink, err := NewS3Sink(t.Bucket, t.Prefix, region)
	if err != nil {
		return nil, err
	}
	return sink, nil
}
