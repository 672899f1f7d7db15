package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore is the two-phase-write boundary: callers upload a binary,
// receive its public URL, and only then persist that URL into a row.
type ObjectStore interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error)

	// PublicURL returns the URL an already-stored object is served from.
	PublicURL(bucket, key string) string

	// Remove deletes a stored object.
	Remove(ctx context.Context, bucket, key string) error
}

// ObjectKey builds a collision-free key for an uploaded file, keeping the
// original extension: <prefix>/<uuid>.<ext>
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}

// KeyFromURL recovers the object key from a public URL, mirroring how the
// admin UI derived storage paths when deleting images. Returns "" when the
// URL does not reference the bucket.
func KeyFromURL(rawURL, bucket string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return ""
	}
	return rawURL[idx+len(marker):]
}
