package pathkit

import (
	"mime"
	"path"
	"strings"
)

// MIMETypeOctetStream is the fallback content type for unknown extensions
const MIMETypeOctetStream = "application/octet-stream"

// MIMETypeDirectory marks zero-byte placeholder objects that stand in
// for empty directories on object-store backends
const MIMETypeDirectory = "application/directory"

// Extensions the mime package does not reliably know across platforms.
var extensionToMIME = map[string]string{
	".md":   "text/markdown",
	".csv":  "text/csv",
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".json": "application/json",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
}

// GuessContentType returns a MIME type for an object key based on its
// extension, falling back to application/octet-stream.
func GuessContentType(key string) string {
	ext := strings.ToLower(path.Ext(key))
	if ext == "" {
		return MIMETypeOctetStream
	}
	if t, ok := extensionToMIME[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return MIMETypeOctetStream
}
