package pathkit

import (
	"strings"
)

// Variant identifies the storage backend a path belongs to.
// The set is closed: every Path carries exactly one of these tags,
// derived once at construction and never changed afterwards.
type Variant int

const (
	// Posix is a local filesystem path using forward-slash separators.
	Posix Variant = iota
	// Windows is a local filesystem path using drive-letter and
	// backslash conventions (e.g. `C:\data\file`).
	Windows
	// Swift is an OpenStack Swift object path (`swift://container/key`).
	Swift
	// S3 is an Amazon S3 object path (`s3://bucket/key`).
	S3
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	case Swift:
		return "swift"
	case S3:
		return "s3"
	default:
		return "unknown"
	}
}

// IsObjectStore reports whether the variant is backed by an object store
// rather than a local filesystem.
func (v Variant) IsObjectStore() bool {
	return v == Swift || v == S3
}

const (
	// SwiftPrefix is the scheme prefix of Swift object paths.
	SwiftPrefix = "swift://"
	// S3Prefix is the scheme prefix of S3 object paths.
	S3Prefix = "s3://"
)

// Path is an immutable path value: a string plus the variant tag derived
// from its shape. All path operations preserve the receiver's variant.
type Path struct {
	raw     string
	variant Variant
}

// Classify returns the Path for raw, tagging it with the variant its
// textual shape implies. The dispatch order is: Swift scheme prefix,
// S3 scheme prefix, Windows drive-letter shape, then Posix as the
// fallback. Classification never fails.
//
// A malformed scheme prefix (e.g. "swift:/x" with a single slash) does
// not match the object-store variants and falls through to a filesystem
// variant. This is deliberate: a local path that happens to contain a
// colon must not be silently treated as an object path.
func Classify(raw string) Path {
	switch {
	case strings.HasPrefix(raw, SwiftPrefix):
		return Path{raw: raw, variant: Swift}
	case strings.HasPrefix(raw, S3Prefix):
		return Path{raw: raw, variant: S3}
	case isWindowsAbs(raw):
		return Path{raw: raw, variant: Windows}
	default:
		return Path{raw: raw, variant: Posix}
	}
}

// isWindowsAbs reports whether s has the drive-letter-absolute shape,
// e.g. `C:\path` or `C:/path`.
func isWindowsAbs(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if !(('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')) {
		return false
	}
	return s[1] == ':' && (s[2] == '\\' || s[2] == '/')
}

// IsSwiftPath reports whether raw classifies as a Swift object path.
func IsSwiftPath(raw string) bool { return Classify(raw).variant == Swift }

// IsS3Path reports whether raw classifies as an S3 object path.
func IsS3Path(raw string) bool { return Classify(raw).variant == S3 }

// IsWindowsPath reports whether raw classifies as a Windows filesystem path.
func IsWindowsPath(raw string) bool { return Classify(raw).variant == Windows }

// IsFilesystemPath reports whether raw classifies as a local filesystem
// path (Posix or Windows).
func IsFilesystemPath(raw string) bool {
	v := Classify(raw).variant
	return v == Posix || v == Windows
}

// String returns the textual form of the path.
func (p Path) String() string { return p.raw }

// Variant returns the backend variant tag of the path.
func (p Path) Variant() Variant { return p.variant }

// separator returns the canonical separator for the path's variant.
func (p Path) separator() string {
	if p.variant == Windows {
		return `\`
	}
	return "/"
}

// trimTrailing strips trailing separators for the path's variant.
func (p Path) trimTrailing(s string) string {
	if p.variant == Windows {
		return strings.TrimRight(s, `\/`)
	}
	return strings.TrimRight(s, "/")
}

// Join appends elements to the path using the variant's separator.
// The result keeps the receiver's variant tag.
func (p Path) Join(elems ...string) Path {
	s := p.trimTrailing(p.raw)
	sep := p.separator()
	for _, e := range elems {
		if e == "" {
			continue
		}
		if p.variant != Windows {
			// Object keys always use forward slashes.
			e = strings.ReplaceAll(e, `\`, "/")
		}
		s += sep + strings.Trim(e, sep)
	}
	return Path{raw: s, variant: p.variant}
}

// Parent returns the path with its final element removed, preserving the
// variant. The parent of a scheme root or a bare name is the path itself.
func (p Path) Parent() Path {
	s := p.trimTrailing(p.raw)
	rest := p.schemeless(s)
	i := p.lastSeparator(rest)
	if i < 0 {
		return p
	}
	cut := len(s) - len(rest) + i
	if cut == 0 {
		// Keep the root separator of an absolute posix path.
		cut = 1
	}
	return Path{raw: s[:cut], variant: p.variant}
}

// Base returns the final element of the path.
func (p Path) Base() string {
	s := p.trimTrailing(p.raw)
	rest := p.schemeless(s)
	if i := p.lastSeparator(rest); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

// Equal reports whether two paths carry the same variant and the same
// normalized string. Trailing separators are not significant.
func (p Path) Equal(other Path) bool {
	return p.variant == other.variant &&
		p.trimTrailing(p.raw) == other.trimTrailing(other.raw)
}

// Container returns the bucket or container component of an object-store
// path, or "" for filesystem variants.
func (p Path) Container() string {
	rest := p.schemeless(p.raw)
	if !p.variant.IsObjectStore() {
		return ""
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// Key returns the object key beneath the container, or "" for filesystem
// variants and container-only paths.
func (p Path) Key() string {
	if !p.variant.IsObjectStore() {
		return ""
	}
	rest := p.schemeless(p.raw)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return strings.TrimRight(rest[i+1:], "/")
	}
	return ""
}

// schemeless strips the variant's scheme prefix, if any.
func (p Path) schemeless(s string) string {
	switch p.variant {
	case Swift:
		return strings.TrimPrefix(s, SwiftPrefix)
	case S3:
		return strings.TrimPrefix(s, S3Prefix)
	default:
		return s
	}
}

// lastSeparator returns the index of the last separator in s for the
// path's variant, or -1.
func (p Path) lastSeparator(s string) int {
	if p.variant == Windows {
		return strings.LastIndexAny(s, `\/`)
	}
	return strings.LastIndexByte(s, '/')
}
