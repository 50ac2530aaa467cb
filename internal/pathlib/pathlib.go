package pathlib

import (
	"path/filepath"
	"strings"
)

const sep = "/"

// Remap moves a concrete filesystem path from under its root into the public mount
// namespace: files/site/a/b.html with root files/site and mount website becomes
// /website/a/b.html. A path that doesn't belong to the root is returned unchanged.
// Nothing here touches the filesystem.
func Remap(path, root, mount string) string {
	rest, ok := cutRoot(normalize(path), normalize(root))
	if !ok {
		return path
	}

	return Join(mount, rest)
}

// Join glues the segments together with exactly one separator between each of them,
// and a single leading one. Empty segments are skipped.
func Join(segments ...string) string {
	var b strings.Builder

	for _, segment := range segments {
		segment = strings.Trim(normalize(segment), sep)
		if len(segment) == 0 {
			continue
		}

		b.WriteString(sep)
		b.WriteString(segment)
	}

	if b.Len() == 0 {
		return sep
	}

	return b.String()
}

// Local maps a public path under a mount back to the filesystem. The second return value is
// false if the path doesn't belong to the mount or tries to escape it.
func Local(baseDir, mount, path string) (string, bool) {
	rest, ok := cutRoot(path, Join(mount))
	if !ok || !IsSafe(rest) {
		return "", false
	}

	return filepath.Join(baseDir, filepath.FromSlash(rest)), true
}

// IsSafe checks for path traversal, which is a segment consisting of double dots.
func IsSafe(path string) bool {
	for _, segment := range strings.FieldsFunc(normalize(path), isSep) {
		if segment == ".." {
			return false
		}
	}

	return true
}

// HasPrefix reports whether path is the prefix itself or lies under it. Unlike
// strings.HasPrefix, /storage2 doesn't belong to /storage.
func HasPrefix(path, prefix string) bool {
	_, ok := cutRoot(path, prefix)
	return ok
}

// cutRoot strips the root from the path, respecting segment boundaries.
func cutRoot(path, root string) (rest string, ok bool) {
	root = strings.TrimRight(root, sep)
	if len(root) == 0 {
		return path, true
	}

	rest, ok = strings.CutPrefix(path, root)
	if !ok {
		return "", false
	}

	if len(rest) > 0 && rest[0] != '/' {
		return "", false
	}

	return rest, true
}

func normalize(path string) string {
	return strings.ReplaceAll(path, "\\", sep)
}

func isSep(r rune) bool {
	return r == '/'
}
