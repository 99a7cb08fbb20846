package shellext

// Package file path.go contains the lexical path helpers.
//
// Selections handed over by a Windows shell use backslash separators and
// drive letters, so these helpers treat both / and \ as separators and
// never rely on the path rules of the host operating system.

import "strings"

const (
	backslash = '\\'
	slash     = '/'
)

func isSep(c byte) bool {
	return c == slash || c == backslash
}

// volumeLen returns the length of a leading drive letter volume, such as C:.
func volumeLen(p string) int {
	if len(p) < 2 || p[1] != ':' {
		return 0
	}
	c := p[0]
	if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
		return 2
	}
	return 0
}

// trimSep removes trailing separators but keeps a lone root separator.
func trimSep(p string) string {
	v := volumeLen(p)
	for len(p) > v+1 && isSep(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	return p
}

// isRoot reports whether p names a filesystem root or nothing at all.
func isRoot(p string) bool {
	rest := p[volumeLen(p):]
	return rest == "" || (len(rest) == 1 && isSep(rest[0]))
}

func lastSep(p string) int {
	return strings.LastIndexFunc(p, func(r rune) bool {
		return r == slash || r == backslash
	})
}

// baseName returns the final element of p, or an empty string for a root.
func baseName(p string) string {
	p = trimSep(p)
	if isRoot(p) {
		return ""
	}
	i := max(lastSep(p)+1, volumeLen(p))
	return p[i:]
}

// parentDir returns the immediate parent directory of p.
// A path without any separator, or a root, has no parent.
func parentDir(p string) string {
	p = trimSep(p)
	if isRoot(p) {
		return ""
	}
	i := lastSep(p)
	if i < 0 {
		return ""
	}
	dir := p[:i]
	if isRoot(dir) {
		// keep the separator so C:\ and / remain roots
		return p[:i+1]
	}
	return trimSep(dir)
}

// samePath compares two paths lexically, treating both separators as equal.
func samePath(a, b string) bool {
	a, b = trimSep(a), trimSep(b)
	if len(a) != len(b) {
		return false
	}
	for i := range len(a) {
		if isSep(a[i]) && isSep(b[i]) {
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// stem returns the name without its final extension.
// Dot files such as .profile have no extension.
func stem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// ext returns the final extension of name including the dot.
func ext(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

// separator returns the separator style used by p, a backslash for Windows paths.
func separator(p string) string {
	if strings.IndexByte(p, backslash) >= 0 || volumeLen(p) > 0 {
		return string(backslash)
	}
	return string(slash)
}
