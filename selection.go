package shellext

// Package file selection.go contains the classification of selected entries.

import (
	"io/fs"
	"os"
	"slices"
	"strings"
)

const (
	arjx  = ".arj"  // Archived by Robert Jung
	bz2x  = ".bz2"  // bzip2 by Julian Seward
	cabx  = ".cab"  // Microsoft Cabinet
	gzipx = ".gz"   // GNU Zip by Jean-loup Gailly and Mark Adler
	lzmax = ".lzma" // LZMA stream by Igor Pavlov
	rarx  = ".rar"  // Roshal ARchive by Alexander Roshal
	tarx  = ".tar"  // Tape ARchive by AT&T Bell Labs
	wimx  = ".wim"  // Windows Imaging Format
	xzx   = ".xz"   // XZ Utils by Lasse Collin
	zipx  = ".zip"  // Phil Katz's ZIP for MS-DOS systems
	zip7x = ".7z"   // 7-Zip by Igor Pavlov
	zstx  = ".zst"  // Zstandard by Yann Collet
)

// Extensions returns the archive filename extensions recognized by the classifier.
func Extensions() []string {
	return []string{zip7x, zipx, rarx, tarx, gzipx, xzx, bz2x, cabx, wimx, lzmax, zstx, arjx}
}

// IsArchiveExt reports whether the filename extension belongs to a recognized archive.
// The comparison is case-insensitive and the extension must include the leading dot.
func IsArchiveExt(x string) bool {
	if x == "" {
		return false
	}
	return slices.Contains(Extensions(), strings.ToLower(x))
}

// Entry is a single selected filesystem entry.
type Entry struct {
	Path    string // Path is the location as given by the host.
	Dir     bool   // Dir is true when the path denotes a directory.
	Archive bool   // Archive is true for a regular file with a recognized archive extension.
}

// Selection is the classified summary of the entries chosen by the user.
// It is derived once per request and never modified.
type Selection struct {
	entries []Entry
	all     bool
	parent  string
}

// Classifier builds a Selection from a list of paths.
//
//	func Menu(paths []string) {
//	    sel := shellext.Classifier{}.Classify(paths...)
//	    fmt.Println(sel.Len(), sel.AllArchives())
//	}
type Classifier struct {
	// Stat returns the file information for the named path.
	// When nil, os.Stat is used.
	Stat func(name string) (fs.FileInfo, error)
}

// Classify uses os.Stat to classify the paths.
func Classify(paths ...string) Selection {
	return Classifier{}.Classify(paths...)
}

// Classify inspects the paths, in order, and returns their Selection.
// Duplicates are kept. Paths that cannot be stat'd are treated as
// entries that are neither directories nor archives.
func (c Classifier) Classify(paths ...string) Selection {
	stat := c.Stat
	if stat == nil {
		stat = os.Stat
	}
	sel := Selection{entries: make([]Entry, 0, len(paths))}
	for _, p := range paths {
		e := Entry{Path: p}
		if st, err := stat(p); err == nil {
			e.Dir = st.IsDir()
			e.Archive = st.Mode().IsRegular() && IsArchiveExt(ext(baseName(p)))
		}
		sel.entries = append(sel.entries, e)
	}
	sel.all = len(sel.entries) > 0 && !slices.ContainsFunc(sel.entries, func(e Entry) bool {
		return !e.Archive
	})
	sel.parent = commonParent(sel.entries)
	return sel
}

// commonParent returns the shared immediate parent of two or more entries.
func commonParent(entries []Entry) string {
	const multiple = 2
	if len(entries) < multiple {
		return ""
	}
	parent := parentDir(entries[0].Path)
	if parent == "" {
		return ""
	}
	for _, e := range entries[1:] {
		if !samePath(parentDir(e.Path), parent) {
			return ""
		}
	}
	return parent
}

// Entries returns a copy of the classified entries in selection order.
func (s Selection) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Paths returns the selected paths in selection order.
func (s Selection) Paths() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

// Len returns the number of selected entries.
func (s Selection) Len() int {
	return len(s.entries)
}

// Empty is true when nothing is selected.
func (s Selection) Empty() bool {
	return len(s.entries) == 0
}

// AllArchives is true when every entry is an archive file.
// An empty selection is never all archives.
func (s Selection) AllArchives() bool {
	return s.all
}

// CommonParent returns the immediate parent directory shared by every entry.
// It is only defined for selections of two or more entries.
func (s Selection) CommonParent() (string, bool) {
	return s.parent, s.parent != ""
}

// First returns the first selected entry.
func (s Selection) First() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[0], true
}
