// Package probe compares the filename extension of selected entries
// with the archive format found in their content.
//
// The menu only trusts filename extensions, so probe is used by hosts
// to explain why an action is hidden, such as for an archive that was
// renamed or a text file that has an archive extension.
package probe

import (
	"errors"
	"fmt"
	"os"

	"github.com/Defacto2/magicnumber"
	"github.com/ItzSteveHuh/shellext"
)

var ErrDir = errors.New("path is a directory")

// Sign returns the archive signature found in the content of the named file.
// A file that is not a known archive returns magicnumber.Unknown.
func Sign(name string) (magicnumber.Signature, error) {
	st, err := os.Stat(name)
	if err != nil {
		return magicnumber.Unknown, fmt.Errorf("probe sign %w", err)
	}
	if st.IsDir() {
		return magicnumber.Unknown, fmt.Errorf("probe sign %w: %s", ErrDir, name)
	}
	r, err := os.Open(name)
	if err != nil {
		return magicnumber.Unknown, fmt.Errorf("probe sign open %w", err)
	}
	defer r.Close()
	sign, err := magicnumber.Archive(r)
	if err != nil {
		return magicnumber.Unknown, fmt.Errorf("probe sign magic %w", err)
	}
	return sign, nil
}

// Archive confirms if the named file content is a known archive.
func Archive(name string) bool {
	sign, err := Sign(name)
	if err != nil {
		return false
	}
	return sign != magicnumber.Unknown
}

// Finding is the result of probing a single selected entry.
type Finding struct {
	Path      string // Path is the selected entry.
	Dir       bool   // Dir is true for a directory, which is never probed.
	Extension bool   // Extension is the archive verdict of the filename extension.
	Content   bool   // Content is the archive verdict of the file content.
	Format    string // Format describes the content signature.
	Err       error  // Err is the reason the content could not be probed.
}

// Mismatch is true when the extension and the content disagree.
func (f Finding) Mismatch() bool {
	return !f.Dir && f.Err == nil && f.Extension != f.Content
}

// Report probes every entry of the selection, in selection order.
func Report(sel shellext.Selection) []Finding {
	entries := sel.Entries()
	findings := make([]Finding, 0, len(entries))
	for _, e := range entries {
		f := Finding{Path: e.Path, Dir: e.Dir, Extension: e.Archive}
		if e.Dir {
			findings = append(findings, f)
			continue
		}
		sign, err := Sign(e.Path)
		f.Err = err
		f.Content = err == nil && sign != magicnumber.Unknown
		f.Format = fmt.Sprint(sign)
		findings = append(findings, f)
	}
	return findings
}
