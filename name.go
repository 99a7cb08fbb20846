package shellext

// Package file name.go contains the default archive and folder naming.

// Placeholder is the base name used when no better archive name can be derived.
const Placeholder = "Archive"

// DefaultArchiveName returns the default filename of an archive created from the selection.
// The ext is appended as given and should include the leading dot, for example ".7z".
//
//   - An empty selection is named Archive.
//   - A single entry is named after the directory, or the file without its extension.
//   - Multiple entries are named after their common parent directory, otherwise Archive.
func DefaultArchiveName(sel Selection, ext string) string {
	switch sel.Len() {
	case 0:
		return Placeholder + ext
	case 1:
		e, _ := sel.First()
		if name := DefaultExtractFolderName(e); name != "" {
			return name + ext
		}
		return Placeholder + ext
	}
	parent, ok := sel.CommonParent()
	if !ok {
		return Placeholder + ext
	}
	if name := baseName(parent); name != "" {
		return name + ext
	}
	return Placeholder + ext
}

// DefaultExtractFolderName returns the folder name for the entry,
// the directory name or the filename without its final extension.
func DefaultExtractFolderName(e Entry) string {
	name := baseName(e.Path)
	if e.Dir {
		return name
	}
	return stem(name)
}
