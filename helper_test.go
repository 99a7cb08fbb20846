package shellext_test

import (
	"io/fs"
	"time"

	"github.com/ItzSteveHuh/shellext"
)

// fakeInfo is the file information of an entry on a pretend volume.
type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }
func (f fakeInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// volume is a pretend filesystem of Windows paths, the value is true for directories.
type volume map[string]bool

func (v volume) stat(name string) (fs.FileInfo, error) {
	dir, ok := v[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fakeInfo{name: name, dir: dir}, nil
}

func (v volume) classify(paths ...string) shellext.Selection {
	return shellext.Classifier{Stat: v.stat}.Classify(paths...)
}

func testVolume() volume {
	return volume{
		`C:\dir`:            true,
		`C:\dir\file.txt`:   false,
		`C:\dir\a.txt`:      false,
		`C:\dir\b.txt`:      false,
		`C:\dir\sub`:        true,
		`C:\dir\zipped.7z`:  true, // a directory that looks like an archive
		`C:\d1\a.txt`:       false,
		`C:\d2\b.txt`:       false,
		`C:\dl\X.7z`:        false,
		`C:\dl\Y.7z`:        false,
		`C:\dl\Z.ZIP`:       false,
		`C:\dl\tape.tar.gz`: false,
		`C:\dl\notes.txt`:   false,
		`C:\other\W.rar`:    false,
		`C:\root.7z`:        false,
		`C:\top.zip`:        false,
	}
}
