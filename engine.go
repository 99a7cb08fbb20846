package shellext

// Package file engine.go contains the label, visibility and dispatch rules.

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Visibility is the menu state of an action for a selection.
type Visibility int

const (
	Hidden  Visibility = iota // Hidden removes the action from the menu.
	Enabled                   // Enabled shows the action.
)

func (v Visibility) String() string {
	if v == Enabled {
		return "enabled"
	}
	return "hidden"
}

// Engine resolves the catalog actions against a selection.
// An Engine is a counted lifecycle object that must be closed when the host is done with it.
//
//	func Invoke(paths []string) {
//	    e := shellext.NewEngine()
//	    defer e.Close()
//	    sel := shellext.Classify(paths...)
//	    for _, d := range e.BuildDispatch(shellext.ExtractHereSmart, sel) {
//	        fmt.Println(d.Tool.Program(), d.CommandLine())
//	    }
//	}
type Engine struct {
	life   *Lifecycle
	closed atomic.Bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLifecycle counts the Engine, and the menus it builds, in l instead of Module.
func WithLifecycle(l *Lifecycle) Option {
	return func(e *Engine) {
		if l != nil {
			e.life = l
		}
	}
}

// NewEngine returns a new Engine that is counted as a live object until closed.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{life: &Module}
	for _, opt := range opts {
		opt(e)
	}
	e.life.acquire()
	return e
}

// Close releases the Engine. Only the first call has an effect.
func (e *Engine) Close() error {
	if e.closed.CompareAndSwap(false, true) {
		e.life.release()
	}
	return nil
}

// Label returns the menu text of the action for the selection.
// The naming actions embed the default archive or folder name,
// while an empty selection always gets the fallback label.
func (e *Engine) Label(id ActionID, sel Selection) string {
	d := Describe(id)
	if sel.Empty() {
		return d.Label
	}
	switch id { //nolint:exhaustive
	case AddTo7z, AddToZip:
		return `Add to "` + DefaultArchiveName(sel, d.Ext) + `"`
	case EmailAs7z, EmailAsZip:
		return `Compress to "` + DefaultArchiveName(sel, d.Ext) + `" and email`
	case ExtractToFolder:
		first, _ := sel.First()
		folder := DefaultExtractFolderName(first) + separator(first.Path)
		return `Extract to "` + folder + `"`
	}
	return d.Label
}

// Visibility returns whether the action is shown for the selection.
// An empty selection hides every action.
func (e *Engine) Visibility(id ActionID, sel Selection) Visibility {
	d := Describe(id)
	if sel.Empty() {
		return Hidden
	}
	switch d.Policy {
	case RequireSingleArchive:
		if sel.Len() == 1 && sel.AllArchives() {
			return Enabled
		}
	case RequireAllArchives:
		if sel.AllArchives() {
			return Enabled
		}
	case AlwaysEnabled:
		return Enabled
	}
	return Hidden
}

// BuildDispatch returns the program invocations that carry out the action.
// Nothing is returned for an empty selection, a hidden action or a composite action.
// The dispatches are not executed, that is the responsibility of the host.
func (e *Engine) BuildDispatch(id ActionID, sel Selection) []Dispatch {
	d := Describe(id)
	if d.Composite || e.Visibility(id, sel) == Hidden {
		return nil
	}
	switch d.Template {
	case None:
		return nil
	case Browse:
		first, _ := sel.First()
		return []Dispatch{{Tool: d.Tool, Args: []string{first.Path}, Dir: parentDir(first.Path)}}
	case PassAll, Hash:
		args := slices.Concat([]string{d.Verb}, d.Switches, sel.Paths())
		return []Dispatch{{Tool: d.Tool, Args: args, Dir: workDir(sel)}}
	case ExtractSmart:
		if sel.Len() == 1 {
			first, _ := sel.First()
			args := slices.Concat([]string{d.Verb}, d.Switches, []string{first.Path})
			return []Dispatch{{Tool: d.Tool, Args: args, Dir: parentDir(first.Path)}}
		}
		return extractEach(d, sel)
	case ExtractClassic:
		return extractEach(d, sel)
	case Compress:
		name := DefaultArchiveName(sel, d.Ext)
		args := slices.Concat([]string{d.Verb}, d.Switches, []string{name}, sel.Paths())
		return []Dispatch{{Tool: d.Tool, Args: args, Dir: workDir(sel)}}
	}
	panic(fmt.Sprintf("shellext: dispatch template %d of %v", d.Template, id))
}

// extractEach returns one dispatch per archive, each extracting into
// its own folder named after the archive so the contents never mix.
func extractEach(d Descriptor, sel Selection) []Dispatch {
	entries := sel.Entries()
	plans := make([]Dispatch, 0, len(entries))
	for _, e := range entries {
		folder := DefaultExtractFolderName(e) + separator(e.Path)
		args := slices.Concat([]string{d.Verb}, d.Switches, []string{targetDir + folder, e.Path})
		plans = append(plans, Dispatch{Tool: d.Tool, Args: args, Dir: parentDir(e.Path)})
	}
	return plans
}

// workDir is the directory that holds the selection, the common parent
// when there is one, otherwise the parent of the first entry.
func workDir(sel Selection) string {
	if parent, ok := sel.CommonParent(); ok {
		return parent
	}
	first, _ := sel.First()
	return parentDir(first.Path)
}
