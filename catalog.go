package shellext

// Package file catalog.go contains the fixed table of menu actions.

import (
	"errors"
	"fmt"
	"strings"
)

var ErrAction = errors.New("action is not in the catalog")

// ActionID identifies one of the closed set of menu actions.
type ActionID int

const (
	Open ActionID = iota
	Test
	ExtractPrompt
	ExtractHereSmart
	ExtractToFolder
	AddGeneric
	AddTo7z
	AddToZip
	EmailGeneric
	EmailAs7z
	EmailAsZip
	HashMenu
	HashCRC32
	HashCRC64
	HashSHA1
	HashSHA256
	actionCount // actionCount is the number of actions, it must remain last.
)

// String returns the short name of the action used on the command line.
func (id ActionID) String() string {
	if id < 0 || id >= actionCount {
		return fmt.Sprintf("ActionID(%d)", int(id))
	}
	return catalog[id].Name
}

// ParseAction returns the action with the case-insensitive short name.
func ParseAction(name string) (ActionID, error) {
	for _, d := range catalog {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d.ID, nil
		}
	}
	return 0, fmt.Errorf("parse action %w: %q", ErrAction, name)
}

// Actions returns every action in declaration order.
func Actions() []ActionID {
	ids := make([]ActionID, actionCount)
	for i := range ids {
		ids[i] = ActionID(i)
	}
	return ids
}

// TopLevel returns the top-level menu actions in display order.
func TopLevel() []ActionID {
	return []ActionID{
		Open, ExtractPrompt, ExtractHereSmart, ExtractToFolder, Test,
		AddGeneric, AddTo7z, AddToZip,
		EmailGeneric, EmailAs7z, EmailAsZip,
		HashMenu,
	}
}

// Policy decides when an action is shown for a selection.
type Policy int

const (
	AlwaysEnabled        Policy = iota // AlwaysEnabled shows the action for any selection.
	RequireSingleArchive               // RequireSingleArchive needs exactly one archive.
	RequireAllArchives                 // RequireAllArchives needs every entry to be an archive.
)

// Template is the shape of the argument list handed to the 7-Zip program.
type Template int

const (
	None           Template = iota // None is used by composite actions that cannot be launched.
	Browse                         // Browse opens the first path in the file manager.
	PassAll                        // PassAll runs a verb over every selected path.
	ExtractSmart                   // ExtractSmart extracts in place, or per archive folders for many.
	ExtractClassic                 // ExtractClassic always extracts into per archive folders.
	Compress                       // Compress adds the selection to a named archive.
	Hash                           // Hash checksums every selected path.
)

// Descriptor is the static definition of an action.
type Descriptor struct {
	ID        ActionID
	Name      string   // Name is the short command line name.
	Label     string   // Label is the fallback menu text.
	Composite bool     // Composite actions only hold child actions.
	Policy    Policy   // Policy is the visibility rule.
	Tool      ToolKind // Tool is the 7-Zip program that runs the action.
	Template  Template // Template is the argument pattern.
	Verb      string   // Verb is the 7-Zip command letter.
	Ext       string   // Ext is the archive extension of a named compression.
	Switches  []string // Switches are extra 7-Zip switches placed after the verb.
}

// 7-Zip command line verbs and switches.
const (
	verbAdd     = "a"      // a add files to archive
	verbExtract = "x"      // x extract files with full paths
	verbHash    = "h"      // h calculate hash values for files
	verbTest    = "t"      // t test integrity of archive
	dialog      = "-ad"    // -ad show the add to archive dialog
	email       = "-seml." // -seml. send archive by email
	typeZip     = "-tzip"  // -t set the archive type
	hashType    = "-scrc"  // -scrc set the hash function
	targetDir   = "-o"     // -o set output directory
	yes         = "-y"     // -y assume yes on all queries
)

var catalog = [actionCount]Descriptor{
	Open: {
		Name: "open", Label: "Open archive",
		Policy: RequireSingleArchive, Tool: Manager, Template: Browse,
	},
	Test: {
		Name: "test", Label: "Test archive",
		Policy: RequireAllArchives, Tool: GUI, Template: PassAll, Verb: verbTest,
	},
	ExtractPrompt: {
		Name: "extract", Label: "Extract files...",
		Policy: RequireAllArchives, Tool: GUI, Template: PassAll, Verb: verbExtract,
	},
	ExtractHereSmart: {
		Name: "extract-here", Label: "Extract Here",
		Policy: RequireAllArchives, Tool: GUI, Template: ExtractSmart, Verb: verbExtract,
		Switches: []string{yes},
	},
	ExtractToFolder: {
		Name: "extract-to", Label: `Extract to \<Folder>\`,
		Policy: RequireAllArchives, Tool: GUI, Template: ExtractClassic, Verb: verbExtract,
		Switches: []string{yes},
	},
	AddGeneric: {
		Name: "add", Label: "Add to archive...",
		Tool: GUI, Template: Compress, Verb: verbAdd, Ext: zip7x,
		Switches: []string{dialog},
	},
	AddTo7z: {
		Name: "add-7z", Label: `Add to "<Name>.7z"`,
		Tool: GUI, Template: Compress, Verb: verbAdd, Ext: zip7x,
	},
	AddToZip: {
		Name: "add-zip", Label: `Add to "<Name>.zip"`,
		Tool: GUI, Template: Compress, Verb: verbAdd, Ext: zipx,
		Switches: []string{typeZip},
	},
	EmailGeneric: {
		Name: "email", Label: "Compress and email...",
		Tool: GUI, Template: Compress, Verb: verbAdd, Ext: zip7x,
		Switches: []string{dialog, email},
	},
	EmailAs7z: {
		Name: "email-7z", Label: `Compress to "<Name>.7z" and email`,
		Tool: GUI, Template: Compress, Verb: verbAdd, Ext: zip7x,
		Switches: []string{email},
	},
	EmailAsZip: {
		Name: "email-zip", Label: `Compress to "<Name>.zip" and email`,
		Tool: GUI, Template: Compress, Verb: verbAdd, Ext: zipx,
		Switches: []string{typeZip, email},
	},
	HashMenu: {
		Name: "hash", Label: "CRC SHA", Composite: true,
	},
	HashCRC32: {
		Name: "crc32", Label: "CRC-32",
		Tool: CLI, Template: Hash, Verb: verbHash, Switches: []string{hashType + "CRC32"},
	},
	HashCRC64: {
		Name: "crc64", Label: "CRC-64",
		Tool: CLI, Template: Hash, Verb: verbHash, Switches: []string{hashType + "CRC64"},
	},
	HashSHA1: {
		Name: "sha1", Label: "SHA-1",
		Tool: CLI, Template: Hash, Verb: verbHash, Switches: []string{hashType + "SHA1"},
	},
	HashSHA256: {
		Name: "sha256", Label: "SHA-256",
		Tool: CLI, Template: Hash, Verb: verbHash, Switches: []string{hashType + "SHA256"},
	},
}

func init() {
	for i := range catalog {
		catalog[i].ID = ActionID(i)
	}
}

// children are the fixed child actions of the composite actions.
var children = map[ActionID][]ActionID{
	HashMenu: {HashCRC32, HashCRC64, HashSHA1, HashSHA256},
}

// Describe returns the descriptor of the action.
// The catalog covers every ActionID constant, so an id outside of the
// enumeration is a programming error and panics.
func Describe(id ActionID) Descriptor {
	if id < 0 || id >= actionCount {
		panic(fmt.Sprintf("shellext: describe %v: %s", id, ErrAction))
	}
	d := catalog[id]
	d.Switches = append([]string(nil), d.Switches...)
	return d
}
