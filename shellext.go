// Package shellext decides which 7-Zip actions a file manager context menu
// offers for a selection of files and directories, and how each is run.
//
// The package never launches a program. For a selection it provides:
//
//  1. [Classify] - a summary of the entries, including whether they are all archives
//  2. [DefaultArchiveName] - the default name of a new archive
//  3. [Engine.Label] and [Engine.Visibility] - the menu text and state of an action
//  4. [Engine.BuildDispatch] - the 7-Zip program invocations that carry out an action
//  5. [Engine.Build] - the complete menu tree including the hash submenu
//
// The dispatches name one of three 7-Zip programs.
//
//  1. [7zFM] - 7-Zip File Manager, used to open an archive
//  2. [7zG] - 7-Zip GUI, used to test, extract and compress with progress dialogs
//  3. [7z] - 7-Zip console, used to calculate hashes
//
// Extract Here is smart, a single archive is extracted in place while multiple
// archives each extract into a folder named after the archive, so their files
// never mix. Extract to always creates the named folder, even for one archive.
//
// [7zFM]: https://www.7-zip.org/
// [7zG]: https://www.7-zip.org/
// [7z]: https://7-zip.opensource.jp/chm/cmdline/
package shellext
