package shellext_test

import (
	"fmt"

	"github.com/ItzSteveHuh/shellext"
)

func ExampleEngine_BuildDispatch() {
	vol := volume{`C:\Downloads\fonts.7z`: false, `C:\Downloads\icons.zip`: false}
	sel := shellext.Classifier{Stat: vol.stat}.Classify(`C:\Downloads\fonts.7z`, `C:\Downloads\icons.zip`)

	e := shellext.NewEngine()
	defer e.Close()
	for _, d := range e.BuildDispatch(shellext.ExtractHereSmart, sel) {
		fmt.Println(d.Tool.Program(), d.CommandLine())
	}
	// Output:
	// 7zG x -y "-ofonts\\" "C:\Downloads\fonts.7z"
	// 7zG x -y "-oicons\\" "C:\Downloads\icons.zip"
}

func ExampleEngine_Build() {
	sel := shellext.Classify("/home/user/photos/a.jpg", "/home/user/photos/b.jpg")

	e := shellext.NewEngine()
	defer e.Close()
	menu := e.Build(sel)
	defer menu.Close()
	for _, n := range menu.Nodes() {
		if n.State == shellext.Hidden {
			continue
		}
		fmt.Println(n.Label)
		for _, child := range n.Children {
			fmt.Println("  " + child.Label)
		}
	}
	// Output:
	// Add to archive...
	// Add to "photos.7z"
	// Add to "photos.zip"
	// Compress and email...
	// Compress to "photos.7z" and email
	// Compress to "photos.zip" and email
	// CRC SHA
	//   CRC-32
	//   CRC-64
	//   SHA-1
	//   SHA-256
}
