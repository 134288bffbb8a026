// Command splashyexport renders a project file to PNG or PDF without
// opening the editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maskedsyntax/splashy/internal/document"
	"github.com/maskedsyntax/splashy/internal/export"
	"github.com/maskedsyntax/splashy/internal/project"
)

func main() {
	projectPath := flag.String("project", "", "Path to project file")
	outPath := flag.String("out", "", "Output file, .png or .pdf (default: project name with .png)")
	flag.Parse()

	if *projectPath == "" {
		fmt.Println("Usage: splashyexport -project <path> [-out drawing.png]")
		os.Exit(1)
	}

	f, err := project.Load(*projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load project: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s: %dx%d pixels, %d layers\n",
		*projectPath, f.Width, f.Height, len(f.Layers))

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(*projectPath, project.Extension) + ".png"
	}

	doc := document.FromSurfaces(f.Layers, f.ActiveLayer)

	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		err = export.PNG(doc, f.Background, out)
	case ".pdf":
		err = export.PDF(doc, f.Background, out)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported output format %q (use .png or .pdf)\n", filepath.Ext(out))
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", out)
}
