// Package export renders the canvas to portable image formats.
package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/maskedsyntax/splashy/internal/document"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

// PNG flattens the document over the background color and writes it to
// path.
func PNG(doc *document.Document, bg colorutil.Color, path string) error {
	var buf bytes.Buffer
	if err := doc.Flatten(bg).EncodePNG(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// PDF writes the flattened canvas as a single-page PDF. The page matches
// the canvas pixel dimensions in points, so the raster embeds 1:1.
func PDF(doc *document.Document, bg colorutil.Color, path string) error {
	w, h := float64(doc.Width()), float64(doc.Height())

	var buf bytes.Buffer
	if err := doc.Flatten(bg).EncodePNG(&buf); err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", 0, 0, w, h, false, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("build pdf: %w", pdf.Error())
	}
	return pdf.OutputFileAndClose(path)
}
