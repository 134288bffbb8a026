package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maskedsyntax/splashy/internal/document"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

// exportDoc has a white base, a half-opacity red layer, and a hidden green
// layer that must never reach the output.
func exportDoc() *document.Document {
	doc := document.New(16, 12, colorutil.White)

	doc.AddLayer()
	doc.ActiveSurface().Fill(colorutil.Red)
	doc.Layers()[1].Opacity = 0.5

	doc.AddLayer()
	doc.ActiveSurface().Fill(colorutil.New(0, 1, 0, 1))
	doc.Layers()[2].Visible = false

	return doc
}

func TestPNGExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, PNG(exportDoc(), colorutil.White, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	r, g, b, a := img.At(8, 6).RGBA()
	assert.EqualValues(t, 0xffff, a, "background keeps the output opaque")
	assert.EqualValues(t, 0xffff, r)
	assert.InDelta(t, 0x8000, g, 0x200, "half-opacity red over white reads pink")
	assert.InDelta(t, 0x8000, b, 0x200)
	assert.Less(t, g, r, "hidden green layer is excluded")
}

func TestPNGExportToBadPath(t *testing.T) {
	err := PNG(exportDoc(), colorutil.White, filepath.Join(t.TempDir(), "missing", "out.png"))
	assert.Error(t, err)
}

func TestPDFExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, PDF(exportDoc(), colorutil.White, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 500)
	assert.Equal(t, "%PDF-", string(raw[:5]))
	assert.Contains(t, string(raw), "/Image", "the flattened raster is embedded")
}
