package bmfont

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Dacada/BitmapFontGenerator/fontdesc"
	"github.com/Dacada/BitmapFontGenerator/rasterizer"
	"github.com/Dacada/BitmapFontGenerator/rectpack"
)

// Result describes the artifacts produced by a successful Generate run.
type Result struct {
	// Name is the shared base name of both artifacts,
	// "{fontStem}_{height}_{encoding}".
	Name string

	// DescriptionPath is the path of the written description file.
	DescriptionPath string

	// TexturePath is the path of the written atlas texture.
	TexturePath string

	// Dimension is the side length of the square atlas texture.
	Dimension int

	// Table is the glyph table that was encoded into the description
	// file.
	Table *fontdesc.GlyphTable
}

// Generate runs the full atlas generation pipeline: rasterize the 256
// glyphs of the configured encoding, pack their bounding rectangles,
// compose the atlas texture and write the description file and the
// texture under cfg.BaseDir.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		return nil, errors.Wrap(err, "read font file")
	}

	face, err := rasterizer.New(data, cfg.Height, cfg.Encoding)
	if err != nil {
		return nil, errors.Wrap(err, "open font face")
	}
	defer func() { _ = face.Close() }()

	logger := Logger()
	logger.Info("rasterizing glyphs",
		"font", cfg.FontPath, "height", cfg.Height, "encoding", cfg.Encoding)

	packer := rectpack.New()

	var (
		glyphs      [fontdesc.NumGlyphs]rasterizer.Glyph
		handles     [fontdesc.NumGlyphs]rectpack.Handle
		lineSpacing int
	)
	for code := 0; code < fontdesc.NumGlyphs; code++ {
		glyph, err := face.Glyph(byte(code))
		if err != nil {
			return nil, errors.Wrapf(err, "rasterize glyph %d", code)
		}

		// Twice the ascent above the baseline minus the descent: the
		// minimum distance between baselines that keeps ascenders and
		// descenders of consecutive lines apart.
		if spacing := glyph.BearingY + (glyph.BearingY - glyph.Height); spacing > lineSpacing {
			lineSpacing = spacing
		}

		handle, err := packer.Register(glyph.Width, glyph.Height)
		if err != nil {
			return nil, errors.Wrapf(err, "register glyph %d", code)
		}

		glyphs[code] = glyph
		handles[code] = handle

		logger.Debug("glyph rasterized",
			"code", code, "width", glyph.Width, "height", glyph.Height)
	}

	packer.Pack()
	dim := packer.Dimension()
	logger.Info("atlas packed", "dimension", dim)

	atlas, err := fontdesc.NewAtlas(dim)
	if err != nil {
		return nil, err
	}

	table := &fontdesc.GlyphTable{LineSpacing: uint32(lineSpacing)}
	for code := 0; code < fontdesc.NumGlyphs; code++ {
		x, y, err := packer.Position(handles[code])
		if err != nil {
			return nil, errors.Wrapf(err, "position of glyph %d", code)
		}

		glyph := glyphs[code]
		if err := atlas.Blit(x, y, glyph.Width, glyph.Height, glyph.Pixels); err != nil {
			return nil, errors.Wrapf(err, "blit glyph %d", code)
		}

		table.Records[code] = fontdesc.GlyphRecord{
			OffsetX:  uint32(x),
			OffsetY:  uint32(y),
			Width:    uint32(glyph.Width),
			Height:   uint32(glyph.Height),
			BearingX: int32(glyph.BearingX),
			BearingY: int32(glyph.BearingY),
			AdvanceX: uint32(glyph.AdvanceX),
			AdvanceY: uint32(glyph.AdvanceY),
		}
	}

	name := artifactName(cfg.FontPath, cfg.Height, cfg.Encoding)

	fontsDir := filepath.Join(cfg.BaseDir, "fonts")
	if err := os.MkdirAll(fontsDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create fonts directory")
	}
	descPath := filepath.Join(fontsDir, name+".ftd")
	if err := os.WriteFile(descPath, table.Encode(), 0o644); err != nil {
		return nil, errors.Wrap(err, "write description file")
	}

	texturesDir := filepath.Join(cfg.BaseDir, "textures")
	if err := os.MkdirAll(texturesDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create textures directory")
	}
	texPath := filepath.Join(texturesDir, name+".png")
	if err := atlas.SavePNG(texPath); err != nil {
		return nil, errors.Wrap(err, "write texture file")
	}

	logger.Info("artifacts written", "description", descPath, "texture", texPath)

	return &Result{
		Name:            name,
		DescriptionPath: descPath,
		TexturePath:     texPath,
		Dimension:       dim,
		Table:           table,
	}, nil
}

// artifactName builds the shared base name of the two generated files
// from the font file stem, the pixel height and the encoding name.
func artifactName(fontPath string, height int, encoding string) string {
	base := filepath.Base(fontPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%d_%s", stem, height, encoding)
}
