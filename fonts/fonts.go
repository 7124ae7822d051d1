package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Meters  FontName = "meters"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadDefaults registers the label faces using the Go fonts.
func LoadDefaults(startSize, titleSize, metersSize float64) error {
	if err := LoadFontWithSize(Regular, goregular.TTF, startSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, titleSize); err != nil {
		return err
	}
	return LoadFontWithSize(Meters, gobold.TTF, metersSize)
}

func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
