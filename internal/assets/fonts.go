package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Размеры шрифтов интерфейса в пунктах при 72 DPI.
const (
	SmallSize  = 12
	NormalSize = 16
	TitleSize  = 32
)

// Fonts - начертания, которыми рисуется интерфейс.
type Fonts struct {
	Small  font.Face
	Normal font.Face
	Title  font.Face
	Source string // откуда взяты: путь к файлу, "goregular" или "basicfont"
}

// LoadFonts загружает TTF/OTF из path. Пустой path - встроенный Go Regular.
// При ошибке возвращается рабочий набор из встроенного шрифта вместе с ошибкой,
// чтобы игра могла продолжить работу. Для китайского интерфейса нужен файл с CJK-глифами.
func LoadFonts(path string) (Fonts, error) {
	if path == "" {
		return builtinFonts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return builtinFonts(), fmt.Errorf("failed to read font file: %w", err)
	}
	fonts, err := parseFonts(data)
	if err != nil {
		return builtinFonts(), fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	fonts.Source = path
	return fonts, nil
}

func builtinFonts() Fonts {
	fonts, err := parseFonts(goregular.TTF)
	if err != nil {
		return basicFonts()
	}
	fonts.Source = "goregular"
	return fonts
}

// basicFonts - растровый 7x13, работает всегда.
func basicFonts() Fonts {
	return Fonts{
		Small:  basicfont.Face7x13,
		Normal: basicfont.Face7x13,
		Title:  basicfont.Face7x13,
		Source: "basicfont",
	}
}

func parseFonts(data []byte) (Fonts, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return Fonts{}, err
	}
	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var fonts Fonts
	if fonts.Small, err = newFace(SmallSize); err != nil {
		return Fonts{}, err
	}
	if fonts.Normal, err = newFace(NormalSize); err != nil {
		return Fonts{}, err
	}
	if fonts.Title, err = newFace(TitleSize); err != nil {
		return Fonts{}, err
	}
	return fonts, nil
}
