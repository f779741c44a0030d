// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCatalog читает файл с переводами вида {"en": {...}, "zh": {...}} и
// накладывает его поверх встроенных строк. Пустые и отсутствующие поля
// остаются встроенными, неизвестные языки пропускаются.
func LoadCatalog(path string) (Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file: %w", err)
	}

	var overrides map[Language]Translation
	if err := json.Unmarshal(file, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal translations: %w", err)
	}

	catalog := DefaultCatalog()
	for lang, o := range overrides {
		base, ok := catalog[lang]
		if !ok {
			continue
		}
		catalog[lang] = merge(base, o)
	}
	return catalog, nil
}

func merge(base, o Translation) Translation {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&base.Title, o.Title)
	pick(&base.Score, o.Score)
	pick(&base.Missiles, o.Missiles)
	pick(&base.Win, o.Win)
	pick(&base.Loss, o.Loss)
	pick(&base.PlayAgain, o.PlayAgain)
	pick(&base.Start, o.Start)
	pick(&base.Instructions, o.Instructions)
	pick(&base.VictoryDesc, o.VictoryDesc)
	pick(&base.DefeatDesc, o.DefeatDesc)
	pick(&base.Cities, o.Cities)
	pick(&base.Target, o.Target)
	pick(&base.Paused, o.Paused)
	pick(&base.Resume, o.Resume)
	pick(&base.LanguageName, o.LanguageName)
	return base
}
