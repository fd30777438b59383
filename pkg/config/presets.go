package config

import (
	"fmt"
	"sort"
)

// Preset names for the built-in styles.
const (
	PresetZephyr = "zephyr"
	PresetESPIDF = "espidf"
)

// Zephyr returns the Zephyr RTOS Kconfig style: tab indentation, help
// text at one tab plus two spaces, 100-column lines, loose naming.
func Zephyr() Style {
	return Style{
		UseSpaces:     false,
		PrimaryIndent: 4,
		HelpIndent:    2,
		MaxLineLength: 100,
	}
}

// ESPIDF returns the ESP-IDF Kconfig style: four-space indentation
// scaled with nesting depth, uppercase underscore-prefixed names.
func ESPIDF() Style {
	return Style{
		UseSpaces:       true,
		PrimaryIndent:   4,
		HelpIndent:      4,
		MaxLineLength:   120,
		MaxNameLength:   50,
		UppercaseNames:  true,
		MinPrefixLength: 3,
		IndentSubItems:  true,
	}
}

// presets maps preset names to their constructors.
//
//nolint:gochecknoglobals // Read-only lookup table.
var presets = map[string]func() Style{
	PresetZephyr: Zephyr,
	PresetESPIDF: ESPIDF,
}

// Preset returns the named built-in style.
func Preset(name string) (Style, error) {
	build, ok := presets[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown preset %q; valid presets: %v", name, PresetNames())
	}
	return build(), nil
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
