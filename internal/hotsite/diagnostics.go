package hotsite

import (
	"fmt"
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// WarningKind classifies a diagnostic.
type WarningKind string

const (
	WarnUnknownStyle   WarningKind = "unknown_style"
	WarnUnknownPackage WarningKind = "unknown_package"
	WarnMissingStyle   WarningKind = "missing_style"
	WarnStyleCollision WarningKind = "style_collision"
	WarnMissingImage   WarningKind = "missing_image"
)

// Warning is a data problem that makes part of a project unreachable or
// incomplete in the generated site. Warnings never block generation.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Item    string      `json:"item"`
	Label   string      `json:"label,omitempty"`
	Message string      `json:"message"`
}

// Diagnose reports plants and tours whose style or package labels fall
// outside the known sets, and style labels that differ only in case and so
// share one tab key.
func Diagnose(full *project.Full) []Warning {
	if full == nil {
		return nil
	}
	var warnings []Warning

	for i, plant := range full.Plants {
		item := fmt.Sprintf("plant[%d] %q", i, plant.Title)
		switch {
		case strings.TrimSpace(plant.Style) == "":
			warnings = append(warnings, Warning{
				Kind: WarnMissingStyle, Item: item,
				Message: "plant has no style and will not appear in any style tab",
			})
		case ParseStyle(plant.Style) == StyleUnrecognized:
			warnings = append(warnings, Warning{
				Kind: WarnUnknownStyle, Item: item, Label: plant.Style,
				Message: "style is not one of ECO, SLIM, URBAN",
			})
		}
		if ParsePackage(plant.Package) == PackageUnrecognized {
			warnings = append(warnings, Warning{
				Kind: WarnUnknownPackage, Item: item, Label: plant.Package,
				Message: "package has no tab; the image is unreachable",
			})
		}
		if plant.ImageURL == "" {
			warnings = append(warnings, Warning{
				Kind: WarnMissingImage, Item: item,
				Message: "plant has no image",
			})
		}
	}

	for i, tour := range full.Tours {
		item := fmt.Sprintf("tour[%d] %q", i, tour.Label)
		switch {
		case strings.TrimSpace(tour.StyleCategory) == "":
			warnings = append(warnings, Warning{
				Kind: WarnMissingStyle, Item: item,
				Message: "tour has no style category and will not appear in any panel",
			})
		case ParseStyle(tour.StyleCategory) == StyleUnrecognized:
			warnings = append(warnings, Warning{
				Kind: WarnUnknownStyle, Item: item, Label: tour.StyleCategory,
				Message: "style category is not one of ECO, SLIM, URBAN",
			})
		}
	}

	warnings = append(warnings, collisions("plants", ActiveStyles(full.Plants))...)
	warnings = append(warnings, collisions("tours", ActiveStyles(full.Tours))...)
	return warnings
}

func collisions(item string, styles []string) []Warning {
	var warnings []Warning
	first := make(map[string]string)
	for _, style := range styles {
		key := strings.ToLower(style)
		if prev, ok := first[key]; ok {
			warnings = append(warnings, Warning{
				Kind: WarnStyleCollision, Item: item, Label: style,
				Message: fmt.Sprintf("style %q shares the key %q with %q", style, key, prev),
			})
			continue
		}
		first[key] = style
	}
	return warnings
}
