package hotsite

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// StyleLabeled is implemented by collection items that carry a style
// category. The primary label wins when set, otherwise the secondary.
type StyleLabeled interface {
	StyleLabel() (primary, secondary string)
}

// ActiveStyles returns the distinct non-empty style labels of items in
// first-seen order. Labels are compared as raw strings; "Eco" and "ECO" are
// different styles.
func ActiveStyles[T StyleLabeled](items []T) []string {
	seen := make(map[string]bool)
	var styles []string
	for _, item := range items {
		primary, secondary := item.StyleLabel()
		label := primary
		if label == "" {
			label = secondary
		}
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		styles = append(styles, label)
	}
	return styles
}

// Style is a recognised plant/tour style category.
type Style string

const (
	StyleEco          Style = "ECO"
	StyleSlim         Style = "SLIM"
	StyleUrban        Style = "URBAN"
	StyleUnrecognized Style = ""
)

// ParseStyle maps a free-form label onto a known style, case-insensitively.
// Anything else lands in StyleUnrecognized.
func ParseStyle(label string) Style {
	switch Style(strings.ToUpper(strings.TrimSpace(label))) {
	case StyleEco:
		return StyleEco
	case StyleSlim:
		return StyleSlim
	case StyleUrban:
		return StyleUrban
	}
	return StyleUnrecognized
}

// Package is a recognised plant package tier.
type Package string

const (
	PackageStandard     Package = "STANDARD"
	PackageBasic        Package = "BASIC"
	PackageEssential    Package = "ESSENTIAL"
	PackageDesign       Package = "DESIGN"
	PackageUnrecognized Package = ""
)

// Packages is the fixed package tab set, in display order.
var Packages = []Package{PackageStandard, PackageBasic, PackageEssential, PackageDesign}

// ParsePackage maps a free-form label onto a known package tier.
func ParsePackage(label string) Package {
	p := Package(strings.ToUpper(strings.TrimSpace(label)))
	for _, known := range Packages {
		if p == known {
			return known
		}
	}
	return PackageUnrecognized
}

// Key is the lower-cased form used for data attributes and lookup tables.
func (p Package) Key() string { return strings.ToLower(string(p)) }

// Title is the tab caption, e.g. "Essential".
func (p Package) Title() string {
	k := p.Key()
	if k == "" {
		return ""
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

// PlantImageMap is the style → package → image lookup shared by the document
// and the behavior script. Keys are lower-cased; order is preserved so the
// serialised table is stable.
type PlantImageMap struct {
	styles   []string
	packages map[string][]string
	images   map[string]map[string]string
}

// BuildPlantImageMap seeds every active style with the fixed package set
// mapped to "", then overwrites entries with each plant's image. Plants whose
// lower-cased style is not active are dropped.
func BuildPlantImageMap(activeStyles []string, plants []project.Plant) *PlantImageMap {
	m := &PlantImageMap{
		packages: make(map[string][]string),
		images:   make(map[string]map[string]string),
	}
	for _, style := range activeStyles {
		key := strings.ToLower(style)
		if _, ok := m.images[key]; ok {
			continue
		}
		m.styles = append(m.styles, key)
		m.images[key] = make(map[string]string)
		for _, pkg := range Packages {
			m.packages[key] = append(m.packages[key], pkg.Key())
			m.images[key][pkg.Key()] = ""
		}
	}
	for _, plant := range plants {
		style := strings.ToLower(plant.Style)
		pkg := strings.ToLower(plant.Package)
		entry, ok := m.images[style]
		if !ok {
			continue
		}
		if _, known := entry[pkg]; !known {
			m.packages[style] = append(m.packages[style], pkg)
		}
		entry[pkg] = plant.ImageURL
	}
	return m
}

// Styles returns the lower-cased style keys in order.
func (m *PlantImageMap) Styles() []string { return m.styles }

// Images returns the non-empty image references in the table, style by
// style, without duplicates. These are the only plant images the script can
// show.
func (m *PlantImageMap) Images() []string {
	seen := make(map[string]bool)
	var images []string
	for _, style := range m.styles {
		for _, pkg := range m.packages[style] {
			img := m.images[style][pkg]
			if img == "" || seen[img] {
				continue
			}
			seen[img] = true
			images = append(images, img)
		}
	}
	return images
}

// Lookup returns the image for a (style, package) key pair.
func (m *PlantImageMap) Lookup(style, pkg string) (string, bool) {
	entry, ok := m.images[style]
	if !ok {
		return "", false
	}
	img, ok := entry[pkg]
	return img, ok
}

// MarshalJSON writes the table as nested objects in insertion order.
func (m *PlantImageMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, style := range m.styles {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, style); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, pkg := range m.packages[style] {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, pkg); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, m.images[style][pkg]); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
