package hotsite

import (
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// Icons are the fixed image files every hotsite references from images/.
var Icons = []string{
	"icon-chave.svg",
	"icon-calendario.svg",
	"icon-regua.svg",
	"icon-cama.svg",
	"icon-check.svg",
	"icon-whats.svg",
	"icon-seta.svg",
	"icon-seta-esquerda.png",
	"icon-seta-direita.png",
	"ficha-img.png",
}

// Manifest is the text of images/README.txt: the files the page expects to
// find next to it.
func Manifest(full *project.Full) string {
	p := &full.Project
	var b strings.Builder
	b.WriteString("Place your images here:\n\n")
	b.WriteString("Required icons:\n")
	b.WriteString("- " + FaviconFile(p) + "\n")
	b.WriteString("- " + WebclipFile(p) + "\n")
	for _, icon := range Icons {
		b.WriteString("- " + icon + "\n")
	}
	b.WriteString("\nHero & content images:\n")
	seen := make(map[string]bool)
	for _, ref := range append([]string{p.HeroImageURL, p.LogoURL, p.SEOImageURL}, plantImages(full)...) {
		if ref == "" || IsRemote(ref) {
			continue
		}
		name := strings.TrimPrefix(ref, ImagesDir)
		if seen[name] {
			continue
		}
		seen[name] = true
		b.WriteString("- " + name + "\n")
	}
	b.WriteString("\nGallery images are referenced via their configured paths.")
	return b.String()
}

// plantImages returns the images of plants whose style has a tab.
func plantImages(full *project.Full) []string {
	return BuildPlantImageMap(ActiveStyles(full.Plants), full.Plants).Images()
}

// LocalAssets lists every non-remote image path the page references,
// relative to the archive root, in page order. References that clean to the
// same archive entry are listed once.
func LocalAssets(full *project.Full) []string {
	p := &full.Project
	seen := make(map[string]bool)
	var assets []string
	add := func(ref string) {
		if ref == "" || IsRemote(ref) {
			return
		}
		key := ref
		if name, ok := entryName(ref); ok {
			key = name
		}
		if seen[key] {
			return
		}
		seen[key] = true
		assets = append(assets, ref)
	}

	add(ImagesDir + FaviconFile(p))
	add(ImagesDir + WebclipFile(p))
	for _, icon := range Icons {
		add(ImagesDir + icon)
	}
	add(ImgPath(p.HeroImageURL))
	add(ImgPath(p.LogoURL))
	add(ImgPath(p.SEOImageURL))
	row1, row2 := SplitGallery(full.Gallery)
	for _, item := range append(row1, row2...) {
		add(item.ImageURL)
	}
	for _, img := range plantImages(full) {
		add(img)
	}
	return assets
}
