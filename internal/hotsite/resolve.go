package hotsite

import (
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

const (
	// ImagesDir is the archive folder local assets are expected in.
	ImagesDir = "images/"

	defaultFavicon = "favicon.png"
	defaultWebclip = "apple-touch-icon.png"
	defaultBadge   = "Opção"
	whatsAppPrefix = "https://wa.me/"
)

// CTALink is the primary call to action: cta_link, then whatsapp_link, then "#".
func CTALink(p *project.Project) string {
	if p.CTALink != "" {
		return p.CTALink
	}
	if p.WhatsAppLink != "" {
		return p.WhatsAppLink
	}
	return "#"
}

// PageTitle prefers the SEO title over the project name.
func PageTitle(p *project.Project) string {
	if p.SEOTitle != "" {
		return p.SEOTitle
	}
	return p.Name
}

// MetaDescription prefers the SEO description over the hero subheadline.
func MetaDescription(p *project.Project) string {
	if p.SEODesc != "" {
		return p.SEODesc
	}
	return p.HeroSubheadline
}

// SocialImage is the Open Graph image: the SEO image, else the hero image.
func SocialImage(p *project.Project) string {
	if img := ImgPath(p.SEOImageURL); img != "" {
		return img
	}
	return ImgPath(p.HeroImageURL)
}

// FaviconFile returns the favicon filename inside the images folder.
func FaviconFile(p *project.Project) string {
	if p.FaviconFilename != "" {
		return p.FaviconFilename
	}
	return defaultFavicon
}

// WebclipFile returns the apple-touch-icon filename inside the images folder.
func WebclipFile(p *project.Project) string {
	if p.WebclipFilename != "" {
		return p.WebclipFilename
	}
	return defaultWebclip
}

// PriceCTA is the price card link, falling back to the project's CTA.
func PriceCTA(price project.Price, p *project.Project) string {
	if price.CTALink != "" {
		return price.CTALink
	}
	return CTALink(p)
}

// PriceBadge is the card badge text.
func PriceBadge(price project.Price) string {
	if price.BadgeText != "" {
		return price.BadgeText
	}
	return defaultBadge
}

// IsRemote reports whether a reference is an absolute http(s) URL.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// ImgPath resolves an image reference: remote URLs and paths already under
// images/ are kept, bare filenames are placed under images/.
func ImgPath(ref string) string {
	if ref == "" {
		return ""
	}
	if IsRemote(ref) || strings.HasPrefix(ref, ImagesDir) {
		return ref
	}
	return ImagesDir + ref
}

// FormatPhone turns a wa.me link into a display number. Thirteen digits are
// formatted as "+CC (DD) NNNNN-NNNN"; anything else is returned as digits.
func FormatPhone(whatsAppLink string) string {
	raw := strings.Replace(whatsAppLink, whatsAppPrefix, "", 1)
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 13 {
		return digits
	}
	return "+" + digits[0:2] + " (" + digits[2:4] + ") " + digits[4:9] + "-" + digits[9:]
}
