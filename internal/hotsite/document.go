package hotsite

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// pageData holds the data passed to the page template.
type pageData struct {
	Slug            string
	Name            string
	Title           string
	Description     string
	BrandColor      string
	Favicon         string
	Webclip         string
	SocialImage     string
	LogoPath        string
	HeroImagePath   string
	HeroHeadline    string
	HeroSubheadline string
	DeliveryDate    string
	LaunchDate      string
	FootageRange    string
	TypologiesText  string
	CTALink         string
	WhatsAppLink    string
	LocationDesc    string
	MapEmbedSrc     string
	Points          []string
	GalleryRow1     []string
	GalleryRow2     []string
	StyleTabs       []styleTab
	PackageTabs     []packageTab
	TourTabs        []styleTab
	TourPanels      []tourPanel
	Specs           []SpecRow
	Prices          []priceCard
	Faqs            []faqEntry
	Phone           string
	AddressFull     string
	Year            int
}

type styleTab struct {
	Key    string
	Label  string
	Active bool
}

type packageTab struct {
	Key    string
	Title  string
	Active bool
}

type tourButton struct {
	Label     string
	IframeURL string
	Active    bool
}

type tourPanel struct {
	Key      string
	Label    string
	Active   bool
	Buttons  []tourButton
	FirstURL string
}

type priceCard struct {
	Number    int
	Highlight bool
	Badge     string
	Title     string
	Value     string
	Features  []string
	CTALink   string
}

type faqEntry struct {
	Question string
	Answer   template.HTML
}

// RenderHTML assembles index.html for the aggregate.
func (g *Generator) RenderHTML(full *project.Full) (string, error) {
	if full == nil {
		return "", ErrNilProject
	}
	data, err := g.buildPage(full)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := g.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return buf.String(), nil
}

func (g *Generator) buildPage(full *project.Full) (*pageData, error) {
	p := &full.Project
	row1, row2 := SplitGallery(full.Gallery)

	data := &pageData{
		Slug:            p.Slug,
		Name:            p.Name,
		Title:           PageTitle(p),
		Description:     MetaDescription(p),
		BrandColor:      p.BrandColor,
		Favicon:         FaviconFile(p),
		Webclip:         WebclipFile(p),
		SocialImage:     SocialImage(p),
		LogoPath:        ImgPath(p.LogoURL),
		HeroImagePath:   ImgPath(p.HeroImageURL),
		HeroHeadline:    p.HeroHeadline,
		HeroSubheadline: p.HeroSubheadline,
		DeliveryDate:    p.DeliveryDate,
		LaunchDate:      p.LaunchDate,
		FootageRange:    p.FootageRange,
		TypologiesText:  p.TypologiesText,
		CTALink:         CTALink(p),
		WhatsAppLink:    p.WhatsAppLink,
		LocationDesc:    p.LocationDesc,
		MapEmbedSrc:     p.MapEmbedSrc,
		Points:          Lines(p.PointsOfInterest),
		GalleryRow1:     imageURLs(row1),
		GalleryRow2:     imageURLs(row2),
		StyleTabs:       styleTabs(ActiveStyles(full.Plants)),
		PackageTabs:     packageTabs(),
		Specs:           SpecRows(p.TechSpecs),
		Phone:           FormatPhone(p.WhatsAppLink),
		AddressFull:     p.AddressFull,
		Year:            g.opts.Year,
	}

	tourStyles := ActiveStyles(full.Tours)
	data.TourTabs = styleTabs(tourStyles)
	data.TourPanels = tourPanels(tourStyles, full.Tours)

	for i, price := range full.Prices {
		data.Prices = append(data.Prices, priceCard{
			Number:    i + 1,
			Highlight: i == g.opts.HighlightTier,
			Badge:     PriceBadge(price),
			Title:     price.Title,
			Value:     price.PriceValue,
			Features:  Lines(price.Features),
			CTALink:   PriceCTA(price, p),
		})
	}

	for _, faq := range full.Faqs {
		answer, err := g.renderAnswer(faq.Answer)
		if err != nil {
			return nil, err
		}
		data.Faqs = append(data.Faqs, faqEntry{Question: faq.Question, Answer: answer})
	}

	return data, nil
}

// SplitGallery orders the gallery by display order and splits it into two
// rows; the first row gets the extra image when the count is odd.
func SplitGallery(items []project.GalleryItem) (row1, row2 []project.GalleryItem) {
	ordered := make([]project.GalleryItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})
	mid := (len(ordered) + 1) / 2
	return ordered[:mid], ordered[mid:]
}

func imageURLs(items []project.GalleryItem) []string {
	urls := make([]string, 0, len(items))
	for _, item := range items {
		urls = append(urls, item.ImageURL)
	}
	return urls
}

func styleTabs(styles []string) []styleTab {
	tabs := make([]styleTab, 0, len(styles))
	for i, style := range styles {
		tabs = append(tabs, styleTab{Key: strings.ToLower(style), Label: style, Active: i == 0})
	}
	return tabs
}

func packageTabs() []packageTab {
	tabs := make([]packageTab, 0, len(Packages))
	for i, pkg := range Packages {
		tabs = append(tabs, packageTab{Key: pkg.Key(), Title: pkg.Title(), Active: i == 0})
	}
	return tabs
}

// tourPanels groups tours under their exact style label. Styles left with no
// tour produce no panel.
func tourPanels(styles []string, tours []project.Tour) []tourPanel {
	byStyle := make(map[string][]project.Tour, len(styles))
	for _, tour := range tours {
		byStyle[tour.StyleCategory] = append(byStyle[tour.StyleCategory], tour)
	}

	var panels []tourPanel
	for i, style := range styles {
		group := byStyle[style]
		if len(group) == 0 {
			continue
		}
		panel := tourPanel{
			Key:      strings.ToLower(style),
			Label:    style,
			Active:   i == 0,
			FirstURL: group[0].IframeURL,
		}
		for j, tour := range group {
			panel.Buttons = append(panel.Buttons, tourButton{
				Label:     tour.Label,
				IframeURL: tour.IframeURL,
				Active:    j == 0,
			})
		}
		panels = append(panels, panel)
	}
	return panels
}
