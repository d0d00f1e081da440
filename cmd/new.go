package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a project file with an interactive wizard",
	Long: `Asks for the basic attributes of a launch and writes <slug>.yaml with
placeholder gallery, floor plan, tour, price and FAQ entries to fill in.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.Flags().String("dir", ".", "directory to write the project file to")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("required")
		}
		return nil
	}

	namePrompt := promptui.Prompt{Label: "Project name", Validate: required}
	name, err := namePrompt.Run()
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}

	builderPrompt := promptui.Prompt{Label: "Builder"}
	builder, err := builderPrompt.Run()
	if err != nil {
		return fmt.Errorf("builder: %w", err)
	}

	cityPrompt := promptui.Prompt{Label: "City/State", Default: "São Paulo/SP"}
	city, err := cityPrompt.Run()
	if err != nil {
		return fmt.Errorf("city: %w", err)
	}

	whatsPrompt := promptui.Prompt{
		Label: "WhatsApp link",
		Validate: func(s string) error {
			if s != "" && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("must start with https://")
			}
			return nil
		},
	}
	whatsApp, err := whatsPrompt.Run()
	if err != nil {
		return fmt.Errorf("whatsapp: %w", err)
	}

	colorPrompt := promptui.Prompt{
		Label:   "Brand color",
		Default: "#10E6E1",
		Validate: func(s string) error {
			if !hexColor.MatchString(s) {
				return fmt.Errorf("expected a hex color such as #10E6E1")
			}
			return nil
		},
	}
	color, err := colorPrompt.Run()
	if err != nil {
		return fmt.Errorf("brand color: %w", err)
	}

	full := scaffold(name, builder, city, whatsApp, color)
	path := filepath.Join(dir, full.Slug+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := project.SaveFile(path, full); err != nil {
		return err
	}

	fmt.Printf("\nProject file written to %s\n", path)
	fmt.Printf("Edit it, then run `walka export %s`\n", path)
	return nil
}

// scaffold returns a project with one placeholder entry per collection.
func scaffold(name, builder, city, whatsApp, color string) *project.Full {
	return &project.Full{
		Project: project.Project{
			Name:           name,
			Slug:           project.Slugify(name),
			BuilderName:    builder,
			CityState:      city,
			WhatsAppLink:   whatsApp,
			BrandColor:     color,
			HeroHeadline:   name,
			HeroImageURL:   "hero.jpg",
			LogoURL:        "logo.svg",
			TypologiesText: "Studios",
			TechSpecs:      "Área privativa: m²\nPavimentos:",
			Status:         project.StatusDraft,
		},
		Gallery: []project.GalleryItem{{ImageURL: "images/galeria-1.jpg", DisplayOrder: 1}},
		Plants: []project.Plant{
			{Title: "Studio ECO", Style: "ECO", Package: "BASIC", ImageURL: "images/eco-basic.png"},
		},
		Tours: []project.Tour{
			{Label: "Decorado", IframeURL: "https://", StyleCategory: "ECO"},
		},
		Prices: []project.Price{
			{Title: "Pacote Standard", PriceValue: "R$ ", Features: "Mobília completa"},
		},
		Faqs: []project.Faq{
			{Question: "Qual a previsão de entrega?", Answer: ""},
		},
	}
}
