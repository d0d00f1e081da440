package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dudaspaulo/gerador-de-walka/internal/db"
)

// Store persists projects and their collections in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a new project store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

const projectColumns = `id, created_at, name, slug, builder_name, city_state, address_full,
	whatsapp_link, email_contact, brand_color, hero_headline, hero_subheadline, hero_image_url,
	logo_url, seo_image_url, delivery_date, launch_date, footage_range, typologies_text, cta_link,
	location_desc, map_embed_src, points_of_interest, tech_specs, seo_title, seo_desc, status,
	favicon_filename, webclip_filename, dashboard_cover_image`

// Create inserts a project and all of its collections in one transaction.
// Missing ids are generated; the slug is derived from the name when empty.
func (s *Store) Create(ctx context.Context, full Full) (*Full, error) {
	if full.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if full.ID == "" {
		full.ID = uuid.New().String()
	}
	if full.Slug == "" {
		full.Slug = Slugify(full.Name)
	}
	if full.Status == "" {
		full.Status = StatusDraft
	}
	full.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	p := full.Project
	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CreatedAt, p.Name, p.Slug, p.BuilderName, p.CityState, p.AddressFull,
		p.WhatsAppLink, p.EmailContact, p.BrandColor, p.HeroHeadline, p.HeroSubheadline, p.HeroImageURL,
		p.LogoURL, p.SEOImageURL, p.DeliveryDate, p.LaunchDate, p.FootageRange, p.TypologiesText, p.CTALink,
		p.LocationDesc, p.MapEmbedSrc, p.PointsOfInterest, p.TechSpecs, p.SEOTitle, p.SEODesc, p.Status,
		p.FaviconFilename, p.WebclipFilename, p.DashboardCoverImage,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting project: %w", err)
	}

	for i := range full.Gallery {
		g := &full.Gallery[i]
		g.ID, g.ProjectID = orNewID(g.ID), full.ID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO gallery_items (id, project_id, image_url, display_order, position) VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.ProjectID, g.ImageURL, g.DisplayOrder, i,
		); err != nil {
			return nil, fmt.Errorf("inserting gallery item: %w", err)
		}
	}
	for i := range full.Plants {
		pl := &full.Plants[i]
		pl.ID, pl.ProjectID = orNewID(pl.ID), full.ID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO plants (id, project_id, title, style, package, footage, image_url, availability_text, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pl.ID, pl.ProjectID, pl.Title, pl.Style, pl.Package, pl.Footage, pl.ImageURL, pl.AvailabilityText, i,
		); err != nil {
			return nil, fmt.Errorf("inserting plant: %w", err)
		}
	}
	for i := range full.Tours {
		t := &full.Tours[i]
		t.ID, t.ProjectID = orNewID(t.ID), full.ID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tours (id, project_id, label, iframe_url, style_category, position) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.ProjectID, t.Label, t.IframeURL, t.StyleCategory, i,
		); err != nil {
			return nil, fmt.Errorf("inserting tour: %w", err)
		}
	}
	for i := range full.Prices {
		pr := &full.Prices[i]
		pr.ID, pr.ProjectID = orNewID(pr.ID), full.ID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO prices (id, project_id, title, price_value, badge_text, features, cta_link, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			pr.ID, pr.ProjectID, pr.Title, pr.PriceValue, pr.BadgeText, pr.Features, pr.CTALink, i,
		); err != nil {
			return nil, fmt.Errorf("inserting price: %w", err)
		}
	}
	for i := range full.Faqs {
		f := &full.Faqs[i]
		f.ID, f.ProjectID = orNewID(f.ID), full.ID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO faqs (id, project_id, question, answer, position) VALUES (?, ?, ?, ?, ?)`,
			f.ID, f.ProjectID, f.Question, f.Answer, i,
		); err != nil {
			return nil, fmt.Errorf("inserting faq: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing project: %w", err)
	}
	return &full, nil
}

func orNewID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.CreatedAt, &p.Name, &p.Slug, &p.BuilderName, &p.CityState, &p.AddressFull,
		&p.WhatsAppLink, &p.EmailContact, &p.BrandColor, &p.HeroHeadline, &p.HeroSubheadline, &p.HeroImageURL,
		&p.LogoURL, &p.SEOImageURL, &p.DeliveryDate, &p.LaunchDate, &p.FootageRange, &p.TypologiesText, &p.CTALink,
		&p.LocationDesc, &p.MapEmbedSrc, &p.PointsOfInterest, &p.TechSpecs, &p.SEOTitle, &p.SEODesc, &p.Status,
		&p.FaviconFilename, &p.WebclipFilename, &p.DashboardCoverImage)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get retrieves the scalar part of a project.
func (s *Store) Get(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// List returns all projects, newest first.
func (s *Store) List(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// GetFull assembles the aggregate for one project: the gallery is ordered by
// display order, every other collection by insertion order.
func (s *Store) GetFull(ctx context.Context, id string) (*Full, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	full := &Full{Project: *p}

	if full.Gallery, err = s.gallery(ctx, id); err != nil {
		return nil, err
	}
	if full.Plants, err = s.plants(ctx, id); err != nil {
		return nil, err
	}
	if full.Tours, err = s.tours(ctx, id); err != nil {
		return nil, err
	}
	if full.Prices, err = s.prices(ctx, id); err != nil {
		return nil, err
	}
	if full.Faqs, err = s.faqs(ctx, id); err != nil {
		return nil, err
	}
	return full, nil
}

func (s *Store) gallery(ctx context.Context, projectID string) ([]GalleryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, image_url, display_order FROM gallery_items
		 WHERE project_id = ? ORDER BY display_order ASC, position ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing gallery: %w", err)
	}
	defer rows.Close()

	var items []GalleryItem
	for rows.Next() {
		var g GalleryItem
		if err := rows.Scan(&g.ID, &g.ProjectID, &g.ImageURL, &g.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning gallery item: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (s *Store) plants(ctx context.Context, projectID string) ([]Plant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, title, style, package, footage, image_url, availability_text FROM plants
		 WHERE project_id = ? ORDER BY position ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	defer rows.Close()

	var plants []Plant
	for rows.Next() {
		var p Plant
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Title, &p.Style, &p.Package, &p.Footage, &p.ImageURL, &p.AvailabilityText); err != nil {
			return nil, fmt.Errorf("scanning plant: %w", err)
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

func (s *Store) tours(ctx context.Context, projectID string) ([]Tour, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, label, iframe_url, style_category FROM tours
		 WHERE project_id = ? ORDER BY position ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tours: %w", err)
	}
	defer rows.Close()

	var tours []Tour
	for rows.Next() {
		var t Tour
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Label, &t.IframeURL, &t.StyleCategory); err != nil {
			return nil, fmt.Errorf("scanning tour: %w", err)
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

func (s *Store) prices(ctx context.Context, projectID string) ([]Price, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, title, price_value, badge_text, features, cta_link FROM prices
		 WHERE project_id = ? ORDER BY position ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing prices: %w", err)
	}
	defer rows.Close()

	var prices []Price
	for rows.Next() {
		var p Price
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Title, &p.PriceValue, &p.BadgeText, &p.Features, &p.CTALink); err != nil {
			return nil, fmt.Errorf("scanning price: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (s *Store) faqs(ctx context.Context, projectID string) ([]Faq, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, question, answer FROM faqs
		 WHERE project_id = ? ORDER BY position ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing faqs: %w", err)
	}
	defer rows.Close()

	var faqs []Faq
	for rows.Next() {
		var f Faq
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("scanning faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// Delete removes a project; its collections are removed by cascade.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
