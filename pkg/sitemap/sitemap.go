// Package sitemap renders sitemap.xml from the active clinic directory.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
)

// staticPages are non-listing pages included in every sitemap.
var staticPages = []string{"", "about", "services", "contact"}

// Generator renders and writes the sitemap.
type Generator struct {
	db      *ent.Client
	baseURL string
	outPath string
}

// NewGenerator creates a sitemap generator. outPath may be empty when only
// Render is used (the admin endpoint serves the XML directly).
func NewGenerator(db *ent.Client, baseURL, outPath string) *Generator {
	return &Generator{
		db:      db,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		outPath: outPath,
	}
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Render builds the sitemap XML from static pages plus every active listing.
func (g *Generator) Render(ctx context.Context) ([]byte, error) {
	rows, err := g.db.Clinic.Query().
		Where(clinic.StatusEQ(clinic.StatusActive)).
		Order(ent.Asc(clinic.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query clinics: %w", err)
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        g.baseURL + "/" + page,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, row := range rows {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/clinics/%s", g.baseURL, row.Slug),
			LastMod:    row.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "daily",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Regenerate renders the sitemap and writes it to the configured path.
func (g *Generator) Regenerate(ctx context.Context) (int, error) {
	start := time.Now()
	body, err := g.Render(ctx)
	if err != nil {
		return 0, err
	}

	if g.outPath != "" {
		if err := os.MkdirAll(filepath.Dir(g.outPath), 0o755); err != nil {
			return 0, fmt.Errorf("failed to create sitemap dir: %w", err)
		}
		if err := os.WriteFile(g.outPath, body, 0o644); err != nil {
			return 0, fmt.Errorf("failed to write sitemap: %w", err)
		}
	}

	count := strings.Count(string(body), "<url>")
	log.Printf("✅ Sitemap regenerated: %d URLs in %v", count, time.Since(start))
	return count, nil
}
