package clinics

import (
	"context"
	"fmt"
	"strings"

	"github.com/menshealthfinder/api/ent/clinic"
)

// Slugify builds a URL-safe slug from a clinic name and city
// ("Apex Men's Health" + "Austin" -> "apex-mens-health-austin").
func Slugify(name, city string) string {
	return slugPart(name) + "-" + slugPart(city)
}

func slugPart(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '\'' || r == '’':
			// Apostrophes vanish rather than hyphenate: "Men's" -> "mens".
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// uniqueSlug appends a numeric suffix until the slug is free.
func (s *Service) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		exists, err := s.db.Clinic.Query().Where(clinic.Slug(slug)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
