package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/jmoiron/sqlx"
)

// Summary holds the visible-only counts shown on the site's hero section.
type Summary struct {
	Projects       int    `json:"projects"`
	Internships    int    `json:"internships"`
	Hackathons     int    `json:"hackathons"`
	Certifications int    `json:"certifications"`
	Saas           int    `json:"saas"`
	CGPA           string `json:"cgpa"`
}

// cgpaRe matches the first numeric token of a role string like "7.47 CGPA".
var cgpaRe = regexp.MustCompile(`[0-9.]+`)

type StatsStore struct {
	db *sqlx.DB
	// cgpaFallback is reported when no academic achievement row matches.
	cgpaFallback string
}

func NewStatsStore(db *sqlx.DB, cgpaFallback string) *StatsStore {
	return &StatsStore{db: db, cgpaFallback: cgpaFallback}
}

// Summarize aggregates visible rows across collections.
func (s *StatsStore) Summarize(ctx context.Context) (*Summary, error) {
	sum := &Summary{CGPA: s.cgpaFallback}

	counts := []struct {
		dst   *int
		query string
	}{
		{&sum.Projects, `SELECT COUNT(*) FROM projects WHERE is_visible = TRUE`},
		{&sum.Internships, `SELECT COUNT(*) FROM internships WHERE is_visible = TRUE`},
		{&sum.Hackathons, `SELECT COUNT(*) FROM achievements WHERE category = 'Hackathon' AND is_visible = TRUE`},
		{&sum.Certifications, `SELECT COUNT(*) FROM certifications WHERE is_visible = TRUE`},
		{&sum.Saas, `SELECT COUNT(*) FROM micro_saas WHERE is_visible = TRUE`},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dst, c.query); err != nil {
			return nil, err
		}
	}

	// The CGPA lives in free text on the "Academic Performance" achievement.
	var role sql.NullString
	err := s.db.GetContext(ctx, &role, `
		SELECT role FROM achievements
		WHERE LOWER(title) LIKE '%academic%' OR LOWER(title) LIKE '%cgpa%'
		LIMIT 1
	`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if m := cgpaRe.FindString(role.String); m != "" {
		sum.CGPA = m
	}

	return sum, nil
}
