// Package seed populates reference content. Skills are treated as a
// force-sync-from-code reference table and rewritten on every run; every
// other collection is seeded only when empty so user edits survive.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

type Loader struct {
	db *sqlx.DB
}

func NewLoader(db *sqlx.DB) *Loader {
	return &Loader{db: db}
}

// Run seeds all collections. Skills are always rewritten; the rest only when
// their table is empty.
func (l *Loader) Run(ctx context.Context) error {
	if err := l.SyncSkills(ctx); err != nil {
		return fmt.Errorf("sync skills: %w", err)
	}

	steps := []struct {
		table string
		fn    func(context.Context) error
	}{
		{"projects", l.seedProjects},
		{"internships", l.seedInternships},
		{"certifications", l.seedCertifications},
		{"achievements", l.seedAchievements},
		{"micro_saas", l.seedMicroSaas},
	}
	for _, step := range steps {
		empty, err := l.isEmpty(ctx, step.table)
		if err != nil {
			return fmt.Errorf("count %s: %w", step.table, err)
		}
		if !empty {
			log.Printf("seed: %s has rows, skipping", step.table)
			continue
		}
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
		log.Printf("seed: %s seeded", step.table)
	}
	return nil
}

// SyncSkills clears and re-inserts the skills table so the list matches the
// dataset in code exactly, resetting the id sequence where the dialect allows.
func (l *Loader) SyncSkills(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM skills`); err != nil {
		return err
	}
	l.resetSequence(ctx, "skills")

	query := l.db.Rebind(`
		INSERT INTO skills (title, technologies, display_order, icon_class)
		VALUES (?, ?, ?, ?)
	`)
	for _, s := range skills {
		if _, err := l.db.ExecContext(ctx, query, s.title, s.technologies, s.order, s.icon); err != nil {
			return err
		}
	}
	log.Printf("seed: skills re-synced (%d rows)", len(skills))
	return nil
}

func (l *Loader) isEmpty(ctx context.Context, table string) (bool, error) {
	var n int
	if err := l.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
		return false, err
	}
	return n == 0, nil
}

// resetSequence restarts the table's id sequence. Best-effort: the statement
// differs per dialect and a failure only means less tidy ids.
func (l *Loader) resetSequence(ctx context.Context, table string) {
	var stmt string
	switch l.db.DriverName() {
	case "postgres":
		stmt = fmt.Sprintf("ALTER SEQUENCE %s_id_seq RESTART WITH 1", table)
	case "mysql":
		stmt = fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table)
	default: // sqlite
		stmt = fmt.Sprintf("DELETE FROM sqlite_sequence WHERE name = '%s'", table)
	}
	if _, err := l.db.ExecContext(ctx, stmt); err != nil {
		log.Printf("seed: reset %s id sequence: %v", table, err)
	}
}

func (l *Loader) seedProjects(ctx context.Context) error {
	query := l.db.Rebind(`
		INSERT INTO projects (title, description, technologies, source_code_link,
			demo_video_link, live_demo_link, display_order, is_featured, icon_class)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, p := range projects {
		_, err := l.db.ExecContext(ctx, query, p.title, p.description, p.technologies,
			p.source, p.demoVideo, p.liveDemo, p.order, p.featured, p.icon)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) seedInternships(ctx context.Context) error {
	query := l.db.Rebind(`
		INSERT INTO internships (title, company, period, description, technologies,
			source_code_link, demo_video_link, live_demo_link, display_order, icon_class)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, i := range internships {
		_, err := l.db.ExecContext(ctx, query, i.title, i.company, i.period, i.description,
			i.technologies, i.source, i.demoVideo, i.liveDemo, i.order, i.icon)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) seedCertifications(ctx context.Context) error {
	query := l.db.Rebind(`
		INSERT INTO certifications (title, issuer, date_issued, description,
			certificate_image_path, display_order, icon_class)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	for _, c := range certifications {
		_, err := l.db.ExecContext(ctx, query, c.title, c.issuer, c.date, c.description,
			c.image, c.order, c.icon)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) seedAchievements(ctx context.Context) error {
	query := l.db.Rebind(`
		INSERT INTO achievements (title, role, category, description, source_code_link,
			demo_video_link, live_demo_link, display_order, icon_class)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, a := range achievements {
		_, err := l.db.ExecContext(ctx, query, a.title, a.role, a.category, a.description,
			a.source, a.demoVideo, a.liveDemo, a.order, a.icon)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) seedMicroSaas(ctx context.Context) error {
	query := l.db.Rebind(`
		INSERT INTO micro_saas (title, subtitle, role, status, description,
			technologies, icon_class, color_gradient, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, m := range microSaas {
		_, err := l.db.ExecContext(ctx, query, m.title, m.subtitle, m.role, m.status,
			m.description, m.technologies, m.icon, m.color, m.order)
		if err != nil {
			return err
		}
	}
	return nil
}
