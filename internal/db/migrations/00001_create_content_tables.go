package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateContentTables, downCreateContentTables)
}

// upCreateContentTables creates the five original content tables. Link
// visibility flags, certificate columns, and image paths arrived later and
// live in their own migrations, mirroring how the schema actually grew.
func upCreateContentTables(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS skills (
    id            %s,
    title         VARCHAR(255) NOT NULL,
    technologies  TEXT,
    display_order INTEGER DEFAULT 0,
    is_visible    BOOLEAN DEFAULT TRUE,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, serialPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS projects (
    id               %s,
    title            VARCHAR(255) NOT NULL,
    description      TEXT,
    technologies     TEXT,
    source_code_link VARCHAR(500),
    demo_video_link  VARCHAR(500),
    live_demo_link   VARCHAR(500),
    display_order    INTEGER DEFAULT 0,
    is_visible       BOOLEAN DEFAULT TRUE,
    is_featured      BOOLEAN DEFAULT FALSE,
    icon_class       VARCHAR(100),
    created_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, serialPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS internships (
    id               %s,
    title            VARCHAR(255) NOT NULL,
    company          VARCHAR(255),
    period           VARCHAR(100),
    description      TEXT,
    technologies     TEXT,
    source_code_link VARCHAR(500),
    demo_video_link  VARCHAR(500),
    live_demo_link   VARCHAR(500),
    display_order    INTEGER DEFAULT 0,
    is_visible       BOOLEAN DEFAULT TRUE,
    icon_class       VARCHAR(100),
    created_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, serialPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS certifications (
    id                     %s,
    title                  VARCHAR(255) NOT NULL,
    issuer                 VARCHAR(255),
    date_issued            VARCHAR(100),
    description            TEXT,
    certificate_image_path TEXT,
    display_order          INTEGER DEFAULT 0,
    is_visible             BOOLEAN DEFAULT TRUE,
    icon_class             VARCHAR(100),
    created_at             TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, serialPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS achievements (
    id               %s,
    title            VARCHAR(255) NOT NULL,
    role             VARCHAR(255),
    category         VARCHAR(100) DEFAULT 'Achievement',
    description      TEXT,
    source_code_link VARCHAR(500),
    demo_video_link  VARCHAR(500),
    live_demo_link   VARCHAR(500),
    display_order    INTEGER DEFAULT 0,
    is_visible       BOOLEAN DEFAULT TRUE,
    icon_class       VARCHAR(100),
    created_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, serialPK()),
	}

	for _, ddl := range stmts {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create content tables: %w", err)
		}
	}
	return nil
}

func downCreateContentTables(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"achievements", "certifications", "internships", "projects", "skills"} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return err
		}
	}
	return nil
}
