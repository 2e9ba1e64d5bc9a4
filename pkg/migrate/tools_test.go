package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quintech/quintech-backend/pkg/migrate"
)

func TestCreateSQLMigrationWritesSkeleton(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Badges Table")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_badges_table.sql") {
		t.Fatalf("unexpected filename %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read skeleton: %v", err)
	}
	content := string(data)
	for _, marker := range []string{"-- +goose Up", "-- +goose Down", "-- +goose StatementBegin", "IF NOT EXISTS"} {
		if !strings.Contains(content, marker) {
			t.Fatalf("skeleton missing %q:\n%s", marker, content)
		}
	}
}

func TestCreateSQLMigrationRejectsEmptyName(t *testing.T) {
	if _, err := migrate.CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatalf("expected error for unusable name")
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations should validate: %v", err)
	}
}

func TestValidateDirRejectsBadFiles(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		body     string
	}{
		{
			name:     "bad filename",
			filename: "notes.sql",
			body:     "-- +goose Up\n-- +goose StatementBegin\n-- +goose StatementEnd\n-- +goose Down\n",
		},
		{
			name:     "missing down",
			filename: "20250101000000_thing.sql",
			body:     "-- +goose Up\n-- +goose StatementBegin\nSELECT 1;\n-- +goose StatementEnd\n",
		},
		{
			name:     "down before up",
			filename: "20250101000000_thing.sql",
			body:     "-- +goose Down\n-- +goose StatementBegin\nSELECT 1;\n-- +goose StatementEnd\n-- +goose Up\n",
		},
		{
			name:     "missing statement blocks",
			filename: "20250101000000_thing.sql",
			body:     "-- +goose Up\nSELECT 1;\n-- +goose Down\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, tc.filename), []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			if err := migrate.ValidateDir(dir); err == nil {
				t.Fatalf("expected validation failure for %s", tc.name)
			}
		})
	}
}
