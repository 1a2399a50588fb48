package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firstcode/wishlist-backend/pkg/migrate"
)

func TestMigrationDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestWishlistsMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_wishlists.sql")

	checks := []string{
		"CREATE TABLE wishlists",
		"id BIGSERIAL PRIMARY KEY",
		"user_id UUID NOT NULL REFERENCES users(id)",
		"CREATE INDEX wishlists_user_id_idx",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestProductIDsMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_product_ids.sql")

	checks := []string{
		"CREATE TABLE product_ids",
		"product_id_two DECIMAL(21,2) NOT NULL",
		"wish_list_id BIGINT REFERENCES wishlists(id) ON DELETE SET NULL",
		"wish_list_two_id BIGINT REFERENCES wishlists(id) ON DELETE SET NULL",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
