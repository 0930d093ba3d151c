package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestReferralsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_referrals.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS referrals",
		"CONSTRAINT ux_referrals_pair UNIQUE (referrer_id, referred_id)",
		"CHECK (referrer_id <> referred_id)",
		"CHECK (status IN ('pending', 'qualified', 'rewarded'))",
		"FOREIGN KEY (referrer_id) REFERENCES customers(id) ON DELETE CASCADE",
		"DROP TABLE IF EXISTS referrals",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestRafflesMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_raffles.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS monthly_raffles",
		"CREATE UNIQUE INDEX IF NOT EXISTS ux_monthly_raffles_active_period",
		"WHERE is_active",
		"CREATE TABLE IF NOT EXISTS raffle_entries",
		"CHECK (entries > 0)",
		"FOREIGN KEY (raffle_id) REFERENCES monthly_raffles(id) ON DELETE CASCADE",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestPurchasesMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_customer_purchases.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS customer_purchases",
		"CHECK (quantity > 0)",
		"CHECK (status IN ('completed', 'refunded'))",
		"FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
