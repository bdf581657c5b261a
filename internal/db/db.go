package db

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// Connect opens the slot database. A postgres URL or key=value DSN selects the
// postgres driver; anything else is treated as a sqlite file path (the
// default, single-user deployment).
func Connect(dsn string) (*gorm.DB, error) {
	dsn = strings.Trim(strings.TrimSpace(dsn), "\"'")
	if dsn == "" {
		return nil, errors.New("empty database DSN; set DSVFLOW_DB or pass --db")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}
	if isPostgres(dsn) {
		return gorm.Open(postgres.Open(normalizePostgresDSN(dsn)), cfg)
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

func isPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	return kvPairRegex.MatchString(dsn)
}

// normalizePostgresDSN cleans a key=value DSN: collapses whitespace and
// defaults sslmode to disable when missing. URL-form DSNs pass through.
func normalizePostgresDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return dsn
	}
	cleaned := strings.Join(strings.Fields(dsn), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}
