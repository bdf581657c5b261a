package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dsv-enterprise/dsvflow/internal/store"
)

// testStore opens an isolated in-memory slot store.
func testStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st, err := store.New(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return st
}

// recordingNotifier captures notification titles for assertions.
type recordingNotifier struct {
	successes []string
	warnings  []string
}

func (n *recordingNotifier) Success(title, detail string) {
	n.successes = append(n.successes, title)
}

func (n *recordingNotifier) Warning(title, detail string) {
	n.warnings = append(n.warnings, title)
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9*(1+abs(a))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
