package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	for _, table := range []string{"contact_clicks", "visits"} {
		var name string
		err := d.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(
		`INSERT INTO visits (id, hashed_ip, user_agent, path) VALUES ('v1', 'abc', 'ua', '/')`,
	); err != nil {
		t.Fatalf("insert visit: %v", err)
	}

	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&count); err != nil {
		t.Fatalf("count visits: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestChannelConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(
		`INSERT INTO contact_clicks (id, channel, hashed_ip) VALUES ('c1', 'carrier-pigeon', 'abc')`,
	)
	if err == nil {
		t.Error("expected CHECK constraint violation for unknown channel")
	}
}
