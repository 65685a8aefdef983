package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateAndRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte("original"), 0600); err != nil {
		t.Fatal(err)
	}

	bm := NewBackupManager(DefaultBackupRetention)
	backupPath, err := bm.CreateBackup(path)
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(backupPath), "settings.json.backup-") {
		t.Errorf("unexpected backup name %q", backupPath)
	}

	if err := os.WriteFile(path, []byte("damaged"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := bm.RestoreFromLatestBackup(path); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("restore produced %q", data)
	}
}

func TestRestoreWithoutBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	bm := NewBackupManager(DefaultBackupRetention)
	if err := bm.RestoreFromLatestBackup(path); err == nil {
		t.Fatalf("expected error when no backups exist")
	}
}

func TestCleanupOldBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	// Fabricate five backups with distinct mod times, oldest first.
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		backup := fmt.Sprintf("%s.backup-2024010100000%d-1", path, i)
		if err := os.WriteFile(backup, []byte(fmt.Sprintf("v%d", i)), 0600); err != nil {
			t.Fatal(err)
		}
		mt := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(backup, mt, mt); err != nil {
			t.Fatal(err)
		}
	}

	bm := NewBackupManager(3)
	if err := bm.CleanupOldBackups(path); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	remaining, err := bm.ListBackups(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 3 {
		t.Fatalf("expected 3 backups after cleanup, got %d", len(remaining))
	}
	// The newest ones must survive.
	data, _ := os.ReadFile(remaining[len(remaining)-1])
	if string(data) != "v4" {
		t.Errorf("cleanup removed the newest backup")
	}
}

func TestNewBackupManagerDefaultsRetention(t *testing.T) {
	if bm := NewBackupManager(0); bm.MaxBackups != DefaultBackupRetention {
		t.Errorf("zero retention should fall back to the default, got %d", bm.MaxBackups)
	}
}
