// Package storage provides filesystem helpers shared by the stores: atomic
// file replacement, legacy config migration and backup management.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory followed by a rename, so readers never observe a partially
// written document.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op once the rename succeeds

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// AtomicFileUpdate replaces the content of an existing file, optionally
// creating a retained backup first.
func AtomicFileUpdate(filePath string, newContent string, createBackup bool) error {
	if createBackup {
		bm := NewBackupManager(DefaultBackupRetention)
		if _, err := bm.CreateBackup(filePath); err != nil {
			return fmt.Errorf("failed to create backup file: %w", err)
		}
	}

	if err := WriteFileAtomic(filePath, []byte(newContent), 0600); err != nil {
		return err
	}

	if createBackup {
		bm := NewBackupManager(DefaultBackupRetention)
		// Non-fatal: the update itself succeeded.
		_ = bm.CleanupOldBackups(filePath)
	}

	return nil
}

// ShouldMigrateConfig checks if config migration should be performed: the
// legacy document exists and the new one does not.
func ShouldMigrateConfig(oldPath, newPath string) bool {
	return FileExists(oldPath) && !FileExists(newPath)
}

// MigrateConfig moves a legacy config document to its new path. The original
// is kept as a .backup file; losing it would be worse than a stray file.
func MigrateConfig(oldPath, newPath string) error {
	data, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("failed to read old config file: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("old config file is empty")
	}

	var temp interface{}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("old config file format is invalid: %w", err)
	}

	if err := WriteFileAtomic(newPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write new config file: %w", err)
	}

	backupPath := oldPath + ".backup"
	if err := os.Rename(oldPath, backupPath); err != nil {
		return fmt.Errorf("failed to back up old config file: %w", err)
	}

	return nil
}
