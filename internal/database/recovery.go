package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// RecoveryResult indicates the state of an output database before a run.
type RecoveryResult int

const (
	// RecoveryFresh means no database existed at the path.
	RecoveryFresh RecoveryResult = iota
	// RecoveryHealthy means the existing database passed its integrity check.
	RecoveryHealthy
	// RecoveryReplaced means a damaged database was moved aside.
	RecoveryReplaced
)

func (r RecoveryResult) String() string {
	switch r {
	case RecoveryFresh:
		return "fresh"
	case RecoveryHealthy:
		return "healthy"
	case RecoveryReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// RecoveryReport describes what PrepareOutput found.
type RecoveryReport struct {
	Result         RecoveryResult
	DatabasePath   string
	IntegrityCheck string
	MovedTo        string
}

// PrepareOutput checks an existing output database before it is opened for
// writing. The dataset is regenerated on every run, so a database that fails
// its integrity check is moved aside with its WAL and SHM files removed
// instead of being repaired.
func PrepareOutput(ctx context.Context, dbPath string) (*RecoveryReport, error) {
	report := &RecoveryReport{DatabasePath: dbPath}

	info, err := os.Stat(dbPath)
	if errors.Is(err, os.ErrNotExist) {
		report.Result = RecoveryFresh
		return report, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stating database: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("database path %s is a directory", dbPath)
	}

	checkErr := checkFileIntegrity(ctx, dbPath)
	if checkErr == nil {
		report.Result = RecoveryHealthy
		report.IntegrityCheck = "ok"
		return report, nil
	}
	report.IntegrityCheck = checkErr.Error()

	slog.Warn("output database failed integrity check", "path", dbPath, "error", checkErr)

	movedTo := dbPath + ".corrupted." + time.Now().Format("20060102-150405")
	if err := os.Rename(dbPath, movedTo); err != nil {
		return nil, fmt.Errorf("moving damaged database aside: %w", err)
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("removing %s file: %w", suffix, err)
		}
	}

	report.Result = RecoveryReplaced
	report.MovedTo = movedTo
	slog.Info("damaged output database moved aside", "path", dbPath, "moved_to", movedTo)

	return report, nil
}

// checkFileIntegrity runs SQLite's integrity check on a read-only connection.
func checkFileIntegrity(ctx context.Context, dbPath string) error {
	conn, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db := &DB{DB: conn, path: dbPath}
	return db.CheckIntegrity(ctx)
}
