package tracker

import (
	"os"
	"path/filepath"
	"watd/internal/providers"
	"watd/internal/structures"
	"watd/internal/tracker/interfaces"
)

// Archiver writes compressed day-end snapshots of the table files. Archives
// are a convenience copy; the live CSV tables remain the source of truth.
type Archiver struct {
	config     *structures.Config
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewArchiver(config *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *Archiver {
	return &Archiver{
		config:     config,
		compressor: compressor,
		logger:     logger,
	}
}

func (a *Archiver) Enabled() bool {
	return a.config.Tables.ArchiveDir != ""
}

// ArchiveDay snapshots the given table files under <archiveDir>/<date>/.
// Missing tables are skipped; the first failure aborts and is reported to
// the caller.
func (a *Archiver) ArchiveDay(date string, paths ...string) error {
	if !a.Enabled() {
		return nil
	}

	dir := filepath.Join(a.config.Tables.ArchiveDir, date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		compressed, err := a.compressor.Compress(data)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.Base(path)+".zst")
		if err := os.WriteFile(target, compressed, 0o644); err != nil {
			return err
		}
		a.logger.Debugf(providers.TypeApp, "Archived %s to %s", path, target)
	}
	return nil
}
