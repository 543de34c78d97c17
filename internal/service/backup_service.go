package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"phaseplan/internal/models"
	"phaseplan/internal/reducer"
)

// BackupVersion is written into every export
const BackupVersion = "1"

// Format selects the backup encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Backup is the export envelope around the app state
type Backup struct {
	ID         string          `json:"id" yaml:"id"`
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	State      models.AppState `json:"state" yaml:"state"`
}

// BackupService handles state export and restore
type BackupService struct {
	state *StateService
	now   func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(state *StateService) *BackupService {
	return &BackupService{state: state, now: time.Now}
}

// WriteBackup encodes the current state to w
func (s *BackupService) WriteBackup(w io.Writer, format Format) (*Backup, error) {
	backup := &Backup{
		ID:         uuid.NewString(),
		Version:    BackupVersion,
		ExportedAt: s.now().UTC(),
		State:      s.state.State(),
	}
	backup.State.Normalize()

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(backup); err != nil {
			return nil, fmt.Errorf("failed to encode backup: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode backup: %w", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(backup); err != nil {
			return nil, fmt.Errorf("failed to encode backup: %w", err)
		}
	}
	return backup, nil
}

// Export writes the current state to outputPath, choosing the format by extension
func (s *BackupService) Export(outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	backup, err := s.WriteBackup(file, FormatFromPath(outputPath))
	if err != nil {
		return err
	}

	log.Printf("Exported backup %s to %s: %d weeks, %d log entries",
		backup.ID, outputPath, len(backup.State.Weeks), len(backup.State.Logs))
	return nil
}

// Snapshot exports into dir under a timestamped name and returns the path
func (s *BackupService) Snapshot(dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("backup_%s.json", s.now().Format("20060102_150405")))
	if err := s.Export(path); err != nil {
		return "", err
	}
	return path, nil
}

// ReadBackup decodes a backup envelope from r
func ReadBackup(r io.Reader, format Format) (*Backup, error) {
	var backup Backup
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&backup)
	default:
		err = json.NewDecoder(r).Decode(&backup)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %q", backup.Version)
	}
	backup.State.Normalize()
	return &backup, nil
}

// ImportFromReader replaces the current state with the backup read from r
func (s *BackupService) ImportFromReader(r io.Reader, format Format) (*Backup, error) {
	backup, err := ReadBackup(r, format)
	if err != nil {
		return nil, err
	}
	if _, err := s.state.Apply(reducer.Replace(backup.State)); err != nil {
		return nil, fmt.Errorf("failed to apply backup: %w", err)
	}
	log.Printf("Imported backup %s exported at %s", backup.ID, backup.ExportedAt.Format(time.RFC3339))
	return backup, nil
}

// Import replaces the current state with the backup file at inputPath
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	_, err = s.ImportFromReader(file, FormatFromPath(inputPath))
	return err
}
