package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	appcfg "github.com/revpilot/core/internal/config"
	"github.com/revpilot/core/internal/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tableNames lists all tables included in a backup archive.
var tableNames = []string{
	"users", "user_sessions", "api_tokens",
	"hotels", "events", "forecasts", "hotel_actuals",
	"tasks", "comments", "activity_log",
}

type Service struct {
	db     *gorm.DB
	cfg    *appcfg.AppConfig
	logger *zap.Logger
}

func NewService(db *gorm.DB, cfg *appcfg.AppConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, cfg: cfg, logger: logger.Named("BackupService")}
}

type Artifact struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	S3URL    string `json:"s3_url,omitempty"`
}

// Run creates a local archive, uploads it to S3 when configured, and
// prunes stale local copies.
func (s *Service) Run(ctx context.Context) (*Artifact, error) {
	art, err := s.runInner(ctx)
	if err != nil {
		metrics.BackupRuns.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.BackupRuns.WithLabelValues("ok").Inc()
	return art, nil
}

func (s *Service) runInner(ctx context.Context) (*Artifact, error) {
	buf, err := s.createArchive()
	if err != nil {
		return nil, err
	}

	dir := s.cfg.BackupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("backup-%s.zip", time.Now().Format("2006-01-02T15-04-05"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	art := &Artifact{Filename: filename, Size: int64(buf.Len())}

	if s.cfg.Backup.S3Enable {
		uploader, err := newS3Uploader(ctx, s.cfg.Backup)
		if err != nil {
			s.logger.Warn("s3 uploader init failed", zap.Error(err))
		} else {
			key := objectKey(s.cfg.Backup.S3Prefix, filename)
			url, err := uploader.Upload(ctx, key, buf.Bytes())
			if err != nil {
				s.logger.Warn("s3 upload failed", zap.String("key", key), zap.Error(err))
			} else {
				art.S3URL = url
			}
		}
	}

	s.pruneLocal(dir)
	return art, nil
}

// createArchive dumps every table as JSON into a ZIP archive.
func (s *Service) createArchive() (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)

	for _, table := range tableNames {
		var rows []map[string]interface{}
		if err := s.db.Table(table).Find(&rows).Error; err != nil {
			s.logger.Warn("table dump failed", zap.String("table", table), zap.Error(err))
			continue
		}
		data, err := json.Marshal(rows)
		if err != nil {
			continue
		}
		f, err := w.Create(table + ".json")
		if err != nil {
			continue
		}
		f.Write(data)
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

// pruneLocal keeps only the newest KeepLocalCopies archives on disk.
func (s *Service) pruneLocal(dir string) {
	keep := s.cfg.Backup.KeepLocalCopies
	if keep <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) <= keep {
		return
	}
	// The timestamped filenames sort chronologically.
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			s.logger.Warn("backup prune failed", zap.String("file", name), zap.Error(err))
		}
	}
}

// List returns the local backup archives, newest first.
func (s *Service) List() ([]Artifact, error) {
	dir := s.cfg.BackupDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Artifact{}, nil
		}
		return nil, err
	}

	items := []Artifact{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		items = append(items, Artifact{Filename: e.Name(), Size: info.Size()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Filename > items[j].Filename })
	return items, nil
}

// Read returns the raw bytes of a named local archive.
func (s *Service) Read(filename string) ([]byte, error) {
	filename = filepath.Base(filename)
	if !strings.HasSuffix(filename, ".zip") {
		return nil, fmt.Errorf("invalid filename")
	}
	return os.ReadFile(filepath.Join(s.cfg.BackupDir(), filename))
}

// Delete removes a named local archive.
func (s *Service) Delete(filename string) error {
	filename = filepath.Base(filename)
	if !strings.HasSuffix(filename, ".zip") {
		return fmt.Errorf("invalid filename")
	}
	return os.Remove(filepath.Join(s.cfg.BackupDir(), filename))
}

func objectKey(prefix, filename string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "backups"
	}
	now := time.Now()
	return fmt.Sprintf("%s/%s/%s/%s", prefix, now.Format("2006"), now.Format("01"), filename)
}
