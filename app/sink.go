package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/soocke/region-clip-go/domain/extract"
	"github.com/soocke/region-clip-go/domain/region"
)

// RegionSink persists committed regions to disk: one JPEG per region plus a
// crops.json describing the source-image geometry of the whole batch.
type RegionSink struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

type cropManifest struct {
	SavedAt string          `json:"saved_at"`
	Regions []region.Region `json:"regions"`
}

// NewRegionSink writes batches under dir. logger may be nil.
func NewRegionSink(dir string, logger *slog.Logger) *RegionSink {
	return &RegionSink{dir: dir, logger: logger, now: time.Now}
}

// Receive satisfies region.CommitFunc. Failures are logged per file and do
// not abort the rest of the batch.
func (s *RegionSink) Receive(regs []region.Region) {
	if s == nil || len(regs) == 0 {
		return
	}
	stamp := s.now().Format("20060102-150405")
	batchDir := filepath.Join(s.dir, stamp)
	if err := os.MkdirAll(batchDir, 0o755); err != nil {
		s.logError("creating output directory failed", err, batchDir)
		return
	}
	manifest := cropManifest{SavedAt: s.now().Format(time.RFC3339)}
	for i, r := range regs {
		payload, err := extract.Payload(r.ImageData)
		if err != nil {
			s.logError("decoding region artifact failed", err, r.ID)
			continue
		}
		name := fmt.Sprintf("region-%02d.jpg", i+1)
		if err := os.WriteFile(filepath.Join(batchDir, name), payload, 0o644); err != nil {
			s.logError("writing region file failed", err, name)
			continue
		}
		// The manifest carries geometry only; the pixel data lives next to it.
		r.ImageData = name
		manifest.Regions = append(manifest.Regions, r)
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		s.logError("encoding crop manifest failed", err, batchDir)
		return
	}
	if err := os.WriteFile(filepath.Join(batchDir, "crops.json"), data, 0o644); err != nil {
		s.logError("writing crop manifest failed", err, batchDir)
		return
	}
	if s.logger != nil {
		s.logger.Info("regions saved", "count", len(manifest.Regions), "dir", batchDir)
	}
}

func (s *RegionSink) logError(msg string, err error, subject string) {
	if s.logger != nil {
		s.logger.Error(msg, "error", err, "subject", subject)
	}
}
