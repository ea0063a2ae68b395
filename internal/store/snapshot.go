package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rojobs/internal/domain"

	"github.com/gofrs/flock"
)

const (
	stampLayout  = "20060102_150405"
	lockFileName = ".rojobs.lock"
	lockRetry    = 100 * time.Millisecond
)

var ErrNoJobs = errors.New("no jobs to save")

// Snapshots writes one JSON + HTML pair per run into Dir.
type Snapshots struct {
	Dir      string
	Basename string
	Now      func() time.Time
}

type Paths struct {
	JSON string
	HTML string
}

// Save writes <Basename>_<stamp>.json and .html. Both files go through a
// temp file + rename while holding the directory lock.
func (s Snapshots) Save(ctx context.Context, jobs []domain.JobRecord, html []byte) (Paths, error) {
	if len(jobs) == 0 {
		return Paths{}, ErrNoJobs
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	body, err := encodeJobs(jobs)
	if err != nil {
		return Paths{}, err
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	ok, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return Paths{}, fmt.Errorf("lock output dir: %w", err)
	}
	if !ok {
		return Paths{}, fmt.Errorf("lock output dir: %s busy", dir)
	}
	defer func() { _ = lock.Unlock() }()

	base := filepath.Join(dir, s.basename()+"_"+s.now().Format(stampLayout))
	p := Paths{JSON: base + ".json", HTML: base + ".html"}

	if err := writeAtomic(p.JSON, body); err != nil {
		return Paths{}, err
	}
	if err := writeAtomic(p.HTML, html); err != nil {
		_ = os.Remove(p.JSON)
		return Paths{}, err
	}
	return p, nil
}

// LoadSnapshot reads a JSON snapshot written by Save.
func LoadSnapshot(path string) ([]domain.JobRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []domain.JobRecord
	if err := json.Unmarshal(b, &jobs); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return jobs, nil
}

func (s Snapshots) basename() string {
	if s.Basename == "" {
		return "romania_jobs"
	}
	return s.Basename
}

func (s Snapshots) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func encodeJobs(jobs []domain.JobRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jobs); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
