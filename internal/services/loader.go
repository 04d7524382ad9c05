package services

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/qiyin-tech/expload/internal/record"
	"github.com/qiyin-tech/expload/internal/store"
	"github.com/qiyin-tech/expload/pkg/expload"
)

// LoadService orchestrates one load invocation: it reads the input file,
// runs lines through the record primitives and issues store writes with the
// loader-specific key construction. One instance per process run.
type LoadService struct {
	store  expload.Store
	logger expload.Logger
	runID  string
}

// NewLoadService creates a LoadService with all dependencies injected.
func NewLoadService(st expload.Store, logger expload.Logger) *LoadService {
	return &LoadService{
		store:  st,
		logger: logger,
		runID:  uuid.NewString(),
	}
}

// RunID returns the identifier assigned to this invocation.
func (s *LoadService) RunID() string {
	return s.runID
}

// LoadABParams loads AB experiment parameters line by line into the AB
// params hash, field "<key>:<kind>", one HSET per line.
//
// Malformed-line policy: SKIP. A line without exactly one "=" is logged and
// skipped; the rest of the file is still loaded. Every other loader aborts
// on the first malformed line.
func (s *LoadService) LoadABParams(ctx context.Context, path string, kind expload.ABKind) (*expload.Summary, error) {
	start := time.Now()
	summary := s.newSummary("ab-params", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, expload.ErrFileAccess)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		rec, err := record.Split(scanner.Text())
		if err != nil {
			s.logger.Verbose("Skipping line: %v", err)
			summary.Skipped++
			continue
		}
		field := rec.Key + ":" + string(kind)
		if err := s.store.SetField(ctx, store.KeyABParams, field, rec.Value); err != nil {
			return nil, err
		}
		summary.Records++
		summary.Fields++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, expload.ErrFileAccess)
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// LoadActionChoice loads default action choices. Every line must parse; the
// first malformed line aborts the command before any write is issued. Valid
// records are accumulated in file order and written with a single bulk HSET.
// An empty or all-invalid file issues no write at all.
func (s *LoadService) LoadActionChoice(ctx context.Context, path string) (*expload.Summary, error) {
	start := time.Now()
	summary := s.newSummary("action-choice", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, expload.ErrFileAccess)
	}
	defer file.Close()

	var fields []expload.Field
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		rec, err := record.Split(scanner.Text())
		if err != nil {
			return nil, err
		}
		fields = append(fields, expload.Field{Name: rec.Key, Value: rec.Value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, expload.ErrFileAccess)
	}

	if err := s.store.SetFields(ctx, store.KeyDefaultChoice, fields); err != nil {
		return nil, err
	}

	summary.Records = len(fields)
	summary.Fields = len(fields)
	summary.Duration = time.Since(start)
	return summary, nil
}

// LoadActionScores loads per-version action scores. Each line is a record
// whose value is a JSON numeric array; the line's key selects its own hash
// "<prefix>:<key>" and every vector element becomes a field named by its
// zero-based index. The first malformed line or undecodable array aborts
// the command; writes for earlier lines stay committed.
func (s *LoadService) LoadActionScores(ctx context.Context, path string) (*expload.Summary, error) {
	start := time.Now()
	summary := s.newSummary("action-score", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, expload.ErrFileAccess)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		rec, err := record.Split(scanner.Text())
		if err != nil {
			return nil, err
		}
		values, err := record.DecodeVector(rec.Value)
		if err != nil {
			return nil, err
		}

		fields := make([]expload.Field, 0, len(values))
		for i, v := range values {
			fields = append(fields, expload.Field{
				Name:  record.FormatIndex(i),
				Value: record.FormatFloat(v),
			})
		}
		if err := s.store.SetFields(ctx, store.VersionScoresKey(rec.Key), fields); err != nil {
			return nil, err
		}
		summary.Records++
		summary.Fields += len(fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, expload.ErrFileAccess)
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// LoadActionValues loads the default target-CTR vector. The whole file is a
// single key=value record whose value is a JSON numeric array; each element
// is written individually, field name is the zero-based index.
func (s *LoadService) LoadActionValues(ctx context.Context, path string) (*expload.Summary, error) {
	start := time.Now()
	summary := s.newSummary("action-value", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, expload.ErrFileAccess)
	}

	// The file content is taken literally, trailing newline included; the
	// JSON decoder tolerates surrounding whitespace in the value.
	rec, err := record.Split(string(data))
	if err != nil {
		return nil, err
	}
	values, err := record.DecodeVector(rec.Value)
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		if err := s.store.SetField(ctx, store.KeyTargetCTR, record.FormatIndex(i), record.FormatFloat(v)); err != nil {
			return nil, err
		}
		summary.Fields++
	}

	summary.Records = 1
	summary.Duration = time.Since(start)
	return summary, nil
}

// LoadRangeSignal is the range-signal stub. The signal type enumeration is
// part of the stable CLI surface but no load behavior exists yet, so this
// fails before any file or store I/O happens. It is a free function rather
// than a LoadService method so callers never open a store connection for it.
func LoadRangeSignal(signal expload.SignalType) (*expload.Summary, error) {
	return nil, fmt.Errorf("range-signal loading (type %s): %w", signal, expload.ErrNotImplemented)
}

func (s *LoadService) newSummary(command, path string) *expload.Summary {
	return &expload.Summary{
		RunID:    s.runID,
		Command:  command,
		FilePath: path,
	}
}
