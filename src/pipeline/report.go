package pipeline

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"mockapi/src/domain"
	"mockapi/src/encoders"
)

type Stage string

const (
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
	StageSink   Stage = "sink"
)

// GenerationError is fatal: nothing downstream of Entity can be trusted.
type GenerationError struct {
	Entity domain.EntityKey
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Entity, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type ArtifactSummary struct {
	Name        string           `json:"name"`
	Entity      domain.EntityKey `json:"entity,omitempty"`
	Format      string           `json:"format"`
	Bytes       int              `json:"bytes"`
	ContentType string           `json:"contentType"`
}

// Failure is one non-fatal problem of the run.
type Failure struct {
	Entity domain.EntityKey `json:"entity,omitempty"`
	Format string           `json:"format,omitempty"`
	Sink   string           `json:"sink,omitempty"`
	Stage  Stage            `json:"stage"`
	Err    error            `json:"-"`
	Error  string           `json:"error"`
}

// Report enumerates what a run produced. It doubles as manifest.json.
type Report struct {
	RunID      string                   `json:"runId"`
	Seed       int64                    `json:"seed"`
	StartedAt  time.Time                `json:"startedAt"`
	FinishedAt time.Time                `json:"finishedAt"`
	Counts     map[domain.EntityKey]int `json:"counts"`
	Formats    []encoders.Format        `json:"formats"`
	Artifacts  []ArtifactSummary        `json:"artifacts"`
	Failures   []Failure                `json:"failures"`

	mu sync.Mutex
}

// Partial is true when at least one artifact or sink failed.
func (r *Report) Partial() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failures) > 0
}

func (r *Report) addArtifact(summary ArtifactSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Artifacts = append(r.Artifacts, summary)
}

func (r *Report) addFailure(f Failure) {
	if f.Err != nil {
		f.Error = f.Err.Error()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, f)
}

// sortBy orders artifacts and failures by generation plan, then by format order.
func (r *Report) sortBy(plan []domain.EntityKey, formats []encoders.Format) {
	entityRank := make(map[domain.EntityKey]int, len(plan))
	for i, key := range plan {
		entityRank[key] = i
	}
	formatRank := make(map[string]int, len(formats))
	for i, f := range formats {
		formatRank[string(f)] = i
	}

	rank := func(entity domain.EntityKey, format string) (int, int) {
		e, ok := entityRank[entity]
		if !ok {
			e = len(plan)
		}
		f, ok := formatRank[format]
		if !ok {
			f = len(formats)
		}
		return e, f
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	sort.SliceStable(r.Artifacts, func(i, j int) bool {
		ei, fi := rank(r.Artifacts[i].Entity, r.Artifacts[i].Format)
		ej, fj := rank(r.Artifacts[j].Entity, r.Artifacts[j].Format)
		if ei != ej {
			return ei < ej
		}
		return fi < fj
	})
	sort.SliceStable(r.Failures, func(i, j int) bool {
		ei, fi := rank(r.Failures[i].Entity, r.Failures[i].Format)
		ej, fj := rank(r.Failures[j].Entity, r.Failures[j].Format)
		if ei != ej {
			return ei < ej
		}
		return fi < fj
	})
}
