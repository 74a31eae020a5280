package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/ingest"
	"fleet-telemetry-service/internal/model"
)

// Records are persisted in bounded chunks; one insert call per chunk, issued
// strictly in order, no retry and no rollback across chunks.
const chunkSize = 1000

const (
	UploadKindFuel     = "fuel"
	UploadKindWeight   = "weight"
	UploadKindTracking = "tracking"
)

// UploadResult is the contract returned to the caller of an upload.
// Total = Inserted + Duplicates + Skipped + rows lost to failed chunks.
type UploadResult struct {
	Total      int `json:"total"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

type UploadService struct {
	fuel     FuelStore
	weight   WeightStore
	tracking TrackingStore
	log      zerolog.Logger
}

func NewUploadService(fuel FuelStore, weight WeightStore, tracking TrackingStore, log zerolog.Logger) *UploadService {
	return &UploadService{
		fuel:     fuel,
		weight:   weight,
		tracking: tracking,
		log:      log,
	}
}

// Upload normalizes, deduplicates and loads one parsed sheet into the fact
// table selected by kind. Row-level problems become counts, never errors;
// an unknown kind is the one fatal case.
func (s *UploadService) Upload(ctx context.Context, kind string, rows []ingest.Row) (UploadResult, error) {
	switch kind {
	case UploadKindFuel:
		return loadRecords[model.FuelRecord](ctx, s.log, "fuel_records", s.fuel, rows, ingest.FuelFromRow), nil
	case UploadKindWeight:
		return loadRecords[model.WeightRecord](ctx, s.log, "weight_records", s.weight, rows, ingest.WeightFromRow), nil
	case UploadKindTracking:
		return loadRecords[model.TrackingSegment](ctx, s.log, "tracking_segments", s.tracking, rows, ingest.TrackingFromRow), nil
	default:
		return UploadResult{}, fmt.Errorf("%w: unknown file type %q", ErrInvalidInput, kind)
	}
}

type recordStore[T any] interface {
	ListContentHashes(ctx context.Context) ([]string, error)
	InsertBatch(ctx context.Context, records []T) error
}

type hashedRecord[T any] interface {
	*T
	HashFields() map[string]string
	SetContentHash(hash string)
}

func loadRecords[T any, P hashedRecord[T]](
	ctx context.Context,
	log zerolog.Logger,
	table string,
	store recordStore[T],
	rows []ingest.Row,
	build func(ingest.Row) (*T, *ingest.Discard),
) UploadResult {
	result := UploadResult{Total: len(rows)}

	// The existing-hash set is read once per upload and never refreshed
	// mid-batch. Concurrent uploads against the same table can both admit
	// the same record; that race is accepted. A failed fetch degrades the
	// deduplicator to an empty set instead of failing the upload.
	existing := make(map[string]struct{})
	hashes, err := store.ListContentHashes(ctx)
	if err != nil {
		log.Warn().Err(err).Str("table", table).Msg("existing hash fetch failed, loading without dedup")
	} else {
		for _, h := range hashes {
			existing[h] = struct{}{}
		}
	}

	var pending []T
	for _, row := range rows {
		rec, discarded := build(row)
		if discarded != nil {
			result.Skipped++
			continue
		}
		hash := ingest.Fingerprint(P(rec).HashFields())
		if _, dup := existing[hash]; dup {
			result.Duplicates++
			continue
		}
		P(rec).SetContentHash(hash)
		pending = append(pending, *rec)
	}

	for start := 0; start < len(pending); start += chunkSize {
		end := min(start+chunkSize, len(pending))
		chunk := pending[start:end]
		if err := store.InsertBatch(ctx, chunk); err != nil {
			log.Error().Err(err).
				Str("table", table).
				Int("offset", start).
				Int("count", len(chunk)).
				Msg("batch insert failed")
			continue
		}
		result.Inserted += len(chunk)
	}

	return result
}
