package service

import (
	"context"

	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/repository"
)

// Remote fetches are capped per request, so reads must paginate until a
// short page comes back. Pages are requested strictly in sequence.
const pageSize = 1000

type pageLister[T any] interface {
	ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]T, error)
}

// fetchAll drains every page matching the filter. A failed page is logged
// and ends the walk; whatever was already fetched is returned so the caller
// can keep going with partial data.
func fetchAll[T any](ctx context.Context, log zerolog.Logger, table string, store pageLister[T], filter repository.FactFilter) []T {
	var all []T
	for offset := 0; ; offset += pageSize {
		page, err := store.ListPage(ctx, filter, offset, pageSize)
		if err != nil {
			log.Error().Err(err).Str("table", table).Int("offset", offset).Msg("page fetch failed")
			break
		}
		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
	}
	return all
}
