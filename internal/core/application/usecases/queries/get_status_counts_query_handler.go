package queries

import (
	"context"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/parcel"
)

// StatusCountsCache caches the per-status counts read model.
// A miss is reported with ok=false, never as an error; cache failures must
// not break the dashboard.
type StatusCountsCache interface {
	Get(ctx context.Context) (map[string]int64, bool)
	Set(ctx context.Context, counts map[string]int64)
}

// GetStatusCountsQueryHandler counts parcels per status.
// When wired with a cache the global counts are served from it and
// recomputed only on a miss; department-scoped counts always hit the
// database, as does a nil cache.
type GetStatusCountsQueryHandler struct {
	db    *gorm.DB
	cache StatusCountsCache
}

// NewGetStatusCountsQueryHandler creates a handler for the status counts
// query. The cache may be nil.
func NewGetStatusCountsQueryHandler(db *gorm.DB, cache StatusCountsCache) GetStatusCountsQueryHandler {
	return GetStatusCountsQueryHandler{db: db, cache: cache}
}

// Handle executes the status counts query.
func (h GetStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusCountsQuery,
) (GetStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusCountsQueryResponse{}, err
	}

	scoped := query.DepartmentID() != nil

	if h.cache != nil && !scoped {
		if counts, ok := h.cache.Get(ctx); ok {
			return GetStatusCountsQueryResponse{Counts: counts}, nil
		}
	}

	sqlQuery := `
		SELECT p.status, COUNT(*)
		FROM parcels p
	`
	args := make([]any, 0, 1)

	if scoped {
		sqlQuery += `
		LEFT JOIN delivery_notes dn ON dn.id = p.delivery_note_id
		LEFT JOIN orders o ON o.id = dn.order_id
		WHERE o.department_id = ?
		`
		args = append(args, query.DepartmentID().Bytes())
	}

	sqlQuery += " GROUP BY p.status"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return GetStatusCountsQueryResponse{}, err
	}
	defer rows.Close()

	counts := map[string]int64{
		parcel.Awaited.String():        0,
		parcel.Received.String():       0,
		parcel.InDistribution.String(): 0,
		parcel.Delivered.String():      0,
		parcel.Problem.String():        0,
	}

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetStatusCountsQueryResponse{}, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return GetStatusCountsQueryResponse{}, err
	}

	if h.cache != nil && !scoped {
		h.cache.Set(ctx, counts)
	}

	return GetStatusCountsQueryResponse{Counts: counts}, nil
}
