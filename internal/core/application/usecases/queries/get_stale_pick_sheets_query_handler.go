package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/picksheet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePickSheetsQueryHandler reads pending sheets older than the cutoff, the
// oldest first.
type GetStalePickSheetsQueryHandler struct {
	db *gorm.DB
}

func NewGetStalePickSheetsQueryHandler(db *gorm.DB) GetStalePickSheetsQueryHandler {
	return GetStalePickSheetsQueryHandler{db: db}
}

func (h GetStalePickSheetsQueryHandler) Handle(
	ctx context.Context,
	query GetStalePickSheetsQuery,
) ([]GetStalePickSheetsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sheets := make([]GetStalePickSheetsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.number,
			s.created_at,
			s.picker_name,
			COUNT(i.id) FILTER (WHERE i.picked_at IS NULL AND NOT i.abandoned)
		FROM pick_sheets s
		LEFT JOIN pick_sheet_items i ON i.pick_sheet_id = s.id
		WHERE s.status = ? AND s.created_at < ?
		GROUP BY s.id, s.number, s.created_at, s.picker_name
		ORDER BY s.created_at, s.number
	`, int(picksheet.Pending), query.CreatedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sheet GetStalePickSheetsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&sheet.Number,
			&sheet.CreatedAt,
			&sheet.PickerName,
			&sheet.OpenItems,
		)
		if err != nil {
			return nil, err
		}

		if sheet.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}
