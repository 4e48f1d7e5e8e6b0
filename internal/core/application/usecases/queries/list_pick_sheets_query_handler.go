package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/picksheet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPickSheetsQueryHandler struct {
	db *gorm.DB
}

func NewListPickSheetsQueryHandler(db *gorm.DB) ListPickSheetsQueryHandler {
	return ListPickSheetsQueryHandler{db: db}
}

func (h ListPickSheetsQueryHandler) Handle(
	ctx context.Context,
	query ListPickSheetsQuery,
) ([]ListPickSheetsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// -1 never matches a stored status and disables the filter.
	status := -1
	if query.Status() != nil {
		status = int(*query.Status())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.number,
			s.status,
			s.picker_name,
			s.created_at,
			s.completed_at,
			COUNT(i.id)
		FROM pick_sheets s
		LEFT JOIN pick_sheet_items i ON i.pick_sheet_id = s.id
		WHERE (? = -1 OR s.status = ?)
		GROUP BY s.id, s.number, s.status, s.picker_name, s.created_at, s.completed_at
		ORDER BY s.created_at DESC, s.number DESC
		LIMIT ? OFFSET ?
	`, status, status, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sheets := make([]ListPickSheetsQueryResponse, 0)
	for rows.Next() {
		var sheet ListPickSheetsQueryResponse
		var id uuid.UUID
		var rawStatus int

		err = rows.Scan(
			&id,
			&sheet.Number,
			&rawStatus,
			&sheet.PickerName,
			&sheet.CreatedAt,
			&sheet.CompletedAt,
			&sheet.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if sheet.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		sheet.Status = picksheet.Status(rawStatus).String()
		sheets = append(sheets, sheet)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}
