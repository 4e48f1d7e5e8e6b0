package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteQueryHandler reads a route and its stops, sorted by stop order.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (*GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var header struct {
		Name      string
		RouteDate time.Time
		Status    int
	}
	result := db.Raw(`
		SELECT
			name,
			route_date,
			status
		FROM routes
		WHERE id = ?
	`, query.RouteID().Bytes()).Scan(&header)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("route", query.RouteID().String())
	}

	response := &GetRouteQueryResponse{
		ID:        query.RouteID(),
		Name:      header.Name,
		RouteDate: header.RouteDate,
		Status:    route.Status(header.Status).String(),
		Stops:     make([]RouteStopView, 0),
	}

	rows, err := db.Raw(`
		SELECT
			id,
			stop_order,
			order_id,
			customer_name,
			street,
			city,
			state,
			zip,
			phone,
			estimated_arrival,
			actual_arrival,
			status
		FROM route_stops
		WHERE route_id = ?
		ORDER BY stop_order
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stop RouteStopView
		var id uuid.UUID
		var orderID *uuid.UUID
		var phone, estimatedArrival *string
		var status int

		err = rows.Scan(
			&id,
			&stop.StopOrder,
			&orderID,
			&stop.CustomerName,
			&stop.Street,
			&stop.City,
			&stop.State,
			&stop.Zip,
			&phone,
			&estimatedArrival,
			&stop.ActualArrival,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if stop.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if stop.OrderID, err = toOptionalKernelUUID(orderID); err != nil {
			return nil, err
		}
		if phone != nil {
			stop.Phone = *phone
		}
		if estimatedArrival != nil {
			stop.EstimatedArrival = *estimatedArrival
		}
		stop.Status = route.StopStatus(status).String()

		response.Stops = append(response.Stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return response, nil
}
