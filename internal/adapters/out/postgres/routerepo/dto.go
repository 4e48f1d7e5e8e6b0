// Package routerepo persists delivery routes and their stops.
package routerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the routes table.
type RouteDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	RouteDate time.Time `gorm:"type:date;index;not null"`
	Status    int       `gorm:"index;not null"`
	Stops     []StopDTO `gorm:"foreignKey:RouteID"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// StopDTO represents one route stop. (route_id, stop_order) is unique, which is
// what rejects concurrent insertions at the same position.
type StopDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_route_stops_route_order,priority:1"`
	StopOrder        int        `gorm:"not null;uniqueIndex:idx_route_stops_route_order,priority:2"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	Address          AddressDTO `gorm:"embedded"`
	EstimatedArrival string
	ActualArrival    *time.Time
	Status           int `gorm:"not null"`
}

func (StopDTO) TableName() string {
	return "route_stops"
}

// AddressDTO holds the address columns of a stop.
type AddressDTO struct {
	CustomerName string `gorm:"not null"`
	Street       string `gorm:"not null"`
	City         string `gorm:"not null"`
	State        string `gorm:"not null"`
	Zip          string `gorm:"not null"`
	Phone        string
}

func fromDomain(aggregate *route.Route) RouteDTO {
	stops := aggregate.Stops()
	dto := RouteDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		RouteDate: aggregate.RouteDate(),
		Status:    int(aggregate.Status()),
		Stops:     make([]StopDTO, 0, len(stops)),
	}

	for _, stop := range stops {
		dto.Stops = append(dto.Stops, stopFromDomain(dto.ID, stop))
	}

	return dto
}

func stopFromDomain(routeID uuid.UUID, stop *route.Stop) StopDTO {
	var orderID *uuid.UUID
	if id := stop.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	address := stop.Address()
	return StopDTO{
		ID:        stop.ID().Bytes(),
		RouteID:   routeID,
		StopOrder: stop.StopOrder(),
		OrderID:   orderID,
		Address: AddressDTO{
			CustomerName: address.CustomerName(),
			Street:       address.Street(),
			City:         address.City(),
			State:        address.State(),
			Zip:          address.Zip(),
			Phone:        address.Phone(),
		},
		EstimatedArrival: stop.EstimatedArrival(),
		ActualArrival:    stop.ActualArrival(),
		Status:           int(stop.Status()),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := stopToDomain(stopDTO)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(id, dto.Name, dto.RouteDate, route.Status(dto.Status), stops)
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oid, oidErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oidErr != nil {
			return nil, oidErr
		}
		orderID = &oid
	}

	address, err := kernel.NewAddress(
		dto.Address.CustomerName,
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Zip,
		dto.Address.Phone,
	)
	if err != nil {
		return nil, err
	}

	return route.RestoreStop(id, dto.StopOrder, route.StopSpec{
		OrderID:          orderID,
		Address:          address,
		EstimatedArrival: dto.EstimatedArrival,
	}, route.StopStatus(dto.Status), dto.ActualArrival)
}
