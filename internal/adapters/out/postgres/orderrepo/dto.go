// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in three tables: orders, order_lines and the
// order_status_transitions audit trail.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	Address     AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status      int        `gorm:"index;not null"`
	OrderedAt   time.Time  `gorm:"not null"`
	DeliveredAt *time.Time
	TotalCents  int64     `gorm:"not null"`
	Lines       []LineDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery snapshot embedded in the orders table.
type AddressDTO struct {
	CustomerName string `gorm:"not null"`
	Street       string `gorm:"not null"`
	City         string `gorm:"not null"`
	State        string `gorm:"not null"`
	Zip          string `gorm:"not null"`
	Phone        string
}

// LineDTO represents one order line. Position keeps insertion order.
type LineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ItemID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Position       int       `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"`
	Allocated      bool      `gorm:"not null;default:false"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// TransitionDTO is one row of the status audit trail.
type TransitionDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time `gorm:"not null"`
}

func (TransitionDTO) TableName() string {
	return "order_status_transitions"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.Address()
	lines := aggregate.Lines()

	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Address: AddressDTO{
			CustomerName: address.CustomerName(),
			Street:       address.Street(),
			City:         address.City(),
			State:        address.State(),
			Zip:          address.Zip(),
			Phone:        address.Phone(),
		},
		Status:      int(aggregate.Status()),
		OrderedAt:   aggregate.OrderedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		TotalCents:  aggregate.Total().Cents(),
		Lines:       make([]LineDTO, 0, len(lines)),
	}

	for i, line := range lines {
		dto.Lines = append(dto.Lines, LineDTO{
			ID:             line.ID().Bytes(),
			OrderID:        dto.ID,
			ItemID:         line.ItemID().Bytes(),
			Position:       i,
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Allocated:      line.IsAllocated(),
		})
	}

	return dto
}

func transitionsFromDomain(transitions []order.Transition) []TransitionDTO {
	dtos := make([]TransitionDTO, 0, len(transitions))
	for _, t := range transitions {
		dtos = append(dtos, TransitionDTO{
			OrderID:    t.OrderID.Bytes(),
			FromStatus: t.FromName,
			ToStatus:   t.ToName,
			OccurredAt: t.OccurredAt,
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
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

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		address,
		order.Status(dto.Status),
		dto.OrderedAt,
		dto.DeliveredAt,
		lines,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, itemID, dto.Quantity, price, dto.Allocated)
}

func transitionToDomain(dto TransitionDTO) (order.Transition, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Transition{}, err
	}

	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return order.Transition{}, err
	}

	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return order.Transition{}, err
	}

	return order.Transition{
		OrderID:    orderID,
		From:       from,
		To:         to,
		FromName:   dto.FromStatus,
		ToName:     dto.ToStatus,
		OccurredAt: dto.OccurredAt,
	}, nil
}
