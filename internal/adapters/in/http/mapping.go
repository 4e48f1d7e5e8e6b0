package http

import (
	"fmt"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	kernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return kernelID, nil
}

func toOptionalKernelID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kernelID, err := toKernelID(name, *id)
	if err != nil {
		return nil, err
	}
	return &kernelID, nil
}

func toAPIID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toOptionalAPIID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	apiID := toAPIID(*id)
	return &apiID
}

func toAddress(a servers.Address) (kernel.Address, error) {
	phone := ""
	if a.Phone != nil {
		phone = *a.Phone
	}
	return kernel.NewAddress(a.CustomerName, a.Street, a.City, a.State, a.Zip, phone)
}

func toStopSpec(name string, s servers.NewStopSpec) (route.StopSpec, error) {
	address, err := toAddress(s.Address)
	if err != nil {
		return route.StopSpec{}, errs.NewValueIsInvalidErrorWithCause(name+".address", err)
	}

	orderID, err := toOptionalKernelID(name+".orderId", s.OrderId)
	if err != nil {
		return route.StopSpec{}, err
	}

	spec := route.StopSpec{
		OrderID: orderID,
		Address: address,
	}
	if s.EstimatedArrival != nil {
		spec.EstimatedArrival = *s.EstimatedArrival
	}
	return spec, nil
}

func toStopSpecs(stops []servers.NewStopSpec) ([]route.StopSpec, error) {
	specs := make([]route.StopSpec, 0, len(stops))
	for i, stop := range stops {
		spec, err := toStopSpec(fmt.Sprintf("stops[%d]", i), stop)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func toPickSheet(sheet *queries.GetPickSheetQueryResponse) servers.PickSheet {
	items := make([]servers.PickSheetItem, len(sheet.Items))
	for i, item := range sheet.Items {
		items[i] = servers.PickSheetItem{
			Id:              toAPIID(item.ID),
			OrderId:         toAPIID(item.OrderID),
			OrderLineId:     toAPIID(item.OrderLineID),
			InventoryItemId: toOptionalAPIID(item.InventoryItemID),
			Sku:             item.SKU,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			Location:        item.Location,
			PickRank:        item.PickRank,
			PickedAt:        item.PickedAt,
			Abandoned:       item.Abandoned,
		}
	}

	return servers.PickSheet{
		Id:          toAPIID(sheet.ID),
		Number:      sheet.Number,
		Status:      servers.PickSheetStatus(sheet.Status),
		CreatedAt:   sheet.CreatedAt,
		PickerName:  sheet.PickerName,
		StartedAt:   sheet.StartedAt,
		CompletedAt: sheet.CompletedAt,
		Items:       items,
	}
}

func toPickSheetSummaries(sheets []queries.ListPickSheetsQueryResponse) []servers.PickSheetSummary {
	out := make([]servers.PickSheetSummary, len(sheets))
	for i, sheet := range sheets {
		out[i] = servers.PickSheetSummary{
			Id:          toAPIID(sheet.ID),
			Number:      sheet.Number,
			Status:      servers.PickSheetSummaryStatus(sheet.Status),
			PickerName:  sheet.PickerName,
			CreatedAt:   sheet.CreatedAt,
			CompletedAt: sheet.CompletedAt,
			ItemCount:   sheet.ItemCount,
		}
	}
	return out
}

func toRoute(r *queries.GetRouteQueryResponse) servers.Route {
	stops := make([]servers.RouteStop, len(r.Stops))
	for i, stop := range r.Stops {
		var phone, eta *string
		if stop.Phone != "" {
			phone = &stop.Phone
		}
		if stop.EstimatedArrival != "" {
			eta = &stop.EstimatedArrival
		}

		stops[i] = servers.RouteStop{
			Id:        toAPIID(stop.ID),
			StopOrder: stop.StopOrder,
			OrderId:   toOptionalAPIID(stop.OrderID),
			Address: servers.Address{
				CustomerName: stop.CustomerName,
				Street:       stop.Street,
				City:         stop.City,
				State:        stop.State,
				Zip:          stop.Zip,
				Phone:        phone,
			},
			EstimatedArrival: eta,
			ActualArrival:    stop.ActualArrival,
			Status:           servers.RouteStopStatus(stop.Status),
		}
	}

	return servers.Route{
		Id:        toAPIID(r.ID),
		Name:      r.Name,
		RouteDate: openapi_types.Date{Time: r.RouteDate},
		Status:    servers.RouteStatus(r.Status),
		Stops:     stops,
	}
}
