package response

import (
	"time"

	"descomplaca/internal/domain/entities"
)

type OrderResponse struct {
	ID             string    `json:"id"`
	VehiclePlate   string    `json:"vehicle_plate"`
	VehicleRenavam string    `json:"vehicle_renavam,omitempty"`
	ServiceType    string    `json:"service_type"`
	Description    string    `json:"description,omitempty"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		VehiclePlate:   o.VehiclePlate,
		VehicleRenavam: o.VehicleRenavam,
		ServiceType:    o.ServiceType,
		Description:    o.Description,
		City:           o.City,
		State:          o.State,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
