package request

// CreateOrderRequest is the client-facing order creation payload.
// owner_id/owner_email come from the identity provider in front of the
// API and are trusted as-is.
type CreateOrderRequest struct {
	VehiclePlate   string `json:"vehicle_plate" binding:"required"`
	VehicleRenavam string `json:"vehicle_renavam"`
	ServiceType    string `json:"service_type" binding:"required"`
	Description    string `json:"description"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	OwnerID        string `json:"owner_id" binding:"required"`
	OwnerEmail     string `json:"owner_email" binding:"required"`
}

// AdvanceOrderRequest names the next execution checkpoint.
type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required"`
}
