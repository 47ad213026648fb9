package update_reservation_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Status string `json:"status"`
}
