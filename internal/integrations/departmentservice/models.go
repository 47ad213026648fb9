package departmentservice

// Department модель департамента (объекта аренды) из DepartmentService
type Department struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	Bedrooms      int      `json:"bedrooms"`
	PricePerNight *float64 `json:"price_per_night"`
	RatingAvg     *float64 `json:"rating_avg"`
	Published     bool     `json:"published"`
}

// ErrorResponse модель ошибки от DepartmentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
