package authservice

// RoleResponse ответ AuthService с ролью пользователя
type RoleResponse struct {
	UserID          int64  `json:"user_id"`
	Role            string `json:"role"`
	IsAdministrator bool   `json:"is_administrator"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
