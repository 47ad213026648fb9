package departmentservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с DepartmentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DepartmentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDepartment получает департамент по ID
func (c *Client) GetDepartment(ctx context.Context, departmentID int64) (*Department, error) {
	url := fmt.Sprintf("%s/internal/departments/%d", c.baseURL, departmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid department ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrDepartmentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var department Department
	if err := json.NewDecoder(resp.Body).Decode(&department); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &department, nil
}

// GetDepartmentWithGracefulDegradation получает департамент с graceful degradation
// При недоступности DepartmentService возвращает ErrServiceDegraded, что позволяет
// сервису бронирования использовать базовую цену за ночь
func (c *Client) GetDepartmentWithGracefulDegradation(ctx context.Context, departmentID int64) (*Department, error) {
	c.log.Info("Fetching department id=%d", departmentID)

	department, err := c.GetDepartment(ctx, departmentID)
	if err != nil {
		// Критичная бизнес-ошибка (департамент не существует) пробрасывается дальше
		if err == ErrDepartmentNotFound {
			c.log.Info("Department id=%d not found", departmentID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("DepartmentService unavailable, applying graceful degradation for department_id=%d: %v", departmentID, err)
		return nil, fmt.Errorf("%w: department_id=%d, error=%v", ErrServiceDegraded, departmentID, err)
	}

	c.log.Info("Successfully fetched department id=%d, name=%s", departmentID, department.Name)
	return department, nil
}
