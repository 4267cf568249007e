package models

// Task - строка таблицы tasks
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// TaskRequest - тело запроса на создание и обновление задачи.
// Поля указателями, чтобы отличать отсутствующее поле от пустой строки.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - тело ответа об ошибке
type ErrorResponse struct {
	Detail string `json:"detail"`
}
