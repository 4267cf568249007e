package manager

import (
	"context"
	"time"

	"hwservices/internal/logger"
	"hwservices/internal/models"
)

const taskService = "tasks"

// Storage - табличное хранилище задач
type Storage interface {
	InsertTasks(ctx context.Context, tasks []models.Task) error
	CreateTask(ctx context.Context, title, description string) (int, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	// UpdateTask не проверяет существование строки
	UpdateTask(ctx context.Context, id int, title, description string) error
	// DeleteTask возвращает удаленную строку или ErrNotFound
	DeleteTask(ctx context.Context, id int) (*models.Task, error)
	Close() error
}

// DefaultTasks - начальные данные для fill_database
func DefaultTasks() []models.Task {
	return []models.Task{
		{Title: "Купить горошек", Description: "Купить горошек до 31 декабря", Status: false},
		{Title: "Питон", Description: "Выучить Питон", Status: true},
		{Title: "FastAPI", Description: "Выучить FastAPI", Status: false},
	}
}

type TaskManager struct {
	storage Storage
}

func NewTaskManager(storage Storage) *TaskManager {
	return &TaskManager{storage: storage}
}

// FillDefaults вставляет начальные строки при каждом вызове, без проверки дубликатов
func (tm *TaskManager) FillDefaults(ctx context.Context) (err error) {
	defer func(start time.Time) { observe(taskService, "fill", start, err) }(time.Now())

	if err := tm.storage.InsertTasks(ctx, DefaultTasks()); err != nil {
		return err
	}
	logger.Info(ctx, "БД заполнена начальными задачами", "count", len(DefaultTasks()))
	return nil
}

// Create добавляет задачу, статус всегда false
func (tm *TaskManager) Create(ctx context.Context, req models.TaskRequest) (task *models.Task, err error) {
	defer func(start time.Time) { observe(taskService, "create", start, err) }(time.Now())

	title, description, err := taskFields(req)
	if err != nil {
		return nil, err
	}

	id, err := tm.storage.CreateTask(ctx, title, description)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "Задача создана", "id", id)
	return &models.Task{ID: id, Title: title, Description: description, Status: false}, nil
}

func (tm *TaskManager) List(ctx context.Context) (tasks []models.Task, err error) {
	defer func(start time.Time) { observe(taskService, "list", start, err) }(time.Now())

	tasks, err = tm.storage.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (tm *TaskManager) Get(ctx context.Context, id int) (task *models.Task, err error) {
	defer func(start time.Time) { observe(taskService, "get", start, err) }(time.Now())

	return tm.storage.GetTask(ctx, id)
}

// Update перезаписывает title и description. Отсутствующий id ошибкой не считается,
// в ответе статус всегда false.
func (tm *TaskManager) Update(ctx context.Context, id int, req models.TaskRequest) (task *models.Task, err error) {
	defer func(start time.Time) { observe(taskService, "update", start, err) }(time.Now())

	title, description, err := taskFields(req)
	if err != nil {
		return nil, err
	}

	if err := tm.storage.UpdateTask(ctx, id, title, description); err != nil {
		return nil, err
	}

	return &models.Task{ID: id, Title: title, Description: description, Status: false}, nil
}

// Delete удаляет задачу; в ответе статус всегда false
func (tm *TaskManager) Delete(ctx context.Context, id int) (task *models.Task, err error) {
	defer func(start time.Time) { observe(taskService, "delete", start, err) }(time.Now())

	task, err = tm.storage.DeleteTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = false
	logger.Debug(ctx, "Задача удалена", "id", id)
	return task, nil
}

func taskFields(req models.TaskRequest) (string, string, error) {
	title, err := required("title", req.Title)
	if err != nil {
		return "", "", err
	}
	description, err := required("description", req.Description)
	if err != nil {
		return "", "", err
	}
	return title, description, nil
}
