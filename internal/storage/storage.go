package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hwservices/internal/manager"
	"hwservices/internal/models"
)

// Open выбирает хранилище по имени драйвера из конфигурации
func Open(ctx context.Context, driver, dsn string) (manager.Storage, error) {
	if driver == DriverMemory {
		return NewMemoryStorage(), nil
	}
	return NewSQLStorage(ctx, driver, dsn)
}

// In-memory хранилище задач, тот же контракт что у SQLStorage
type MemoryStorage struct {
	tasks  map[int]models.Task
	nextID int
	mu     sync.Mutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		tasks:  make(map[int]models.Task),
		nextID: 1,
	}
}

func (m *MemoryStorage) InsertTasks(_ context.Context, tasks []models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range tasks {
		task.ID = m.nextID
		m.tasks[task.ID] = task
		m.nextID++
	}
	return nil
}

func (m *MemoryStorage) CreateTask(_ context.Context, title, description string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.tasks[id] = models.Task{ID: id, Title: title, Description: description}
	m.nextID++
	return id, nil
}

func (m *MemoryStorage) ListTasks(_ context.Context) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]models.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (m *MemoryStorage) GetTask(_ context.Context, id int) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, notFound(id)
	}
	return &task, nil
}

func (m *MemoryStorage) UpdateTask(_ context.Context, id int, title, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil
	}
	task.Title = title
	task.Description = description
	m.tasks[id] = task
	return nil
}

func (m *MemoryStorage) DeleteTask(_ context.Context, id int) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, notFound(id)
	}
	delete(m.tasks, id)
	return &task, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

func notFound(id int) error {
	return fmt.Errorf("задача с ID %d не найдена: %w", id, manager.ErrNotFound)
}
