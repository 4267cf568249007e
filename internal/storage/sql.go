package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hwservices/internal/logger"
	"hwservices/internal/models"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"  // modernc.org/sqlite, без cgo
	DriverSQLite3  = "sqlite3" // github.com/mattn/go-sqlite3, cgo
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const sqliteBusyTimeoutMS = 5000

// Drivers - допустимые значения DB_DRIVER
var Drivers = []string{DriverSQLite, DriverSQLite3, DriverPostgres, DriverMemory}

type SQLStorage struct {
	db     *sql.DB
	driver string
}

func NewSQLStorage(ctx context.Context, driver, dsn string) (*SQLStorage, error) {
	switch driver {
	case DriverSQLite, DriverSQLite3, DriverPostgres:
	default:
		return nil, fmt.Errorf("неподдерживаемый драйвер БД %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия БД: %w", err)
	}

	if driver != DriverPostgres {
		// sqlite допускает одного писателя, запросы ждут в пуле вместо SQLITE_BUSY
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	if driver != DriverPostgres {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", sqliteBusyTimeoutMS)); err != nil {
			db.Close()
			return nil, fmt.Errorf("ошибка настройки busy_timeout: %w", err)
		}
	}

	s := &SQLStorage{db: db, driver: driver}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info(ctx, "База данных инициализирована", "driver", driver)
	return s, nil
}

// Migrate создает таблицу tasks, повторный вызов безопасен
func (s *SQLStorage) Migrate(ctx context.Context) error {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == DriverPostgres {
		idColumn = "id SERIAL PRIMARY KEY"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
		` + idColumn + `,
		title TEXT,
		description TEXT,
		status BOOLEAN DEFAULT FALSE
	)`,
		`CREATE INDEX IF NOT EXISTS ix_tasks_title ON tasks (title)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ошибка создания таблицы tasks: %w", err)
		}
	}
	return nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) InsertTasks(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	values := make([]string, 0, len(tasks))
	args := make([]any, 0, len(tasks)*3)
	for _, task := range tasks {
		values = append(values, "(?, ?, ?)")
		args = append(args, task.Title, task.Description, task.Status)
	}

	query := "INSERT INTO tasks (title, description, status) VALUES " + strings.Join(values, ", ")
	if _, err := s.db.ExecContext(ctx, s.rebind(query), args...); err != nil {
		return fmt.Errorf("ошибка заполнения таблицы tasks: %w", err)
	}
	return nil
}

func (s *SQLStorage) CreateTask(ctx context.Context, title, description string) (int, error) {
	query := `INSERT INTO tasks (title, description, status) VALUES (?, ?, ?) RETURNING id`

	var id int
	if err := s.db.QueryRowContext(ctx, s.rebind(query), title, description, false).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStorage) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, status FROM tasks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (s *SQLStorage) GetTask(ctx context.Context, id int) (*models.Task, error) {
	query := `SELECT id, title, description, status FROM tasks WHERE id = ?`

	task, err := scanTask(s.db.QueryRowContext(ctx, s.rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return task, nil
}

func (s *SQLStorage) UpdateTask(ctx context.Context, id int, title, description string) error {
	query := `UPDATE tasks SET title = ?, description = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, s.rebind(query), title, description, id)
	return err
}

func (s *SQLStorage) DeleteTask(ctx context.Context, id int) (*models.Task, error) {
	query := `DELETE FROM tasks WHERE id = ? RETURNING id, title, description, status`

	task, err := scanTask(s.db.QueryRowContext(ctx, s.rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return task, nil
}

// rebind переводит плейсхолдеры ? в $1, $2... для postgres
func (s *SQLStorage) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var task models.Task
	var title, description sql.NullString
	var status sql.NullBool

	if err := row.Scan(&task.ID, &title, &description, &status); err != nil {
		return nil, err
	}

	task.Title = title.String
	task.Description = description.String
	task.Status = status.Bool
	return &task, nil
}

// Вспомогательная функция для сканирования задач
func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}
