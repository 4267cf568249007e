package server

import (
	"net/http"

	"hwservices/internal/manager"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRouter(service string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(httpMetrics(service))
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func NewMusicRouter(mm *manager.MusicManager) *chi.Mux {
	r := newRouter("music")
	r.Get("/", musicListHandler(mm))
	r.Post("/add_music/", addMusicHandler(mm))
	r.Put("/update_music/", updateMusicHandler(mm))
	r.Delete("/delete_music/{index}", deleteMusicHandler(mm))
	return r
}

func NewTaskRouter(tm *manager.TaskManager) *chi.Mux {
	r := newRouter("tasks")
	r.Post("/tasks/fill_database/", fillDatabaseHandler(tm))
	r.Post("/tasks/", createTaskHandler(tm))
	r.Get("/tasks/", listTasksHandler(tm))
	r.Get("/tasks/{id}", getTaskHandler(tm))
	r.Put("/tasks/{id}", updateTaskHandler(tm))
	r.Delete("/tasks/{id}", deleteTaskHandler(tm))
	return r
}
