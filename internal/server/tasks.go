package server

import (
	"net/http"

	"hwservices/internal/manager"
	"hwservices/internal/models"
)

const taskNotFound = "Задача не найдена"

func fillDatabaseHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tm.FillDefaults(r.Context()); err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "БД заполнена данными"})
	}
}

func createTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TaskRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}

		task, err := tm.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}

func listTasksHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := tm.List(r.Context())
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
	}
}

func getTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}

		task, err := tm.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}

func updateTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}

		var req models.TaskRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}

		task, err := tm.Update(r.Context(), id, req)
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}

func deleteTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}

		task, err := tm.Delete(r.Context(), id)
		if err != nil {
			writeError(w, r, err, taskNotFound)
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}
