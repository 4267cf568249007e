package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"hwservices/internal/logger"
	"hwservices/internal/manager"
	"hwservices/internal/models"
)

const musicNotFound = "Элемент не найден"

//go:embed templates/music_list.html
var templatesFS embed.FS

var musicListTemplate = template.Must(template.ParseFS(templatesFS, "templates/music_list.html"))

func musicListHandler(mm *manager.MusicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct{ MusicList []models.MusicItem }{MusicList: mm.List()}
		if err := musicListTemplate.Execute(w, data); err != nil {
			logger.Error(r.Context(), err, "Ошибка рендеринга списка музыки")
		}
	}
}

func addMusicHandler(mm *manager.MusicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.MusicRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, musicNotFound)
			return
		}

		if err := mm.Add(req); err != nil {
			writeError(w, r, err, musicNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Музыка успешно добавлена"})
	}
}

func updateMusicHandler(mm *manager.MusicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reqs []models.MusicRequest
		if err := decodeJSON(r, &reqs); err != nil {
			writeError(w, r, err, musicNotFound)
			return
		}
		if reqs == nil {
			writeError(w, r, &manager.ValidationError{Field: "body", Reason: "ожидался список"}, musicNotFound)
			return
		}

		if err := mm.ReplaceAll(reqs); err != nil {
			writeError(w, r, err, musicNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Список музыки успешно обновлен"})
	}
}

func deleteMusicHandler(mm *manager.MusicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := intParam(r, "index")
		if err != nil {
			writeError(w, r, err, musicNotFound)
			return
		}

		item, err := mm.Delete(index)
		if err != nil {
			writeError(w, r, err, musicNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("Музыка %s - %s удалена", item.Song, item.Artist),
		})
	}
}
