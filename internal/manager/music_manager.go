package manager

import (
	"fmt"
	"sync"
	"time"

	"hwservices/internal/models"
)

const musicService = "music"

// MusicManager хранит упорядоченный список песен в памяти.
// Порядок - порядок вставки, индекс не является стабильным идентификатором.
type MusicManager struct {
	mu    sync.Mutex
	items []models.MusicItem
}

func NewMusicManager(initial []models.MusicItem) *MusicManager {
	mm := &MusicManager{items: append([]models.MusicItem(nil), initial...)}
	musicListSize.Set(float64(len(mm.items)))
	return mm
}

// List возвращает копию текущего списка
func (mm *MusicManager) List() []models.MusicItem {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	items := make([]models.MusicItem, len(mm.items))
	copy(items, mm.items)
	return items
}

// Add добавляет запись в конец списка, дубликаты не проверяются
func (mm *MusicManager) Add(req models.MusicRequest) (err error) {
	defer func(start time.Time) { observe(musicService, "add", start, err) }(time.Now())

	item, err := musicItem("", req)
	if err != nil {
		return err
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.items = append(mm.items, item)
	musicListSize.Set(float64(len(mm.items)))
	return nil
}

// ReplaceAll заменяет весь список. Если хоть одна запись невалидна,
// список не меняется.
func (mm *MusicManager) ReplaceAll(reqs []models.MusicRequest) (err error) {
	defer func(start time.Time) { observe(musicService, "replace", start, err) }(time.Now())

	items := make([]models.MusicItem, 0, len(reqs))
	for i, req := range reqs {
		item, err := musicItem(fmt.Sprintf("[%d].", i), req)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.items = items
	musicListSize.Set(float64(len(mm.items)))
	return nil
}

// Delete удаляет запись по позиции (с нуля), последующие записи сдвигаются
func (mm *MusicManager) Delete(index int) (item models.MusicItem, err error) {
	defer func(start time.Time) { observe(musicService, "delete", start, err) }(time.Now())

	mm.mu.Lock()
	defer mm.mu.Unlock()

	if index < 0 || index >= len(mm.items) {
		return models.MusicItem{}, fmt.Errorf("элемент с индексом %d: %w", index, ErrNotFound)
	}

	item = mm.items[index]
	mm.items = append(mm.items[:index], mm.items[index+1:]...)
	musicListSize.Set(float64(len(mm.items)))
	return item, nil
}

func musicItem(prefix string, req models.MusicRequest) (models.MusicItem, error) {
	song, err := required(prefix+"song", req.Song)
	if err != nil {
		return models.MusicItem{}, err
	}
	artist, err := required(prefix+"artist", req.Artist)
	if err != nil {
		return models.MusicItem{}, err
	}
	return models.MusicItem{Song: song, Artist: artist}, nil
}
