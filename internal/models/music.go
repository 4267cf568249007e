package models

// MusicItem - запись музыкального списка. Идентификатора нет,
// запись адресуется позицией в списке.
type MusicItem struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
}

// MusicRequest - тело запроса с одной записью
type MusicRequest struct {
	Song   *string `json:"song"`
	Artist *string `json:"artist"`
}

// DefaultMusic возвращает начальный список песен
func DefaultMusic() []MusicItem {
	return []MusicItem{
		{Song: "Три белых коня", Artist: "Лариса Долина"},
		{Song: "Last Christmas", Artist: "Wham!"},
		{Song: "Три Зимы", Artist: "Таисия Повалий"},
		{Song: "Звенит январская вьюга", Artist: "нина Бродская"},
		{Song: "Новогодняя", Artist: "Верка Сердючка"},
	}
}
