package model

import "time"

// Note — заметка в том виде, в котором её возвращает notes API.
// Клиент хранит только временные копии на время одной отрисовки.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Archived  bool      `json:"archived"`
}

// Draft — данные формы создания заметки.
type Draft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
