package domain

import "time"

// Task is the single persisted business entity: a to-do item with a title,
// a completion flag, and a due date. The identifier is generated by the
// store and immutable after creation.
type Task struct {
	ID             int64     `json:"id"`
	Titulo         string    `json:"titulo"`
	Concluida      bool      `json:"concluida"`
	DataVencimento time.Time `json:"data_vencimento"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
