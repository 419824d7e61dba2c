// Package models holds the domain types shared by the storage, service, and transport layers.
package models

// Todo is a titled, completable task record.
// ID is assigned by storage and never changes once set.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// GetID returns the todo's identity
func (t Todo) GetID() int {
	return t.ID
}
