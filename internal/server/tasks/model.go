package tasks

// Task is a single to-do item owned by one user. It is never mutated after
// creation, only deleted by its owner.
type Task struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	OwnerID int64  `json:"ownerId"`
}
