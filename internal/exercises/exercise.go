package exercises

import "time"

// Exercise is a user-defined exercise. The name is unique (trimmed)
// and is what the assistant matches chat messages against.
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryIDs []string  `json:"categoryIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
