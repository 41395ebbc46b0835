package responses

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
