package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
