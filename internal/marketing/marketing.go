package marketing

import "time"

const (
	TypeTelegram = "telegram"
	TypeEmail    = "email"
	TypeSMS      = "sms"

	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
	StatusFailed    = "failed"
)

var validTypes = map[string]bool{
	TypeTelegram: true,
	TypeEmail:    true,
	TypeSMS:      true,
}

func ValidType(t string) bool { return validTypes[t] }

// Message is a stored campaign draft. Nothing in the backend dispatches it;
// delivery is an external concern.
type Message struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Title          *string    `json:"title"`
	Content        string     `json:"content"`
	TargetAudience *string    `json:"targetAudience"`
	ScheduledAt    *time.Time `json:"scheduledAt"`
	SentAt         *time.Time `json:"sentAt"`
	Status         string     `json:"status"`
	GeneratedByAI  bool       `json:"generatedByAi"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type Filters struct {
	Type   string
	Status string
	Limit  int
}
