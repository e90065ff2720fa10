package notifications

import "time"

// Type is the closed set of notification kinds clients switch on.
type Type string

const (
	TypeSubmissionApproved Type = "submission_approved"
	TypeSubmissionRejected Type = "submission_rejected"
	TypeNewSubmission      Type = "new_submission"
	TypePopularRestaurant  Type = "popular_restaurant"
)

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	switch t {
	case TypeSubmissionApproved, TypeSubmissionRejected, TypeNewSubmission, TypePopularRestaurant:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// Keys used in Notification.Data.
const (
	DataSubmissionID    = "submissionId"
	DataRestaurantID    = "restaurantId"
	DataRestaurantName  = "restaurantName"
	DataRejectionReason = "rejectionReason"
)

// Notification is a persisted message addressed to exactly one recipient.
// Recipient, Type and CreatedAt never change after creation.
type Notification struct {
	ID        string         `json:"id" bson:"_id"`
	Recipient string         `json:"recipient" bson:"recipient"`
	Type      Type           `json:"type" bson:"type"`
	Title     string         `json:"title" bson:"title"`
	Message   string         `json:"message" bson:"message"`
	Data      map[string]any `json:"data,omitempty" bson:"data,omitempty"`
	Link      string         `json:"link,omitempty" bson:"link,omitempty"`
	IsRead    bool           `json:"isRead" bson:"isRead"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Payload is the view of a notification pushed over live channels.
type Payload struct {
	ID        string         `json:"id"`
	Type      Type           `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Link      string         `json:"link,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Payload returns the push view of n.
func (n Notification) Payload() Payload {
	return Payload{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}

// Announcement is an unpersisted message broadcast to every connected channel.
type Announcement struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Notification) clone() Notification {
	if n.Data != nil {
		data := make(map[string]any, len(n.Data))
		for k, v := range n.Data {
			data[k] = v
		}
		n.Data = data
	}
	return n
}
