package contact

// Message statuses. New messages always start unread; admins flip them
// after review.
const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

type Message struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}
