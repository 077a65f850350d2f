package subscription

// Subscription types. A full subscription carries the mailing address
// fields; a newsletter signup is email only.
const (
	TypeFull       = "full_subscription"
	TypeNewsletter = "newsletter_only"
)

type Subscription struct {
	ID             string `json:"id,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	StreetAddress  string `json:"streetAddress,omitempty"`
	StreetAddress2 string `json:"streetAddress2,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Telephone      string `json:"telephone,omitempty"`
	Email          string `json:"email"`
	Type           string `json:"type"`
	CreatedAt      string `json:"createdAt,omitempty"`
}
