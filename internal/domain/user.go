package domain

// Address is the mock shipping address attached to a demo identity
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// UserData is the cookie-persisted demo identity. There is no account
// system; an identity is generated on first visit and lives in the
// browser's cookie jar for the lifetime of the demo.
type UserData struct {
	UserID      string  `json:"userId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Address     Address `json:"address"`
	MemberSince string  `json:"memberSince"`
}

// FullName returns the display name for the identity
func (u UserData) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BadgerUser is the profile the Badger service keeps for a user
type BadgerUser struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
	Level     int    `json:"level,omitempty"`
	XP        int    `json:"xp,omitempty"`
}
