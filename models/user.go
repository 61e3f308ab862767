package models

type UserProfile struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	AvatarURL   string `json:"avatarUrl"`
	Description string `json:"description"`
	DOB         string `json:"dob"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

func (p UserProfile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type UserAvatar struct {
	AvatarURL string `json:"avatarUrl"`
}
