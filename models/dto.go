package models

type CreateProfileRequest struct {
	FirstName   string `json:"firstName" form:"first_name" binding:"required,min=2,max=100"`
	LastName    string `json:"lastName" form:"last_name" binding:"required,min=2,max=100"`
	AvatarURL   string `json:"avatarUrl" form:"avatar_url" binding:"omitempty,url"`
	Description string `json:"description" form:"description" binding:"max=500"`
	DOB         string `json:"dob" form:"dob" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber string `json:"phoneNumber" form:"phone_number" binding:"max=20"`
}

type DateRangeRequest struct {
	StartDate string `json:"startDate" form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type SupportMessageRequest struct {
	Subject string `json:"subject" form:"subject" binding:"required,max=150"`
	Message string `json:"message" form:"message" binding:"required,max=5000"`
}
