package packets

// body for the website contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// body for a free Quran request
type QuranRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

// body for a membership application
type MembershipRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	FamilyMembers int    `json:"family_members" binding:"min=0"`
}

type SubscribeRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
