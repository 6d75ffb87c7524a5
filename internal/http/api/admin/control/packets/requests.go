package packets

// body for saving one iqamah time
type IqamahUpdateRequest struct {
	PrayerName string `json:"prayer_name" binding:"required"`
	IqamahTime string `json:"iqamah_time" binding:"required"`
}

// body for saving sign settings
type SignSettingsRequest struct {
	MaxAnnouncements        int  `json:"max_announcements" binding:"min=0"`
	ShowDescriptions        bool `json:"show_descriptions"`
	ShowImages              bool `json:"show_images"`
	RotationIntervalSeconds int  `json:"rotation_interval_seconds"`
}

// body for creating or updating a downtime rule
type DowntimeRuleRequest struct {
	RuleType            string   `json:"rule_type" binding:"required,oneof=time_range prayer_iqamah"`
	DaysOfWeek          []string `json:"days_of_week"`
	IsActive            *bool    `json:"is_active"`
	StartTime           *string  `json:"start_time"`
	EndTime             *string  `json:"end_time"`
	PrayerName          *string  `json:"prayer_name"`
	MinutesBeforeIqamah *int     `json:"minutes_before_iqamah"`
	MinutesAfterIqamah  *int     `json:"minutes_after_iqamah"`
}

type BoardMemberRequest struct {
	Name         string  `json:"name" binding:"required"`
	Position     string  `json:"position" binding:"required"`
	Bio          string  `json:"bio"`
	PhotoURL     *string `json:"photo_url"`
	DisplayOrder int     `json:"display_order"`
}

type TrusteeRequest struct {
	Name         string  `json:"name" binding:"required"`
	Title        string  `json:"title"`
	PhotoURL     *string `json:"photo_url"`
	DisplayOrder int     `json:"display_order"`
}

type DonationCauseRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DonateURL    string  `json:"donate_url"`
	ImageURL     *string `json:"image_url"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
}

type YouthProgramRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder int     `json:"display_order"`
}

type YouthSubprogramRequest struct {
	Name         string `json:"name" binding:"required"`
	Schedule     string `json:"schedule"`
	AgeRange     string `json:"age_range"`
	DisplayOrder int    `json:"display_order"`
}

type ReorderRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

type SubscriberRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// body for registering a new screen record
type CreateScreenRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}

type UpdateScreenRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// body for claiming a kiosk by its pairing code
type PairScreenRequest struct {
	PairingCode string `json:"pairing_code" binding:"required"`
}
