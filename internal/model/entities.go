package model

import "time"

// BoardMember is a leadership listing, ordered by DisplayOrder.
type BoardMember struct {
	ID           int       `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Position     string    `db:"position"      json:"position"`
	Bio          string    `db:"bio"           json:"bio"`
	PhotoURL     *string   `db:"photo_url"     json:"photo_url,omitempty"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

type Trustee struct {
	ID           int       `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Title        string    `db:"title"         json:"title"`
	PhotoURL     *string   `db:"photo_url"     json:"photo_url,omitempty"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

// DonationCause is a fundraising target shown on the donations page.
type DonationCause struct {
	ID           int       `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Description  string    `db:"description"   json:"description"`
	DonateURL    string    `db:"donate_url"    json:"donate_url"`
	ImageURL     *string   `db:"image_url"     json:"image_url,omitempty"`
	IsActive     bool      `db:"is_active"     json:"is_active"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

type YouthProgram struct {
	ID           int       `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Description  string    `db:"description"   json:"description"`
	ImageURL     *string   `db:"image_url"     json:"image_url,omitempty"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`

	Subprograms []YouthSubprogram `db:"-" json:"subprograms,omitempty"`
}

type YouthSubprogram struct {
	ID           int       `db:"id"            json:"id"`
	ProgramID    int       `db:"program_id"    json:"program_id"`
	Name         string    `db:"name"          json:"name"`
	Schedule     string    `db:"schedule"      json:"schedule"`
	AgeRange     string    `db:"age_range"     json:"age_range"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

type AnnualReport struct {
	ID           int       `db:"id"            json:"id"`
	Title        string    `db:"title"         json:"title"`
	Year         int       `db:"year"          json:"year"`
	FileURL      string    `db:"file_url"      json:"file_url"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

// Subscriber receives announcement notification emails.
type Subscriber struct {
	ID           int       `db:"id"            json:"id"`
	Email        string    `db:"email"         json:"email"`
	Name         *string   `db:"name"          json:"name,omitempty"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}
