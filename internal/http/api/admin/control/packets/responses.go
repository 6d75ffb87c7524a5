package packets

type ScreenResponse struct {
	ID       int     `json:"id"`
	DeviceID *string `json:"device_id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
	Paired   bool    `json:"paired"`
}
