package packets

// body a kiosk sends when it boots unpaired
type RegisterRequest struct {
	DeviceID    string `json:"device_id" binding:"required"`
	PairingCode string `json:"pairing_code" binding:"required"`
}

// body sent when the adhan audio track finishes
type AudioDoneRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}
