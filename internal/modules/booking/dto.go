package booking

type BookingRequest struct {
	RoomID int64 `json:"roomId"`
}
