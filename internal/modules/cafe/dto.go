package cafe

type CreateReservationRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	PartySize   int    `json:"party_size" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required"`
	Note        string `json:"note"`
}

type Slot struct {
	Time      string `json:"time"`
	Remaining int    `json:"remaining"`
}

type AvailabilityResponse struct {
	Date   string    `json:"date"`
	Policy DayPolicy `json:"policy"`
	Slots  []Slot    `json:"slots"`
}
