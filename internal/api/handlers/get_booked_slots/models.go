package get_booked_slots

import (
	getBookedSlots "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_booked_slots"
)

// BookedSlotResponse one occupied interval on the wire.
type BookedSlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse converts the use case response to the wire array.
func FromUseCaseResponse(resp *getBookedSlots.Response) []BookedSlotResponse {
	out := make([]BookedSlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, BookedSlotResponse{
			Start: s.StartTime,
			End:   s.EndTime,
		})
	}
	return out
}
