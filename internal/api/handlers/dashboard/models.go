package dashboard

import (
	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	dashboardService "github.com/CsIsLab17/smart-lab-booking/internal/service/dashboard"
)

// BookingResponse one lab booking row of the feed.
type BookingResponse struct {
	Name        string `json:"name"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Purpose     string `json:"purpose"`
	Status      string `json:"status"`
}

// LoanResponse one equipment loan row of the feed.
type LoanResponse struct {
	Email    string         `json:"email"`
	WANumber string         `json:"waNumber"`
	PickupAt string         `json:"pickupAt"`
	ReturnAt string         `json:"returnAt"`
	Items    map[string]int `json:"items"`
	Status   string         `json:"status"`
}

// SummaryResponse the aggregated dashboard view.
type SummaryResponse struct {
	InUseNow        bool              `json:"inUseNow"`
	CurrentBooking  *BookingResponse  `json:"currentBooking,omitempty"`
	PurposeCounts   map[string]int    `json:"purposeCounts"`
	WeekdayCounts   [7]int            `json:"weekdayCounts"`
	HourlyCounts    map[int]int       `json:"hourlyCounts"`
	RecentCompleted []BookingResponse `json:"recentCompleted"`
}

func toBookingResponse(b *domain.LabBooking) BookingResponse {
	return BookingResponse{
		Name:        b.Name,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Purpose:     b.Purpose,
		Status:      string(b.Status),
	}
}

func toBookingResponses(bookings []domain.LabBooking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

func toLoanResponses(loans []domain.EquipmentLoan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		items := make(map[string]int, len(l.Items))
		for _, line := range l.Items {
			items[line.ItemName] = line.Quantity
		}
		out = append(out, LoanResponse{
			Email:    l.Email,
			WANumber: l.WANumber,
			PickupAt: l.PickupAt.Format(domain.DateTimeFormat),
			ReturnAt: l.ReturnAt.Format(domain.DateTimeFormat),
			Items:    items,
			Status:   string(l.Status),
		})
	}
	return out
}

func toSummaryResponse(s *dashboardService.Summary) SummaryResponse {
	resp := SummaryResponse{
		InUseNow:        s.InUseNow,
		PurposeCounts:   s.PurposeCounts,
		WeekdayCounts:   s.WeekdayCounts,
		HourlyCounts:    s.HourlyCounts,
		RecentCompleted: toBookingResponses(s.RecentCompleted),
	}
	if s.CurrentBooking != nil {
		current := toBookingResponse(s.CurrentBooking)
		resp.CurrentBooking = &current
	}
	return resp
}
