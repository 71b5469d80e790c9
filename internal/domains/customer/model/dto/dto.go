package dto

import (
	"cmp"
	"fmt"
	"hotel/internal/domains/customer/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"slices"
	"strings"
	"time"
)

const (
	StatusActive = "Active"
	StatusPast   = "Past"
	StatusNone   = "None"
)

var statusRank = map[string]int{
	StatusActive: 1,
	StatusPast:   2,
	StatusNone:   3,
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingInfo struct {
	RoomInfo string `json:"roomInfo"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Status   string `json:"status"`
}

type CustomerResponse struct {
	Name        string       `json:"name"`
	ContactInfo ContactInfo  `json:"contactInfo"`
	Booking     *BookingInfo `json:"booking"`
}

// Classify reports whether a stay ending on checkOut is still running on
// today. A nil checkOut means the customer has no booking.
func Classify(checkOut *time.Time, today time.Time) string {
	if checkOut == nil {
		return StatusNone
	}

	if timezone.DateOf(*checkOut).Before(timezone.DateOf(today)) {
		return StatusPast
	}

	return StatusActive
}

type rankedCustomer struct {
	response CustomerResponse
	status   string
	checkIn  time.Time
}

// FromSummaries formats and orders the customer overview: active stays
// first, then past ones, then customers without bookings. Inside each group
// the latest check-in comes first and ties fall back to the name.
func FromSummaries(summaries []model.Summary, today time.Time) []CustomerResponse {
	ranked := make([]rankedCustomer, 0, len(summaries))

	for _, summary := range summaries {
		entry := rankedCustomer{
			response: CustomerResponse{
				Name: summary.Name,
				ContactInfo: ContactInfo{
					Email: summary.Email,
					Phone: summary.Phone,
				},
			},
			status: Classify(summary.CheckOut, today),
		}

		if summary.RoomID != nil && summary.CheckIn != nil && summary.CheckOut != nil {
			entry.checkIn = *summary.CheckIn
			entry.response.Booking = &BookingInfo{
				RoomInfo: roomInfo(*summary.RoomID, summary.RoomType),
				CheckIn:  summary.CheckIn.Format(constant.DisplayDateFormat),
				CheckOut: summary.CheckOut.Format(constant.DisplayDateFormat),
				Status:   entry.status,
			}
		} else {
			entry.status = StatusNone
		}

		ranked = append(ranked, entry)
	}

	slices.SortStableFunc(ranked, func(a, b rankedCustomer) int {
		return cmp.Or(
			cmp.Compare(statusRank[a.status], statusRank[b.status]),
			b.checkIn.Compare(a.checkIn),
			strings.Compare(a.response.Name, b.response.Name),
		)
	})

	res := make([]CustomerResponse, len(ranked))
	for i, entry := range ranked {
		res[i] = entry.response
	}

	return res
}

func roomInfo(roomID int64, roomType *string) string {
	if roomType == nil {
		return fmt.Sprintf("Room %d", roomID)
	}

	return fmt.Sprintf("Room %d (%s)", roomID, *roomType)
}
