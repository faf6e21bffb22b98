// Package notify builds the WhatsApp deep links the frontend opens after a
// booking or guest registration. No messages are sent server-side; the link
// pre-fills the conversation with the hoster.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/eventra/eventra-backend/internal/model"
)

// NormalizePhone strips formatting characters so the number is usable in a
// wa.me URL. A leading "+" is dropped; wa.me expects digits only.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReservationLink builds a wa.me link to the hoster with a pre-filled
// booking confirmation message. Returns "" when the hoster has no WhatsApp
// number on file.
func ReservationLink(hosterWhatsApp string, res *model.Reservation, event *model.Event) string {
	number := NormalizePhone(hosterWhatsApp)
	if number == "" {
		return ""
	}
	msg := fmt.Sprintf(
		"Hi! I just booked %d ticket(s) for %s on %s. Name: %s, booking ref: %s. Total: %.2f.",
		res.TicketCount, event.Title, event.Date.Format("02 Jan 2006"),
		res.FullName, res.ID, res.TotalAmount,
	)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}

// GuestLink builds a wa.me link to the hoster announcing a guest list
// registration.
func GuestLink(hosterWhatsApp string, guest *model.GuestEntry, event *model.Event) string {
	number := NormalizePhone(hosterWhatsApp)
	if number == "" {
		return ""
	}
	msg := fmt.Sprintf(
		"Hi! I registered for the guest list of %s on %s. Name: %s, party of %d.",
		event.Title, event.Date.Format("02 Jan 2006"), guest.GuestName, guest.GroupSize,
	)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}
