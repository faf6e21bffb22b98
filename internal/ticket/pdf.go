// Package ticket renders downloadable eTicket PDFs for confirmed
// reservations. Each ticket embeds a QR code pointing at the check-in
// endpoint so door staff can scan it.
package ticket

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/eventra/eventra-backend/internal/model"
)

// CheckInURL builds the door check-in URL for the guest entry linked to a
// booking. This is what the ticket QR code encodes.
func CheckInURL(baseURL, guestID string) string {
	return fmt.Sprintf("%s/hoster/guests/%s/checkin", baseURL, guestID)
}

// StatusURL builds the public reservation status URL, used in the QR code
// when no guest entry is linked to the booking.
func StatusURL(baseURL, reservationID string) string {
	return fmt.Sprintf("%s/reservations/%s", baseURL, reservationID)
}

// Generator renders eTicket PDFs.
type Generator struct {
	baseURL string
}

// NewGenerator constructs a Generator. baseURL is the public origin used in
// QR check-in links.
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// Render produces a single-page A4 eTicket for the reservation. The QR code
// points door staff at the linked guest entry's check-in endpoint; without a
// linked entry it falls back to the public status lookup.
func (g *Generator) Render(res *model.Reservation, event *model.Event, guest *model.GuestEntry) ([]byte, error) {
	target := StatusURL(g.baseURL, res.ID)
	if guest != nil {
		target = CheckInURL(g.baseURL, guest.ID)
	}
	qrPNG, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "Eventra eTicket", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, event.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s at %s", event.Venue, event.Location), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%s %s", event.Date.Format("Monday, 02 January 2006"), event.Time), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	row("Booking ref", res.ID)
	row("Name", res.FullName)
	row("Phone", res.Phone)
	row("Tickets", fmt.Sprintf("%d x %s", res.TicketCount, res.TicketType))
	row("Total paid", fmt.Sprintf("%.2f", res.TotalAmount))
	row("Status", string(res.Status))
	pdf.Ln(8)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 75, pdf.GetY(), 60, 60, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 64)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Present this QR code at the entrance for check-in.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
