package notify

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// Notifier builds and sends the booking workflow emails: the approval
// request to the lab head and the decision emails to the requester. The
// approved email carries a QR code whose payload is the check-in link, so
// scanning it at the door performs the check-in.
type Notifier struct {
	mailer  Mailer
	baseURL string
	labHead string
	log     Logger
}

// NewNotifier creates a notifier. baseURL is the externally reachable
// root used to build action links.
func NewNotifier(mailer Mailer, baseURL, labHead string, log Logger) *Notifier {
	return &Notifier{
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
		labHead: labHead,
		log:     log,
	}
}

// SendApprovalRequest mails the lab head an approve/reject link pair for a
// new lab booking.
func (n *Notifier) SendApprovalRequest(booking *domain.LabBooking) error {
	subject := fmt.Sprintf("New Lab Booking Request: %s on %s", booking.Name, booking.BookingDate.Format(domain.DateFormat))
	body := fmt.Sprintf(
		"A new lab booking request is waiting for your decision.\r\n\r\n"+
			"Name: %s\r\nStudent ID: %s\r\nEmail: %s\r\nDate: %s\r\nTime: %s - %s\r\nPurpose: %s\r\nPeople: %d\r\n\r\n"+
			"Approve: %s\r\nReject: %s\r\n",
		booking.Name,
		booking.StudentID,
		booking.Email,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.EndTime,
		booking.Purpose,
		booking.Headcount,
		n.actionURL("/approve", booking.Ref),
		n.actionURL("/reject", booking.Ref),
	)

	if err := n.mailer.Send(n.labHead, subject, body); err != nil {
		return fmt.Errorf("failed to send approval request for ref=%s: %w", booking.Ref, err)
	}
	n.log.Info("approval request sent to %s for ref=%s", n.labHead, booking.Ref)
	return nil
}

// SendLoanApprovalRequest mails the lab head an approve/reject link pair
// for a new equipment loan.
func (n *Notifier) SendLoanApprovalRequest(loan *domain.EquipmentLoan) error {
	var items strings.Builder
	for _, it := range loan.Items {
		fmt.Fprintf(&items, "  - %s x%d\r\n", it.ItemName, it.Quantity)
	}

	subject := fmt.Sprintf("New Equipment Loan Request: %s", loan.Email)
	body := fmt.Sprintf(
		"A new equipment loan request is waiting for your decision.\r\n\r\n"+
			"Email: %s\r\nWhatsApp: %s\r\nPickup: %s\r\nReturn: %s\r\nItems:\r\n%s\r\n"+
			"Approve: %s\r\nReject: %s\r\n",
		loan.Email,
		loan.WANumber,
		loan.PickupAt.Format(domain.DateTimeFormat),
		loan.ReturnAt.Format(domain.DateTimeFormat),
		items.String(),
		n.actionURL("/approve", loan.Ref),
		n.actionURL("/reject", loan.Ref),
	)

	if err := n.mailer.Send(n.labHead, subject, body); err != nil {
		return fmt.Errorf("failed to send loan approval request for ref=%s: %w", loan.Ref, err)
	}
	n.log.Info("loan approval request sent to %s for ref=%s", n.labHead, loan.Ref)
	return nil
}

// SendApproved mails the requester their confirmation with the check-in
// QR code attached.
func (n *Notifier) SendApproved(booking *domain.LabBooking) error {
	checkinURL := n.actionURL("/checkin", booking.Ref)

	png, err := qrcode.Encode(checkinURL, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code for ref=%s: %w", booking.Ref, err)
	}

	subject := "Your Lab Booking Has Been Approved"
	body := fmt.Sprintf(
		"Your booking for %s from %s to %s has been approved.\r\n\r\n"+
			"Show the attached QR code at the lab to check in, or open:\r\n%s\r\n",
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.EndTime,
		checkinURL,
	)

	err = n.mailer.SendWithAttachment(booking.Email, subject, body, Attachment{
		Filename:    "checkin-qr.png",
		ContentType: "image/png",
		Data:        png,
	})
	if err != nil {
		return fmt.Errorf("failed to send approval email for ref=%s: %w", booking.Ref, err)
	}
	n.log.Info("approval email sent to %s for ref=%s", booking.Email, booking.Ref)
	return nil
}

// SendRejected mails the requester that their booking was declined.
func (n *Notifier) SendRejected(booking *domain.LabBooking) error {
	subject := "Your Lab Booking Has Been Rejected"
	body := fmt.Sprintf(
		"Unfortunately your booking for %s from %s to %s has been rejected.\r\n"+
			"Please contact the lab head for details or submit a new request.\r\n",
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.EndTime,
	)

	if err := n.mailer.Send(booking.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send rejection email for ref=%s: %w", booking.Ref, err)
	}
	n.log.Info("rejection email sent to %s for ref=%s", booking.Email, booking.Ref)
	return nil
}

// SendLoanDecision mails the requester the outcome of their loan request.
func (n *Notifier) SendLoanDecision(loan *domain.EquipmentLoan, approved bool) error {
	var subject, body string
	if approved {
		subject = "Your Equipment Loan Has Been Approved"
		body = fmt.Sprintf(
			"Your equipment loan from %s to %s has been approved.\r\n"+
				"Pick up the items at the lab at the agreed time.\r\n",
			loan.PickupAt.Format(domain.DateTimeFormat),
			loan.ReturnAt.Format(domain.DateTimeFormat),
		)
	} else {
		subject = "Your Equipment Loan Has Been Rejected"
		body = "Unfortunately your equipment loan request has been rejected.\r\n" +
			"Please contact the lab head for details.\r\n"
	}

	if err := n.mailer.Send(loan.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send loan decision email for ref=%s: %w", loan.Ref, err)
	}
	n.log.Info("loan decision email sent to %s for ref=%s approved=%t", loan.Email, loan.Ref, approved)
	return nil
}

func (n *Notifier) actionURL(path, ref string) string {
	return fmt.Sprintf("%s%s?id=%s", n.baseURL, path, url.QueryEscape(ref))
}
