package labapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// Client talks to the booking service HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a booking service API client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookedSlots fetches the occupied intervals for a date. The result is
// already converted to minute intervals for the slot engine.
func (c *Client) GetBookedSlots(ctx context.Context, date string) ([]domain.BookedInterval, error) {
	path := fmt.Sprintf("/api/getBookedSlots?date=%s", url.QueryEscape(date))

	var slots []BookedSlot
	if err := c.getJSON(ctx, path, &slots); err != nil {
		return nil, err
	}

	intervals := make([]domain.BookedInterval, 0, len(slots))
	for _, s := range slots {
		intervals = append(intervals, domain.BookedInterval{
			Start: domain.ClockToMinutes(s.Start),
			End:   domain.ClockToMinutes(s.End),
		})
	}
	return intervals, nil
}

// GetEquipmentAvailability fetches remaining stock per item over a
// pickup/return range.
func (c *Client) GetEquipmentAvailability(ctx context.Context, pickupAt, returnAt string) (map[string]int, error) {
	path := fmt.Sprintf("/api/getEquipmentAvailability?pickup=%s&return=%s",
		url.QueryEscape(pickupAt), url.QueryEscape(returnAt))

	var stock map[string]int
	if err := c.getJSON(ctx, path, &stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// SubmitBooking posts a lab booking form.
func (c *Client) SubmitBooking(ctx context.Context, sub BookingSubmission) (*StatusResponse, error) {
	form := url.Values{}
	form.Set("name", sub.Name)
	form.Set("studentId", sub.StudentID)
	form.Set("email", sub.Email)
	form.Set("date", sub.Date)
	form.Set("startTime", sub.StartTime)
	form.Set("endTime", sub.EndTime)
	form.Set("purpose", sub.Purpose)
	form.Set("otherPurpose", sub.OtherPurpose)
	form.Set("headcount", sub.Headcount)

	return c.postForm(ctx, "/api/submitBooking", form)
}

// SubmitEquipmentBooking posts an equipment loan form. Requested items go
// over the wire as a JSON object in the itemsBorrowed field.
func (c *Client) SubmitEquipmentBooking(ctx context.Context, sub LoanSubmission) (*StatusResponse, error) {
	items, err := json.Marshal(sub.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode items: %v", ErrInternal, err)
	}

	form := url.Values{}
	form.Set("email", sub.Email)
	form.Set("waNumber", sub.WANumber)
	form.Set("pickupAt", sub.PickupAt)
	form.Set("returnAt", sub.ReturnAt)
	form.Set("itemsBorrowed", string(items))

	return c.postForm(ctx, "/api/submitEquipmentBooking", form)
}

// GetDashboardData fetches the lab booking feed for the polling dashboard.
func (c *Client) GetDashboardData(ctx context.Context) ([]DashboardBooking, error) {
	var rows []DashboardBooking
	if err := c.getJSON(ctx, "/api/getDashboardData", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetEquipmentDashboardData fetches the equipment loan feed.
func (c *Client) GetEquipmentDashboardData(ctx context.Context) ([]DashboardLoan, error) {
	var rows []DashboardLoan
	if err := c.getJSON(ctx, "/api/getEquipmentDashboardData", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckIn marks an approved booking as arrived and returns the
// confirmation text from the HTML fragment.
func (c *Client) CheckIn(ctx context.Context, ref string) (string, error) {
	return c.actionLink(ctx, "/checkin", ref)
}

// CheckOut completes a checked-in booking.
func (c *Client) CheckOut(ctx context.Context, ref string) (string, error) {
	return c.actionLink(ctx, "/checkout", ref)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var status StatusResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&status)

	switch resp.StatusCode {
	case http.StatusOK:
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, decodeErr)
		}
		return &status, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrSubmissionRejected, status.Message)
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", ErrSlotConflict, status.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}
}

// getJSON performs a read request and unwraps the {status, data} envelope
// into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env dataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if env.Status != "success" {
		return fmt.Errorf("%w: status %q: %s", ErrInvalidResponse, env.Status, env.Message)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}
	return nil
}

var fragmentMessageRe = regexp.MustCompile(`(?s)<p[^>]*>(.*?)</p>`)

func (c *Client) actionLink(ctx context.Context, path, ref string) (string, error) {
	u := fmt.Sprintf("%s%s?id=%s", c.baseURL, path, url.QueryEscape(ref))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below.
	case http.StatusNotFound:
		return "", ErrBookingNotFound
	default:
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Action links answer with a small HTML fragment; the confirmation
	// text lives in its first paragraph.
	m := fragmentMessageRe.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("%w: no message in fragment", ErrInvalidResponse)
	}
	return strings.TrimSpace(string(m[1])), nil
}
