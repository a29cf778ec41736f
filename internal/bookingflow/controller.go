package bookingflow

import (
	"context"
	"sync"

	"github.com/CsIsLab17/smart-lab-booking/internal/bookingform"
	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/internal/integrations/labapi"
	"github.com/CsIsLab17/smart-lab-booking/internal/slots"
)

// Controller owns the booking form lifecycle on the client side: the
// draft, the fetched schedule, stock data and the validity verdict derived
// from them. All mutation goes through its methods; concurrent fetch
// responses are serialized by request tokens so a stale response can never
// overwrite a newer selection.
type Controller struct {
	mu sync.Mutex

	cfg   bookingform.Config
	grid  slots.Grid
	clock TimeProvider
	log   Logger

	schedule  ScheduleFetcher
	stock     StockFetcher
	submitter Submitter

	draft     bookingform.Draft
	intervals []domain.BookedInterval
	state     bookingform.State

	// Monotonic per-concern tokens. A fetch captures the token at start
	// and only the response matching the current token is applied.
	scheduleToken uint64
	stockToken    uint64
}

// NewController creates a controller for one form variant.
func NewController(
	cfg bookingform.Config,
	schedule ScheduleFetcher,
	stock StockFetcher,
	submitter Submitter,
	clock TimeProvider,
	log Logger,
) *Controller {
	return &Controller{
		cfg:       cfg,
		grid:      slots.DefaultGrid(),
		clock:     clock,
		log:       log,
		schedule:  schedule,
		stock:     stock,
		submitter: submitter,
		draft:     bookingform.NewDraft(),
	}
}

// SetField writes a single raw field value into the draft.
func (c *Controller) SetField(f bookingform.Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.SetField(f, value)
}

// SetQuantity sets the requested quantity for one equipment item.
// Items unknown to the current stock snapshot are forced to zero.
func (c *Controller) SetQuantity(item string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if avail, ok := c.state.Stock[item]; !ok || avail <= 0 {
		qty = 0
	}
	if qty <= 0 {
		delete(c.draft.Quantities, item)
	} else {
		c.draft.Quantities[item] = qty
	}
	c.draft.Touched = true
}

// SelectDate changes the booking date and reloads the schedule for it.
// An empty date clears the current schedule without a network call. A
// fetch failure clears the interval set and raises the error flag, which
// keeps the form closed until a later fetch succeeds.
func (c *Controller) SelectDate(ctx context.Context, date string) {
	c.mu.Lock()
	c.draft.SetField(bookingform.FieldDate, date)
	c.scheduleToken++
	token := c.scheduleToken

	if date == "" {
		c.intervals = nil
		c.state.ScheduleErr = false
		c.state.ScheduleLoading = false
		c.mu.Unlock()
		return
	}

	c.state.ScheduleLoading = true
	c.mu.Unlock()

	intervals, err := c.schedule.GetBookedSlots(ctx, date)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.scheduleToken {
		// A newer selection superseded this request.
		c.log.Debug("discarding stale schedule response for date=%s", date)
		return
	}
	c.state.ScheduleLoading = false
	if err != nil {
		c.log.Error("failed to load schedule for date=%s: %v", date, err)
		c.intervals = nil
		c.state.ScheduleErr = true
		return
	}
	c.intervals = intervals
	c.state.ScheduleErr = false
}

// SelectRange changes the loan pickup/return window and reloads stock.
// While the fetch is in flight the form stays force-disabled.
func (c *Controller) SelectRange(ctx context.Context, pickupAt, returnAt string) {
	c.mu.Lock()
	c.draft.SetField(bookingform.FieldPickupAt, pickupAt)
	c.draft.SetField(bookingform.FieldReturnAt, returnAt)
	c.stockToken++
	token := c.stockToken

	if pickupAt == "" || returnAt == "" {
		c.state.Stock = nil
		c.state.CheckingStock = false
		c.state.StockErr = false
		c.mu.Unlock()
		return
	}

	c.state.CheckingStock = true
	c.mu.Unlock()

	stock, err := c.stock.GetEquipmentAvailability(ctx, pickupAt, returnAt)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.stockToken {
		c.log.Debug("discarding stale stock response for pickup=%s", pickupAt)
		return
	}
	c.state.CheckingStock = false
	if err != nil {
		c.log.Error("failed to check stock for pickup=%s: %v", pickupAt, err)
		c.state.Stock = nil
		c.state.StockErr = true
		return
	}
	c.state.Stock = stock
	c.state.StockErr = false
	c.clampQuantities()
}

// Options returns the current slot availability for rendering.
func (c *Controller) Options() slots.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.optionsLocked()
}

// Verdict computes the validity decision for the current draft.
func (c *Controller) Verdict() bookingform.Verdict {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verdictLocked()
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() bookingform.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.draft
	d.Quantities = make(map[string]int, len(c.draft.Quantities))
	for k, v := range c.draft.Quantities {
		d.Quantities[k] = v
	}
	return d
}

// Submit posts the draft if the verdict allows it. On a confirmed success
// the draft is cleared and the schedule state reset, matching a fresh page.
func (c *Controller) Submit(ctx context.Context) (*labapi.StatusResponse, error) {
	c.mu.Lock()
	if v := c.verdictLocked(); !v.Submittable {
		c.mu.Unlock()
		return nil, ErrNotSubmittable
	}
	draft := c.draft
	equipment := c.cfg.EquipmentChecks
	c.mu.Unlock()

	var (
		resp *labapi.StatusResponse
		err  error
	)
	if equipment {
		resp, err = c.submitter.SubmitEquipmentBooking(ctx, labapi.LoanSubmission{
			Email:    draft.Email,
			WANumber: draft.WANumber,
			PickupAt: draft.PickupAt,
			ReturnAt: draft.ReturnAt,
			Items:    draft.Quantities,
		})
	} else {
		resp, err = c.submitter.SubmitBooking(ctx, labapi.BookingSubmission{
			Name:         draft.Name,
			StudentID:    draft.StudentID,
			Email:        draft.Email,
			Date:         draft.Date,
			StartTime:    draft.StartClock,
			EndTime:      draft.EndClock,
			Purpose:      draft.Purpose,
			OtherPurpose: draft.OtherPurpose,
			Headcount:    draft.Headcount,
		})
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Reset()
	c.intervals = nil
	c.state = bookingform.State{}
	c.scheduleToken++
	c.stockToken++
	return resp, nil
}

func (c *Controller) optionsLocked() slots.Options {
	if c.draft.Date == "" || c.state.ScheduleErr || c.state.ScheduleLoading {
		return slots.Options{}
	}
	return slots.Compute(c.grid, c.intervals, c.clock.Now(), c.draft.Date)
}

func (c *Controller) verdictLocked() bookingform.Verdict {
	return bookingform.Validate(c.draft, c.cfg, c.optionsLocked(), c.state, c.clock.Now())
}

// clampQuantities drops requested items the fresh stock snapshot no longer
// covers.
func (c *Controller) clampQuantities() {
	for item := range c.draft.Quantities {
		if avail, ok := c.state.Stock[item]; !ok || avail <= 0 {
			delete(c.draft.Quantities, item)
		}
	}
}
