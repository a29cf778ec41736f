package bookingform

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/internal/slots"
)

// Severity drives how the verdict message is presented.
type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeveritySuccess Severity = "success"
	SeverityFailure Severity = "failure"
)

// Verdict is the single validity decision for the current draft: whether
// the submit action is available plus the message shown to the user.
// Pure function of the current state, never persisted.
type Verdict struct {
	Submittable bool
	Message     string
	Severity    Severity
}

// State carries the schedule/stock signals the validator folds in. The
// interval set and the fetch-error flag are deliberately separate: a failed
// fetch clears the schedule, and only this flag keeps the form fail-closed.
type State struct {
	ScheduleLoading bool
	ScheduleErr     bool

	Stock         map[string]int
	CheckingStock bool
	StockErr      bool
}

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
	idRe    = regexp.MustCompile(`^[0-9]+$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@(my\.)?sampoernauniversity\.ac\.id$`)
	waRe    = regexp.MustCompile(`^62\d{9,13}$`)
)

const (
	msgReady           = "All fields are valid. Ready to submit."
	msgFillRequired    = "Please fill all required fields."
	msgSelectDate      = "Please select a date to see available time slots."
	msgSelectRange     = "Please select pickup and return dates to check stock."
	msgCheckingStock   = "Checking item availability..."
	msgCheckingSlots   = "Checking schedule..."
	msgScheduleFailed  = "Failed to load schedule. Please try again."
	msgStockFailed     = "Failed to check stock. Please try again."
	msgBadName         = "Error: Name may only contain letters and spaces."
	msgBadStudentID    = "Error: Student ID must contain digits only."
	msgBadEmail        = "Error: Email must use @my.sampoernauniversity.ac.id or @sampoernauniversity.ac.id domain."
	msgBadWA           = "Error: WhatsApp number must start with 62 (e.g., 6281234...)."
	msgEndBeforeStart  = "Error: End time must be after start time."
	msgDurationCap     = "Error: Maximum booking duration is 2 hours."
	msgBadHeadcount    = "Error: Number of people must be at least 1."
	msgPickupTooSoon   = "Error: Pickup must be at least 24 hours from now."
	msgReturnNotAfter  = "Error: Return date must be after pickup date."
	msgNoItems         = "Error: You must request at least one piece of equipment."
	msgItemOverStockF  = "Error: Quantity for %s exceeds available stock (%d)."
	msgItemUnavailableF = "Error: %s is not available for the selected dates."
)

// Validate evaluates every rule against the draft and produces a single
// verdict. The first failing rule wins the message; submittability is the
// conjunction of all of them. While a stock fetch is in flight the
// equipment variant skips validation entirely and stays force-disabled so
// it never races stale stock data.
func Validate(draft Draft, cfg Config, opts slots.Options, state State, now time.Time) Verdict {
	if cfg.EquipmentChecks && state.CheckingStock {
		return Verdict{Message: msgCheckingStock, Severity: SeverityNeutral}
	}
	if state.ScheduleLoading {
		return Verdict{Message: msgCheckingSlots, Severity: SeverityNeutral}
	}

	var failures []string
	fail := func(msg string) { failures = append(failures, msg) }

	// 1. Fail closed until the schedule and stock are actually known.
	if requiresSchedule(cfg) && state.ScheduleErr {
		fail(msgScheduleFailed)
	}
	if cfg.EquipmentChecks && state.StockErr {
		fail(msgStockFailed)
	}

	// 2. Identity formats, only once a value is present.
	if !blank(draft.Name) && !nameRe.MatchString(draft.Name) {
		fail(msgBadName)
	}
	if !blank(draft.StudentID) && !idRe.MatchString(draft.StudentID) {
		fail(msgBadStudentID)
	}
	if !blank(draft.Email) && !emailRe.MatchString(draft.Email) {
		fail(msgBadEmail)
	}
	if cfg.EquipmentChecks && !blank(draft.WANumber) && !waRe.MatchString(draft.WANumber) {
		fail(msgBadWA)
	}

	// 3. Time ordering and the duration cap. A previously chosen value
	// that is no longer enabled counts as unchosen.
	start, startChosen := chosenStart(draft, opts)
	end, endChosen := chosenEnd(draft, opts)
	if startChosen && endChosen {
		switch {
		case end <= start:
			fail(msgEndBeforeStart)
		case cfg.DurationCapMinutes > 0 && end-start > cfg.DurationCapMinutes:
			fail(msgDurationCap)
		}
	}

	if cfg.EquipmentChecks {
		validateLoanWindow(draft, now, fail)
	}

	// 4. The "Other" purpose needs its free-text justification.
	if draft.Purpose == domain.PurposeOther && blank(draft.OtherPurpose) {
		fail(msgFillRequired)
	}

	// 5. Headcount, when the variant has one.
	if cfg.RequireHeadcount && !blank(draft.Headcount) {
		n, err := strconv.Atoi(draft.Headcount)
		if err != nil || n < domain.MinHeadcount {
			fail(msgBadHeadcount)
		}
	}

	// 6. Equipment quantities against known stock.
	if cfg.EquipmentChecks {
		validateQuantities(draft, state, fail)
	}

	// 7. Every required field of the variant must be filled in.
	filled := requiredFilled(draft, cfg, startChosen, endChosen)
	if !filled {
		fail(msgFillRequired)
	}

	if len(failures) == 0 {
		return Verdict{Submittable: true, Message: msgReady, Severity: SeveritySuccess}
	}
	if !draft.Touched {
		return Verdict{Message: neutralPrompt(cfg), Severity: SeverityNeutral}
	}
	return Verdict{Message: failures[0], Severity: SeverityFailure}
}

func chosenStart(draft Draft, opts slots.Options) (int, bool) {
	if blank(draft.StartClock) {
		return 0, false
	}
	t := domain.ClockToMinutes(draft.StartClock)
	return t, opts.StartEnabled(t)
}

func chosenEnd(draft Draft, opts slots.Options) (int, bool) {
	if blank(draft.EndClock) {
		return 0, false
	}
	t := domain.ClockToMinutes(draft.EndClock)
	return t, opts.EndEnabled(t)
}

func validateLoanWindow(draft Draft, now time.Time, fail func(string)) {
	var pickup, ret time.Time
	var pickupOK, retOK bool

	if !blank(draft.PickupAt) {
		if t, err := time.ParseInLocation(domain.DateTimeFormat, draft.PickupAt, now.Location()); err == nil {
			pickup, pickupOK = t, true
		}
	}
	if !blank(draft.ReturnAt) {
		if t, err := time.ParseInLocation(domain.DateTimeFormat, draft.ReturnAt, now.Location()); err == nil {
			ret, retOK = t, true
		}
	}

	// One minute of tolerance so the form filled right at the cutoff
	// does not flicker invalid.
	minPickup := now.Add(domain.MinPickupNoticeHours*time.Hour - time.Minute)

	switch {
	case pickupOK && pickup.Before(minPickup):
		fail(msgPickupTooSoon)
	case pickupOK && retOK && !ret.After(pickup):
		fail(msgReturnNotAfter)
	}
}

func validateQuantities(draft Draft, state State, fail func(string)) {
	// Item order decides which message surfaces when several lines are
	// broken at once; sort so the verdict is stable across runs.
	names := make([]string, 0, len(draft.Quantities))
	for name := range draft.Quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		qty := draft.Quantities[name]
		if qty <= 0 {
			continue
		}
		total += qty

		stock, known := state.Stock[name]
		switch {
		case !known || stock <= 0:
			// Unknown items and zero stock force the quantity to 0.
			fail(fmt.Sprintf(msgItemUnavailableF, name))
		case qty > stock:
			fail(fmt.Sprintf(msgItemOverStockF, name, stock))
		}
	}
	if total < 1 {
		fail(msgNoItems)
	}
}

func requiredFilled(draft Draft, cfg Config, startChosen, endChosen bool) bool {
	for _, f := range cfg.Required {
		switch f {
		case FieldStartTime:
			if !startChosen {
				return false
			}
		case FieldEndTime:
			if !endChosen {
				return false
			}
		case FieldHeadcount:
			n, err := strconv.Atoi(draft.Headcount)
			if blank(draft.Headcount) || err != nil || n <= 0 {
				return false
			}
		default:
			if blank(draft.fieldValue(f)) {
				return false
			}
		}
	}
	if draft.Purpose == domain.PurposeOther && blank(draft.OtherPurpose) {
		return false
	}
	return true
}

func requiresSchedule(cfg Config) bool {
	for _, f := range cfg.Required {
		if f == FieldDate {
			return true
		}
	}
	return false
}

func neutralPrompt(cfg Config) string {
	if cfg.EquipmentChecks {
		return msgSelectRange
	}
	return msgSelectDate
}
