package submit_equipment_booking

import (
	"encoding/json"
	"fmt"
	"net/http"

	submitLoan "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_equipment_booking"
)

// ToUseCaseRequest maps the posted form fields onto the use case request.
// Requested items arrive as a JSON object in the itemsBorrowed field.
func ToUseCaseRequest(r *http.Request, autoApprove bool) (*submitLoan.Request, error) {
	items := map[string]int{}
	if raw := r.PostFormValue("itemsBorrowed"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("invalid itemsBorrowed payload: %w", err)
		}
	}

	return &submitLoan.Request{
		Email:       r.PostFormValue("email"),
		WANumber:    r.PostFormValue("waNumber"),
		PickupAt:    r.PostFormValue("pickupAt"),
		ReturnAt:    r.PostFormValue("returnAt"),
		Items:       items,
		AutoApprove: autoApprove,
	}, nil
}
