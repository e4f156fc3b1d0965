package domain

var (
	MessageSuccessConfirmRequest = "request confirmed successfully"
	MessageFailedConfirmRequest  = "failed to confirm request"
)

type (
	// ConfirmRequestResponse echoes the affected-row counts of the three
	// ordered writes: cancel competitors, confirm the chosen request,
	// close the listing.
	ConfirmRequestResponse struct {
		CanceledRequests int64 `json:"canceled_requests"`
		ConfirmedRequest int64 `json:"confirmed_request"`
		DeliveredFood    int64 `json:"delivered_food"`
	}
)
