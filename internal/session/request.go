package session

import "github.com/MKhiriev/go-crypto-catalog/models"

// RequestStatus is the lifecycle stage of the current submission.
type RequestStatus int

const (
	RequestIdle RequestStatus = iota
	RequestPending
	RequestSucceeded
	RequestFailed
)

func (s RequestStatus) String() string {
	switch s {
	case RequestPending:
		return "pending"
	case RequestSucceeded:
		return "succeeded"
	case RequestFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one submission. A completion is accepted only when its
// ticket equals the ticket of the pending request.
type Ticket struct {
	Generation uint64
	RequestID  string
}

// RequestState is Idle, Pending, Succeeded(Result) or Failed(Err).
type RequestState struct {
	Status RequestStatus
	Ticket Ticket
	Result models.OperationResult
	Err    error
}

// IsLoading reports whether a submission is pending.
func (r RequestState) IsLoading() bool {
	return r.Status == RequestPending
}

// HasResult reports whether a successful result is available.
func (r RequestState) HasResult() bool {
	return r.Status == RequestSucceeded
}

func (r RequestState) begin(t Ticket) RequestState {
	return RequestState{Status: RequestPending, Ticket: t}
}

func (r RequestState) complete(t Ticket, result models.OperationResult, err error) (RequestState, bool) {
	if r.Status != RequestPending || r.Ticket != t {
		return r, false
	}

	if err != nil {
		return RequestState{Status: RequestFailed, Ticket: t, Err: err}, true
	}
	return RequestState{Status: RequestSucceeded, Ticket: t, Result: result}, true
}
