package domain

// Movement is the direction of a hardware request.
type Movement string

const (
	CheckIn  Movement = "checked in"
	CheckOut Movement = "checked out"
)

// Request is the body returned by the check-in and check-out endpoints.
// Both fields are opaque strings; qty is never parsed.
type Request struct {
	ProjectID string `json:"projectId"`
	Qty       string `json:"qty"`
	Message   string `json:"message"`
}

func NewRequest(m Movement, projectID, qty string) Request {
	return Request{
		ProjectID: projectID,
		Qty:       qty,
		Message:   Message(m, qty),
	}
}

// Message renders "<qty> hardware <movement>". An empty qty keeps the
// leading space.
func Message(m Movement, qty string) string {
	return qty + " hardware " + string(m)
}
