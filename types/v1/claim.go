package types

// Status 领取结果状态
type Status string

const (
	StatusSuccess        Status = "SUCCESS"
	StatusAlreadyClaimed Status = "ALREADY_CLAIMED"
	StatusInvalidCode    Status = "INVALID_CODE"
	StatusOutOfPool      Status = "OUT_OF_POOL"
	StatusError          Status = "ERROR"
)

// Claimable reports whether a result with this status carries a receipt
// that may be revealed and exported. Unrecognized statuses from the wire
// are never claimable.
func (s Status) Claimable() bool {
	return s == StatusSuccess || s == StatusAlreadyClaimed
}

// ClaimRequest 领取红包请求
type ClaimRequest struct {
	Code string `json:"code" binding:"required"`
}

// ClaimResult is the canonical outcome of one claim attempt, immutable
// once constructed. Identifier is always the value the participant
// submitted, never the echo from the service.
type ClaimResult struct {
	Identifier string `json:"employee_code"`
	Amount     int64  `json:"amount"`
	ReceiptID  string `json:"receipt_id"`
	Timestamp  string `json:"timestamp"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
}
