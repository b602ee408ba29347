package claim

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	types "github.com/seallabs/lixi/types/v1"
)

// UnknownReceiptID is the sentinel used when the service supplies no
// receipt id under any accepted field name.
const UnknownReceiptID = "UNKNOWN"

// wireResult mirrors the allocation service's response body. The service
// has emitted more than one shape over time: status casing varies, the
// receipt id arrives as either receiptId or receipt_id, and timestamp is
// sometimes skipped. email is a legacy identifier echo, display-only.
type wireResult struct {
	Status          *string      `json:"status"`
	Amount          *json.Number `json:"amount"`
	ReceiptID       string       `json:"receiptId"`
	ReceiptIDLegacy string       `json:"receipt_id"`
	Timestamp       string       `json:"timestamp"`
	Message         string       `json:"message"`
	Email           string       `json:"email"`
}

// normalize converts a raw response body into the canonical ClaimResult.
//
// Accepted source fields, in order, per canonical field:
//   - status:    "status" (mandatory; upper-cased for comparison,
//     unrecognized values pass through and stay non-claimable)
//   - amount:    "amount" (mandatory; non-negative integer)
//   - receiptId: "receiptId", "receipt_id", else UnknownReceiptID
//   - timestamp: "timestamp", else now (UTC, RFC3339)
//   - identifier: always the submitted value, never the response echo
func normalize(identifier string, body []byte, now time.Time) (types.ClaimResult, error) {
	var raw wireResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return types.ClaimResult{}, errors.Wrap(err, "parse claim response")
	}

	if raw.Status == nil || strings.TrimSpace(*raw.Status) == "" {
		return types.ClaimResult{}, errors.New("claim response missing mandatory field: status")
	}
	if raw.Amount == nil {
		return types.ClaimResult{}, errors.New("claim response missing mandatory field: amount")
	}
	amount, err := raw.Amount.Int64()
	if err != nil {
		return types.ClaimResult{}, errors.Wrap(err, "claim response amount is not an integer")
	}
	if amount < 0 {
		return types.ClaimResult{}, errors.New("claim response amount is negative")
	}

	receiptID := raw.ReceiptID
	if receiptID == "" {
		receiptID = raw.ReceiptIDLegacy
	}
	if receiptID == "" {
		receiptID = UnknownReceiptID
	}

	timestamp := raw.Timestamp
	if timestamp == "" {
		timestamp = now.UTC().Format(time.RFC3339)
	}

	return types.ClaimResult{
		Identifier: identifier,
		Amount:     amount,
		ReceiptID:  receiptID,
		Timestamp:  timestamp,
		Status:     types.Status(strings.ToUpper(strings.TrimSpace(*raw.Status))),
		Message:    raw.Message,
	}, nil
}
