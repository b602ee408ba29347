package v1

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seallabs/lixi/logger/xzap"
	"github.com/seallabs/lixi/service/svc"
	types "github.com/seallabs/lixi/types/v1"
	"github.com/seallabs/lixi/xhttp"
)

// claimResponse is the service's raw wire shape: lowercase status,
// snake_case receipt id, no timestamp. The client is responsible for
// canonicalizing it, so the stand-in must not pre-normalize.
type claimResponse struct {
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	ReceiptID string `json:"receipt_id"`
	Message   string `json:"message,omitempty"`
}

// PostClaim 领取红包
func PostClaim(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Browsers send the JSON body declared as text/plain, so bind from
		// the raw bytes instead of content-type negotiation.
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusOK, claimResponse{Status: "error", Message: "unreadable request body"})
			return
		}

		req := new(types.ClaimRequest)
		if err := json.Unmarshal(body, req); err != nil || strings.TrimSpace(req.Code) == "" {
			c.JSON(http.StatusOK, claimResponse{
				Status:  "invalid_code",
				Message: "Please enter a valid code.",
			})
			return
		}

		draw := svcCtx.Sim.Draw(c.Request.Context(), req.Code)

		resp := claimResponse{
			Status:  strings.ToLower(string(draw.Status)),
			Amount:  draw.Amount,
			Message: draw.Message,
		}
		if draw.Status == types.StatusSuccess {
			// service-issued token, unlike the client-side synthesized ids
			resp.ReceiptID = "RCPT-" + uuid.NewString()
		} else if draw.Status == types.StatusAlreadyClaimed {
			resp.ReceiptID = draw.ReceiptID
		}

		xzap.WithContext(c.Request.Context()).Info("claim served",
			zap.String("code", req.Code),
			zap.String("status", resp.Status),
			zap.Int64("amount", resp.Amount))

		c.JSON(http.StatusOK, resp)
	}
}

// GetFortune 抽签
func GetFortune(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		xhttp.OkJson(c, svcCtx.DrawFortune())
	}
}
