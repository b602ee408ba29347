package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seallabs/lixi/tier"
	types "github.com/seallabs/lixi/types/v1"
)

func claimableResult(status types.Status) types.ClaimResult {
	return types.ClaimResult{
		Identifier: "SEAL01",
		Amount:     200000,
		ReceiptID:  "RCPT-123-7",
		Timestamp:  "2026-02-17T09:00:00Z",
		Status:     status,
	}
}

func TestRenderProducesUpscaledCanvas(t *testing.T) {
	res := claimableResult(types.StatusSuccess)
	img, err := Render(res, tier.Resolve(res.Amount), RenderOptions{Scale: 2})
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, baseWidth*2, b.Dx())
	assert.Equal(t, baseHeight*2, b.Dy())
}

func TestRenderDefaultsScale(t *testing.T) {
	res := claimableResult(types.StatusAlreadyClaimed)
	img, err := Render(res, tier.Resolve(res.Amount), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, baseWidth*DefaultScale, img.Bounds().Dx())
}

func TestRenderRefusesNonClaimable(t *testing.T) {
	for _, status := range []types.Status{
		types.StatusInvalidCode,
		types.StatusOutOfPool,
		types.StatusError,
		types.Status("PENDING"),
	} {
		_, err := Render(claimableResult(status), tier.Resolve(0), RenderOptions{})
		assert.Error(t, err, "status %s", status)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "500,000 VND", FormatAmount(500000))
	assert.Equal(t, "0 VND", FormatAmount(0))
}
