// Package receipt renders the canonical claim result into a shareable PNG
// and routes it through the share-or-fallback chain.
package receipt

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/seallabs/lixi/tier"
	types "github.com/seallabs/lixi/types/v1"
)

// Base canvas size in CSS-ish pixels; Scale multiplies it for crispness on
// high-density displays, matching the html2canvas scale the web app used.
const (
	baseWidth    = 384
	baseHeight   = 560
	DefaultScale = 3
)

type RenderOptions struct {
	Scale int
}

var (
	fontOnce    sync.Once
	fontErr     error
	fontRegular *sfnt.Font
	fontBold    *sfnt.Font
	fontMono    *sfnt.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		parse := func(ttf []byte) *sfnt.Font {
			if fontErr != nil {
				return nil
			}
			f, err := opentype.Parse(ttf)
			if err != nil {
				fontErr = err
			}
			return f
		}
		fontRegular = parse(goregular.TTF)
		fontBold = parse(gobold.TTF)
		fontMono = parse(gomono.TTF)
	})
	return fontErr
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a grouped amount with the currency suffix used on
// receipts and share captions.
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d VND", amount)
}

// Render rasterizes the receipt for a claimable result. Any failure here
// is the pipeline's single user-visible error; the reveal state is never
// touched.
func Render(res types.ClaimResult, t tier.Tier, opts RenderOptions) (image.Image, error) {
	if !res.Status.Claimable() {
		return nil, errors.Errorf("refusing to render receipt for status %s", res.Status)
	}
	if err := loadFonts(); err != nil {
		return nil, errors.Wrap(err, "load receipt fonts")
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	s := float64(scale)
	w, h := baseWidth*scale, baseHeight*scale
	dc := gg.NewContext(w, h)

	// paper background + gold frame
	dc.SetHexColor("#FAF9F6")
	dc.Clear()
	dc.SetRGBA(1, 215.0/255, 0, 0.5)
	dc.SetLineWidth(4 * s)
	dc.DrawRectangle(2*s, 2*s, float64(w)-4*s, float64(h)-4*s)
	dc.Stroke()

	faceAt := func(f *sfnt.Font, size float64) (font.Face, error) {
		return newFace(f, size*s)
	}

	small, err := faceAt(fontMono, 10)
	if err != nil {
		return nil, errors.Wrap(err, "build receipt font face")
	}
	body, err := faceAt(fontRegular, 13)
	if err != nil {
		return nil, errors.Wrap(err, "build receipt font face")
	}
	heading, err := faceAt(fontBold, 16)
	if err != nil {
		return nil, errors.Wrap(err, "build receipt font face")
	}
	big, err := faceAt(fontBold, 28)
	if err != nil {
		return nil, errors.Wrap(err, "build receipt font face")
	}
	stampFace, err := faceAt(fontBold, 30)
	if err != nil {
		return nil, errors.Wrap(err, "build receipt font face")
	}

	cx, cy := float64(w)/2, float64(h)/2

	// faded stamp behind everything else
	stamp := "APPROVED"
	if res.Status == types.StatusAlreadyClaimed {
		stamp = "REISSUED"
	}
	dc.Push()
	dc.RotateAbout(gg.Radians(-12), cx, cy)
	dc.SetRGBA(239.0/255, 68.0/255, 68.0/255, 0.2)
	dc.SetLineWidth(6 * s)
	dc.DrawCircle(cx, cy, 96*s)
	dc.Stroke()
	dc.SetFontFace(stampFace)
	dc.DrawStringAnchored(stamp, cx, cy, 0.5, 0.5)
	dc.Pop()

	// brand line
	dc.SetFontFace(small)
	dc.SetHexColor("#9CA3AF")
	dc.DrawStringAnchored("SEAL LABS • 2026", float64(w)-16*s, 20*s, 1, 0.5)

	// red seal medallion
	dc.SetHexColor("#D9381E")
	dc.DrawCircle(cx, 64*s, 28*s)
	dc.Fill()
	dc.SetFontFace(big)
	dc.SetHexColor("#FFD700")
	dc.DrawStringAnchored("$", cx, 64*s, 0.5, 0.5)

	dc.SetFontFace(heading)
	dc.SetHexColor("#6B7280")
	dc.DrawStringAnchored("LUCKY MONEY RECEIPT", cx, 112*s, 0.5, 0.5)
	dc.SetFontFace(body)
	dc.SetHexColor("#9CA3AF")
	dc.DrawStringAnchored("Official Allocation", cx, 130*s, 0.5, 0.5)

	// dashed divider
	dc.SetDash(4*s, 4*s)
	dc.SetHexColor("#D1D5DB")
	dc.SetLineWidth(1 * s)
	dc.DrawLine(24*s, 150*s, float64(w)-24*s, 150*s)
	dc.Stroke()
	dc.SetDash()

	left, right := 24*s, float64(w)-24*s
	row := func(y float64, label, value string, valueFace font.Face, valueColor string) {
		dc.SetFontFace(body)
		dc.SetHexColor("#6B7280")
		dc.DrawStringAnchored(label, left, y, 0, 0.5)
		dc.SetFontFace(valueFace)
		dc.SetHexColor(valueColor)
		dc.DrawStringAnchored(value, right, y, 1, 0.5)
	}

	row(180*s, "Code", res.Identifier, heading, "#1A0F0F")
	dc.SetFontFace(body)
	dc.SetHexColor("#6B7280")
	dc.DrawStringAnchored("Amount", left, 220*s, 0, 0.5)
	dc.SetFontFace(big)
	dc.SetHexColor("#D9381E")
	dc.DrawStringAnchored(FormatAmount(res.Amount), right, 220*s, 1, 0.5)

	row(260*s, "Receipt ID", res.ReceiptID, small, "#9CA3AF")
	row(284*s, "Time", res.Timestamp, small, "#9CA3AF")

	// tier text
	dc.SetFontFace(heading)
	dc.SetHexColor("#1A0F0F")
	dc.DrawStringAnchored(t.Title, cx, 330*s, 0.5, 0.5)
	dc.SetFontFace(body)
	dc.SetHexColor("#6B7280")
	dc.DrawStringWrapped(t.Message, cx, 352*s, 0.5, 0, float64(w)-64*s, 1.4, gg.AlignCenter)

	// footer
	dc.SetHexColor("#E5E7EB")
	dc.SetLineWidth(1 * s)
	dc.DrawLine(24*s, float64(h)-72*s, float64(w)-24*s, float64(h)-72*s)
	dc.Stroke()
	dc.SetFontFace(small)
	dc.SetHexColor("#9CA3AF")
	dc.DrawStringAnchored("ID: "+res.ReceiptID, cx, float64(h)-52*s, 0.5, 0.5)

	grad := gg.NewLinearGradient(left, 0, right, 0)
	grad.AddColorStop(0, color.NRGBA{R: 0xD9, G: 0x38, B: 0x1E, A: 0x33})
	grad.AddColorStop(0.5, color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0x33})
	grad.AddColorStop(1, color.NRGBA{R: 0xD9, G: 0x38, B: 0x1E, A: 0x33})
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(left, float64(h)-32*s, right-left, 8*s, 4*s)
	dc.Fill()

	return dc.Image(), nil
}
