package receipt

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/logger/xzap"
	"github.com/seallabs/lixi/tier"
	types "github.com/seallabs/lixi/types/v1"
)

const fileNamePrefix = "seal-lucky-money"

// ShareTitle tags the artifact when it goes through a native sharer.
const ShareTitle = "Seal Labs Lucky Money"

// Artifact is the encoded receipt image.
type Artifact struct {
	Name string
	PNG  []byte
}

// Sentinel outcomes a Sharer may return. Both are defined fall-through
// triggers for the export chain, not user-facing failures.
var (
	ErrShareUnavailable = errors.New("native share unavailable on this platform")
	ErrShareCanceled    = errors.New("share canceled")
)

// Sharer is the platform-native share surface, when the host has one.
type Sharer interface {
	Share(ctx context.Context, art Artifact, title, caption string) error
}

// ClipboardWriter copies the artifact to the system clipboard.
type ClipboardWriter interface {
	WriteImage(art Artifact) error
}

// dataURIClipboard carries the PNG as a data URI through the text
// clipboard, which every desktop target supports.
type dataURIClipboard struct{}

func (dataURIClipboard) WriteImage(art Artifact) error {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(art.PNG)
	return clipboard.WriteAll(uri)
}

// Exporter runs the pipeline: rasterize, try native share, otherwise hand
// back a Fallback with download and clipboard actions.
type Exporter struct {
	dir    string
	scale  int
	sharer Sharer
	clip   ClipboardWriter
}

type ExportOption func(*Exporter)

func WithSharer(s Sharer) ExportOption {
	return func(e *Exporter) { e.sharer = s }
}

func WithClipboard(c ClipboardWriter) ExportOption {
	return func(e *Exporter) { e.clip = c }
}

func NewExporter(cfg config.ExportConf, opts ...ExportOption) *Exporter {
	e := &Exporter{
		dir:   cfg.Dir,
		scale: cfg.Scale,
		clip:  dataURIClipboard{},
	}
	if e.dir == "" {
		e.dir = "."
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FileName derives the deterministic artifact name from the identifier.
func FileName(identifier string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-' || r == '@':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(identifier))
	if cleaned == "" {
		cleaned = "receipt"
	}
	return fmt.Sprintf("%s-%s.png", fileNamePrefix, cleaned)
}

// Export renders and routes the receipt. A nil Fallback with a nil error
// means the native share took it. Rasterization or encoding problems are
// the pipeline's single surfaced error; the receipt on screen is untouched
// and the user may simply try again.
func (e *Exporter) Export(ctx context.Context, res types.ClaimResult, t tier.Tier) (*Fallback, error) {
	if !res.Status.Claimable() {
		return nil, errors.Errorf("receipt export requires a claimable result, got %s", res.Status)
	}

	img, err := Render(res, t, RenderOptions{Scale: e.scale})
	if err != nil {
		return nil, errors.Wrap(err, "could not save receipt, please screenshot manually")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "could not save receipt, please screenshot manually")
	}

	art := Artifact{Name: FileName(res.Identifier), PNG: buf.Bytes()}
	caption := fmt.Sprintf("I got %s!", FormatAmount(res.Amount))

	if e.sharer != nil {
		err := e.sharer.Share(ctx, art, ShareTitle, caption)
		if err == nil {
			return nil, nil
		}
		// Cancellation and missing platform support both fall through to
		// the manual actions, by contract.
		xzap.WithContext(ctx).Info("native share fell through",
			zap.String("artifact", art.Name), zap.Error(err))
	}

	return &Fallback{art: art, dir: e.dir, clip: e.clip}, nil
}

// Fallback presents the rendered artifact with two explicit actions, each
// invocable any number of times until Close releases the artifact.
type Fallback struct {
	mu     sync.Mutex
	art    Artifact
	dir    string
	clip   ClipboardWriter
	closed bool
}

var errFallbackClosed = errors.New("export surface closed, artifact released")

func (f *Fallback) Artifact() (Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return Artifact{}, errFallbackClosed
	}
	return f.art, nil
}

// Download writes the artifact into the export directory and returns the
// path.
func (f *Fallback) Download() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", errFallbackClosed
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create export dir")
	}
	path := filepath.Join(f.dir, f.art.Name)
	if err := os.WriteFile(path, f.art.PNG, 0o644); err != nil {
		return "", errors.Wrap(err, "write receipt image")
	}
	return path, nil
}

// CopyClipboard puts the artifact on the system clipboard.
func (f *Fallback) CopyClipboard() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errFallbackClosed
	}
	return errors.Wrap(f.clip.WriteImage(f.art), "copy receipt to clipboard")
}

// Close releases the artifact; the owner calls it when the share surface
// goes away.
func (f *Fallback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.art = Artifact{}
	f.closed = true
}
