package receipt

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/tier"
	types "github.com/seallabs/lixi/types/v1"
)

type stubSharer struct {
	err   error
	calls int
	last  Artifact
}

func (s *stubSharer) Share(ctx context.Context, art Artifact, title, caption string) error {
	s.calls++
	s.last = art
	return s.err
}

type stubClipboard struct {
	arts []Artifact
}

func (s *stubClipboard) WriteImage(art Artifact) error {
	s.arts = append(s.arts, art)
	return nil
}

func newTestExporter(t *testing.T, opts ...ExportOption) *Exporter {
	t.Helper()
	cfg := config.ExportConf{Dir: t.TempDir(), Scale: 1}
	return NewExporter(cfg, opts...)
}

func TestExportNativeShareShortCircuits(t *testing.T) {
	sharer := &stubSharer{}
	e := newTestExporter(t, WithSharer(sharer))

	res := claimableResult(types.StatusSuccess)
	fb, err := e.Export(context.Background(), res, tier.Resolve(res.Amount))
	require.NoError(t, err)
	assert.Nil(t, fb, "successful native share needs no fallback")
	assert.Equal(t, 1, sharer.calls)
	assert.Equal(t, "seal-lucky-money-SEAL01.png", sharer.last.Name)
}

func TestExportFallsThroughOnShareOutcomes(t *testing.T) {
	for name, shareErr := range map[string]error{
		"unavailable": ErrShareUnavailable,
		"canceled":    ErrShareCanceled,
	} {
		t.Run(name, func(t *testing.T) {
			e := newTestExporter(t, WithSharer(&stubSharer{err: shareErr}))

			res := claimableResult(types.StatusSuccess)
			fb, err := e.Export(context.Background(), res, tier.Resolve(res.Amount))
			require.NoError(t, err, "share fall-through is not an error")
			require.NotNil(t, fb)
		})
	}
}

func TestExportWithoutSharerProducesFallback(t *testing.T) {
	clip := &stubClipboard{}
	e := newTestExporter(t, WithClipboard(clip))

	res := claimableResult(types.StatusSuccess)
	fb, err := e.Export(context.Background(), res, tier.Resolve(res.Amount))
	require.NoError(t, err)
	require.NotNil(t, fb)

	// download, twice, both fine
	path1, err := fb.Download()
	require.NoError(t, err)
	path2, err := fb.Download()
	require.NoError(t, err)
	assert.Equal(t, path1, path2)

	data, err := os.ReadFile(path1)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "downloaded artifact must be a valid PNG")
	assert.Equal(t, baseWidth, img.Bounds().Dx())

	// clipboard leg
	require.NoError(t, fb.CopyClipboard())
	require.Len(t, clip.arts, 1)
	assert.Equal(t, "seal-lucky-money-SEAL01.png", clip.arts[0].Name)
}

func TestFallbackCloseReleasesArtifact(t *testing.T) {
	e := newTestExporter(t, WithClipboard(&stubClipboard{}))

	res := claimableResult(types.StatusAlreadyClaimed)
	fb, err := e.Export(context.Background(), res, tier.Resolve(res.Amount))
	require.NoError(t, err)

	fb.Close()
	_, err = fb.Download()
	assert.Error(t, err)
	assert.Error(t, fb.CopyClipboard())
	_, err = fb.Artifact()
	assert.Error(t, err)
}

func TestExportRefusesNonClaimable(t *testing.T) {
	e := newTestExporter(t)
	res := claimableResult(types.StatusError)
	_, err := e.Export(context.Background(), res, tier.Resolve(res.Amount))
	assert.Error(t, err)
}

func TestFileNameSanitizesIdentifier(t *testing.T) {
	assert.Equal(t, "seal-lucky-money-SEAL01.png", FileName("SEAL01"))
	assert.Equal(t, "seal-lucky-money-ellie@seallabs.xyz.png", FileName("ellie@seallabs.xyz"))
	assert.Equal(t, "seal-lucky-money-a-b.png", FileName("a/b"))
	assert.Equal(t, "seal-lucky-money-receipt.png", FileName("   "))
}
