package uploads

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveImage_StoresFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	saver := NewSaver(dir, 6*1024*1024, nopLogger{})

	url, err := saver.SaveImage(context.Background(), bytes.NewReader(pngBytes(t)), "photo.png")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, URLPrefix))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, URLPrefix)
	saved, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes(t), saved)

	// Для декодируемого формата рядом появляется превью
	base := strings.TrimSuffix(name, filepath.Ext(name))
	_, err = os.Stat(filepath.Join(dir, base+"_thumb.jpg"))
	assert.NoError(t, err)
}

func TestSaveImage_UnknownExtensionFallsBackToJpg(t *testing.T) {
	saver := NewSaver(t.TempDir(), 6*1024*1024, nopLogger{})

	url, err := saver.SaveImage(context.Background(), bytes.NewReader(pngBytes(t)), "photo.gif")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	url, err = saver.SaveImage(context.Background(), bytes.NewReader(pngBytes(t)), "noextension")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	saver := NewSaver(t.TempDir(), 6*1024*1024, nopLogger{})

	_, err := saver.SaveImage(context.Background(), strings.NewReader("just some plain text, definitely not an image"), "note.txt")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestSaveImage_RejectsEmpty(t *testing.T) {
	saver := NewSaver(t.TempDir(), 6*1024*1024, nopLogger{})

	_, err := saver.SaveImage(context.Background(), bytes.NewReader(nil), "empty.png")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSaveImage_RejectsOversize(t *testing.T) {
	raw := pngBytes(t)
	saver := NewSaver(t.TempDir(), int64(len(raw)-1), nopLogger{})

	_, err := saver.SaveImage(context.Background(), bytes.NewReader(raw), "big.png")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveImage_UniqueNames(t *testing.T) {
	saver := NewSaver(t.TempDir(), 6*1024*1024, nopLogger{})
	ctx := context.Background()

	first, err := saver.SaveImage(ctx, bytes.NewReader(pngBytes(t)), "photo.png")
	require.NoError(t, err)
	second, err := saver.SaveImage(ctx, bytes.NewReader(pngBytes(t)), "photo.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
