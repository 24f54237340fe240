package badge_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/badge"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := model.BadgeID(100000000001)

	data, err := badge.EncodePNG(id, 256)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	payload, err := badge.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "100000000001", payload)
}

func TestEncodeDefaultSize(t *testing.T) {
	data, err := badge.EncodePNG(model.MaxBadgeID, 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, badge.DefaultSize, img.Bounds().Dx())
}

func TestDecodeBlankImage(t *testing.T) {
	var buf bytes.Buffer
	blank := image.NewGray(image.Rect(0, 0, 64, 64))
	require.NoError(t, png.Encode(&buf, blank))

	_, err := badge.Decode(&buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, badge.ErrNoSymbol)
}

func TestDecodeNotAnImage(t *testing.T) {
	_, err := badge.Decode(bytes.NewReader([]byte("definitely not a png")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, badge.ErrNoSymbol)
}
