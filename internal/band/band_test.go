package band

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	bands := Defaults()
	require.Len(t, bands, 2)

	for _, b := range bands {
		assert.NoError(t, b.Validate())
		assert.True(t, b.Enabled)
	}

	assert.Equal(t, "zigzag_line1", bands[0].ID)
	assert.Equal(t, 20, bands[0].HueMin)
	assert.Equal(t, 35, bands[0].HueMax)
	assert.Equal(t, "zigzag_line2", bands[1].ID)
	assert.Equal(t, 120, bands[1].HueMin)
	assert.Equal(t, 150, bands[1].HueMax)
}

func TestValidate(t *testing.T) {
	valid := Defaults()[0]

	tests := []struct {
		name   string
		mutate func(*Band)
	}{
		{"missing id", func(b *Band) { b.ID = "" }},
		{"hue above ceiling", func(b *Band) { b.HueMax = 200 }},
		{"negative saturation", func(b *Band) { b.SatMin = -1 }},
		{"value above ceiling", func(b *Band) { b.ValMax = 300 }},
		{"inverted hue", func(b *Band) { b.HueMin = 100; b.HueMax = 50 }},
		{"inverted value", func(b *Band) { b.ValMin = 200; b.ValMax = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			assert.Error(t, b.Validate())
			assert.False(t, b.BoundsValid() && b.ID != "")
		})
	}

	assert.NoError(t, valid.Validate())
	assert.True(t, valid.BoundsValid())
}

func TestWithRange(t *testing.T) {
	b := Defaults()[0].WithRange(10, 20, 30, 40, 50, 60)
	assert.Equal(t, 10, b.HueMin)
	assert.Equal(t, 20, b.HueMax)
	assert.Equal(t, 30, b.SatMin)
	assert.Equal(t, 40, b.SatMax)
	assert.Equal(t, 50, b.ValMin)
	assert.Equal(t, 60, b.ValMax)

	// Original untouched
	assert.Equal(t, 20, Defaults()[0].HueMin)
}
