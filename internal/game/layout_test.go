package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name                   string
		wrapper, width, height float64
		want                   float64
	}{
		{"large screen", 1200, 1280, 1000, 1},
		{"narrow wrapper", 720, 720, 1000, 0.9},
		{"short viewport", 1200, 1280, 670, 0.9},
		{"clamped to minimum", 300, 320, 480, 0.8},
		{"wrapper unmeasured uses viewport", 0, 760, 1000, 0.95},
		{"not a number", math.NaN(), math.NaN(), math.NaN(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeScale(tt.wrapper, tt.width, tt.height), 1e-9)
		})
	}
}

func TestLayoutRect(t *testing.T) {
	c := &models.Content{
		GameArea:  models.Rect{X: 10, Y: 20, W: 800, H: 500},
		Backpack:  models.Rect{X: 700, Y: 400, W: 100, H: 100},
		HuntItems: []models.HuntItem{{ID: "map", Rect: models.Rect{X: 100, Y: 50, W: 80, H: 60}}},
	}
	l := NewLayout(c)
	l.SetScale(0.5)

	area, err := l.Rect(ElemGameArea)
	require.NoError(t, err)
	assert.Equal(t, models.Rect{X: 10, Y: 20, W: 400, H: 250}, area)

	item, err := l.Rect("map")
	require.NoError(t, err)
	assert.Equal(t, models.Rect{X: 60, Y: 45, W: 40, H: 30}, item)

	_, err = l.Rect("nowhere")
	assert.ErrorIs(t, err, ErrNoRect)

	l.SetScale(-1)
	assert.Equal(t, 1.0, l.Scale())
}

func TestFriendlyName(t *testing.T) {
	assert.Equal(t, "magnifying glass", FriendlyName("magnifying-glass"))
	assert.Equal(t, "a b c", FriendlyName("a-b-c"))
	assert.Equal(t, "map", FriendlyName("map"))
	assert.Equal(t, "Grapes", Capitalize("grapes"))
	assert.Equal(t, "btn-theirs", AnswerElement(models.OwnerTheirs))
}
