package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

// ErrNoRect is returned when the viewport has no geometry for an element
var ErrNoRect = errors.New("no rectangle for element")

// Surface reports which presentation elements exist
type Surface interface {
	Has(element string) bool
}

// Viewport exposes the scaled geometry used to aim animations
type Viewport interface {
	Scale() float64
	Rect(element string) (models.Rect, error)
}

// FullSurface has every element
type FullSurface struct{}

func (FullSurface) Has(string) bool { return true }

// MissingElements is a Surface lacking the listed elements
type MissingElements map[string]bool

func (m MissingElements) Has(element string) bool { return !m[element] }

// ComputeScale applies the responsive rule for the hunt scene. wrapperWidth may
// be zero when the wrapper is not measurable, in which case the viewport width is used.
func ComputeScale(wrapperWidth, viewportWidth, viewportHeight float64) float64 {
	width := wrapperWidth
	if width <= 0 {
		width = viewportWidth
	}
	availableH := math.Max(MinAvailableHeight, viewportHeight-HeaderReserve)
	scaleW := math.Min(1, width/BaseWidth)
	scaleH := math.Min(1, availableH/BaseHeight)
	s := math.Max(MinScale, math.Min(scaleW, scaleH))
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return 1
	}
	return s
}

// Layout derives viewport rectangles from the content's unscaled scene
type Layout struct {
	content *models.Content
	scale   float64
}

// NewLayout creates a layout at scale 1
func NewLayout(c *models.Content) *Layout {
	return &Layout{content: c, scale: 1}
}

func (l *Layout) Scale() float64 { return l.scale }

// SetScale updates the scale; non-positive values reset it to 1
func (l *Layout) SetScale(s float64) {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1
	}
	l.scale = s
}

// Rect returns the element's rectangle in viewport space
func (l *Layout) Rect(element string) (models.Rect, error) {
	area := l.content.GameArea
	var r models.Rect
	switch element {
	case ElemGameArea:
		return models.Rect{X: area.X, Y: area.Y, W: area.W * l.scale, H: area.H * l.scale}, nil
	case ElemBackpack:
		r = l.content.Backpack
	default:
		it, ok := l.content.HuntItem(element)
		if !ok {
			return models.Rect{}, fmt.Errorf("%s: %w", element, ErrNoRect)
		}
		r = it.Rect
	}
	return models.Rect{
		X: area.X + r.X*l.scale,
		Y: area.Y + r.Y*l.scale,
		W: r.W * l.scale,
		H: r.H * l.scale,
	}, nil
}
