package models

// Rect is an axis-aligned rectangle in game-area pixels
type Rect struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	W float64 `yaml:"w" json:"w" validate:"gt=0"`
	H float64 `yaml:"h" json:"h" validate:"gt=0"`
}

// Center returns the centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// HuntItem is a hidden object and where it sits in the unscaled scene
type HuntItem struct {
	ID   string `yaml:"id" validate:"required"`
	Rect Rect   `yaml:"rect"`
}
