package game

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

// FriendlyName turns an identifier like "magnifying-glass" into "magnifying glass"
func FriendlyName(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

// Capitalize upper-cases the first letter, used for image alt text
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ImagePath returns the asset path for an identifier
func ImagePath(id string) string {
	return "images/" + id + ".png"
}

// FoodElement returns the DOM id of a food tile
func FoodElement(food string) string {
	return "food-" + food
}

// AnswerElement returns the DOM id of a four-way answer button
func AnswerElement(o models.Owner) string {
	return "btn-" + strings.ToLower(string(o))
}

// FlyClass returns the animation class that sends an object to its owner
func FlyClass(o models.Owner) string {
	switch o {
	case models.OwnerMine:
		return "fly-to-player"
	case models.OwnerHis:
		return "fly-to-tom"
	case models.OwnerHers:
		return "fly-to-sarah"
	case models.OwnerTheirs:
		return "fly-to-theirs"
	default:
		return ""
	}
}

// NewRand returns a generator seeded from the wall clock
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// shuffled returns a permuted copy of items
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
