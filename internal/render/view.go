package render

import (
	"maps"
	"slices"

	"github.com/aaronzipp/explorers-mission/internal/game"
)

// View accumulates applied effects so a reconnecting client can be brought
// up to date. It is not safe for concurrent use.
type View struct {
	scale    float64
	visible  map[string]bool
	texts    map[string]string
	classes  map[string]map[string]bool
	moves    map[string]game.Effect
	displays map[string]game.Effect
	speech   *game.Effect
	overlay  *game.Effect
}

// NewView returns an empty view
func NewView() *View {
	v := &View{}
	v.reset()
	return v
}

func (v *View) reset() {
	v.scale = 0
	v.visible = make(map[string]bool)
	v.texts = make(map[string]string)
	v.classes = make(map[string]map[string]bool)
	v.moves = make(map[string]game.Effect)
	v.displays = make(map[string]game.Effect)
	v.speech = nil
	v.overlay = nil
}

// Apply records a batch of effects
func (v *View) Apply(effects []game.Effect) {
	for _, e := range effects {
		v.apply(e)
	}
}

func (v *View) apply(e game.Effect) {
	switch e.Op {
	case game.OpText:
		v.texts[e.Target] = e.Text
		if e.Target == game.ElemSpeechText {
			v.speech = nil
		}
	case game.OpSpeech:
		s := e
		v.speech = &s
		delete(v.texts, game.ElemSpeechText)
	case game.OpAddClass:
		if v.classes[e.Target] == nil {
			v.classes[e.Target] = make(map[string]bool)
		}
		v.classes[e.Target][e.Class] = true
	case game.OpRemoveClass:
		delete(v.classes[e.Target], e.Class)
	case game.OpShow:
		v.visible[e.Target] = true
	case game.OpHide:
		v.visible[e.Target] = false
		if e.Target == game.ElemOverlay {
			v.overlay = nil
		}
	case game.OpMove:
		v.moves[e.Target] = e
	case game.OpDisplay:
		v.displays[e.Target] = e
		delete(v.classes, game.ElemQuizItem)
	case game.OpClear:
		delete(v.displays, e.Target)
		delete(v.classes, game.ElemQuizItem)
	case game.OpTransition:
		t := e
		v.overlay = &t
		v.visible[game.ElemOverlay] = true
	case game.OpScale:
		v.scale = e.Scale
	case game.OpReload:
		v.reset()
	}
}

// Replay returns effects that rebuild the current view on a fresh page.
// Output order is deterministic.
func (v *View) Replay() []game.Effect {
	var out []game.Effect
	if v.scale > 0 {
		out = append(out, game.ScaleTo(v.scale))
	}
	for _, target := range slices.Sorted(maps.Keys(v.visible)) {
		if v.visible[target] {
			out = append(out, game.Show(target))
		} else {
			out = append(out, game.Hide(target))
		}
	}
	for _, target := range slices.Sorted(maps.Keys(v.texts)) {
		out = append(out, game.Text(target, v.texts[target]))
	}
	if v.speech != nil {
		out = append(out, *v.speech)
	}
	for _, target := range slices.Sorted(maps.Keys(v.displays)) {
		out = append(out, v.displays[target])
	}
	for _, target := range slices.Sorted(maps.Keys(v.moves)) {
		out = append(out, v.moves[target])
	}
	for _, target := range slices.Sorted(maps.Keys(v.classes)) {
		for _, class := range slices.Sorted(maps.Keys(v.classes[target])) {
			out = append(out, game.AddClass(target, class))
		}
	}
	if v.overlay != nil {
		out = append(out, *v.overlay)
	}
	return out
}

// Visible reports whether target was last shown
func (v *View) Visible(target string) bool {
	return v.visible[target]
}

// HasClass reports whether target currently carries class
func (v *View) HasClass(target, class string) bool {
	return v.classes[target][class]
}

// TextOf returns the last text set on target
func (v *View) TextOf(target string) string {
	if target == game.ElemSpeechText && v.speech != nil {
		return v.speech.Text
	}
	return v.texts[target]
}
