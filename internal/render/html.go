package render

import (
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/models"
)

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func rectStyle(r models.Rect) string {
	var b strings.Builder
	b.WriteString(`left:`)
	b.WriteString(px(r.X))
	b.WriteString(`;top:`)
	b.WriteString(px(r.Y))
	b.WriteString(`;width:`)
	b.WriteString(px(r.W))
	b.WriteString(`;height:`)
	b.WriteString(px(r.H))
	return b.String()
}

// HuntScene generates the hidden objects and the backpack target
func HuntScene(c *models.Content) template.HTML {
	var b strings.Builder
	for _, it := range c.HuntItems {
		id := html.EscapeString(it.ID)
		b.WriteString(`<img class="hunt-item" id="`)
		b.WriteString(id)
		b.WriteString(`" data-post="/hunt/click" data-field="id" data-value="`)
		b.WriteString(id)
		b.WriteString(`" src="/`)
		b.WriteString(html.EscapeString(game.ImagePath(it.ID)))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(game.Capitalize(game.FriendlyName(it.ID))))
		b.WriteString(`" style="`)
		b.WriteString(rectStyle(it.Rect))
		b.WriteString(`">`)
	}
	b.WriteString(`<div id="`)
	b.WriteString(game.ElemBackpack)
	b.WriteString(`" style="`)
	b.WriteString(rectStyle(c.Backpack))
	b.WriteString(`"></div>`)
	return template.HTML(b.String())
}

// AnswerButtons generates the four owner buttons
func AnswerButtons() template.HTML {
	var b strings.Builder
	for _, o := range models.Owners {
		b.WriteString(`<button type="button" class="btn answer-btn" id="`)
		b.WriteString(game.AnswerElement(o))
		b.WriteString(`" data-post="/quiz/answer" data-field="answer" data-value="`)
		b.WriteString(string(o))
		b.WriteString(`">`)
		b.WriteString(string(o))
		b.WriteString(`</button>`)
	}
	return template.HTML(b.String())
}

// Friends generates the clickable picnic NPC figures
func Friends(c *models.Content) template.HTML {
	var b strings.Builder
	for _, n := range c.NPCs {
		b.WriteString(`<figure class="picnic-friend" id="`)
		b.WriteString(html.EscapeString(n.Element()))
		b.WriteString(`" data-post="/picnic/friend" data-field="npc" data-value="`)
		b.WriteString(html.EscapeString(n.ID))
		b.WriteString(`"><img src="/`)
		b.WriteString(html.EscapeString(game.ImagePath(n.ID)))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(n.Name))
		b.WriteString(`"><figcaption>`)
		b.WriteString(html.EscapeString(n.Name))
		b.WriteString(`</figcaption></figure>`)
	}
	return template.HTML(b.String())
}

// FoodTray generates the selectable food tiles
func FoodTray(c *models.Content) template.HTML {
	var b strings.Builder
	for _, f := range c.Foods {
		name := html.EscapeString(f)
		b.WriteString(`<button type="button" class="food-item" id="`)
		b.WriteString(html.EscapeString(game.FoodElement(f)))
		b.WriteString(`" data-post="/picnic/food" data-field="food" data-value="`)
		b.WriteString(name)
		b.WriteString(`"><img src="/`)
		b.WriteString(html.EscapeString(game.ImagePath(f)))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(game.Capitalize(f)))
		b.WriteString(`"></button>`)
	}
	return template.HTML(b.String())
}
