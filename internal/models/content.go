package models

// Content holds the data tables that drive one explorer session
type Content struct {
	GameArea  Rect              `yaml:"game_area"`
	Backpack  Rect              `yaml:"backpack"`
	HuntItems []HuntItem        `yaml:"hunt_items" validate:"min=1,dive"`
	Ownership []OwnershipRecord `yaml:"ownership" validate:"min=1,dive"`
	Foods     []string          `yaml:"foods" validate:"min=1,dive,required"`
	Offerer   string            `yaml:"offerer" validate:"required"`
	Offers    []string          `yaml:"offers" validate:"dive,required"`
	NPCs      []NPC             `yaml:"npcs" validate:"min=1,dive"`
}

// NPC looks up an NPC by id
func (c *Content) NPC(id string) (NPC, bool) {
	for _, n := range c.NPCs {
		if n.ID == id {
			return n, true
		}
	}
	return NPC{}, false
}

// HuntItem looks up a hunt item by id
func (c *Content) HuntItem(id string) (HuntItem, bool) {
	for _, it := range c.HuntItems {
		if it.ID == id {
			return it, true
		}
	}
	return HuntItem{}, false
}

// HasFood reports whether food is part of the picnic
func (c *Content) HasFood(food string) bool {
	for _, f := range c.Foods {
		if f == food {
			return true
		}
	}
	return false
}

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "effects", "reload")
	Data  string // JSON payload
}
