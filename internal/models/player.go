package models

// NPC is a picnic friend the player can talk to
type NPC struct {
	ID      string   `yaml:"id" validate:"required"`
	Name    string   `yaml:"name" validate:"required"`
	Replies []string `yaml:"replies" validate:"min=1,dive,required"`
}

// Element returns the DOM id of the NPC's picnic figure
func (n NPC) Element() string {
	return "picnic-" + n.ID
}
