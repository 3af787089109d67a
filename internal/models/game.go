package models

// Owner is the answer category of an ownership question
type Owner string

const (
	OwnerMine   Owner = "MINE"
	OwnerHis    Owner = "HIS"
	OwnerHers   Owner = "HERS"
	OwnerTheirs Owner = "THEIRS"
)

// Owners lists every valid owner in button order
var Owners = []Owner{OwnerMine, OwnerHis, OwnerHers, OwnerTheirs}

// ParseOwner converts a raw answer into an Owner
func ParseOwner(s string) (Owner, bool) {
	for _, o := range Owners {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

// OwnershipRecord is one quiz question: an object, who owns it and the visual cue
type OwnershipRecord struct {
	Name  string `yaml:"name" validate:"required"`
	Owner Owner  `yaml:"owner" validate:"required,oneof=MINE HIS HERS THEIRS"`
	Cue   string `yaml:"cue" validate:"required"`
}
