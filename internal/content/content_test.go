package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.HuntItems, 10)
	assert.Len(t, c.Ownership, 10)
	assert.Len(t, c.Foods, 6)
	assert.Equal(t, []string{"grapes", "biscuit", "orange"}, c.Offers)
	assert.Equal(t, "tom", c.Offerer)

	owners := map[models.Owner]int{}
	for _, rec := range c.Ownership {
		owners[rec.Owner]++
	}
	assert.Equal(t, 2, owners[models.OwnerMine])
	assert.Equal(t, 3, owners[models.OwnerHis])
	assert.Equal(t, 3, owners[models.OwnerHers])
	assert.Equal(t, 2, owners[models.OwnerTheirs])

	tom, ok := c.NPC("tom")
	require.True(t, ok)
	assert.Equal(t, "picnic-tom", tom.Element())
	assert.NotEmpty(t, tom.Replies)
}

func TestParseRejectsBadContent(t *testing.T) {
	base := `
game_area: {x: 0, y: 0, w: 800, h: 500}
backpack: {x: 1, y: 1, w: 10, h: 10}
hunt_items:
  - {id: map, rect: {x: 1, y: 1, w: 10, h: 10}}
ownership:
  - {name: map, owner: THEIRS, cue: cue-theirs}
foods: [grapes]
offerer: tom
offers: [grapes]
npcs:
  - {id: tom, name: Tom, replies: ["Yes, please!"]}
`
	_, err := Parse([]byte(base))
	require.NoError(t, err)

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown owner", replace(base, "owner: THEIRS", "owner: OURS"), nil},
		{"unknown offer", replace(base, "offers: [grapes]", "offers: [pizza]"), ErrUnknownFood},
		{"unknown offerer", replace(base, "offerer: tom", "offerer: sarah"), ErrUnknownNPC},
		{"unknown object", replace(base, "{name: map,", "{name: cap,"), ErrUnknownObject},
		{"duplicate food", replace(base, "foods: [grapes]", "foods: [grapes, grapes]"), ErrDuplicateID},
		{"no replies", replace(base, `replies: ["Yes, please!"]`, "replies: []"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.HuntItems, 10)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func replace(s, old, new string) string {
	return strings.Replace(s, old, new, 1)
}
