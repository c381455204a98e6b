package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "skills.yaml", `
skills:
  - id: quake
    kind: attack
    mp_cost: 30
    enemies_gauge_down: 0.25
    multiplier:
      atk_self: 1.8
      hp_pct_enemy: 0.5
  - id: mend
    kind: heal
    mp_cost: 20
    heal: 250
`)
	writeFile(t, dir, "runes.yaml", `
runes:
  - id: fury
    slot: 1
    effects:
      - {stat: attack, percent: 15}
      - {stat: speed, flat: 3}
`)
	writeFile(t, dir, "combatants.yaml", `
combatants:
  - id: warden
    elements: [terra, metal]
    rating: 3
    stats: {max_hp: 2000, attack: 400, speed: 12}
    awaken: {percent: 10, speed: 2}
    skills: [quake]
    runes: [fury]
    personality: {aggression: 0.4, caution: 0.6}
`)
	writeFile(t, dir, "duel.yaml", `
id: duel
max_turns: 50
team1: {name: left, members: [warden]}
team2: {name: right, members: [warden]}
`)

	sc, rc, cc, ec, err := LoadAll(dir, "duel.yaml")
	require.NoError(t, err)

	require.Len(t, sc.Skills, 2)
	assert.Equal(t, 1.8, sc.Skills[0].Multiplier.AtkSelf)
	assert.Equal(t, 0.5, sc.Skills[0].Multiplier.HPPctEnemy)
	assert.Equal(t, 0.25, sc.Skills[0].GaugeDown)
	assert.Equal(t, 250.0, sc.Skills[1].Heal)

	require.Len(t, rc.Runes, 1)
	assert.Equal(t, 1, rc.Runes[0].Slot)
	assert.Equal(t, []RuneEffect{{Stat: "attack", Percent: 15}, {Stat: "speed", Flat: 3}}, rc.Runes[0].Effects)

	require.Len(t, cc.Combatants, 1)
	w := cc.Combatants[0]
	assert.Equal(t, []string{"terra", "metal"}, w.Elements)
	assert.Equal(t, 3, w.Rating)
	assert.Equal(t, 12.0, w.Stats.Speed)
	assert.Equal(t, 2.0, w.Awaken.Speed)
	assert.Equal(t, PersonalityDef{Aggression: 0.4, Caution: 0.6}, w.Personality)

	assert.Equal(t, "duel", ec.ID)
	assert.Equal(t, 50, ec.MaxTurns)
	assert.Equal(t, TeamDef{Name: "left", Members: []string{"warden"}}, ec.Team1)
}

func TestLoadAll_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "skills.yaml", "skills: []\n")

	_, _, _, _, err := LoadAll(dir, "")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadAll_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "skills.yaml", "skills: [\n")

	_, _, _, _, err := LoadAll(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode skills.yaml")
}

func TestLoadAll_Assets(t *testing.T) {
	sc, rc, cc, ec, err := LoadAll(filepath.Join("..", "..", "assets"), "")
	require.NoError(t, err)
	assert.NotEmpty(t, sc.Skills)
	assert.NotEmpty(t, rc.Runes)
	assert.NotEmpty(t, cc.Combatants)
	assert.NotEmpty(t, ec.Team1.Members)
	assert.NotEmpty(t, ec.Team2.Members)
}
