package testutils

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/storage/jsonfile"
)

// Assets describes an assets directory. Nil fields leave the file absent.
type Assets struct {
	Items    []entities.Item
	Skills   []entities.Skill
	Mods     []entities.Mod
	NPCs     []entities.NPC
	Dialogue map[string]any
	Enemies  []entities.EnemyTemplate
	Maps     []entities.GameMap
	Quests   []entities.Quest
	Dungeons []entities.Dungeon
	Players  []*entities.Player
}

// WriteAssets writes a into a fresh temp directory and returns its path
func WriteAssets(t *testing.T, a Assets) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel string, v any) {
		require.NoError(t, jsonfile.Save(filepath.Join(root, filepath.FromSlash(rel)), v))
	}
	if a.Items != nil {
		write(assets.ItemsFile, a.Items)
	}
	if a.Skills != nil {
		write(assets.SkillsFile, a.Skills)
	}
	if a.Mods != nil {
		write(assets.ModsFile, a.Mods)
	}
	if a.NPCs != nil {
		write(assets.NPCsFile, a.NPCs)
	}
	if a.Dialogue != nil {
		write(assets.DialogueFile, a.Dialogue)
	}
	if a.Enemies != nil {
		write(assets.EnemiesFile, a.Enemies)
	}
	if a.Maps != nil {
		write(assets.MapsFile, a.Maps)
	}
	if a.Quests != nil {
		write(assets.QuestsFile, a.Quests)
	}
	if a.Dungeons != nil {
		write(assets.DungeonsFile, a.Dungeons)
	}
	for _, p := range a.Players {
		write(fmt.Sprintf("%s/player_%04d.json", assets.PlayersDir, p.PlayerID), p)
	}
	return root
}

// CreateTestCatalog writes a and returns a catalog over it
func CreateTestCatalog(t *testing.T, a Assets) *assets.FileCatalog {
	t.Helper()
	catalog, err := assets.NewFileCatalog(&assets.Config{Root: WriteAssets(t, a)})
	require.NoError(t, err)
	return catalog
}

// CreateTestPlayer returns a level 1 player with full health
func CreateTestPlayer(playerID int) *entities.Player {
	p := &entities.Player{
		PlayerID:    playerID,
		DisplayName: fmt.Sprintf("Player %d", playerID),
		Username:    fmt.Sprintf("player%d", playerID),
		Stats: entities.Stats{
			entities.StatHP:  100,
			entities.StatSTA: 20,
			entities.StatSTR: 5,
			entities.StatDEF: 0,
			entities.StatLVL: 1,
			entities.StatEXP: 0,
		},
		Position: &entities.Position{MapID: 1},
	}
	p.Normalize()
	return p
}
