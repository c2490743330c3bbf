// Package assets reads the static game content under the assets directory.
package assets

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/storage/jsonfile"
)

// Asset files relative to the assets directory.
const (
	ItemsFile    = "ITEM/items.json"
	SkillsFile   = "ITEM/skills.json"
	ModsFile     = "ITEM/mods.json"
	NPCsFile     = "NPC/npcs.json"
	DialogueFile = "NPC/dialogue.json"
	EnemiesFile  = "PLAY/enemies.json"
	MapsFile     = "PLAY/maps.json"
	QuestsFile   = "PLAY/quests.json"
	DungeonsFile = "ROOMS/dungeon.json"
	PlayersDir   = "PLAY/players"
)

// Catalog looks up static game content. Every call re-reads the backing file.
type Catalog interface {
	Items(ctx context.Context) ([]entities.Item, error)
	// Item returns errors.NotFound when no item matches ref
	Item(ctx context.Context, ref Ref) (*entities.Item, error)
	Skills(ctx context.Context) ([]entities.Skill, error)
	// Skill selects by list index for an ID ref and by skillName otherwise
	Skill(ctx context.Context, ref Ref) (*entities.Skill, error)
	Mods(ctx context.Context) ([]entities.Mod, error)
	Mod(ctx context.Context, modID int) (*entities.Mod, error)
	Enemies(ctx context.Context) ([]entities.EnemyTemplate, error)
	Enemy(ctx context.Context, enemyID int) (*entities.EnemyTemplate, error)
	Quests(ctx context.Context) ([]entities.Quest, error)
	Quest(ctx context.Context, ref Ref) (*entities.Quest, error)
	NPCs(ctx context.Context) ([]entities.NPC, error)
	NPC(ctx context.Context, npcID int) (*entities.NPC, error)
	Dialogue(ctx context.Context) (entities.DialogueTree, error)
	Maps(ctx context.Context) ([]entities.GameMap, error)
	Map(ctx context.Context, mapID int) (*entities.GameMap, error)
	Dungeons(ctx context.Context) ([]entities.Dungeon, error)
	// Dungeon falls back to the first definition when dungeonID is unknown
	Dungeon(ctx context.Context, dungeonID int) (*entities.Dungeon, error)
	// PlayersDir is where player records are stored on disk
	PlayersDir() string
}

// Config configures the file-backed catalog
type Config struct {
	Root string
}

// Validate validates the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("root", c.Root, vb)
	return vb.Build()
}

// FileCatalog reads asset files from disk.
type FileCatalog struct {
	root string
}

// NewFileCatalog creates a catalog rooted at cfg.Root
func NewFileCatalog(cfg *Config) (*FileCatalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &FileCatalog{root: cfg.Root}, nil
}

// Root returns the assets directory.
func (c *FileCatalog) Root() string {
	return c.root
}

// PlayersDir returns the player record directory.
func (c *FileCatalog) PlayersDir() string {
	return c.path(PlayersDir)
}

func (c *FileCatalog) path(rel string) string {
	return filepath.Join(c.root, filepath.FromSlash(rel))
}

func load[T any](ctx context.Context, c *FileCatalog, rel string) (T, error) {
	var out T
	if err := jsonfile.Load(c.path(rel), &out); err != nil {
		slog.DebugContext(ctx, "asset load failed", "asset", rel, "error", err)
		return out, errors.Wrapf(err, "failed to load %s", rel)
	}
	return out, nil
}

// Items returns every item definition.
func (c *FileCatalog) Items(ctx context.Context) ([]entities.Item, error) {
	return load[[]entities.Item](ctx, c, ItemsFile)
}

// Item finds an item by itemID or itemName.
func (c *FileCatalog) Item(ctx context.Context, ref Ref) (*entities.Item, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if id, ok := ref.ID(); ok && items[i].ItemID == id {
			return &items[i], nil
		}
		if name, ok := ref.Name(); ok && items[i].ItemName == name {
			return &items[i], nil
		}
	}
	return nil, errors.NotFoundf("item %s not found", ref).WithMeta("item", ref.String())
}

// Skills returns every skill definition.
func (c *FileCatalog) Skills(ctx context.Context) ([]entities.Skill, error) {
	return load[[]entities.Skill](ctx, c, SkillsFile)
}

// Skill finds a skill by list index or skillName.
func (c *FileCatalog) Skill(ctx context.Context, ref Ref) (*entities.Skill, error) {
	skills, err := c.Skills(ctx)
	if err != nil {
		return nil, err
	}
	if idx, ok := ref.ID(); ok {
		if idx >= 0 && idx < len(skills) {
			return &skills[idx], nil
		}
	} else {
		name, _ := ref.Name()
		for i := range skills {
			if skills[i].SkillName == name {
				return &skills[i], nil
			}
		}
	}
	return nil, errors.NotFoundf("skill %s not found", ref).WithMeta("skill", ref.String())
}

// Mods returns every mod definition.
func (c *FileCatalog) Mods(ctx context.Context) ([]entities.Mod, error) {
	return load[[]entities.Mod](ctx, c, ModsFile)
}

// Mod finds a mod by modID.
func (c *FileCatalog) Mod(ctx context.Context, modID int) (*entities.Mod, error) {
	mods, err := c.Mods(ctx)
	if err != nil {
		return nil, err
	}
	for i := range mods {
		if mods[i].ModID == modID {
			return &mods[i], nil
		}
	}
	return nil, errors.NotFoundf("mod %d not found", modID)
}

// Enemies returns every enemy template.
func (c *FileCatalog) Enemies(ctx context.Context) ([]entities.EnemyTemplate, error) {
	return load[[]entities.EnemyTemplate](ctx, c, EnemiesFile)
}

// Enemy finds an enemy template by enemyID.
func (c *FileCatalog) Enemy(ctx context.Context, enemyID int) (*entities.EnemyTemplate, error) {
	enemies, err := c.Enemies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range enemies {
		if enemies[i].EnemyID == enemyID {
			return &enemies[i], nil
		}
	}
	return nil, errors.NotFoundf("enemy %d not found", enemyID)
}

// Quests returns every quest definition.
func (c *FileCatalog) Quests(ctx context.Context) ([]entities.Quest, error) {
	return load[[]entities.Quest](ctx, c, QuestsFile)
}

// Quest finds a quest by questID or questName.
func (c *FileCatalog) Quest(ctx context.Context, ref Ref) (*entities.Quest, error) {
	quests, err := c.Quests(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quests {
		if id, ok := ref.ID(); ok && quests[i].QuestID == id {
			return &quests[i], nil
		}
		if name, ok := ref.Name(); ok && quests[i].QuestName == name {
			return &quests[i], nil
		}
	}
	return nil, errors.NotFoundf("quest %s not found", ref).WithMeta("quest", ref.String())
}

// NPCs returns every NPC definition.
func (c *FileCatalog) NPCs(ctx context.Context) ([]entities.NPC, error) {
	return load[[]entities.NPC](ctx, c, NPCsFile)
}

// NPC finds an NPC by npcID.
func (c *FileCatalog) NPC(ctx context.Context, npcID int) (*entities.NPC, error) {
	npcs, err := c.NPCs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range npcs {
		if npcs[i].NPCID == npcID {
			return &npcs[i], nil
		}
	}
	return nil, errors.NotFoundf("npc %d not found", npcID)
}

// Dialogue returns the dialogue document keyed by NPC name.
func (c *FileCatalog) Dialogue(ctx context.Context) (entities.DialogueTree, error) {
	return load[entities.DialogueTree](ctx, c, DialogueFile)
}

// Maps returns every map definition.
func (c *FileCatalog) Maps(ctx context.Context) ([]entities.GameMap, error) {
	return load[[]entities.GameMap](ctx, c, MapsFile)
}

// Map finds a map by mapID.
func (c *FileCatalog) Map(ctx context.Context, mapID int) (*entities.GameMap, error) {
	maps, err := c.Maps(ctx)
	if err != nil {
		return nil, err
	}
	for i := range maps {
		if maps[i].MapID == mapID {
			return &maps[i], nil
		}
	}
	return nil, errors.NotFoundf("map %d not found", mapID)
}

// Dungeons returns every dungeon definition.
func (c *FileCatalog) Dungeons(ctx context.Context) ([]entities.Dungeon, error) {
	return load[[]entities.Dungeon](ctx, c, DungeonsFile)
}

// Dungeon finds a dungeon by dungeonID, or the first definition.
func (c *FileCatalog) Dungeon(ctx context.Context, dungeonID int) (*entities.Dungeon, error) {
	dungeons, err := c.Dungeons(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dungeons {
		if dungeons[i].DungeonID == dungeonID {
			return &dungeons[i], nil
		}
	}
	if len(dungeons) == 0 {
		return nil, errors.NotFound("no dungeon definitions")
	}
	return &dungeons[0], nil
}

var _ Catalog = (*FileCatalog)(nil)
