package entities

// NPC is an entry of NPC/npcs.json.
type NPC struct {
	NPCID       int    `json:"npcID"`
	NPCName     string `json:"npcName"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// DialogueTree is the NPC/dialogue.json document keyed by NPC name.
type DialogueTree map[string]any
