package entities

import "fmt"

// Quest is an entry of PLAY/quests.json.
type Quest struct {
	QuestID     int           `json:"questID"`
	QuestName   string        `json:"questName"`
	Description string        `json:"description,omitempty"`
	Objectives  []string      `json:"objectives,omitempty"`
	Rewards     *QuestRewards `json:"rewards,omitempty"`
	RelatedNPCs []string      `json:"relatedNPCs,omitempty"`
}

// QuestRewards are granted on completion.
type QuestRewards struct {
	EXP   int      `json:"EXP,omitempty"`
	Items []string `json:"items,omitempty"`
	Gold  int      `json:"gold,omitempty"`
}

// QuestProgress is a player's progress on one quest.
type QuestProgress struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// QuestLog groups progress by quest category.
type QuestLog struct {
	Main  map[string]*QuestProgress `json:"main"`
	Side  map[string]*QuestProgress `json:"side"`
	Daily map[string]*QuestProgress `json:"daily"`
}

// QuestKey is the progress key for a quest ID.
func QuestKey(questID int) string {
	return fmt.Sprintf("q_%d", questID)
}

// RelatesTo reports whether npcName is one of the quest's related NPCs.
func (q *Quest) RelatesTo(npcName string) bool {
	for _, n := range q.RelatedNPCs {
		if n == npcName {
			return true
		}
	}
	return false
}

// SideProgress returns the side-quest entry for questID, creating it.
func (l *QuestLog) SideProgress(questID int) *QuestProgress {
	l.normalize()
	key := QuestKey(questID)
	entry, ok := l.Side[key]
	if !ok || entry == nil {
		entry = &QuestProgress{}
		l.Side[key] = entry
	}
	return entry
}

func (l *QuestLog) normalize() {
	if l.Main == nil {
		l.Main = make(map[string]*QuestProgress)
	}
	if l.Side == nil {
		l.Side = make(map[string]*QuestProgress)
	}
	if l.Daily == nil {
		l.Daily = make(map[string]*QuestProgress)
	}
}

// Clone returns a deep copy.
func (l QuestLog) Clone() QuestLog {
	return QuestLog{
		Main:  cloneProgress(l.Main),
		Side:  cloneProgress(l.Side),
		Daily: cloneProgress(l.Daily),
	}
}

func cloneProgress(m map[string]*QuestProgress) map[string]*QuestProgress {
	if m == nil {
		return nil
	}
	out := make(map[string]*QuestProgress, len(m))
	for k, v := range m {
		if v == nil {
			out[k] = nil
			continue
		}
		cp := *v
		out[k] = &cp
	}
	return out
}
