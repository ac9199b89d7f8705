package domain

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
)

// Quest - динамический прогресс квеста у игрока.
type Quest struct {
	Name     string
	Template *catalog.QuestTemplate

	// Killed зажат сверху требуемым количеством.
	Killed    int
	Completed bool
}

func NewQuest(t *catalog.QuestTemplate) Quest {
	return Quest{Name: t.Name, Template: t}
}

// RegisterKill засчитывает убийство цели квеста (с зажимом).
func (q *Quest) RegisterKill() {
	if q.Killed < q.Template.KillAmount {
		q.Killed++
	}
}

// IsFulfilled - выполнены ли условия сдачи. gathered - сколько требуемого
// предмета сейчас лежит в инвентаре игрока.
func (q *Quest) IsFulfilled(gathered int) bool {
	return q.Killed >= q.Template.KillAmount && gathered >= q.Template.GatherAmount
}
