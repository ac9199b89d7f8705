package storage

// Gateway - граница персистентности ядра. Симуляция не знает, лежат ли
// персонажи в файлах или в базе: она обменивается только записями.
//
// Все таймеры пересекают эту границу ОСТАТКАМИ длительностей (секунды до
// события), потому что абсолютные серверные часы не переживают рестарт.
type Gateway interface {
	// ValidateAccount проверяет пару аккаунт/хеш. Неизвестный аккаунт
	// регистрируется этим же вызовом.
	ValidateAccount(account, passwordHash string) (bool, error)

	// ListCharacters возвращает живых (не удаленных) персонажей аккаунта.
	ListCharacters(account string) ([]CharacterSummary, error)

	LoadCharacter(name string) (*CharacterRecord, error)
	SaveCharacter(rec *CharacterRecord) error

	// SaveMany сохраняет пачку атомарно: либо видны все новые версии,
	// либо ни одной.
	SaveMany(recs []*CharacterRecord) error

	// SoftDeleteCharacter прячет персонажа, не уничтожая файл.
	SoftDeleteCharacter(account, name string) error

	// PendingCoins забирает необработанный заказ коинов персонажа
	// и помечает его обработанным. 0 = заказов нет.
	PendingCoins(character string) (int64, error)
}

// CharacterSummary - строка списка персонажей в лобби.
type CharacterSummary struct {
	Name      string
	ClassName string
	Level     int
}

// CharacterRecord - полный слепок персонажа.
type CharacterRecord struct {
	Name      string
	Account   string
	ClassName string

	Level        int
	Health       int
	Mana         int
	Strength     int
	Intelligence int

	Experience      int64
	SkillExperience int64
	Gold            int64
	Coins           int64

	Pos [3]float64

	Skills    []SkillRecord
	Inventory []ItemRecord
	Equipment []ItemRecord
	Quests    []QuestRecord
}

// SkillRecord - навык с таймерами-остатками.
type SkillRecord struct {
	Name    string
	Learned bool
	Level   int

	CooldownRemaining float64
	BuffRemaining     float64
}

// ItemRecord - занятый слот инвентаря или экипировки.
type ItemRecord struct {
	Slot   int
	Name   string
	Amount int
}

// QuestRecord - запись журнала квестов.
type QuestRecord struct {
	Name      string
	Killed    int
	Completed bool
}
