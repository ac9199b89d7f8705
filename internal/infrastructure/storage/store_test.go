package storage

import (
	"errors"
	"testing"
)

func sampleRecord(name string) *CharacterRecord {
	return &CharacterRecord{
		Name:            name,
		Account:         "acc1",
		ClassName:       "Воин",
		Level:           7,
		Health:          123,
		Mana:            45,
		Strength:        3,
		Intelligence:    2,
		Experience:      900,
		SkillExperience: 12,
		Gold:            345,
		Coins:           6,
		Pos:             [3]float64{1.5, 0, -2.25},
		Skills: []SkillRecord{
			{Name: "Удар", Learned: true, Level: 2, CooldownRemaining: 1.5},
			{Name: "Клич", Learned: true, Level: 1, BuffRemaining: 8.25},
		},
		Inventory: []ItemRecord{
			{Slot: 0, Name: "Зелье", Amount: 5},
			{Slot: 17, Name: "Клык", Amount: 2},
		},
		Equipment: []ItemRecord{
			{Slot: 0, Name: "Меч", Amount: 1},
		},
		Quests: []QuestRecord{
			{Name: "Охота", Killed: 2, Completed: true},
			{Name: "Сбор", Killed: 0, Completed: false},
		},
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	want := sampleRecord("Герой")
	if err := store.SaveCharacter(want); err != nil {
		t.Fatalf("SaveCharacter: %v", err)
	}

	got, err := store.LoadCharacter("Герой")
	if err != nil {
		t.Fatalf("LoadCharacter: %v", err)
	}

	if got.Account != want.Account || got.ClassName != want.ClassName {
		t.Errorf("Expected account/class preserved, got %q/%q", got.Account, got.ClassName)
	}
	if got.Level != 7 || got.Gold != 345 || got.Coins != 6 {
		t.Errorf("Expected scalar stats preserved, got level=%d gold=%d coins=%d", got.Level, got.Gold, got.Coins)
	}
	if got.Pos != want.Pos {
		t.Errorf("Expected position preserved, got %v", got.Pos)
	}
	if len(got.Skills) != 2 || got.Skills[0].CooldownRemaining != 1.5 || got.Skills[1].BuffRemaining != 8.25 {
		t.Errorf("Expected skill timers preserved, got %+v", got.Skills)
	}
	if len(got.Inventory) != 2 || got.Inventory[1].Slot != 17 || got.Inventory[1].Amount != 2 {
		t.Errorf("Expected inventory slots preserved, got %+v", got.Inventory)
	}
	if len(got.Equipment) != 1 || got.Equipment[0].Name != "Меч" {
		t.Errorf("Expected equipment preserved, got %+v", got.Equipment)
	}
	if len(got.Quests) != 2 || !got.Quests[0].Completed || got.Quests[0].Killed != 2 {
		t.Errorf("Expected quest log preserved, got %+v", got.Quests)
	}
}

func TestLoadMissingCharacter(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := store.LoadCharacter("Призрак"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSaveManyAndList(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	recs := []*CharacterRecord{sampleRecord("Первый"), sampleRecord("Второй")}
	recs[1].Account = "acc2"
	if err := store.SaveMany(recs); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}

	list, err := store.ListCharacters("acc1")
	if err != nil {
		t.Fatalf("ListCharacters: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Первый" {
		t.Errorf("Expected exactly acc1's character, got %+v", list)
	}
}

func TestAccountValidation(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	// Первый логин регистрирует аккаунт.
	ok, err := store.ValidateAccount("acc1", "hash-a")
	if err != nil || !ok {
		t.Fatalf("Expected first login to register, got ok=%v err=%v", ok, err)
	}

	ok, err = store.ValidateAccount("acc1", "hash-a")
	if err != nil || !ok {
		t.Errorf("Expected matching hash to validate, got ok=%v err=%v", ok, err)
	}

	ok, err = store.ValidateAccount("acc1", "hash-b")
	if err != nil {
		t.Fatalf("ValidateAccount: %v", err)
	}
	if ok {
		t.Error("Expected wrong hash to be rejected")
	}
}

func TestSoftDeleteHidesCharacter(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := store.SaveCharacter(sampleRecord("Герой")); err != nil {
		t.Fatalf("SaveCharacter: %v", err)
	}

	// Чужой аккаунт удалить не может.
	if err := store.SoftDeleteCharacter("acc2", "Герой"); err == nil {
		t.Error("Expected foreign account delete to fail")
	}

	if err := store.SoftDeleteCharacter("acc1", "Герой"); err != nil {
		t.Fatalf("SoftDeleteCharacter: %v", err)
	}
	if _, err := store.LoadCharacter("Герой"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected deleted character hidden, got %v", err)
	}
	list, err := store.ListCharacters("acc1")
	if err != nil {
		t.Fatalf("ListCharacters: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty list after delete, got %+v", list)
	}
}

func TestCoinOrderConsumedOnce(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := store.PlaceCoinOrder("Герой", 30); err != nil {
		t.Fatalf("PlaceCoinOrder: %v", err)
	}
	if err := store.PlaceCoinOrder("Герой", 12); err != nil {
		t.Fatalf("PlaceCoinOrder: %v", err)
	}

	coins, err := store.PendingCoins("Герой")
	if err != nil {
		t.Fatalf("PendingCoins: %v", err)
	}
	if coins != 42 {
		t.Errorf("Expected 42 pending coins, got %d", coins)
	}

	coins, err = store.PendingCoins("Герой")
	if err != nil {
		t.Fatalf("PendingCoins: %v", err)
	}
	if coins != 0 {
		t.Errorf("Expected order consumed once, got %d on second fetch", coins)
	}
}
