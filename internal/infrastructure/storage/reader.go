package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound - персонаж или аккаунт отсутствует в хранилище.
var ErrNotFound = errors.New("not found")

// LoadCharacter читает слепок персонажа по имени.
func (s *FileStore) LoadCharacter(name string) (*CharacterRecord, error) {
	f, err := os.Open(s.characterPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	rec, err := readCharacter(f)
	if err != nil {
		return nil, fmt.Errorf("read character %q: %w", name, err)
	}
	return rec, nil
}

func readCharacter(r io.Reader) (*CharacterRecord, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	rec := &CharacterRecord{
		Level:           int(header.Level),
		Health:          int(header.Health),
		Mana:            int(header.Mana),
		Strength:        int(header.Strength),
		Intelligence:    int(header.Intelligence),
		Experience:      header.Experience,
		SkillExperience: header.SkillExperience,
		Gold:            header.Gold,
		Coins:           header.Coins,
		Pos:             [3]float64{header.PosX, header.PosY, header.PosZ},
	}

	var err error
	if rec.Name, err = readString(r); err != nil {
		return nil, err
	}
	if rec.Account, err = readString(r); err != nil {
		return nil, err
	}
	if rec.ClassName, err = readString(r); err != nil {
		return nil, err
	}

	rec.Skills = make([]SkillRecord, header.SkillCount)
	for i := range rec.Skills {
		var sh skillHeader
		if err := binary.Read(r, binary.LittleEndian, &sh); err != nil {
			return nil, err
		}
		name, err := readString(r)
		if err != nil {
			return nil, err
		}
		rec.Skills[i] = SkillRecord{
			Name:              name,
			Learned:           sh.Learned != 0,
			Level:             int(sh.Level),
			CooldownRemaining: sh.CooldownRemaining,
			BuffRemaining:     sh.BuffRemaining,
		}
	}

	if rec.Inventory, err = readItems(r, int(header.InventoryCount)); err != nil {
		return nil, err
	}
	if rec.Equipment, err = readItems(r, int(header.EquipmentCount)); err != nil {
		return nil, err
	}

	rec.Quests = make([]QuestRecord, header.QuestCount)
	for i := range rec.Quests {
		var qh questHeader
		if err := binary.Read(r, binary.LittleEndian, &qh); err != nil {
			return nil, err
		}
		name, err := readString(r)
		if err != nil {
			return nil, err
		}
		rec.Quests[i] = QuestRecord{
			Name:      name,
			Killed:    int(qh.Killed),
			Completed: qh.Completed != 0,
		}
	}

	return rec, nil
}

func readItems(r io.Reader, count int) ([]ItemRecord, error) {
	out := make([]ItemRecord, count)
	for i := range out {
		var ih itemHeader
		if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
			return nil, err
		}
		name, err := readString(r)
		if err != nil {
			return nil, err
		}
		out[i] = ItemRecord{Slot: int(ih.Slot), Name: name, Amount: int(ih.Amount)}
	}
	return out, nil
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// --- АККАУНТЫ ---

type accountHeader struct {
	Magic   [4]byte
	Version uint32
}

// ValidateAccount сверяет хеш пароля. Первый логин нового аккаунта
// регистрирует его с присланным хешем.
func (s *FileStore) ValidateAccount(account, passwordHash string) (bool, error) {
	path := s.accountPath(account)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, s.createAccount(path, passwordHash)
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	var header accountHeader
	if err := binary.Read(f, binary.LittleEndian, &header); err != nil {
		return false, fmt.Errorf("read account %q: %w", account, err)
	}
	if string(header.Magic[:]) != AccountMagic || header.Version != Version1 {
		return false, fmt.Errorf("account %q: invalid file format", account)
	}

	stored, err := readString(f)
	if err != nil {
		return false, fmt.Errorf("read account %q: %w", account, err)
	}
	return stored == passwordHash, nil
}

func (s *FileStore) createAccount(path, passwordHash string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	defer f.Close()

	header := accountHeader{Version: Version1}
	copy(header.Magic[:], AccountMagic)
	if err := binary.Write(f, binary.LittleEndian, &header); err != nil {
		return err
	}
	return writeString(f, passwordHash)
}

// ListCharacters перебирает файлы персонажей и отбирает принадлежащие
// аккаунту. Линейно по числу персонажей шарда; для файлового стора этого
// достаточно.
func (s *FileStore) ListCharacters(account string) ([]CharacterSummary, error) {
	entries, err := os.ReadDir(filepath.Join(s.Dir, "characters"))
	if err != nil {
		return nil, err
	}

	var out []CharacterSummary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), characterExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), characterExt)
		rec, err := s.LoadCharacter(name)
		if err != nil {
			return nil, err
		}
		if rec.Account != account {
			continue
		}
		out = append(out, CharacterSummary{
			Name:      rec.Name,
			ClassName: rec.ClassName,
			Level:     rec.Level,
		})
	}
	return out, nil
}

// --- ЗАКАЗЫ КОИНОВ ---

// PendingCoins забирает заказ и удаляет его файл: заказ обрабатывается
// ровно один раз.
func (s *FileStore) PendingCoins(character string) (int64, error) {
	path := s.orderPath(character)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var coins int64
	err = binary.Read(f, binary.LittleEndian, &coins)
	_ = f.Close()
	if err != nil {
		return 0, fmt.Errorf("read coin order %q: %w", character, err)
	}

	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return coins, nil
}

// PlaceCoinOrder кладет заказ коинов (платежный бекенд или админка).
// Существующий необработанный заказ суммируется с новым.
func (s *FileStore) PlaceCoinOrder(character string, coins int64) error {
	pending, err := s.PendingCoins(character)
	if err != nil {
		return err
	}

	f, err := os.Create(s.orderPath(character))
	if err != nil {
		return err
	}
	defer f.Close()
	return binary.Write(f, binary.LittleEndian, pending+coins)
}
