package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	MagicHeader  string = `UMSV` // 4 байта, файл персонажа
	AccountMagic string = `UMAC` // 4 байта, файл аккаунта
	Version1     uint32 = 1

	characterExt = ".umsv"
	deletedExt   = ".deleted"
)

// fileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только массивы и числа.
type fileHeader struct {
	Magic   [4]byte
	Version uint32

	Level        int32
	Health       int32
	Mana         int32
	Strength     int32
	Intelligence int32

	Experience      int64
	SkillExperience int64
	Gold            int64
	Coins           int64

	PosX float64
	PosY float64
	PosZ float64

	SkillCount     int32
	InventoryCount int32
	EquipmentCount int32
	QuestCount     int32
}

// skillHeader — фиксированная часть записи навыка (имя пишется следом).
type skillHeader struct {
	Level             int32
	Learned           uint8
	CooldownRemaining float64
	BuffRemaining     float64
}

// itemHeader — фиксированная часть записи слота.
type itemHeader struct {
	Slot   int32
	Amount int32
}

// questHeader — фиксированная часть записи квеста.
type questHeader struct {
	Killed    int32
	Completed uint8
}

// FileStore - файловая реализация Gateway: по бинарному файлу на персонажа
// и на аккаунт. Запись всегда идет через временный файл и rename, чтобы
// упавший процесс не оставил полузаписанного персонажа.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	for _, sub := range []string{"", "characters", "accounts", "orders"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) characterPath(name string) string {
	return filepath.Join(s.Dir, "characters", name+characterExt)
}

func (s *FileStore) accountPath(account string) string {
	return filepath.Join(s.Dir, "accounts", account+".umac")
}

func (s *FileStore) orderPath(character string) string {
	return filepath.Join(s.Dir, "orders", character+".bin")
}

// SaveCharacter пишет слепок персонажа атомарно.
func (s *FileStore) SaveCharacter(rec *CharacterRecord) error {
	tmp, err := s.writeTemp(rec)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.characterPath(rec.Name)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit character %q: %w", rec.Name, err)
	}
	return nil
}

// SaveMany сначала пишет ВСЕ временные файлы и только потом коммитит их
// переименованием. Ошибка на этапе записи не трогает ни одного старого файла.
func (s *FileStore) SaveMany(recs []*CharacterRecord) error {
	tmps := make([]string, 0, len(recs))
	for _, rec := range recs {
		tmp, err := s.writeTemp(rec)
		if err != nil {
			for _, t := range tmps {
				_ = os.Remove(t)
			}
			return err
		}
		tmps = append(tmps, tmp)
	}

	for i, rec := range recs {
		if err := os.Rename(tmps[i], s.characterPath(rec.Name)); err != nil {
			return fmt.Errorf("commit character %q: %w", rec.Name, err)
		}
	}
	return nil
}

func (s *FileStore) writeTemp(rec *CharacterRecord) (string, error) {
	f, err := os.CreateTemp(filepath.Join(s.Dir, "characters"), rec.Name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp save: %w", err)
	}

	if err := writeCharacter(f, rec); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write character %q: %w", rec.Name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func writeCharacter(w io.Writer, rec *CharacterRecord) error {
	header := fileHeader{
		Version:         Version1,
		Level:           int32(rec.Level),
		Health:          int32(rec.Health),
		Mana:            int32(rec.Mana),
		Strength:        int32(rec.Strength),
		Intelligence:    int32(rec.Intelligence),
		Experience:      rec.Experience,
		SkillExperience: rec.SkillExperience,
		Gold:            rec.Gold,
		Coins:           rec.Coins,
		PosX:            rec.Pos[0],
		PosY:            rec.Pos[1],
		PosZ:            rec.Pos[2],
		SkillCount:      int32(len(rec.Skills)),
		InventoryCount:  int32(len(rec.Inventory)),
		EquipmentCount:  int32(len(rec.Equipment)),
		QuestCount:      int32(len(rec.Quests)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, str := range []string{rec.Name, rec.Account, rec.ClassName} {
		if err := writeString(w, str); err != nil {
			return err
		}
	}

	for _, sk := range rec.Skills {
		sh := skillHeader{
			Level:             int32(sk.Level),
			CooldownRemaining: sk.CooldownRemaining,
			BuffRemaining:     sk.BuffRemaining,
		}
		if sk.Learned {
			sh.Learned = 1
		}
		if err := binary.Write(w, binary.LittleEndian, &sh); err != nil {
			return err
		}
		if err := writeString(w, sk.Name); err != nil {
			return err
		}
	}

	for _, slots := range [][]ItemRecord{rec.Inventory, rec.Equipment} {
		for _, it := range slots {
			ih := itemHeader{Slot: int32(it.Slot), Amount: int32(it.Amount)}
			if err := binary.Write(w, binary.LittleEndian, &ih); err != nil {
				return err
			}
			if err := writeString(w, it.Name); err != nil {
				return err
			}
		}
	}

	for _, q := range rec.Quests {
		qh := questHeader{Killed: int32(q.Killed)}
		if q.Completed {
			qh.Completed = 1
		}
		if err := binary.Write(w, binary.LittleEndian, &qh); err != nil {
			return err
		}
		if err := writeString(w, q.Name); err != nil {
			return err
		}
	}

	return nil
}

func writeString(w io.Writer, s string) error {
	b := []byte(s)
	if len(b) > 65535 {
		return fmt.Errorf("string too long: %d", len(b))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// SoftDeleteCharacter прячет персонажа переименованием файла. Данные
// остаются на диске и восстановимы руками.
func (s *FileStore) SoftDeleteCharacter(account, name string) error {
	rec, err := s.LoadCharacter(name)
	if err != nil {
		return err
	}
	if rec.Account != account {
		return fmt.Errorf("character %q does not belong to account %q", name, account)
	}
	path := s.characterPath(name)
	return os.Rename(path, path+deletedExt)
}
