package game

import (
	"os"
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/infrastructure/storage"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// newTestService собирает сервис на встроенном каталоге, файловом хранилище
// во временном каталоге и ручных часах. Цикл НЕ запускается: тесты крутят
// Tick сами.
func newTestService(t *testing.T) (*GameService, *domain.ManualClock) {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	cfg := Config{
		Port:            "0",
		TickRate:        20,
		AggroHysteresis: 0.8,
		SaveInterval:    3600,
		SaveDir:         "unused",
	}

	s := NewService(cfg, cat, store)
	clock := &domain.ManualClock{}
	s.Clock = clock
	return s, clock
}

// enterWorld проводит аккаунт через весь путь лобби до живой сущности.
func enterWorld(t *testing.T, s *GameService, clock *domain.ManualClock, account, name string) (token, entityID string) {
	t.Helper()

	token, err := s.Login(account, "hash-"+account)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.CreateCharacter(token, name, "Воин"); err != nil {
		t.Fatalf("CreateCharacter: %v", err)
	}
	entityID, err = s.EnterWorld(token, name)
	if err != nil {
		t.Fatalf("EnterWorld: %v", err)
	}

	s.Tick(clock.T)
	if s.World.GetPlayer(entityID) == nil {
		t.Fatal("Expected player registered in world after tick")
	}
	return token, entityID
}
