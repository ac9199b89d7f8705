package game

import (
	"os"
	"strconv"

	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// Config хранит параметры запуска движка. Все значения читаются из
// окружения с безопасными дефолтами; .env подхватывает main.
type Config struct {
	Port string

	// TickRate - частота симуляции, тиков в секунду.
	TickRate float64

	// AggroHysteresis - во сколько раз ближе должна быть новая цель,
	// чтобы монстр переключился. Игровой баланс, не константа.
	AggroHysteresis float64

	// SaveInterval - период фонового сохранения всего ростера, секунды.
	SaveInterval float64

	// ContentPath - JSON-файл с дополнительным контентом ("" = только
	// встроенный набор).
	ContentPath string

	// SaveDir - каталог файлового хранилища персонажей.
	SaveDir string
}

// NewConfig создает конфиг из переменных окружения.
func NewConfig() Config {
	return Config{
		Port:            envString("UM_PORT", "8080"),
		TickRate:        envFloat("UM_TICK_RATE", 20),
		AggroHysteresis: envFloat("UM_AGGRO_HYSTERESIS", 0.8),
		SaveInterval:    envFloat("UM_SAVE_INTERVAL", 60),
		ContentPath:     envString("UM_CONTENT_PATH", ""),
		SaveDir:         envString("UM_SAVE_DIR", "saves"),
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		logger.Log.Warnf("Ignoring invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}
