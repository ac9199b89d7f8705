package systems

import (
	"os"
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
