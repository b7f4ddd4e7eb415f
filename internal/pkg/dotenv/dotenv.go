package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Load подхватывает переменные из env файла и применяет флаги командной строки.
// Отсутствующий файл не ошибка: в контейнере все приходит через окружение.
// Уже выставленные переменные окружения не перезаписываются.
func Load() error {
	var (
		envFile  string
		portFlag string
	)
	flag.StringVar(&envFile, "env-file", defaultEnvFile, "Path to env file")
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if err := loadFile(envFile); err != nil {
		return err
	}
	return overridePort(portFlag)
}

func loadFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func overridePort(port string) error {
	if port == "" {
		return nil
	}
	if err := os.Setenv("PORT", port); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
