package config

import (
	"os"
	"strings"
)

type Config struct {
	Port     string
	DataFile string
}

func Load() Config {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	dataFile := strings.TrimSpace(os.Getenv("DATA_FILE"))
	if dataFile == "" {
		dataFile = "Amazon Sale Report.csv"
	}

	return Config{
		Port:     port,
		DataFile: dataFile,
	}
}
