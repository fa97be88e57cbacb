package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`

	// Storage selects the persistence backend: bolt (default), redis,
	// mysql, or memory.
	Storage  string `json:"storage"`
	BoltPath string `json:"boltpath"`

	DBHost string `json:"dbhost"`
	DBPort uint16 `json:"dbport"`
	DBName string `json:"dbname"`
	DBUser string `json:"dbuser"`
	DBPass string `json:"dbpass"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file when present,
// and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded, relying on process environment: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		config = &Config{
			AppName:  os.Getenv("APPNAME"),
			AppEnv:   os.Getenv("APPENV"),
			AppPort:  uint16(appPort),
			GinMode:  os.Getenv("GINMODE"),
			Storage:  os.Getenv("STORAGE"),
			BoltPath: os.Getenv("BOLTPATH"),
			DBHost:   os.Getenv("DBHOST"),
			DBPort:   uint16(dbPort),
			DBName:   os.Getenv("DBNAME"),
			DBUser:   os.Getenv("DBUSER"),
			DBPass:   os.Getenv("DBPASS"),
		}
		if config.Storage == "" {
			config.Storage = "bolt"
		}
		if config.BoltPath == "" {
			config.BoltPath = "dental_center.db"
		}
		if config.AppPort == 0 {
			config.AppPort = 8080
		}
	})
	return config
}

// ResetForTesting clears the singleton so tests can reload a fresh Config.
// This should only be used in tests.
func ResetForTesting() {
	config = nil
	once = sync.Once{}
}
