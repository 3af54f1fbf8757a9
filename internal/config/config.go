package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultRelatedLimit = 4

type Options struct {
	logLevel     string
	dataBaseDSN  string
	relatedLimit int
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags reads options from the command line, falling back to the
// environment (optionally populated from a .env file) and then to defaults.
func (o *Options) ParseFlags(args []string) error {
	loadEnvFile()

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)

	fs.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")
	fs.StringVar(&o.dataBaseDSN, "d", getEnvOrDefault("DATABASE_URI", ""), "catalog database connection string, static sample catalog when empty")

	limit, err := strconv.Atoi(getEnvOrDefault("RELATED_LIMIT", strconv.Itoa(defaultRelatedLimit)))
	if err != nil {
		return fmt.Errorf("RELATED_LIMIT is not a number: %w", err)
	}
	fs.IntVar(&o.relatedLimit, "r", limit, "max number of related products on the detail view")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("fs.Parse: %w", err)
	}

	if o.relatedLimit < 0 {
		return fmt.Errorf("related limit[%d] is negative", o.relatedLimit)
	}

	return nil
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

func (o *Options) DataBaseDSN() string {
	return o.dataBaseDSN
}

func (o *Options) RelatedLimit() int {
	return o.relatedLimit
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file in the working directory
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Printf("cannot resolve working directory: %v", err)
		return
	}
	envPath := filepath.Join(cwd, ".env")

	// variables already set in the environment win
	if err := godotenv.Load(envPath); err == nil {
		log.Printf(".env file loaded from %s", envPath)
	}
}
