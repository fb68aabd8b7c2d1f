package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Catalog struct {
	// MoviesFile is the JSON seed file read at startup.
	MoviesFile string
	// PostgresDSN, when set, makes startup load the catalog from
	// Postgres instead of the file.
	PostgresDSN string
}

type Templates struct {
	Glob string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

type Config struct {
	HTTP      HTTPServer
	Catalog   Catalog
	Templates Templates
	Rate      RateLimit
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:      *newHTTP(),
		Catalog:   *newCatalog(),
		Templates: *newTemplates(),
		Rate:      *newRateLimit(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		MoviesFile:  getenv("MOVIES_FILE", "assets/movies.json"),
		PostgresDSN: os.Getenv("CATALOG_DSN"),
	}
}

func newTemplates() *Templates {
	return &Templates{
		Glob: getenv("TEMPLATES_GLOB", "web/templates/*.html"),
	}
}

func newRateLimit() *RateLimit {
	return &RateLimit{
		RPS:   getenvFloat("RATE_RPS", 10),
		Burst: getenvInt("RATE_BURST", 20),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s %s is not an integer, using default %d", logtag, key, defaultValue)
		return defaultValue
	}
	return n
}

func getenvFloat(key string, defaultValue float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("%s %s is not a number, using default %g", logtag, key, defaultValue)
		return defaultValue
	}
	return f
}
