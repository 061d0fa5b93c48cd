package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	MYSQL_DSN      = ""          // MySQL will be used if this is set
	SQLITE_FILE    = "yatube.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8000"
	TLS_DOMAINS    = "" // e.g. "example.com,example2.com"
	MEDIA_DIR      = "./media"
	UPLOAD_PREFIX  = "posts" // uploaded images end up under this prefix in the media bucket
	REDIS_ADDR     = ""      // Redis backs the index page cache if this is set
	REDIS_PASSWORD = ""
	SESSION_KEY    = "change me in production"
	LOG_LEVEL      = "info"
	DEBUG_MODE     = true
	// The index page is served from cache for this long. Writes do not
	// invalidate it; staleness is bounded by this value.
	INDEX_CACHE_SECONDS = 20
)

func init() {
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("UPLOAD_PREFIX", &UPLOAD_PREFIX)
	readEnvString("REDIS_ADDR", &REDIS_ADDR)
	readEnvString("REDIS_PASSWORD", &REDIS_PASSWORD)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("LOG_LEVEL", &LOG_LEVEL)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
