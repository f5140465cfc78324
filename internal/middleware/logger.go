package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerConfig controls what the request logger records.
type LoggerConfig struct {
	SkipPaths []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		SkipPaths: []string{"/health", "/metrics"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		ip := c.ClientIP()
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		email := c.GetString("email")

		if query != "" {
			path = path + "?" + query
		}

		if email != "" {
			log.Printf("%s %s -> %d (%v) ip=%s user=%s", method, path, status, latency, ip, email)
		} else {
			log.Printf("%s %s -> %d (%v) ip=%s", method, path, status, latency, ip)
		}

		if len(c.Errors) > 0 {
			log.Printf("  errors: %s", c.Errors.String())
		}
	}
}
