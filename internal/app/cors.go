package app

import (
	"github.com/gin-contrib/cors"
	"github.com/globetrotter-app/core/internal/config"
)

// corsConfig builds the CORS policy. Development allows any origin; in
// production only the configured origins may send credentialed requests.
func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
