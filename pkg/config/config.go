package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAPIBase es la URL del backend si no se configura nada.
const DefaultAPIBase = "http://localhost:8000"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	API       APIConfig
	Revenue   RevenueConfig
	Cache     CacheConfig
	Scheduler SchedulerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig configuración del backend REST (Geräte, Vermietungen, Berichte).
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición al backend.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RevenueConfig configuración de la vista de Einnahmen.
type RevenueConfig struct {
	Concurrency int // abrechnungen en paralelo
}

// CacheConfig configuración de la caché de consultas.
type CacheConfig struct {
	TTLSeconds int
}

// TTL devuelve la vida útil de una entrada.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// SchedulerConfig expresiones cron (con segundos) de los jobs de fondo.
type SchedulerConfig struct {
	CacheRefresh string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, API_BASE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "mietpark-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		API: APIConfig{
			// VITE_API_BASE se acepta como alias del despliegue anterior.
			BaseURL:        getString(v, "API_BASE", getString(v, "VITE_API_BASE", DefaultAPIBase)),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Revenue: RevenueConfig{
			Concurrency: getInt(v, "REVENUE_CONCURRENCY", 4),
		},
		Cache: CacheConfig{
			TTLSeconds: getInt(v, "CACHE_TTL_SECONDS", 60),
		},
		Scheduler: SchedulerConfig{
			CacheRefresh: getString(v, "CACHE_REFRESH_CRON", "0 */5 * * * *"),
		},
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultAPIBase
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 15
	}
	if cfg.Revenue.Concurrency < 1 {
		cfg.Revenue.Concurrency = 1
	}
	if cfg.Cache.TTLSeconds < 0 {
		return nil, fmt.Errorf("config: CACHE_TTL_SECONDS no puede ser negativo (%d)", cfg.Cache.TTLSeconds)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
