package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Invoice InvoiceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig almacén clave/valor local (un archivo JSON por clave).
type StorageConfig struct {
	Dir   string
	Watch bool // notificar cambios hechos por otros procesos (fsnotify)
}

// InvoiceConfig valores por defecto del editor de facturas.
type InvoiceConfig struct {
	DefaultCurrency  string
	LogoMaxBytes     int64
	ExportsPerSecond float64
	ExportBurst      int
	SwaggerFile      string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invoice-studio"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Dir:   getString(v, "STORAGE_DIR", "./.invoice-data"),
			Watch: getBool(v, "STORAGE_WATCH", true),
		},
		Invoice: InvoiceConfig{
			DefaultCurrency:  strings.ToUpper(getString(v, "DEFAULT_CURRENCY", "USD")),
			LogoMaxBytes:     int64(getInt(v, "LOGO_MAX_BYTES", 5*1024*1024)),
			ExportsPerSecond: getFloat(v, "PDF_EXPORTS_PER_SECOND", 2),
			ExportBurst:      getInt(v, "PDF_EXPORT_BURST", 4),
			SwaggerFile:      getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("STORAGE_DIR es requerido")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Invoice.LogoMaxBytes <= 0 {
		return fmt.Errorf("LOGO_MAX_BYTES debe ser positivo")
	}
	return nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(v.GetString(key), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
