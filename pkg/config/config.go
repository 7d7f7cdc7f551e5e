package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	DB       DBConfig
	S3       S3Config
	Realtime RealtimeConfig
	Docs     DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// Drivers soportados por el Record Store.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// StorageConfig selecciona el driver del Record Store y el nombre de cada recurso.
type StorageConfig struct {
	Driver           string
	Dir              string // directorio base del driver file
	ProductsResource string
	CartsResource    string
	SQLitePath       string
}

// DBConfig configuración de PostgreSQL (driver postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// S3Config configuración del driver s3 (AWS S3 o MinIO).
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // opcional, p. ej. MinIO
	PathStyle bool
	Prefix    string // prefijo de las claves de objeto
	// Credenciales estáticas opcionales; vacías = cadena de credenciales por defecto de AWS.
	AccessKeyID     string
	SecretAccessKey string
}

// RealtimeConfig configuración del canal realtime.
type RealtimeConfig struct {
	BufferSize int // tamaño de la cola acotada por suscriptor
}

// DocsConfig ubicación del documento OpenAPI servido por Swagger UI.
type DocsConfig struct {
	SwaggerFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "catalogo-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver:           strings.ToLower(getString(v, "STORAGE_DRIVER", DriverFile)),
			Dir:              getString(v, "STORAGE_DIR", "."),
			ProductsResource: getString(v, "PRODUCTS_RESOURCE", "productos.json"),
			CartsResource:    getString(v, "CARTS_RESOURCE", "carrito.json"),
			SQLitePath:       getString(v, "SQLITE_PATH", "catalogo.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "catalogo"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		S3: S3Config{
			Bucket:    getString(v, "S3_BUCKET", ""),
			Region:    getString(v, "S3_REGION", "us-east-1"),
			Endpoint:  getString(v, "S3_ENDPOINT", ""),
			PathStyle: getBool(v, "S3_PATH_STYLE", false),
			Prefix:    getString(v, "S3_PREFIX", ""),

			AccessKeyID:     getString(v, "S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(v, "S3_SECRET_ACCESS_KEY", ""),
		},
		Realtime: RealtimeConfig{
			BufferSize: getInt(v, "REALTIME_BUFFER", 16),
		},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverMemory, DriverSQLite, DriverPostgres:
	case DriverS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET es requerido con STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	if c.Storage.ProductsResource == c.Storage.CartsResource {
		return fmt.Errorf("config: PRODUCTS_RESOURCE y CARTS_RESOURCE deben ser distintos")
	}
	if c.Realtime.BufferSize <= 0 {
		c.Realtime.BufferSize = 16
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
