package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverMongo    = "mongo"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Init loads the service configuration and panics when it is unusable.
// A missing or invalid connection setting is fatal for the service.
func Init(filepath string) {
	conf, err := Load(filepath)
	if err != nil {
		panic(err)
	}
	globalConfig = conf

	hlog.Debugf("config debug: env=%s driver=%s port=%d", conf.Env, conf.Storage.Driver, conf.Server.Port)
}

// Load reads the optional .env file, the yaml file at filepath and the
// environment overrides, in that order of increasing precedence.
func Load(filepath string) (ServiceConf, error) {
	// .env is optional; real deployments inject variables directly
	_ = godotenv.Load()

	conf := defaultConf()
	if filepath != "" {
		content, err := os.ReadFile(filepath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(content, &conf); err != nil {
				return ServiceConf{}, fmt.Errorf("parse config %s: %w", filepath, err)
			}
		case errors.Is(err, os.ErrNotExist):
			hlog.Warnf("config file %s not found, using environment only", filepath)
		default:
			return ServiceConf{}, fmt.Errorf("read config %s: %w", filepath, err)
		}
	}

	if err := applyEnv(&conf); err != nil {
		return ServiceConf{}, err
	}
	if err := conf.Validate(); err != nil {
		return ServiceConf{}, err
	}
	return conf, nil
}

// Get returns the whole loaded configuration.
func Get() ServiceConf {
	return globalConfig
}

func GetEnv() string {
	return globalConfig.Env
}

func IsDevelopment() bool {
	return globalConfig.Env == EnvDevelopment
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetStorageConf() StorageConf {
	return globalConfig.Storage
}

func GetMongoConf() MongoConf {
	return globalConfig.Mongo
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetPostgresConf() PostgresConf {
	return globalConfig.Postgres
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetPasswordConf() PasswordConf {
	return globalConfig.Password
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetRateLimitConf() []RateLimitConf {
	return globalConfig.RateLimit
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

func GetRegisterProtectionConf() RegisterProtectionConf {
	return globalConfig.RegisterProtection
}

var globalConfig = defaultConf()

type ServiceConf struct {
	Env                string                 `yaml:"env"`
	Server             ServerConf             `yaml:"server"`
	Storage            StorageConf            `yaml:"storage"`
	Mongo              MongoConf              `yaml:"mongo"`
	MySQL              MySQLConf              `yaml:"mysql"`
	Postgres           PostgresConf           `yaml:"postgres"`
	Redis              RedisConf              `yaml:"redis"`
	Password           PasswordConf           `yaml:"password"`
	CORS               CORSConf               `yaml:"cors"`
	RateLimit          []RateLimitConf        `yaml:"rate_limit"`
	Logger             LoggerConf             `yaml:"logger"`
	RegisterProtection RegisterProtectionConf `yaml:"register_protection"`
}

// Validate reports the first setting that prevents the service from starting.
func (c ServiceConf) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port is not defined or out of range: %d", c.Server.Port)
	}

	switch c.Storage.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGO_URI is not defined")
		}
		if c.Mongo.Database == "" {
			return errors.New("mongo database is not defined")
		}
	case DriverMySQL:
		if c.MySQL.DSN == "" && (c.MySQL.IP == "" || c.MySQL.DBName == "") {
			return errors.New("mysql connection is not defined")
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("POSTGRES_DSN is not defined")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}

type ServerConf struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// seconds
	ExitWaitTime int `yaml:"exit_wait_time"`
}

func (s ServerConf) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StorageConf struct {
	Driver string `yaml:"driver"`
}

type MongoConf struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
	// seconds
	ServerSelectionTimeout int `yaml:"server_selection_timeout"`
	SocketTimeout          int `yaml:"socket_timeout"`
}

type MySQLConf struct {
	DSN      string `yaml:"dsn"`
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type PostgresConf struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"max_conns"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a redis endpoint is configured.
func (r RedisConf) Enabled() bool {
	return r.IP != ""
}

type PasswordConf struct {
	Cost      int `yaml:"cost"`
	MinLength int `yaml:"min_length"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type RateLimitConf struct {
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
}

type RegisterProtectionConf struct {
	BlockMinutes int `yaml:"block_minutes"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

func defaultConf() ServiceConf {
	return ServiceConf{
		Env: EnvProduction,
		Server: ServerConf{
			Host:         "0.0.0.0",
			Port:         5000,
			ExitWaitTime: 5,
		},
		Storage: StorageConf{Driver: DriverMongo},
		Mongo: MongoConf{
			Database:               "blog-api",
			ServerSelectionTimeout: 10,
			SocketTimeout:          45,
		},
		Password: PasswordConf{
			Cost:      10,
			MinLength: 6,
		},
	}
}

func applyEnv(conf *ServiceConf) error {
	if v := os.Getenv("APP_ENV"); v != "" {
		conf.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		conf.Server.Port = port
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		conf.Storage.Driver = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		conf.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		conf.Mongo.Database = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		conf.MySQL.DSN = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		conf.Postgres.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, err := splitHostPort(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_ADDR %q: %w", v, err)
		}
		conf.Redis.IP, conf.Redis.Port = host, port
	}
	return nil
}
