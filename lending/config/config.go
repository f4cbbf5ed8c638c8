package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
	"github.com/Astemirdum/lending-service/pkg/sqlite"
	"github.com/Astemirdum/lending-service/pkg/validate"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	DriverBlob     = "blob"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	NotifyLog   = "log"
	NotifyKafka = "kafka"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"30s"`
}

// Storage selects the document backend. BucketURL wins over DataDir for the
// blob driver.
type Storage struct {
	Driver    string `yaml:"driver" envconfig:"STORAGE_DRIVER" default:"blob" validate:"oneof=blob postgres sqlite"`
	BucketURL string `yaml:"bucketUrl" envconfig:"STORAGE_BUCKET_URL"`
	DataDir   string `yaml:"dataDir" envconfig:"STORAGE_DATA_DIR" default:"data"`
}

type Notify struct {
	Mode   string `yaml:"mode" envconfig:"NOTIFY_MODE" default:"log" validate:"oneof=log kafka"`
	Topic  string `yaml:"topic" envconfig:"NOTIFY_TOPIC" default:"lending.notifications"`
	Buffer int    `yaml:"buffer" envconfig:"NOTIFY_BUFFER" default:"64" validate:"gt=0"`
}

// Reminder drives the background reminder run; a zero Interval disables it.
type Reminder struct {
	Interval   time.Duration `yaml:"interval" envconfig:"REMINDER_INTERVAL" default:"24h"`
	DaysBefore int           `yaml:"daysBefore" envconfig:"REMINDER_DAYS_BEFORE" default:"2" validate:"gte=0"`
}

type Auth struct {
	BcryptCost int `yaml:"bcryptCost" envconfig:"AUTH_BCRYPT_COST" default:"10" validate:"gte=4,lte=31"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Storage  Storage     `yaml:"storage"`
	Database postgres.DB `yaml:"db" json:"-"`
	SQLite   sqlite.DB   `yaml:"sqlite"`
	Kafka    kafka.Config
	Notify   Notify     `yaml:"notify"`
	Reminder Reminder   `yaml:"reminder"`
	Auth     Auth       `yaml:"auth"`
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment once; options override what the
// environment sets.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func Load(ops ...Option) (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, errors.Wrap(err, "envconfig.Process")
	}
	for _, op := range ops {
		op(&config)
	}
	if err := validate.NewCustomValidator().Validate(config); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}
	return config, nil
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
