package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mockapi/src/domain"
	"mockapi/src/encoders"
	"mockapi/src/helper/env"
	"mockapi/src/pipeline"
)

type PostgresConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int
	TablePrefix string
}

func (c PostgresConfig) Enabled() bool { return c.Host != "" }

type RedisConfig struct {
	Addrs    string
	PoolSize int
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool { return c.Addrs != "" }

type KafkaConfig struct {
	Brokers     string
	TopicPrefix string
	BatchSize   int
}

func (c KafkaConfig) Enabled() bool { return c.Brokers != "" }

// Config is everything the binaries need. It is built once by Load.
type Config struct {
	Pipeline        pipeline.Config
	Strict          bool
	MetricsTextfile string
	LogLevel        string
	AppEnv          string
	ServerPort      int

	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// Load merges, from lowest to highest precedence: defaults, the counts YAML
// file, environment variables (after .env) and command line flags.
func Load(args []string) (Config, error) {
	envFile := env.GetString("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load - reading %s: %w", envFile, err)
	}

	cfg := Config{
		Pipeline:   pipeline.DefaultConfig(),
		LogLevel:   "info",
		AppEnv:     "production",
		ServerPort: 8888,
	}
	if err := cfg.fromEnv(); err != nil {
		return Config{}, fmt.Errorf("config.Load - %w", err)
	}
	if err := cfg.fromFlags(args); err != nil {
		return Config{}, fmt.Errorf("config.Load - %w", err)
	}
	if err := cfg.Pipeline.Validate(domain.AllEntityKeys()); err != nil {
		return Config{}, fmt.Errorf("config.Load - %w", err)
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	c.Pipeline.OutputDir = env.GetString("OUTPUT_DIR", c.Pipeline.OutputDir)
	c.Strict = env.GetBool("STRICT", c.Strict)
	c.MetricsTextfile = env.GetString("METRICS_TEXTFILE")
	c.LogLevel = env.GetString("LOG_LEVEL", c.LogLevel)
	c.AppEnv = env.GetString("APP_ENV", c.AppEnv)
	c.ServerPort = env.GetInt("SERVER_ADDR", c.ServerPort)

	if seed, ok, err := env.ParseInt64("SEED"); err != nil {
		return err
	} else if ok {
		c.Pipeline.Seed = seed
	}
	if workers, ok, err := env.ParseInt("WORKERS"); err != nil {
		return err
	} else if ok {
		c.Pipeline.Workers = workers
	}
	if raw, ok := env.Lookup("FORMATS"); ok {
		formats, err := ParseFormats(raw)
		if err != nil {
			return err
		}
		c.Pipeline.Formats = formats
	}
	if raw, ok := env.Lookup("CSV_FLATTEN"); ok {
		policy, err := encoders.ParseFlattenPolicy(raw)
		if err != nil {
			return err
		}
		c.Pipeline.CSVFlatten = policy
	}

	if path, ok := env.Lookup("COUNTS_FILE"); ok {
		if err := c.mergeCountsFile(path); err != nil {
			return err
		}
	}
	for _, key := range domain.AllEntityKeys() {
		name := "COUNT_" + strings.ToUpper(string(key))
		n, ok, err := env.ParseInt(name)
		if err != nil {
			return err
		}
		if ok {
			c.Pipeline.Counts[key] = n
		}
	}

	c.Postgres = PostgresConfig{
		Host:        env.GetString("DB_HOST"),
		Port:        env.GetString("DB_PORT", "5432"),
		Name:        env.GetString("DB_NAME"),
		User:        env.GetString("DB_USER"),
		Password:    env.GetString("DB_PASSWORD"),
		MaxConns:    env.GetInt("DB_MAX_POOL_CONNECTIONS", 25),
		TablePrefix: env.GetString("DB_TABLE_PREFIX", "mock_"),
	}
	c.Redis = RedisConfig{
		Addrs:    env.GetString("REDIS_ADDRS"),
		PoolSize: env.GetInt("REDIS_POOL_SIZE", 10),
		TTL:      env.GetDuration("REDIS_TTL", 0),
	}
	c.Kafka = KafkaConfig{
		Brokers:     env.GetString("KAFKA_BROKERS"),
		TopicPrefix: env.GetString("KAFKA_TOPIC_PREFIX", "mockapi"),
		BatchSize:   env.GetInt("KAFKA_BATCH_SIZE", 500),
	}
	return nil
}

func (c *Config) fromFlags(args []string) error {
	flags := flag.NewFlagSet("generate", flag.ContinueOnError)

	var (
		out       = flags.String("out", c.Pipeline.OutputDir, "output directory")
		seed      = flags.Int64("seed", c.Pipeline.Seed, "random seed, 0 picks one")
		formats   = flags.String("formats", "", "comma separated formats, or all")
		flatten   = flags.String("csv-flatten", string(c.Pipeline.CSVFlatten), "csv flatten policy: scalar, dotted or json")
		workers   = flags.Int("workers", c.Pipeline.Workers, "encoder parallelism")
		strict    = flags.Bool("strict", c.Strict, "exit non-zero when any artifact failed")
		countFile = flags.String("counts", "", "YAML file with entity counts")
		textfile  = flags.String("metrics-textfile", c.MetricsTextfile, "write run metrics to this file")
		counts    = countsFlag{}
	)
	flags.Var(counts, "count", "entity=n, may be repeated")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	c.Pipeline.OutputDir = *out
	c.Pipeline.Seed = *seed
	c.Pipeline.Workers = *workers
	c.Strict = *strict
	c.MetricsTextfile = *textfile

	policy, err := encoders.ParseFlattenPolicy(*flatten)
	if err != nil {
		return err
	}
	c.Pipeline.CSVFlatten = policy

	if *formats != "" {
		parsed, err := ParseFormats(*formats)
		if err != nil {
			return err
		}
		c.Pipeline.Formats = parsed
	}
	if *countFile != "" {
		if err := c.mergeCountsFile(*countFile); err != nil {
			return err
		}
	}
	for key, n := range counts {
		c.Pipeline.Counts[key] = n
	}
	return nil
}

func (c *Config) mergeCountsFile(path string) error {
	counts, err := LoadCountsFile(path)
	if err != nil {
		return err
	}
	for key, n := range counts {
		c.Pipeline.Counts[key] = n
	}
	return nil
}

// LoadCountsFile reads a YAML mapping of entity key to record count.
func LoadCountsFile(path string) (map[domain.EntityKey]int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading counts file: %w", err)
	}

	var raw map[string]int
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parsing counts file %s: %w", path, err)
	}

	counts := make(map[domain.EntityKey]int, len(raw))
	for name, n := range raw {
		key, err := domain.ParseEntityKey(name)
		if err != nil {
			return nil, fmt.Errorf("counts file %s: %w", path, err)
		}
		counts[key] = n
	}
	return counts, nil
}

// ParseFormats accepts "all" or a comma separated list of format names.
func ParseFormats(raw string) ([]encoders.Format, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "all") {
		return encoders.AllFormats(), nil
	}

	var formats []encoders.Format
	for _, name := range strings.Split(raw, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := encoders.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: empty format list", domain.ErrUnknownFormat)
	}
	return formats, nil
}

// countsFlag collects repeated -count entity=n values.
type countsFlag map[domain.EntityKey]int

func (f countsFlag) String() string {
	parts := make([]string, 0, len(f))
	for key, n := range f {
		parts = append(parts, fmt.Sprintf("%s=%d", key, n))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (f countsFlag) Set(value string) error {
	name, rawCount, found := strings.Cut(value, "=")
	if !found {
		return fmt.Errorf("expected entity=n, got %q", value)
	}
	key, err := domain.ParseEntityKey(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil {
		return fmt.Errorf("count for %s: %w", key, err)
	}
	f[key] = n
	return nil
}
