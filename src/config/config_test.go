package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mockapi/src/config"
	"mockapi/src/domain"
	"mockapi/src/encoders"
	"mockapi/src/pipeline"
)

func setEnv(key, value string) {
	previous, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, previous)
		} else {
			os.Unsetenv(key)
		}
	})
}

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		setEnv("ENV_FILE", filepath.Join(dir, "missing.env"))
	})

	Context("when nothing is configured", func() {
		It("uses the published defaults", func() {
			// ACT
			cfg, err := config.Load(nil)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Pipeline.OutputDir).To(Equal("public/api/v1"))
			Expect(cfg.Pipeline.Counts).To(Equal(pipeline.DefaultCounts()))
			Expect(cfg.Pipeline.Counts[domain.Comments]).To(Equal(2000))
			Expect(cfg.Pipeline.Formats).To(Equal(encoders.AllFormats()))
			Expect(cfg.Pipeline.CSVFlatten).To(Equal(encoders.FlattenScalar))
			Expect(cfg.Pipeline.Seed).To(BeZero())
			Expect(cfg.Strict).To(BeFalse())
			Expect(cfg.Postgres.Enabled()).To(BeFalse())
			Expect(cfg.Redis.Enabled()).To(BeFalse())
			Expect(cfg.Kafka.Enabled()).To(BeFalse())
			Expect(cfg.ServerPort).To(Equal(8888))
		})
	})

	Context("when several sources set the same value", func() {
		It("prefers flags over env over the counts file", func() {
			// ARRANGE
			countsFile := writeFile(dir, "counts.yaml", "users: 10\nposts: 20\ncomments: 30\n")
			setEnv("COUNTS_FILE", countsFile)
			setEnv("COUNT_POSTS", "21")
			setEnv("COUNT_COMMENTS", "31")
			setEnv("SEED", "7")
			setEnv("FORMATS", "json,csv")

			// ACT
			cfg, err := config.Load([]string{"-count", "comments=32", "-seed", "8", "-out", dir})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Pipeline.Counts[domain.Users]).To(Equal(10))
			Expect(cfg.Pipeline.Counts[domain.Posts]).To(Equal(21))
			Expect(cfg.Pipeline.Counts[domain.Comments]).To(Equal(32))
			Expect(cfg.Pipeline.Counts[domain.Photos]).To(Equal(500))
			Expect(cfg.Pipeline.Seed).To(Equal(int64(8)))
			Expect(cfg.Pipeline.Formats).To(Equal([]encoders.Format{encoders.JSON, encoders.CSV}))
			Expect(cfg.Pipeline.OutputDir).To(Equal(dir))
		})
	})

	Context("when a .env file exists", func() {
		It("loads it without overriding the real environment", func() {
			// ARRANGE
			envFile := writeFile(dir, ".env", "LOG_LEVEL=debug\nAPP_ENV=development\nREDIS_ADDRS=localhost:6379\nREDIS_TTL=90s\n")
			setEnv("ENV_FILE", envFile)
			setEnv("APP_ENV", "production")
			DeferCleanup(os.Unsetenv, "LOG_LEVEL")
			DeferCleanup(os.Unsetenv, "REDIS_ADDRS")
			DeferCleanup(os.Unsetenv, "REDIS_TTL")

			// ACT
			cfg, err := config.Load(nil)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.AppEnv).To(Equal("production"))
			Expect(cfg.Redis.Enabled()).To(BeTrue())
			Expect(cfg.Redis.TTL).To(Equal(90 * time.Second))
		})
	})

	Context("when sinks are configured", func() {
		It("reads the database and broker variables", func() {
			// ARRANGE
			setEnv("DB_HOST", "localhost")
			setEnv("DB_NAME", "mockapi")
			setEnv("KAFKA_BROKERS", "localhost:9092")
			setEnv("KAFKA_TOPIC_PREFIX", "fixtures")

			// ACT
			cfg, err := config.Load(nil)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Postgres.Enabled()).To(BeTrue())
			Expect(cfg.Postgres.Port).To(Equal("5432"))
			Expect(cfg.Postgres.TablePrefix).To(Equal("mock_"))
			Expect(cfg.Kafka.Enabled()).To(BeTrue())
			Expect(cfg.Kafka.TopicPrefix).To(Equal("fixtures"))
			Expect(cfg.Kafka.BatchSize).To(Equal(500))
		})
	})

	DescribeTable("rejects invalid configuration",
		func(args []string, env map[string]string, expected error) {
			// ARRANGE
			for key, value := range env {
				setEnv(key, value)
			}

			// ACT
			_, err := config.Load(args)

			// ASSERT
			Expect(err).To(HaveOccurred())
			if expected != nil {
				Expect(err).To(MatchError(expected))
			}
		},
		Entry("zero count flag", []string{"-count", "users=0"}, nil, domain.ErrInvalidCount),
		Entry("negative count env", nil, map[string]string{"COUNT_ORDERS": "-1"}, domain.ErrInvalidCount),
		Entry("unknown entity flag", []string{"-count", "accounts=3"}, nil, nil),
		Entry("malformed count flag", []string{"-count", "users"}, nil, nil),
		Entry("unknown format", []string{"-formats", "json,toml"}, nil, domain.ErrUnknownFormat),
		Entry("unknown csv policy", []string{"-csv-flatten", "nested"}, nil, nil),
		Entry("malformed seed env", nil, map[string]string{"SEED": "abc"}, nil),
		Entry("stray argument", []string{"extra"}, nil, nil),
	)

	It("rejects unknown entities in the counts file", func() {
		// ARRANGE
		countsFile := writeFile(dir, "counts.yaml", "accounts: 3\n")

		// ACT
		_, err := config.Load([]string{"-counts", countsFile})

		// ASSERT
		Expect(err).To(MatchError(domain.ErrUnknownEntity))
	})
})

var _ = Describe("ParseFormats", func() {
	It("accepts all", func() {
		formats, err := config.ParseFormats("ALL")
		Expect(err).NotTo(HaveOccurred())
		Expect(formats).To(Equal(encoders.AllFormats()))
	})

	It("keeps the requested order and skips blanks", func() {
		formats, err := config.ParseFormats("bson, ,min.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(formats).To(Equal([]encoders.Format{encoders.BSON, encoders.MinJSON}))
	})

	It("rejects an empty list", func() {
		_, err := config.ParseFormats(" , ")
		Expect(err).To(MatchError(domain.ErrUnknownFormat))
	})
})
