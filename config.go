package pathkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Transfer tuning
	WorkerCount   int `env:"PATHKIT_WORKER_COUNT,default:5"`
	RetryInterval int `env:"PATHKIT_RETRY_INTERVAL,default:5"` // seconds
	RetryAttempts int `env:"PATHKIT_RETRY_ATTEMPTS,default:12"`
	ProgressEvery int `env:"PATHKIT_PROGRESS_EVERY,default:50"`

	// S3 backend configuration
	S3Region          string `env:"PATHKIT_S3_REGION,default:us-east-1"`
	S3Endpoint        string `env:"PATHKIT_S3_ENDPOINT"`
	S3AccessKeyID     string `env:"PATHKIT_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"PATHKIT_S3_SECRET_ACCESS_KEY"`
	S3ForcePathStyle  bool   `env:"PATHKIT_S3_FORCE_PATH_STYLE,default:false"`

	// Swift backend configuration
	SwiftAuthURL  string `env:"PATHKIT_SWIFT_AUTH_URL"`
	SwiftUsername string `env:"PATHKIT_SWIFT_USERNAME"`
	SwiftAPIKey   string `env:"PATHKIT_SWIFT_API_KEY"`
	SwiftTenant   string `env:"PATHKIT_SWIFT_TENANT"`
	SwiftRegion   string `env:"PATHKIT_SWIFT_REGION"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// transferOptions converts configured defaults into options. Explicit
// options passed by the caller are applied afterwards and win.
func (c *Config) transferOptions() []Option {
	return []Option{
		WithWorkerCount(c.WorkerCount),
		WithRetryInterval(secondsToDuration(c.RetryInterval)),
		WithRetryAttempts(c.RetryAttempts),
		WithProgressEvery(c.ProgressEvery),
	}
}
