package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads a dotenv file into the process environment and then copies
// recognised variables into config.
//
// The file is taken from the -env flag; without it ".env" is tried and a
// missing file is ignored. Variables already set in the environment win over
// the file, as godotenv.Load never overrides.
//
// Recognised variables:
//
//	PORT                HTTP port (bound on all interfaces)
//	HTTP_ADDR           full HTTP bind address, wins over PORT
//	GRPC_ADDR           gRPC health bind address ("" disables)
//	JWT_SECRET          token signing secret
//	JWT_EXPIRATION      token lifetime, Go duration ("24h")
//	BCRYPT_ROUNDS       bcrypt cost
//	RATE_LIMIT_MAX      requests per window per client, 0 disables
//	RATE_LIMIT_WINDOW   rate limit window, Go duration
//	CORS_ORIGIN         allowed CORS origin
//	APP_ENV             environment name
//	LOG_LEVEL           debug, info, warn, error
//	SEED_DEMO_DATA      true/false
func parseEnv(config *Config, args []string) error {
	envFile := flagx.EnvFileFlag(args)
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", defaultEnvFile, err)
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	lookupString("HTTP_ADDR", &config.EndpointAddrHTTP)
	if v, ok := os.LookupEnv("GRPC_ADDR"); ok {
		config.EndpointAddrGRPC = v
	}
	lookupString("JWT_SECRET", &config.SecretKey)
	lookupString("CORS_ORIGIN", &config.CORSOrigin)
	lookupString("APP_ENV", &config.Environment)
	lookupString("LOG_LEVEL", &config.LogLevel)

	if err := lookupDuration("JWT_EXPIRATION", &config.TokenValidityDuration); err != nil {
		return err
	}
	if err := lookupDuration("RATE_LIMIT_WINDOW", &config.RateLimitWindow); err != nil {
		return err
	}
	if err := lookupInt("BCRYPT_ROUNDS", &config.BcryptCost); err != nil {
		return err
	}
	if err := lookupInt("RATE_LIMIT_MAX", &config.RateLimitMax); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("SEED_DEMO_DATA"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_DEMO_DATA: %w", err)
		}
		config.SeedDemoData = b
	}

	return nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func lookupDuration(key string, dst *time.Duration) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
