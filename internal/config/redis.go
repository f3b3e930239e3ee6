package config

import "time"

// RedisConfig представляет конфигурацию подключения к Redis.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"UNOTES_REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"UNOTES_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"UNOTES_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"UNOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"UNOTES_REDIS_TIMEOUT" env-default:"5s"`
}
