package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Lab.MaxSelection)
	assert.Equal(t, time.Hour, cfg.Quiz.SessionTTL)
	assert.Equal(t, "canned", cfg.Chat.Backend)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")

	v := viper.New()
	setDefaults(v)
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "s3cret", cfg.Admin.JWTSecret)
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("store.driver", "postgres")

	_, err := fromViper(v)
	assert.ErrorContains(t, err, "unsupported store driver")
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg, err := fromViper(v)
	require.NoError(t, err)

	cfg.Lab.MaxSelection = 0
	assert.Error(t, cfg.Validate())

	cfg.Lab.MaxSelection = 3
	cfg.Chat.Backend = "gpt"
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{User: "ashi", Password: "pw", Host: "localhost", Port: 1521, DBName: "REMEDIES"}}
	assert.Equal(t, "oracle://ashi:pw@localhost:1521/REMEDIES", cfg.GetDSN())
}
