package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mySmartMarket/pkg/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		Name:     "market",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=market sslmode=disable TimeZone=UTC", PostgresDSN(cfg))

	cfg.Port = "3306"
	assert.Equal(t, "app:secret@tcp(db:3306)/market?charset=utf8mb4&parseTime=True&loc=UTC", MySQLDSN(cfg))
}

func TestDialector(t *testing.T) {
	d, err := Dialector(config.DatabaseConfig{Driver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(config.DatabaseConfig{Driver: config.DriverMySQL})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(config.DatabaseConfig{Driver: "sqlite"})
	assert.Error(t, err)
}
