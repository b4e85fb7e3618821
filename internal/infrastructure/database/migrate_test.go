package database

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr      error
	version    uint
	dirty      bool
	versionErr error
}

func (m fakeMigrator) Up() error { return m.upErr }

func (m fakeMigrator) Version() (uint, bool, error) {
	return m.version, m.dirty, m.versionErr
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestApplyMigrations(t *testing.T) {
	logger, buf := bufferLogger()

	require.NoError(t, applyMigrations(fakeMigrator{version: 1}, logger))
	assert.Contains(t, buf.String(), "version=1")
	assert.Contains(t, buf.String(), "already_up_to_date=false")

	buf.Reset()
	require.NoError(t, applyMigrations(fakeMigrator{upErr: migrate.ErrNoChange, version: 1}, logger))
	assert.Contains(t, buf.String(), "already_up_to_date=true")
}

func TestApplyMigrations_Errors(t *testing.T) {
	logger, _ := bufferLogger()
	boom := errors.New("connection refused")

	err := applyMigrations(fakeMigrator{upErr: boom}, logger)
	assert.ErrorIs(t, err, boom)

	err = applyMigrations(fakeMigrator{versionErr: boom}, logger)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "migration version")

	err = applyMigrations(fakeMigrator{version: 3, dirty: true}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty")
}

func TestApplyMigrations_NoMigrations(t *testing.T) {
	logger, buf := bufferLogger()

	err := applyMigrations(fakeMigrator{upErr: migrate.ErrNoChange, versionErr: migrate.ErrNilVersion}, logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no migrations")
}

func TestPoolConfig(t *testing.T) {
	cfg, err := poolConfig("postgres://bot@db:5432/prefs?sslmode=disable&pool_max_conns=3")
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.ConnConfig.Host)
	assert.Equal(t, "prefs", cfg.ConnConfig.Database)
	assert.Equal(t, int32(3), cfg.MaxConns)

	_, err = poolConfig("postgres://db:5432/prefs?pool_max_conns=lots")
	assert.Error(t, err)
}
