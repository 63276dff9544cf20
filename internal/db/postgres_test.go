package db

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agency-desk/internal/config/configs"
)

func TestPoolConfig(t *testing.T) {
	addr, err := url.Parse("postgres://u:p@localhost:5432/agency?sslmode=disable&application_name=worker")
	require.NoError(t, err)

	conf, err := poolConfig(configs.Postgres{Addr: *addr, MaxConns: 12, MinConns: 2, MaxConnIdle: time.Minute})
	require.NoError(t, err)
	require.Equal(t, int32(12), conf.MaxConns)
	require.Equal(t, int32(2), conf.MinConns)
	require.Equal(t, time.Minute, conf.MaxConnIdleTime)
	require.Equal(t, "worker", conf.ConnConfig.RuntimeParams["application_name"])
	require.Equal(t, "UTC", conf.ConnConfig.RuntimeParams["timezone"])
}

func TestPoolConfigDefaults(t *testing.T) {
	addr, err := url.Parse("postgres://u:p@localhost:5432/agency?sslmode=disable")
	require.NoError(t, err)

	conf, err := poolConfig(configs.Postgres{Addr: *addr})
	require.NoError(t, err)
	require.Positive(t, conf.MaxConns)
	require.Equal(t, applicationName, conf.ConnConfig.RuntimeParams["application_name"])
}
