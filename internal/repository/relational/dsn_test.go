package relational

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/simcc/internal/config"
)

func TestBuildDSN(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "key value list gets credentials and sslmode",
			cfg:  config.DatabaseConfig{Driver: config.DriverPostgres, User: "simcc", Password: "s3cr3t", DSN: "host=db  port=5432 dbname=cana"},
			want: "host=db port=5432 dbname=cana user=simcc password=s3cr3t sslmode=disable",
		},
		{
			name: "embedded credentials are replaced",
			cfg:  config.DatabaseConfig{Driver: config.DriverPostgres, User: "simcc", Password: "pw", DSN: "host=db user=old password=old dbname=cana sslmode=require"},
			want: "host=db dbname=cana sslmode=require user=simcc password=pw",
		},
		{
			name: "passwords with spaces are quoted",
			cfg:  config.DatabaseConfig{Driver: config.DriverPostgres, User: "simcc", Password: "a b'c", DSN: "host=db dbname=cana"},
			want: `host=db dbname=cana user=simcc password='a b\'c' sslmode=disable`,
		},
		{
			name: "url form",
			cfg:  config.DatabaseConfig{Driver: config.DriverPostgres, User: "simcc", Password: "pw", DSN: "postgres://old@db:5432/cana?sslmode=disable"},
			want: "postgres://simcc:pw@db:5432/cana?sslmode=disable",
		},
		{
			name: "sqlite keeps the file path",
			cfg:  config.DatabaseConfig{Driver: config.DriverSQLite, User: "simcc", Password: "pw", DSN: " 'simcc.db' "},
			want: "simcc.db",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildDSN(tc.cfg))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "postgres://simcc:xxxxx@db/cana", MaskDSN("postgres://simcc:pw@db/cana"))
	assert.Equal(t, "host=db user=simcc password=*** sslmode=disable", MaskDSN("host=db user=simcc password=pw sslmode=disable"))
	assert.Equal(t, "simcc.db", MaskDSN("simcc.db"))
}
