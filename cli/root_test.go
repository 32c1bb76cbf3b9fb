package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

func setEnv(t *testing.T, dbPath string) {
	t.Setenv("WISDOM_DATABASE_DRIVER", "sqlite")
	t.Setenv("WISDOM_DATABASE_URL", dbPath)
	t.Setenv("WISDOM_AUTH_DOMAIN", "example.auth0.com")
	t.Setenv("WISDOM_AUTH_CLIENT_ID", "client")
	t.Setenv("WISDOM_AUTH_CLIENT_SECRET", "secret")
	t.Setenv("WISDOM_AUTH_SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("WISDOM_SERVER_LOG_FORMAT", "console")
}

func TestCommandTree(t *testing.T) {
	root := NewRootCommand()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestSeedCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wisdom.db")
	setEnv(t, dbPath)

	root := NewRootCommand()
	root.SetArgs([]string{"seed"})
	require.NoError(t, root.Execute())

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var characters int64
	require.NoError(t, db.Model(&models.Character{}).Count(&characters).Error)
	assert.Equal(t, int64(20), characters)

	root = NewRootCommand()
	root.SetArgs([]string{"migrate"})
	require.NoError(t, root.Execute())
}

func TestInvalidConfigFails(t *testing.T) {
	setEnv(t, filepath.Join(t.TempDir(), "wisdom.db"))
	t.Setenv("WISDOM_DATABASE_DRIVER", "mysql")

	root := NewRootCommand()
	root.SetArgs([]string{"migrate"})
	assert.Error(t, root.Execute())
}

func TestSchemaCommandsRunWithoutAuth(t *testing.T) {
	setEnv(t, filepath.Join(t.TempDir(), "wisdom.db"))
	t.Setenv("WISDOM_AUTH_SESSION_SECRET", "short")
	t.Setenv("WISDOM_AUTH_CLIENT_ID", "")

	for _, cmd := range []string{"migrate", "seed"} {
		root := NewRootCommand()
		root.SetArgs([]string{cmd})
		assert.NoError(t, root.Execute(), cmd)
	}

	root := NewRootCommand()
	root.SetArgs([]string{"serve"})
	assert.ErrorContains(t, root.Execute(), "invalid configuration")
}
