package migrations

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemaCreatesStudentsTable(t *testing.T) {
	content, err := fs.ReadFile(embedded, "sql/001_create_students.sql")
	require.NoError(t, err)

	schema := string(content)
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS students")
	assert.Contains(t, schema, "control_number VARCHAR PRIMARY KEY")
	assert.Contains(t, schema, "semester SMALLINT NOT NULL")
}

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "001", migrationVersion("001_create_students.sql"))
	assert.Equal(t, "002", migrationVersion("sql/002_add_index.sql"))
	assert.Equal(t, "003.sql", migrationVersion("003.sql"))
}

func TestMigrateFromFS_AppliesPendingInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	fsys := fstest.MapFS{
		"sql/002_second.sql": {Data: []byte("CREATE TABLE second (id INT);")},
		"sql/001_first.sql":  {Data: []byte("CREATE TABLE first (id INT);")},
		"sql/README.md":      {Data: []byte("ignored")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("002").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE second (id INT);")).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("002", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = NewMigrator(mock).MigrateFromFS(context.Background(), fsys, "sql")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFromFS_RollsBackFailedMigration(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	fsys := fstest.MapFS{
		"sql/001_broken.sql": {Data: []byte("CREATE TABLE broken (")},
	}
	syntaxErr := errors.New("syntax error at end of input")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE broken (")).WillReturnError(syntaxErr)
	mock.ExpectRollback()

	err = NewMigrator(mock).MigrateFromFS(context.Background(), fsys, "sql")
	assert.ErrorIs(t, err, syntaxErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFromFS_TrackingTableFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	denied := errors.New("permission denied")
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnError(denied)

	err = NewMigrator(mock).Migrate(context.Background())
	assert.ErrorIs(t, err, denied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
