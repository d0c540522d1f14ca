package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codeFormat = regexp.MustCompile(`^REP-\d{5}$`)

func TestGenerateRepresentativeCodeFormat(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM representatives WHERE code = $1)`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	code, err := GenerateRepresentativeCode(db)
	require.NoError(t, err)
	assert.Regexp(t, codeFormat, code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateCodeRetriesOnCollision(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM passengers WHERE code = $1)`)
	mock.ExpectQuery(existsQuery).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsQuery).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsQuery).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	code, err := GenerateTeacherCode(db)
	require.NoError(t, err)
	assert.Regexp(t, `^DOC-\d{5}$`, code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateCodeGivesUpAfterMaxAttempts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM representatives WHERE code = $1)`)
	for i := 0; i < maxCodeAttempts; i++ {
		mock.ExpectQuery(existsQuery).WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}

	_, err = GenerateRepresentativeCode(db)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
