package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestJobRepository_ListOpenFiltersAndOrders(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "status", "created_at"}).
		AddRow(2, "Newer", "open", now).
		AddRow(1, "Older", "open", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "job_postings" WHERE status = \$1`).
		WithArgs("open").
		WillReturnRows(rows)

	jobs, err := repo.ListOpen()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, "Newer", jobs[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_ListOpenQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "job_postings"`).
		WillReturnError(fmt.Errorf("connection reset"))

	jobs, err := repo.ListOpen()
	require.Error(t, err)
	require.Nil(t, jobs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "job_postings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	job, err := repo.FindByID(42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.Nil(t, job)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_DeleteZeroRowsIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "job_postings"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_SetStatusExecError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "job_postings"`).
		WillReturnError(fmt.Errorf("deadlock detected"))
	mock.ExpectRollback()

	err := repo.SetStatus(7, models.JobStatusClosed)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
