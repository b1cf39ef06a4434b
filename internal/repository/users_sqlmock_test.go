package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resumebuilder/internal/resume"
)

func TestUserRepository_Create_Postgres(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  uint
		wantErr error
	}{
		{
			name: "unique violation from a concurrent insert",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users" .*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`INSERT INTO "users" .*`).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
				return mockDB
			},
			wantErr: resume.ErrDuplicateEmail,
		},
		{
			name: "email already registered",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users" .*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				return mockDB
			},
			wantErr: resume.ErrDuplicateEmail,
		},
		{
			name: "inserted",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users" .*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`INSERT INTO "users" .*`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
				return mockDB
			},
			wantID: 3,
		},
		{
			name: "database error",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users" .*`).
					WillReturnError(errors.New("connection refused"))
				return mockDB
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(postgres.New(postgres.Config{
				Conn: tc.mock(t),
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
				TranslateError:         true,
				Logger:                 logger.Default.LogMode(logger.Silent),
			})
			require.NoError(t, err)

			u, err := NewUserRepository(db).Create(context.Background(), resume.CreateUserInput{
				Email:     "dup@example.com",
				FirstName: "Ada",
				LastName:  "Lovelace",
			})
			switch {
			case tc.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, u.ID)
			case errors.Is(tc.wantErr, resume.ErrDuplicateEmail):
				assert.ErrorIs(t, err, resume.ErrDuplicateEmail)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
			}
		})
	}
}
