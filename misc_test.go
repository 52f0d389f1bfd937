package winpager

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type gormMock struct {
	dialect string
	db      *gorm.DB
	mock    sqlmock.Sqlmock
}

// gormMocks opens one gorm session per supported dialect over sqlmock, so
// SQL-facing tests run against both quoting styles.
func gormMocks(t *testing.T) []gormMock {
	t.Helper()

	mysqlConn, mysqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock (mysql): %v", err)
	}

	mysqlDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mysqlConn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open (mysql): %v", err)
	}

	pgConn, pgMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock (postgres): %v", err)
	}

	pgDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: pgConn,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open (postgres): %v", err)
	}

	return []gormMock{
		{dialect: "mysql", db: mysqlDB.Debug(), mock: mysqlMock},
		{dialect: "postgres", db: pgDB.Debug(), mock: pgMock},
	}
}
