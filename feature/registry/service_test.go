package registry

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRecord(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `artifacts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := svc.Record(context.Background(), &Artifact{
		Bucket:    "sentiment-data",
		Key:       "data/comments.csv",
		Kind:      KindDataset,
		SizeBytes: 2048,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecent(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "bucket", "object_key", "kind", "size_bytes", "created_at"}).
		AddRow(2, "sentiment-data", "model/sentiment.keras", KindModel, 1<<20, now).
		AddRow(1, "sentiment-data", "data/comments.csv", KindDataset, 2048, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT \\* FROM `artifacts`").WillReturnRows(rows)

	items, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "model/sentiment.keras", items[0].Key)
	assert.Equal(t, KindDataset, items[1].Kind)
}

func TestDisabledRegistry(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Migrate())
	assert.NoError(t, svc.Record(context.Background(), &Artifact{Key: "x"}))

	items, err := svc.Recent(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, items)
}
