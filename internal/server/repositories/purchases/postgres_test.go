package purchases

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertQ = `(?s)^INSERT\s+INTO\s+purchases\s*\(user_id,\s*template_id,\s*purchased_at,\s*transaction_id,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id\s*$`
	existsQ = `(?s)^SELECT\s+EXISTS\s*\(\s*SELECT\s+1\s+FROM\s+purchases\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+template_id\s*=\s*\$2\s+AND\s+status\s*=\s*\$3\s*\)$`
	listQ   = `(?s)^SELECT\s+id,\s*user_id,\s*template_id,\s*purchased_at,\s*transaction_id,\s*status\s+FROM\s+purchases\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+status\s*=\s*\$2\s+ORDER\s+BY\s+purchased_at\s+ASC,\s*id\s+ASC\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func newPurchase(now time.Time) *models.Purchase {
	return &models.Purchase{
		UserID:        42,
		TemplateID:    7,
		PurchasedAt:   now,
		TransactionID: "8c1d2f0e-0000-4000-8000-000000000001",
		Status:        models.PurchaseStatusCompleted,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	p := newPurchase(now)
	mock.ExpectQuery(insertQ).
		WithArgs(int64(42), int64(7), now, p.TransactionID, "completed").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected id %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateTransaction(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "purchases_transaction_id_key"})

	_, err := repo.Create(context.Background(), newPurchase(time.Now()))
	if !errors.Is(err, common.ErrDuplicateTransaction) {
		t.Fatalf("want common.ErrDuplicateTransaction, got %v", err)
	}
}

func TestCreate_ForeignKeyViolationIsDBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "purchases_user_id_fkey"})

	_, err := repo.Create(context.Background(), newPurchase(time.Now()))
	if errors.Is(err, common.ErrDuplicateTransaction) || err == nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !regexp.MustCompile(`^db error: `).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestHasStatus(t *testing.T) {
	for _, want := range []bool{true, false} {
		repo, mock, db := newRepoWithMock(t)

		mock.ExpectQuery(existsQ).
			WithArgs(int64(42), int64(7), "completed").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(want))

		got, err := repo.HasStatus(context.Background(), 42, 7, models.PurchaseStatusCompleted)
		if err != nil {
			t.Fatalf("HasStatus error: %v", err)
		}
		if got != want {
			t.Fatalf("HasStatus = %v, want %v", got, want)
		}
		db.Close()
	}
}

func TestHasStatus_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(existsQ).WillReturnError(errors.New("db err"))

	_, err := repo.HasStatus(context.Background(), 42, 7, models.PurchaseStatusCompleted)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	mock.ExpectQuery(listQ).
		WithArgs(int64(42), "completed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "template_id", "purchased_at", "transaction_id", "status"}).
			AddRow(int64(1), int64(42), int64(7), t1, "tx-1", "completed").
			AddRow(int64(2), int64(42), int64(7), t2, "tx-2", "completed"))

	got, err := repo.ListByUser(context.Background(), 42, models.PurchaseStatusCompleted)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].TransactionID != "tx-1" || got[1].Status != models.PurchaseStatusCompleted {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestListByUser_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "template_id", "purchased_at", "transaction_id", "status"}).
			AddRow("not-a-number", int64(42), int64(7), time.Now(), "tx-1", "completed"))

	if _, err := repo.ListByUser(context.Background(), 42, models.PurchaseStatusCompleted); err == nil {
		t.Fatal("expected scan error")
	}
}
