package order

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreate_RunsInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(sqlmock.AnyArg(), "u-1", 250000.0, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "payment_status", "shipping_address", "notes", "created_at", "updated_at"}).
			AddRow("o-1", "u-1", 250000.0, "pending", "pending", nil, nil, now, now))
	mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(sqlmock.AnyArg(), "o-1", "p-1", 2, 50000.0, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(sqlmock.AnyArg(), "o-1", "p-2", 5, 30000.0, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = repo.Create(Order{UserID: "u-1", TotalAmount: 250000}, []OrderItem{
		{ProductID: "p-1", Quantity: 2, Price: 50000},
		{ProductID: "p-2", Quantity: 5, Price: 30000, IsWholesale: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_RollsBackOnItemFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "payment_status", "shipping_address", "notes", "created_at", "updated_at"}).
			AddRow("o-1", "u-1", 100.0, "pending", "pending", nil, nil, now, now))
	mock.ExpectExec(`INSERT INTO order_items`).
		WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	_, err = repo.Create(Order{UserID: "u-1", TotalAmount: 100}, []OrderItem{
		{ProductID: "p-1", Quantity: 1, Price: 100},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
