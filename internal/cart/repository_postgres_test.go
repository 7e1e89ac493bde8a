package cart

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAdd_UpsertsOnConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "is_wholesale", "created_at"}).
		AddRow("ci-1", "u-1", "p-1", 5, false, time.Now())

	mock.ExpectQuery(`INSERT INTO cart_items .* ON CONFLICT \(user_id, product_id, is_wholesale\) DO UPDATE SET quantity = cart_items\.quantity \+ EXCLUDED\.quantity RETURNING`).
		WithArgs(sqlmock.AnyArg(), "u-1", "p-1", 3, false).
		WillReturnRows(rows)

	item, err := repo.Add(CartItem{UserID: "u-1", ProductID: "p-1", Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected merged quantity from RETURNING, got %d", item.Quantity)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClear_DeletesAllUserRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM cart_items WHERE user_id = \$1`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.Clear("u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
