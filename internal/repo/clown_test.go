package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestClownRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO clowns \(name, color, age\)`).
		WithArgs("Bobo", "red", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "age", "created_at"}).
			AddRow(1, "Bobo", "red", 7, time.Now()))

	repo := NewClownRepo(db)
	clown, err := repo.Create(context.Background(), "Bobo", "red", 7)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if clown.ID != 1 || clown.Name != "Bobo" || clown.Color != "red" || clown.Age != 7 {
		t.Errorf("unexpected clown: %+v", clown)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestClownRepo_ListPaginated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, color, age, created_at`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "age", "created_at"}).
			AddRow(1, "Bobo", "red", 7, now).
			AddRow(2, "Pip", "blue", 3, now))

	repo := NewClownRepo(db)
	clowns, err := repo.ListPaginated(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("ListPaginated: %v", err)
	}
	if len(clowns) != 2 || clowns[0].Name != "Bobo" || clowns[1].Name != "Pip" {
		t.Errorf("unexpected clowns: %+v", clowns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestClownRepo_ListPaginated_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, color, age, created_at`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "age", "created_at"}))

	repo := NewClownRepo(db)
	clowns, err := repo.ListPaginated(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("ListPaginated: %v", err)
	}
	if clowns == nil || len(clowns) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", clowns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
