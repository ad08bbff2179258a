package reports

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"status", "count", "total"}).
		AddRow("received", 3, int64(60000)).
		AddRow("completed", 2, int64(50000)).
		AddRow("cancelled", 1, int64(9000))
	mock.ExpectQuery("GROUP BY status").WillReturnRows(rows)

	s, err := NewPostgresRepository(db).Summary()
	if err != nil {
		t.Fatal(err)
	}

	if s.TotalOrders != 6 || s.CancelledOrders != 1 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.Revenue != 110000 {
		t.Errorf("cancelled orders must not count as revenue, got %d", s.Revenue)
	}
	if s.AverageOrderValue != 22000 {
		t.Errorf("expected AOV 22000, got %d", s.AverageOrderValue)
	}
	if s.StatusCounts["completed"] != 2 {
		t.Errorf("unexpected status counts %v", s.StatusCounts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSummaryEmptyArchive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count", "total"}))

	s, err := NewPostgresRepository(db).Summary()
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalOrders != 0 || s.Revenue != 0 || s.AverageOrderValue != 0 {
		t.Errorf("empty archive should produce a zero summary, got %+v", s)
	}
}

func TestTopItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "quantity", "revenue"}).
		AddRow("Chicken Adobo", 12, int64(178800)).
		AddRow("Sinigang na Baboy", 7, int64(122500))
	mock.ExpectQuery("jsonb_array_elements").WithArgs(5).WillReturnRows(rows)

	items, err := NewPostgresRepository(db).TopItems(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Name != "Chicken Adobo" || items[0].Quantity != 12 {
		t.Errorf("unexpected top items %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRevenueByDay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"day", "count", "total"}).
		AddRow("2026-08-28", 4, int64(88000)).
		AddRow("2026-08-27", 2, int64(30000))
	mock.ExpectQuery("substr\\(created_at").WithArgs(30).WillReturnRows(rows)

	days, err := NewPostgresRepository(db).RevenueByDay(30)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 || days[0].Day != "2026-08-28" || days[0].Revenue != 88000 {
		t.Errorf("unexpected daily revenue %+v", days)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
