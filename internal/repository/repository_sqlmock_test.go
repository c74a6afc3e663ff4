package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yukikurage/task-invoice-manager/internal/database"
	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.GormConfig(false))
	require.NoError(t, err)

	return db, mock
}

func TestCompanyCreate_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "companies"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(&models.Company{Name: "Acme"})
	require.Error(t, err)
	assert.True(t, ierr.IsAlreadyExists(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceCreateWithItems_ItemFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "invoices"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "invoice_items"`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	projectID := uint64(1)
	invoice := &models.Invoice{
		ProjectID:     &projectID,
		InvoiceNumber: "INV-1",
		TotalAmount:   100,
		IssueDate:     models.NewDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		Status:        models.InvoiceStatusDraft,
	}
	items := []models.InvoiceItem{{Description: "work", Quantity: 1, UnitPrice: 100, Amount: 100}}

	err := repo.CreateWithItems(invoice, items)
	require.Error(t, err)
	assert.True(t, ierr.IsDatabase(err))
	assert.True(t, errors.Is(err, ErrCreateInvoiceItems))
	assert.Zero(t, invoice.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceFindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "invoices"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(42)
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
