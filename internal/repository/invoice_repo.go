package repository

import (
	"context"

	"banaapro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	// DB exposes the underlying handle so the service can open a transaction
	// spanning the header and item writes. Nil in unit tests.
	DB() *gorm.DB
	CreateHeader(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	CreateItems(ctx context.Context, tx *gorm.DB, items []model.InvoiceItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	// FindByIDWithRelations loads the header joined with its client and line
	// items in stored (print) order — the renderer's one combined read.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	Update(ctx context.Context, inv *model.Invoice) error
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

func (r *invoiceRepo) CreateHeader(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return r.conn(tx).WithContext(ctx).Omit("Items", "Client").Create(inv).Error
}

func (r *invoiceRepo) CreateItems(ctx context.Context, tx *gorm.DB, items []model.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).Create(&items).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *invoiceRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *invoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	var invs []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&invs).Error
	return invs, err
}

func (r *invoiceRepo) Update(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Omit("Items", "Client").Save(inv).Error
}

func (r *invoiceRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}
