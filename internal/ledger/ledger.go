package ledger

import (
	"errors"
	"strings"
	"sync"

	"github.com/kararha/installment/internal/models"
	"github.com/kararha/installment/internal/util"

	"gorm.io/gorm"
)

// Pagination defaults; non-positive inputs are clamped to these.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Ledger owns all reads and writes of customers and their transaction
// log. Mutations that depend on the current balance (payments, entry
// deletion, cascade deletes) run under a per-customer mutex so the
// check-then-write sequence is atomic per customer; the backing store
// alone does not serialize concurrent requests against one customer.
type Ledger struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// New creates a Ledger over the given database handle.
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db, locks: make(map[uint]*sync.Mutex)}
}

// customerLock returns the mutex serializing writes for one customer,
// creating it on first use.
func (l *Ledger) customerLock(id uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

func (l *Ledger) dropLock(id uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}

// withTransactions preloads the entry log in computation order
// (created_at ascending, ties broken by id).
func withTransactions(db *gorm.DB) *gorm.DB {
	return db.Preload("Transactions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC, id ASC")
	})
}

// CreateCustomer validates and stores a new customer. The initial debt
// may be zero but never negative.
func (l *Ledger) CreateCustomer(name, phone string, initialDebtCent int64) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if err := util.ValidateName(name); err != nil {
		return nil, invalidField("name", err.Error())
	}
	if err := util.ValidatePhone(phone); err != nil {
		return nil, invalidField("phone", err.Error())
	}
	if initialDebtCent < 0 {
		return nil, invalidField("initial_debt", "must not be negative")
	}

	c := models.Customer{
		Name:            name,
		Phone:           phone,
		InitialDebtCent: initialDebtCent,
	}
	if err := l.db.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCustomer loads a customer together with its entry log.
func (l *Ledger) GetCustomer(id uint) (*models.Customer, error) {
	var c models.Customer
	err := withTransactions(l.db).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCustomer applies a partial update of name and/or phone. Nil
// means "leave unchanged"; supplied fields are re-validated.
func (l *Ledger) UpdateCustomer(id uint, name, phone *string) (*models.Customer, error) {
	updates := map[string]interface{}{}
	if name != nil {
		n := strings.TrimSpace(*name)
		if err := util.ValidateName(n); err != nil {
			return nil, invalidField("name", err.Error())
		}
		updates["name"] = n
	}
	if phone != nil {
		p := strings.TrimSpace(*phone)
		if err := util.ValidatePhone(p); err != nil {
			return nil, invalidField("phone", err.Error())
		}
		updates["phone"] = p
	}

	var c models.Customer
	if err := l.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := l.db.Model(&c).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return l.GetCustomer(id)
}

// DeleteCustomer removes a customer and every transaction it owns in a
// single database transaction, so no reader ever observes an entry
// whose customer is gone. The cascade is enforced here at the deletion
// boundary, not left to a backing-store feature.
func (l *Ledger) DeleteCustomer(id uint) error {
	lock := l.customerLock(id)
	lock.Lock()
	defer lock.Unlock()

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
	if err != nil {
		return err
	}
	l.dropLock(id)
	return nil
}

// CustomerPage is one page of the customer book, with the envelope
// fields the list API exposes.
type CustomerPage struct {
	Items       []models.Customer
	Total       int64
	Pages       int
	CurrentPage int
	PerPage     int
	HasNext     bool
	HasPrev     bool
}

// ListCustomers returns customers ordered by creation time descending,
// filtered by a case-insensitive substring match against name OR phone
// when search is non-empty. Non-positive page/perPage are clamped to
// the defaults rather than producing undefined pages.
func (l *Ledger) ListCustomers(search string, page, perPage int) (*CustomerPage, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	base := l.db.Model(&models.Customer{})
	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		base = base.Where("lower(name) LIKE ? OR lower(phone) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Customer
	if err := withTransactions(base.Session(&gorm.Session{})).
		Order("created_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&items).Error; err != nil {
		return nil, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &CustomerPage{
		Items:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
		HasNext:     page < pages,
		HasPrev:     page > 1,
	}, nil
}

// AllCustomers returns the whole customer book with entry logs, newest
// first. Used by the summary and export paths.
func (l *Ledger) AllCustomers() ([]models.Customer, error) {
	var items []models.Customer
	if err := withTransactions(l.db).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
