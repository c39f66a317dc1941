package customer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	customerEntity "woocommerce.GO/model/entity/customer"
	"woocommerce.GO/model/query"
)

// ErrEmailExists is returned when creating a customer with a taken email.
var ErrEmailExists = errors.New("an account is already registered with this email address")

// ErrUsernameExists is returned when creating a customer with a taken username.
var ErrUsernameExists = errors.New("an account is already registered with that username")

// QueryOptions describes wc_customers to the query executor.
var QueryOptions = query.Options{
	SearchColumns: []string{"email", "username", "first_name", "last_name", "display_name"},
	OrderColumns: map[string]string{
		"date":     "created_at",
		"email":    "email",
		"username": "username",
		"name":     "display_name",
		"id":       "id",
	},
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(id uint) (*customerEntity.Customer, error) {
	var c customerEntity.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindByIDs(ids []uint) (map[uint]*customerEntity.Customer, error) {
	out := make(map[uint]*customerEntity.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []customerEntity.Customer
	if err := r.db.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}

func (r *CustomerRepository) FindByEmail(email string) (*customerEntity.Customer, error) {
	var c customerEntity.Customer
	if err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) QueryIDs(args query.Args) ([]uint, error) {
	return query.Execute(r.db, &customerEntity.Customer{}, args, QueryOptions)
}

// Create stores c with a bcrypt hash of password. An empty username is
// derived from the email's local part.
func (r *CustomerRepository) Create(c *customerEntity.Customer, password string) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Email == "" {
		return errors.New("please provide a valid email address")
	}
	if c.Username == "" {
		c.Username = strings.SplitN(c.Email, "@", 2)[0]
	}
	if err := r.ensureUnique(c); err != nil {
		return err
	}
	if err := setPassword(c, password); err != nil {
		return err
	}
	if c.Role == "" {
		c.Role = "customer"
	}
	return r.db.Create(c).Error
}

// Update saves c. A non-empty password replaces the stored hash.
func (r *CustomerRepository) Update(c *customerEntity.Customer, password string) error {
	if password != "" {
		if err := setPassword(c, password); err != nil {
			return err
		}
	}
	if err := r.ensureUnique(c); err != nil {
		return err
	}
	return r.db.Save(c).Error
}

// CheckPassword reports whether password matches c's hash.
func (r *CustomerRepository) CheckPassword(c *customerEntity.Customer, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

func (r *CustomerRepository) ensureUnique(c *customerEntity.Customer) error {
	var n int64
	if err := r.db.Model(&customerEntity.Customer{}).Where("email = ? AND id <> ?", c.Email, c.ID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailExists
	}
	if err := r.db.Model(&customerEntity.Customer{}).Where("username = ? AND id <> ?", c.Username, c.ID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrUsernameExists
	}
	return nil
}

func setPassword(c *customerEntity.Customer, password string) error {
	if password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	c.PasswordHash = string(hash)
	return nil
}
