package customer

import (
	"errors"
	"testing"

	"gorm.io/datatypes"

	"woocommerce.GO/config"
	"woocommerce.GO/model/entity"
	customerEntity "woocommerce.GO/model/entity/customer"
)

func setup(t *testing.T) *CustomerRepository {
	t.Helper()
	db, err := config.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&customerEntity.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewCustomerRepository(db)
}

func TestCustomerRepository_Create(t *testing.T) {
	repo := setup(t)

	c := &customerEntity.Customer{
		Email:   " Jane@Example.com ",
		Billing: datatypes.NewJSONType(entity.Address{City: "Berlin", Email: "jane@example.com"}),
	}
	if err := repo.Create(c, "s3cret"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Username != "jane" || c.Email != "jane@example.com" || c.Role != "customer" {
		t.Errorf("created = %+v", c)
	}
	if !repo.CheckPassword(c, "s3cret") || repo.CheckPassword(c, "wrong") {
		t.Error("password hash mismatch")
	}

	got, err := repo.FindByEmail("JANE@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.Billing.Data().City != "Berlin" {
		t.Errorf("billing city = %q, want Berlin", got.Billing.Data().City)
	}

	dup := &customerEntity.Customer{Email: "jane@example.com", Username: "other"}
	if err := repo.Create(dup, ""); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email err = %v, want ErrEmailExists", err)
	}
	dup = &customerEntity.Customer{Email: "jane2@example.com", Username: "jane"}
	if err := repo.Create(dup, ""); !errors.Is(err, ErrUsernameExists) {
		t.Errorf("duplicate username err = %v, want ErrUsernameExists", err)
	}
}

func TestCustomerRepository_Update(t *testing.T) {
	repo := setup(t)
	c := &customerEntity.Customer{Email: "a@example.com"}
	if err := repo.Create(c, "one"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	c.FirstName = "Ann"
	if err := repo.Update(c, "two"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.FindByID(c.ID)
	if got.FirstName != "Ann" || !repo.CheckPassword(got, "two") {
		t.Errorf("updated = %+v", got)
	}
}
