package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"woocommerce.GO/config"
	"woocommerce.GO/core/auth"
	entity "woocommerce.GO/model/entity"
	authRepo "woocommerce.GO/model/repository/auth"
	customerRepo "woocommerce.GO/model/repository/customer"
)

var (
	tokenRole     string
	tokenCustomer string
	tokenTTL      time.Duration
)

var tokensCreateCmd = &cobra.Command{
	Use:   "tokens:create",
	Short: "Create an API bearer token for staff or a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		t, err := NewToken(tokenRole, tokenTTL, time.Now())
		if err != nil {
			return err
		}
		if tokenCustomer != "" {
			c, err := customerRepo.NewCustomerRepository(db).FindByEmail(tokenCustomer)
			if err != nil {
				return fmt.Errorf("customer %s: %w", tokenCustomer, err)
			}
			t.CustomerID = &c.ID
		}
		if err := authRepo.NewAuthRepository(db).CreateToken(t); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Token)
		return nil
	},
}

var tokenRoles = map[string]bool{
	auth.RoleAdministrator: true,
	auth.RoleShopManager:   true,
	auth.RoleCustomer:      true,
}

// NewToken returns an unsaved token with a random 32-byte secret. A zero ttl
// never expires.
func NewToken(role string, ttl time.Duration, now time.Time) (*entity.APIToken, error) {
	if !tokenRoles[role] {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	t := &entity.APIToken{Token: hex.EncodeToString(buf), Role: role}
	if ttl > 0 {
		exp := now.Add(ttl)
		t.ExpiresAt = &exp
	}
	return t, nil
}

func init() {
	tokensCreateCmd.Flags().StringVar(&tokenRole, "role", auth.RoleCustomer, "administrator, shop_manager or customer")
	tokensCreateCmd.Flags().StringVar(&tokenCustomer, "customer", "", "Email of the customer the token signs in as")
	tokensCreateCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime, e.g. 720h (default: no expiry)")
	rootCmd.AddCommand(tokensCreateCmd)
}
