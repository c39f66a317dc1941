package entity

// Address is a customer or order billing/shipping address. Keys follow the
// store's snake_case property names.
type Address struct {
	FirstName string `json:"first_name" mapstructure:"first_name"`
	LastName  string `json:"last_name" mapstructure:"last_name"`
	Company   string `json:"company" mapstructure:"company"`
	Address1  string `json:"address_1" mapstructure:"address_1"`
	Address2  string `json:"address_2" mapstructure:"address_2"`
	City      string `json:"city" mapstructure:"city"`
	State     string `json:"state" mapstructure:"state"`
	Postcode  string `json:"postcode" mapstructure:"postcode"`
	Country   string `json:"country" mapstructure:"country"`
	Email     string `json:"email,omitempty" mapstructure:"email"`
	Phone     string `json:"phone,omitempty" mapstructure:"phone"`
}
