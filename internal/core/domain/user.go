package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a login account. ProfileID points at the Retailer, Employee or
// Client row matching Role and is uuid.Nil for admins.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ProfileID    uuid.UUID `json:"profile_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Retailer is an outlet taking part in campaigns.
type Retailer struct {
	ID         uuid.UUID `json:"id"`
	OutletCode string    `json:"outlet_code"`
	ShopName   string    `json:"shop_name"`
	OwnerName  string    `json:"owner_name"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// Employee is a field agent who visits retailers.
type Employee struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// Client is the brand that commissions campaigns.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Organization string    `json:"organization"`
	ContactName  string    `json:"contact_name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID    uuid.UUID
	Role      Role
	ProfileID uuid.UUID
}

func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
