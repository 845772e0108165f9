package models

// User is a marketplace account as the upstream admin API returns it.
// Sellers carry the company block; buyers leave it empty.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Type          string `json:"type"` // "buyer" or "seller"
	Status        string `json:"status"`
	EmailVerified bool   `json:"email_verified"`
	IsVerified    bool   `json:"is_verified"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`

	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`

	// Company details (sellers only)
	Logo               string `json:"logo,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
	VatNumber          string `json:"vat_number,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	EstablishedYear    string `json:"established_year,omitempty"`
	LegalStatus        string `json:"legal_status,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`

	// Activity counters
	QuotationCount    int    `json:"quotation_count"`
	EnquiryCount      int    `json:"enquiry_count"`
	LastQuotationDate string `json:"last_quotation_date,omitempty"`
	LastEnquiryDate   string `json:"last_enquiry_date,omitempty"`
}

// User status values understood by the console.
const (
	UserStatusPending  = "pending"
	UserStatusVerified = "verified"
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"
)

// UserRef is the denormalized participant stub embedded in enquiries,
// quotations, conversations and tickets.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
