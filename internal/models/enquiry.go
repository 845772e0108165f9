package models

// Vehicle identifies the car an enquiry is about.
type Vehicle struct {
	ID      int    `json:"id"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Gearbox string `json:"gearbox"`
	Fuel    string `json:"fuel"`
}

// ProductType is a part category.
type ProductType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EnquiryItem is one requested part within an enquiry.
type EnquiryItem struct {
	ID            string      `json:"id"`
	ProductTypeID int         `json:"product_type_id"`
	Status        string      `json:"status,omitempty"`
	Details       string      `json:"details"`
	Image         []string    `json:"image"`
	ProductType   ProductType `json:"product_type"`
}

// Enquiry is a buyer's parts request as listed on the enquiries screen.
type Enquiry struct {
	ID             string        `json:"id"`
	BuyerID        string        `json:"buyer_id"`
	VehicleID      int           `json:"vehicle_id"`
	Message        *string       `json:"message"`
	Status         string        `json:"status"`
	CreatedAt      string        `json:"created_at"`
	EnquirySellers []UserRef     `json:"enquiry_sellers"`
	Buyer          UserRef       `json:"buyer"`
	Vehicle        Vehicle       `json:"vehicle"`
	EnquiryItems   []EnquiryItem `json:"enquiry_items"`
	QuotationCount int           `json:"quotation_count"`
}

// Enquiry status values.
const (
	EnquiryStatusOpen    = "open"
	EnquiryStatusQuoted  = "quoted"
	EnquiryStatusClosed  = "closed"
	EnquiryStatusExpired = "expired"
)
