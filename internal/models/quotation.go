package models

// QuotationSeller carries the seller stub embedded in a quotation.
type QuotationSeller struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
}

// QuotationItem prices one enquiry item. Monetary fields arrive as strings
// from the upstream and are passed through untouched.
type QuotationItem struct {
	ID               string      `json:"id"`
	QuotationID      string      `json:"quotation_id"`
	EnquiryItemID    string      `json:"enquiry_item_id"`
	Status           string      `json:"status"`
	QuotedPrice      string      `json:"quoted_price"`
	DeliveryTime     string      `json:"delivery_time"`
	DeliveryCharges  string      `json:"delivery_charges"`
	Condition        string      `json:"condition"`
	Guarantee        string      `json:"guarantee"`
	InvoiceType      string      `json:"invoice_type"`
	Remarks          string      `json:"remarks"`
	Subtotal         string      `json:"subtotal"`
	PAndP            string      `json:"p_and_p"`
	Discount         string      `json:"discount"`
	GrandTotal       string      `json:"grand_total"`
	IsFreeDelivery   bool        `json:"is_free_delivery"`
	IsCollectionOnly bool        `json:"is_collection_only"`
	IsVatExempt      bool        `json:"is_vat_exempt"`
	CreatedAt        string      `json:"created_at"`
	UpdatedAt        string      `json:"updated_at"`
	EnquiryItem      EnquiryItem `json:"enquiry_item"`
}

// Quotation is a seller's answer to an enquiry.
type Quotation struct {
	ID             string          `json:"id"`
	EnquiryID      string          `json:"enquiry_id"`
	SellerID       string          `json:"seller_id"`
	Notes          string          `json:"notes"`
	TotalPrice     string          `json:"total_price"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
	Seller         QuotationSeller `json:"seller"`
	Enquiry        Enquiry         `json:"enquiry"`
	QuotationItems []QuotationItem `json:"quotation_items"`
}
