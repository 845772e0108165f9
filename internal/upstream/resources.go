package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
)

// ListParams are the query parameters every list endpoint accepts. Filters
// are always forwarded upstream; the console never filters a fetched page
// locally.
type ListParams struct {
	Page     int
	Limit    int
	Search   string
	Status   string
	UserType string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.UserType != "" {
		v.Set("userType", p.UserType)
	}
	return v
}

// listEnvelope tolerates both pagination spellings the upstream uses: the
// nested object on /admin/* lists and the flat fields on the feedback list.
type listEnvelope[T any] struct {
	Data        []T                `json:"data"`
	Pagination  *models.Pagination `json:"pagination"`
	Total       int                `json:"total"`
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"`
}

// pagination normalizes whichever shape arrived. ok is false when the
// response carried no pagination information at all.
func (e *listEnvelope[T]) pagination() (models.Pagination, bool) {
	if e.Pagination != nil {
		return *e.Pagination, true
	}
	if e.TotalPages != 0 || e.CurrentPage != 0 || e.Total != 0 {
		return models.Pagination{Total: e.Total, Page: e.CurrentPage, Pages: e.TotalPages}, true
	}
	return models.Pagination{}, false
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// --- Auth ---

// LoginResult is the upstream answer to a successful admin login.
type LoginResult struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"user"`
}

// Login authenticates an admin against the upstream.
func (c *Client) Login(ctx context.Context, emailOrPhone, password string) (*LoginResult, error) {
	body := map[string]string{
		"emailOrPhone": emailOrPhone,
		"password":     password,
		"role":         "admin",
	}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterInput is the admin signup payload.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// RegisterResult is the upstream answer to a registration. Email
// verification completes out of band, so no token is expected here.
type RegisterResult struct {
	UserID string       `json:"userId"`
	Admin  models.Admin `json:"user"`
}

// Register creates an admin account on the upstream.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	body := map[string]string{
		"name":         in.Name,
		"email":        in.Email,
		"phone_number": in.PhoneNumber,
		"password":     in.Password,
		"type":         "admin",
	}
	var out RegisterResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the upstream session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// CurrentAdmin re-validates the stored credential and returns the session owner.
func (c *Client) CurrentAdmin(ctx context.Context) (*models.Admin, error) {
	var out struct {
		User models.Admin `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/protected", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// --- Dashboard ---

// DashboardStats fetches the aggregate dashboard document.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out dataEnvelope[models.DashboardStats]
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// --- Users ---

// Users lists marketplace accounts, sellers or buyers per params.UserType.
func (c *Client) Users(ctx context.Context, params ListParams) ([]models.User, models.Pagination, error) {
	var out listEnvelope[models.User]
	if err := c.do(ctx, http.MethodGet, "/admin/users", params.values(), nil, &out); err != nil {
		return nil, models.Pagination{}, err
	}
	p, _ := out.pagination()
	return out.Data, p, nil
}

// UpdateUserStatus changes one account's status and returns the updated record.
func (c *Client) UpdateUserStatus(ctx context.Context, userID, status string) (*models.User, error) {
	var out dataEnvelope[models.User]
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// VerifySeller marks a seller as verified and returns the updated record.
func (c *Client) VerifySeller(ctx context.Context, userID string) (*models.User, error) {
	var out dataEnvelope[models.User]
	if err := c.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/verify", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// --- Enquiries ---

// Enquiries lists buyer parts requests.
func (c *Client) Enquiries(ctx context.Context, params ListParams) ([]models.Enquiry, models.Pagination, error) {
	var out listEnvelope[models.Enquiry]
	if err := c.do(ctx, http.MethodGet, "/admin/enquiries", params.values(), nil, &out); err != nil {
		return nil, models.Pagination{}, err
	}
	p, _ := out.pagination()
	return out.Data, p, nil
}

// QuotationsByEnquiry lists the quotations answering one enquiry.
func (c *Client) QuotationsByEnquiry(ctx context.Context, enquiryID string) ([]models.Quotation, error) {
	var out listEnvelope[models.Quotation]
	if err := c.do(ctx, http.MethodGet, "/admin/enquiries/"+enquiryID+"/quotations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// --- Quotations ---

// Quotations lists seller quotations.
func (c *Client) Quotations(ctx context.Context, params ListParams) ([]models.Quotation, models.Pagination, error) {
	var out listEnvelope[models.Quotation]
	if err := c.do(ctx, http.MethodGet, "/admin/quotations", params.values(), nil, &out); err != nil {
		return nil, models.Pagination{}, err
	}
	p, _ := out.pagination()
	return out.Data, p, nil
}

// UpdateQuotationStatus changes one quotation's status.
func (c *Client) UpdateQuotationStatus(ctx context.Context, quotationID, status string) (*models.Quotation, error) {
	var out dataEnvelope[models.Quotation]
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/admin/quotations/"+quotationID+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// --- Feedback (support tickets) ---

// Feedbacks lists support tickets. This endpoint uses the flat pagination
// spelling; the envelope normalizes it.
func (c *Client) Feedbacks(ctx context.Context, params ListParams) ([]models.Feedback, models.Pagination, error) {
	var out listEnvelope[models.Feedback]
	if err := c.do(ctx, http.MethodGet, "/feedback/get-all-feedback", params.values(), nil, &out); err != nil {
		return nil, models.Pagination{}, err
	}
	p, _ := out.pagination()
	return out.Data, p, nil
}

// FeedbackMessages fetches one ticket's message thread.
func (c *Client) FeedbackMessages(ctx context.Context, feedbackID string) ([]models.FeedbackMessage, error) {
	var out listEnvelope[models.FeedbackMessage]
	if err := c.do(ctx, http.MethodGet, "/feedback/"+feedbackID+"/messages", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpdateFeedbackStatus changes one ticket's status.
func (c *Client) UpdateFeedbackStatus(ctx context.Context, feedbackID, status string) (*models.Feedback, error) {
	var out dataEnvelope[models.Feedback]
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/feedback/update-status/"+feedbackID, nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ReplyToFeedback posts an admin reply to a ticket and returns the created message.
func (c *Client) ReplyToFeedback(ctx context.Context, feedbackID, message string, screenshotURLs []string) (*models.FeedbackMessage, error) {
	if screenshotURLs == nil {
		screenshotURLs = []string{}
	}
	body := map[string]any{
		"message":        message,
		"screenshotUrls": screenshotURLs,
	}
	var out dataEnvelope[models.FeedbackMessage]
	if err := c.do(ctx, http.MethodPost, "/feedback/"+feedbackID+"/reply", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// --- Conversations ---

// Conversations lists buyer-seller message threads. havePagination is false
// when the upstream omits the pagination block, in which case the caller
// keeps its previous value.
func (c *Client) Conversations(ctx context.Context, params ListParams) ([]models.Conversation, models.Pagination, bool, error) {
	var out listEnvelope[models.Conversation]
	if err := c.do(ctx, http.MethodGet, "/admin/conversations", params.values(), nil, &out); err != nil {
		return nil, models.Pagination{}, false, err
	}
	p, ok := out.pagination()
	return out.Data, p, ok, nil
}

// MessagesBetween fetches the full thread between one buyer and one seller.
func (c *Client) MessagesBetween(ctx context.Context, buyerID, sellerID string) ([]models.Message, error) {
	q := url.Values{}
	q.Set("buyer_id", buyerID)
	q.Set("seller_id", sellerID)
	var out listEnvelope[models.Message]
	if err := c.do(ctx, http.MethodGet, "/admin/messages/between", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// --- Upload ---

// Upload stages a file through the upstream's multipart endpoint and returns
// the public URL of the stored object.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upstream upload failed: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		URL string `json:"url"`
	}
	if err := c.consume(ctx, http.MethodPost, "/upload", resp, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
