// Package client is a small Go client for the gestionale HTTP API. It is
// used by internal tooling and by the end-to-end tests; the admin frontend
// talks to the API directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Articolo mirrors the JSON shape of an article as served by the API.
type Articolo struct {
	ID                int64      `json:"id"`
	Titolo            string     `json:"titolo"`
	Contenuto         string     `json:"contenuto"`
	Autore            string     `json:"autore"`
	Categoria         string     `json:"categoria"`
	DataPubblicazione *time.Time `json:"data_pubblicazione"`
	ImmagineURL       *string    `json:"immagine_url"`
	Pubblicato        bool       `json:"pubblicato"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Riepilogo mirrors the /stats response.
type Riepilogo struct {
	TotaleArticoli     int            `json:"totaleArticoli"`
	ArticoliPubblicati int            `json:"articoliPubblicati"`
	ArticoliInBozza    int            `json:"articoliInBozza"`
	PerCategoria       map[string]int `json:"perCategoria"`
	UltimiArticoli     []Articolo     `json:"ultimiArticoli"`
	DaAggiornare       []Articolo     `json:"daAggiornare"`
}

// Session is the token material returned by signin/signup.
type Session struct {
	Email       string
	AccessToken string
	ExpiresIn   int64
}

// ListFilters narrows List results. Nil fields are omitted.
type ListFilters struct {
	ID         *int64
	Categoria  *string
	Pubblicato *bool
}

// UpdateArticolo is a partial update. Nil fields keep their stored values.
type UpdateArticolo struct {
	Titolo            *string    `json:"titolo,omitempty"`
	Contenuto         *string    `json:"contenuto,omitempty"`
	Autore            *string    `json:"autore,omitempty"`
	Categoria         *string    `json:"categoria,omitempty"`
	DataPubblicazione *time.Time `json:"data_pubblicazione,omitempty"`
	ImmagineURL       *string    `json:"immagine_url,omitempty"`
	Pubblicato        *bool      `json:"pubblicato,omitempty"`
}

// APIError is a non-2xx response decoded from the API's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to one API server. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the session token used on authenticated calls.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken updates the session token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// List returns articles matching the filters, newest first.
func (c *Client) List(ctx context.Context, filters ListFilters) ([]Articolo, error) {
	var params []string
	if filters.ID != nil {
		params = append(params, "id="+strconv.FormatInt(*filters.ID, 10))
	}
	if filters.Categoria != nil {
		params = append(params, "categoria="+*filters.Categoria)
	}
	if filters.Pubblicato != nil {
		params = append(params, "pubblicato="+strconv.FormatBool(*filters.Pubblicato))
	}
	path := "/articoli"
	if len(params) > 0 {
		path += "?" + strings.Join(params, "&")
	}

	var out []Articolo
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single article by id.
func (c *Client) Get(ctx context.Context, id int64) (*Articolo, error) {
	var out Articolo
	if err := c.do(ctx, http.MethodGet, c.articoloPath(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates an article and returns the stored record.
func (c *Client) Create(ctx context.Context, articolo Articolo) (*Articolo, error) {
	var out Articolo
	if err := c.do(ctx, http.MethodPost, "/articoli", articolo, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update and returns the stored record.
func (c *Client) Update(ctx context.Context, id int64, update UpdateArticolo) (*Articolo, error) {
	var out Articolo
	if err := c.do(ctx, http.MethodPut, c.articoloPath(id), update, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPubblicato toggles the publication flag.
func (c *Client) SetPubblicato(ctx context.Context, id int64, pubblicato bool) (*Articolo, error) {
	var out Articolo
	body := map[string]bool{"pubblicato": pubblicato}
	if err := c.do(ctx, http.MethodPatch, c.articoloPath(id), body, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an article.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.articoloPath(id), nil, http.StatusOK, nil)
}

// Stats returns the dashboard summary.
func (c *Client) Stats(ctx context.Context) (*Riepilogo, error) {
	var out Riepilogo
	if err := c.do(ctx, http.MethodGet, "/stats", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates and stores the returned token on the client.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, email, password, "signin", http.StatusOK)
}

// SignUp registers a new account and stores the returned token on the client.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, email, password, "signup", http.StatusCreated)
}

// SignOut revokes the current session and clears the stored token.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/auth", nil, http.StatusOK, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Upload sends an image and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", decodeAPIError(resp)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return out.URL, nil
}

func (c *Client) authenticate(ctx context.Context, email, password, action string, wantStatus int) (*Session, error) {
	body := map[string]string{"email": email, "password": password, "action": action}

	var out struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		Session struct {
			AccessToken string `json:"access_token"`
			ExpiresIn   int64  `json:"expires_in"`
		} `json:"session"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth", body, wantStatus, &out); err != nil {
		return nil, err
	}

	c.token = out.Session.AccessToken
	return &Session{
		Email:       out.User.Email,
		AccessToken: out.Session.AccessToken,
		ExpiresIn:   out.Session.ExpiresIn,
	}, nil
}

func (c *Client) articoloPath(id int64) string {
	return "/articoli/" + strconv.FormatInt(id, 10)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an *APIError, falling back to
// the raw body when it is not the usual {"error": ...} shape.
func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
