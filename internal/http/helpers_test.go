package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bazaar/internal/config"
	"bazaar/internal/http/handlers"
	"bazaar/internal/repos"
)

// newApp assembles the full API surface against an in-memory database, the
// same wiring main.go uses.
func newApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", JWTSecret: "test-secret", UploadDir: t.TempDir()}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg)
	requireAuth := handlers.RequireAuth(deps.Tokens)
	optionalAuth := handlers.OptionalAuth(deps.Tokens)
	requireAdmin := handlers.RequireAdmin()

	users := app.Group("/api/users")
	users.Post("/register", deps.UserHandler.Register)
	users.Post("/login", deps.UserHandler.Login)
	users.Get("/me", requireAuth, deps.UserHandler.Me)
	users.Patch("/me", requireAuth, deps.UserHandler.UpdateMe)
	users.Get("/", requireAuth, requireAdmin, deps.UserHandler.List)
	users.Get("/:id", requireAuth, requireAdmin, deps.UserHandler.Get)
	users.Patch("/:id", requireAuth, requireAdmin, deps.UserHandler.Patch)
	users.Patch("/:id/block", requireAuth, requireAdmin, deps.UserHandler.Block)
	users.Patch("/:id/unblock", requireAuth, requireAdmin, deps.UserHandler.Unblock)
	users.Delete("/:id", requireAuth, requireAdmin, deps.UserHandler.Delete)

	products := app.Group("/api/products")
	products.Get("/", optionalAuth, deps.ProductHandler.List)
	products.Post("/", requireAuth, deps.ProductHandler.Create)
	products.Get("/pending", requireAuth, requireAdmin, deps.ProductHandler.Pending)
	products.Get("/:id", deps.ProductHandler.Get)
	products.Patch("/:id", requireAuth, requireAdmin, deps.ProductHandler.PatchStock)
	products.Patch("/:id/status", requireAuth, requireAdmin, deps.ProductHandler.PatchStatus)
	products.Delete("/:id", requireAuth, deps.ProductHandler.Delete)
	products.Get("/:id/reviews", deps.ReviewHandler.List)
	products.Post("/:id/reviews", requireAuth, deps.ReviewHandler.Create)
	products.Get("/:id/recommend", deps.ProductHandler.Recommend)

	orders := app.Group("/api/orders")
	orders.Post("/", optionalAuth, deps.OrderHandler.Create)
	orders.Get("/:id", deps.OrderHandler.Get)

	return app
}

func jsonReq(method, target, token string, body any) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func register(t *testing.T, app *fiber.App, username, email, password, role string) {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/users/register", "", map[string]string{
		"username": username, "email": email, "password": password, "role": role,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d", email, resp.StatusCode)
	}
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/users/login", "", map[string]string{
		"email": email, "password": password,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	if body.Token == "" {
		t.Fatal("no token in login response")
	}
	return body.Token
}

// adminToken logs in the seeded moderation account.
func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	return login(t, app, "admin@bazaar.test", "changeme123")
}

// createListing uploads a listing as the given seller and returns its id.
func createListing(t *testing.T, app *fiber.App, token, name, category string) string {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("name", name)
	_ = w.WriteField("category", category)
	_ = w.WriteField("price", "19.99")
	_ = w.WriteField("description", "test listing")
	_ = w.WriteField("stock", "3")

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="imageFile"; filename="pic.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
	_ = w.Close()

	req := httptest.NewRequest("POST", "/api/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("create listing: status %d body %s", resp.StatusCode, b)
	}
	var body struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
	}
	decode(t, resp, &body)
	if body.Product.ID == "" {
		t.Fatal("no product id in create response")
	}
	return body.Product.ID
}
