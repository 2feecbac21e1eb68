package auth

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newProtectedApp(t *testing.T, registry *Registry, schemeName string) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/secret", func(c fiber.Ctx) error {
		return c.SendString("granted")
	}, Require(registry, schemeName))
	return app
}

func TestRequireRejectsMissingToken(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewTokenScheme("token", []string{"s3cret"})); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	app := newProtectedApp(t, registry, "token")

	resp, err := app.Test(httptest.NewRequest("GET", "/secret", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if resp.Header.Get(fiber.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate challenge")
	}
}

func TestRequireRejectsWrongToken(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewTokenScheme("token", []string{"s3cret"})); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	app := newProtectedApp(t, registry, "token")

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAcceptsValidToken(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewTokenScheme("token", []string{"s3cret"})); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	app := newProtectedApp(t, registry, "token")

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "granted" {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRequireRejectsNonBearerHeader(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewTokenScheme("token", []string{"s3cret"})); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	app := newProtectedApp(t, registry, "token")

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Basic czNjcmV0")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer header, got %d", resp.StatusCode)
	}
}

func TestRequireUnknownSchemeReports500(t *testing.T) {
	app := newProtectedApp(t, NewRegistry(), "ghost")

	resp, err := app.Test(httptest.NewRequest("GET", "/secret", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown scheme, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "auth_scheme_missing") {
		t.Fatalf("expected auth_scheme_missing error, got %s", body)
	}
}
