package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func setCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestCookieStore_Roundtrip(t *testing.T) {
	store := NewCookieStore("dash", "secret-1", zerolog.Nop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.Set(rec, req, "tok-abc"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	cookie := setCookieFrom(t, rec)
	if cookie.Value == "tok-abc" {
		t.Fatal("token stored in the clear")
	}
	if !cookie.HttpOnly {
		t.Fatal("cookie not HttpOnly")
	}
	if cookie.MaxAge != 0 {
		t.Fatalf("expected browser-session cookie, got MaxAge %d", cookie.MaxAge)
	}

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	next.AddCookie(cookie)
	token, ok := store.Get(next)
	if !ok || token != "tok-abc" {
		t.Fatalf("Get = (%q, %v), want (tok-abc, true)", token, ok)
	}
}

func TestCookieStore_MissingCookie(t *testing.T) {
	store := NewCookieStore("dash", "secret-1", zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := store.Get(req); ok {
		t.Fatal("expected absent without a cookie")
	}
}

func TestCookieStore_TamperedCookie(t *testing.T) {
	store := NewCookieStore("dash", "secret-1", zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := store.Set(rec, httptest.NewRequest(http.MethodPost, "/", nil), "tok-abc"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	cookie := setCookieFrom(t, rec)
	cookie.Value = strings.TrimRight(cookie.Value, "aA") + "x"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	if _, ok := store.Get(req); ok {
		t.Fatal("tampered cookie accepted")
	}
}

func TestCookieStore_WrongSecret(t *testing.T) {
	writer := NewCookieStore("dash", "secret-1", zerolog.Nop())
	reader := NewCookieStore("dash", "secret-2", zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := writer.Set(rec, httptest.NewRequest(http.MethodPost, "/", nil), "tok-abc"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(setCookieFrom(t, rec))
	if _, ok := reader.Get(req); ok {
		t.Fatal("cookie signed with another secret accepted")
	}
}

func TestCookieStore_Clear(t *testing.T) {
	store := NewCookieStore("dash", "secret-1", zerolog.Nop())

	rec := httptest.NewRecorder()
	store.Clear(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	cookie := setCookieFrom(t, rec)
	if cookie.MaxAge != -1 {
		t.Fatalf("MaxAge = %d, want -1", cookie.MaxAge)
	}
	if cookie.Value != "" {
		t.Fatalf("value = %q, want empty", cookie.Value)
	}
}
