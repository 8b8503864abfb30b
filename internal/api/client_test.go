package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestBearerAndLangInjection(t *testing.T) {
	var gotAuth, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.URL.Query().Get("lang")
		w.Write([]byte(`{"success":true,"statusCode":200,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticTokens("abc123")), WithLocale("en"))
	env, err := c.Get(context.Background(), "/Sections/getSections", nil)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
	if gotLang != "en" {
		t.Fatalf("unexpected lang param %q", gotLang)
	}
}

func TestNoBearerWhenSignedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"statusCode":200,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticTokens("")))
	if _, err := c.Get(context.Background(), "/Pages/getPages", nil); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestCallerQueryNotMutated(t *testing.T) {
	var gotLang, gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("lang")
		gotID = r.URL.Query().Get("id")
		w.Write([]byte(`{"success":true,"statusCode":200,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithLocale("en"))
	query := url.Values{"id": {"s-1"}}
	if _, err := c.Get(context.Background(), "/Services/getServices", query); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if gotLang != "en" || gotID != "s-1" {
		t.Fatalf("request missed params: lang=%q id=%q", gotLang, gotID)
	}
	if _, ok := query["lang"]; ok {
		t.Fatalf("caller's query map picked up lang: %v", query)
	}
}

func TestUnauthorizedRunsHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	hookCalls := 0
	c := New(srv.URL, WithUnauthorizedHook(func() { hookCalls++ }))

	_, err := c.Get(context.Background(), "/Users/me", nil)
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if hookCalls != 1 {
		t.Fatalf("expected hook to run once, ran %d times", hookCalls)
	}

	// The hook fires for mutations the same way it does for reads.
	_, err = c.PostJSON(context.Background(), "/Sections/addSection", nil, map[string]string{})
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for mutation, got %v", err)
	}
	if hookCalls != 2 {
		t.Fatalf("expected hook to run per 401 response, ran %d times", hookCalls)
	}
}

func TestServerErrorIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Get(context.Background(), "/Contacts/getContacts", nil); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestFailureEnvelopeResolves(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"statusCode":400,"message":"section title already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	env, err := c.PostJSON(context.Background(), "/Sections/addSection", nil, map[string]string{})
	if err != nil {
		t.Fatalf("4xx should resolve with envelope, got error: %v", err)
	}
	if env.Success {
		t.Fatalf("expected success=false")
	}
	if env.Message != "section title already exists" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestMultipartOmitsUnsetFields(t *testing.T) {
	dir := t.TempDir()
	thumb := filepath.Join(dir, "thumb.png")
	if err := os.WriteFile(thumb, []byte{0x89, 'P', 'N', 'G'}, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	var form url.Values
	var hasThumb, hasImage bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		form = url.Values(r.MultipartForm.Value)
		_, hasThumb = r.MultipartForm.File["thumbnailFile"]
		_, hasImage = r.MultipartForm.File["imageFile"]
		w.Write([]byte(`{"success":true,"statusCode":200,"message":"ok"}`))
	}))
	defer srv.Close()

	f := NewForm()
	f.Set("arTitle", "خدمة")
	f.Set("enTitle", "Service")
	f.SetOptional("arSubTitle", "")
	f.SetBool("unactive", false)
	f.SetInt("order", 3)
	f.AddFile("thumbnailFile", thumb)
	f.AddFile("imageFile", "") // unset optional upload

	c := New(srv.URL)
	if _, err := c.PostForm(context.Background(), "/Services/addService", nil, f); err != nil {
		t.Fatalf("PostForm error: %v", err)
	}

	if form.Get("arTitle") != "خدمة" || form.Get("enTitle") != "Service" {
		t.Fatalf("missing scalar fields: %v", form)
	}
	if _, ok := form["arSubTitle"]; ok {
		t.Fatalf("empty optional field should be omitted")
	}
	if form.Get("order") != "3" {
		t.Fatalf("unexpected order %q", form.Get("order"))
	}
	if !hasThumb {
		t.Fatalf("expected thumbnail file part")
	}
	if hasImage {
		t.Fatalf("unset optional file should be omitted")
	}
}

func TestFormEncodeMissingFile(t *testing.T) {
	f := NewForm()
	f.AddFile("thumbnailFile", "/nonexistent/file.png")
	if _, _, err := f.encode(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
