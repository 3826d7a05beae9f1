package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uploadUC "github.com/vincibusa/allfoodgest/internal/usecase/upload"
)

type stubStore struct {
	saved   map[string][]byte
	removed []string
}

func newStubStore() *stubStore {
	return &stubStore{saved: map[string][]byte{}}
}

func (s *stubStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	s.saved[filename] = data
	return "/immagini/" + filename, nil
}

func (s *stubStore) Remove(_ context.Context, filename string) error {
	s.removed = append(s.removed, filename)
	return nil
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	store := newStubStore()
	h := UploadHandler{&uploadUC.Service{Store: store}}

	body, contentType := multipartBody(t, "file", "copertina.png", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.URL, "/immagini/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Fatalf("url=%q", resp.URL)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved=%v", store.saved)
	}
}

func TestUpload_MissingField(t *testing.T) {
	h := UploadHandler{&uploadUC.Service{Store: newStubStore()}}

	body, contentType := multipartBody(t, "allegato", "copertina.png", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestUpload_DisallowedExtension(t *testing.T) {
	store := newStubStore()
	h := UploadHandler{&uploadUC.Service{Store: store}}

	body, contentType := multipartBody(t, "file", "payload.exe", []byte("MZ"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if len(store.saved) != 0 {
		t.Fatal("disallowed file stored")
	}
}

func TestDelete(t *testing.T) {
	store := newStubStore()
	h := DeleteHandler{&uploadUC.Service{Store: store}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/upload",
		strings.NewReader(`{"url":"/immagini/abc.png"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	if len(store.removed) != 1 || store.removed[0] != "abc.png" {
		t.Fatalf("removed=%v", store.removed)
	}
}

func TestDelete_MissingURL(t *testing.T) {
	h := DeleteHandler{&uploadUC.Service{Store: newStubStore()}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/upload", strings.NewReader(`{}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}
