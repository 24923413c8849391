package controller

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "perpusku_backend/internals/features/library/books/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "perpus.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.BookModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	ctl := &BookController{DB: db}
	books := app.Group("/api/a/books")
	books.Get("/", ctl.List)
	books.Get("/:id", ctl.GetByID)
	books.Post("/", ctl.Create)
	books.Put("/:id", ctl.Update)
	books.Delete("/:id", ctl.Delete)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp, decoded
}

func createPayload(isbn string) fiber.Map {
	return fiber.Map{
		"book_title":     "Negeri 5 Menara",
		"book_authors":   "Ahmad Fuadi",
		"book_isbn":      isbn,
		"book_publisher": "Gramedia",
		"book_num_pages": 423,
	}
}

func TestCreateBook(t *testing.T) {
	app, db := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/a/books/", createPayload("9789792248616"))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["book_stock"].(float64) != 1 {
		t.Fatalf("default stock = %v, want 1", data["book_stock"])
	}

	var n int64
	db.Model(&model.BookModel{}).Count(&n)
	if n != 1 {
		t.Fatalf("books in db = %d, want 1", n)
	}
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	app, _ := newTestApp(t)

	if resp, _ := doJSON(t, app, http.MethodPost, "/api/a/books/", createPayload("9789792248616")); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first create status = %d", resp.StatusCode)
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/a/books/", createPayload("9789792248616"))
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409 (body %v)", resp.StatusCode, body)
	}
	if body["error_code"] != "CONFLICT" {
		t.Fatalf("error_code = %v, want CONFLICT", body["error_code"])
	}
}

func TestCreateBookValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/a/books/", fiber.Map{
		"book_title": "Tanpa ISBN",
	})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %v)", resp.StatusCode, body)
	}
	errs := body["errors"].(map[string]any)
	if _, ok := errs["bookisbn"]; !ok {
		t.Fatalf("missing isbn validation error, got %v", errs)
	}
}

func TestListBooksSearch(t *testing.T) {
	app, _ := newTestApp(t)

	for _, p := range []fiber.Map{
		{"book_title": "Laskar Pelangi", "book_authors": "Andrea Hirata", "book_isbn": "1111111111111", "book_publisher": "Bentang", "book_num_pages": 529},
		{"book_title": "Sang Pemimpi", "book_authors": "Andrea Hirata", "book_isbn": "2222222222222", "book_publisher": "Bentang", "book_num_pages": 292},
		{"book_title": "Bumi Manusia", "book_authors": "Pramoedya", "book_isbn": "3333333333333", "book_publisher": "Hasta Mitra", "book_num_pages": 535},
	} {
		if resp, _ := doJSON(t, app, http.MethodPost, "/api/a/books/", p); resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("seed create status = %d", resp.StatusCode)
		}
	}

	// q cocok di judul ATAU pengarang, case-insensitive
	resp, body := doJSON(t, app, http.MethodGet, "/api/a/books/?q=hirata", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if data := body["data"].([]any); len(data) != 2 {
		t.Fatalf("len(data) = %d, want 2", len(data))
	}
	pg := body["pagination"].(map[string]any)
	if pg["total"].(float64) != 2 {
		t.Fatalf("total = %v, want 2", pg["total"])
	}
}

func TestDeleteBookNeedsConfirm(t *testing.T) {
	app, _ := newTestApp(t)

	_, created := doJSON(t, app, http.MethodPost, "/api/a/books/", createPayload("9789792248616"))
	id := created["data"].(map[string]any)["book_id"].(string)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/a/books/"+id, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("delete without confirm = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/a/books/"+id+"?confirm=true", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete with confirm = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/api/a/books/"+id, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", resp.StatusCode)
	}
}
