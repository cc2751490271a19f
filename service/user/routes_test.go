package user_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/KAsare1/donation-server/cmd/utils"
	"github.com/KAsare1/donation-server/db"
	"github.com/KAsare1/donation-server/db/dbtest"
	"github.com/KAsare1/donation-server/service/user"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const userBody = `{"name": "Ama", "email": "ama@example.com", "password": "s3cret", "contact": "0244000000", "role": "donor"}`

type fakeMailer struct {
	sent chan string
	err  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 4)}
}

func (m *fakeMailer) SendWelcome(to, name string) error {
	m.sent <- to
	return m.err
}

func setup(t *testing.T, mailer *fakeMailer) (*mux.Router, *gorm.DB) {
	t.Helper()
	gdb := dbtest.Open(t)
	router := mux.NewRouter()
	user.NewHandler(gdb, zerolog.Nop(), mailer).RegisterRoutes(router)
	return router, gdb
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, bytes.NewBufferString(body)))

	var res map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, rr.Body, err)
	}
	return rr, res
}

func TestCreateUserHashesPassword(t *testing.T) {
	mailer := newFakeMailer()
	router, gdb := setup(t, mailer)

	rr, res := do(t, router, "POST", "/users/", userBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if _, ok := res["password"]; ok {
		t.Errorf("response leaks password: %v", res)
	}
	if res["email"] != "ama@example.com" || res["role"] != "donor" {
		t.Errorf("unexpected user %v", res)
	}

	stored, err := db.GetByID[models.User](gdb, uint(res["id"].(float64)))
	if err != nil {
		t.Fatalf("get stored user: %v", err)
	}
	if stored.Password == "s3cret" || !strings.HasPrefix(stored.Password, "$2") {
		t.Errorf("password not stored as bcrypt hash: %q", stored.Password)
	}
	if !utils.CheckPassword(stored.Password, "s3cret") {
		t.Error("stored hash does not verify against plaintext")
	}

	select {
	case to := <-mailer.sent:
		if to != "ama@example.com" {
			t.Errorf("welcome mail sent to %q", to)
		}
	case <-time.After(2 * time.Second):
		t.Error("welcome mail not sent")
	}
}

func TestCreateUserMailFailureIsIgnored(t *testing.T) {
	mailer := newFakeMailer()
	mailer.err = errors.New("smtp down")
	router, _ := setup(t, mailer)

	rr, res := do(t, router, "POST", "/users", userBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	<-mailer.sent
}

func TestCreateUserDuplicates(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		detail string
	}{
		{
			name:   "email",
			body:   `{"name": "B", "email": "ama@example.com", "password": "x", "contact": "0200000000", "role": "donor"}`,
			detail: "Email already registered",
		},
		{
			name:   "contact",
			body:   `{"name": "B", "email": "b@example.com", "password": "x", "contact": "0244000000", "role": "donor"}`,
			detail: "Contact already registered",
		},
		{
			name:   "email checked first",
			body:   `{"name": "B", "email": "ama@example.com", "password": "x", "contact": "0244000000", "role": "donor"}`,
			detail: "Email already registered",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, gdb := setup(t, newFakeMailer())
			do(t, router, "POST", "/users/", userBody)

			rr, res := do(t, router, "POST", "/users/", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if res["detail"] != tc.detail {
				t.Errorf("detail = %v, want %q", res["detail"], tc.detail)
			}

			var count int64
			gdb.Model(&models.User{}).Count(&count)
			if count != 1 {
				t.Errorf("expected 1 user, found %d", count)
			}
		})
	}
}

func TestCreateUserMissingPassword(t *testing.T) {
	router, _ := setup(t, newFakeMailer())

	rr, _ := do(t, router, "POST", "/users/", `{"name": "Ama", "email": "ama@example.com", "contact": "0244", "role": "donor"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestGetUserOmitsPassword(t *testing.T) {
	router, _ := setup(t, newFakeMailer())
	do(t, router, "POST", "/users/", userBody)

	for _, path := range []string{"/users/1", "/users/1/"} {
		rr, res := do(t, router, "GET", path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rr.Code)
		}
		if _, ok := res["password"]; ok {
			t.Errorf("GET %s leaks password", path)
		}
		if res["name"] != "Ama" {
			t.Errorf("GET %s = %v", path, res)
		}
	}

	rr, res := do(t, router, "GET", "/users/2", "")
	if rr.Code != http.StatusNotFound || res["detail"] != "User not found" {
		t.Errorf("missing user: %d %v", rr.Code, res)
	}
}

func TestUpdateUser(t *testing.T) {
	router, gdb := setup(t, newFakeMailer())
	do(t, router, "POST", "/users/", userBody)

	rr, res := do(t, router, "PUT", "/users/1", `{"role": "admin", "password": "n3w"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["role"] != "admin" || res["email"] != "ama@example.com" {
		t.Errorf("unexpected user %v", res)
	}
	if _, ok := res["password"]; ok {
		t.Error("update response leaks password")
	}

	stored, err := db.GetByID[models.User](gdb, 1)
	if err != nil {
		t.Fatalf("get stored user: %v", err)
	}
	if !utils.CheckPassword(stored.Password, "n3w") {
		t.Error("updated password not stored as a verifying hash")
	}
}

func TestUpdateUserToTakenEmail(t *testing.T) {
	router, _ := setup(t, newFakeMailer())
	do(t, router, "POST", "/users/", userBody)
	do(t, router, "POST", "/users/", `{"name": "B", "email": "b@example.com", "password": "x", "contact": "0200000000", "role": "donor"}`)

	rr, res := do(t, router, "PUT", "/users/2", `{"email": "ama@example.com"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", rr.Code, res)
	}
}

func TestDeleteUser(t *testing.T) {
	router, _ := setup(t, newFakeMailer())
	do(t, router, "POST", "/users/", userBody)

	rr, res := do(t, router, "DELETE", "/users/1", "")
	if rr.Code != http.StatusOK || res["detail"] != "User deleted successfully" {
		t.Fatalf("delete: %d %v", rr.Code, res)
	}
	if rr, _ := do(t, router, "GET", "/users/1", ""); rr.Code != http.StatusNotFound {
		t.Errorf("after delete: expected 404, got %d", rr.Code)
	}
	if rr, res := do(t, router, "DELETE", "/users/abc", ""); rr.Code != http.StatusUnprocessableEntity || res["detail"] != "Invalid user ID" {
		t.Errorf("invalid id: %d %v", rr.Code, res)
	}
}

func TestWaitCoversWelcomeMail(t *testing.T) {
	mailer := newFakeMailer()
	h := user.NewHandler(dbtest.Open(t), zerolog.Nop(), mailer)
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	if rr, res := do(t, router, "POST", "/users/", userBody); rr.Code != http.StatusOK {
		t.Fatalf("create: %d %v", rr.Code, res)
	}

	h.Wait()
	select {
	case <-mailer.sent:
	default:
		t.Fatal("Wait returned before the welcome mail was sent")
	}
}
