package donation_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/KAsare1/donation-server/db"
	"github.com/KAsare1/donation-server/db/dbtest"
	"github.com/KAsare1/donation-server/service/donation"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	gdb := dbtest.Open(t)
	router := mux.NewRouter()
	donation.NewDonationHandler(gdb, zerolog.Nop()).RegisterRoutes(router)
	return router, gdb
}

func createUser(t *testing.T, gdb *gorm.DB) uint {
	t.Helper()
	u := &models.User{Name: "Ama", Email: "ama@example.com", Password: "hash", Contact: "0244000000", Role: "donor"}
	if err := db.Insert(gdb, u); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return u.ID
}

func donationBody(userID uint) string {
	return fmt.Sprintf(`{"amount": 25.5, "donation_date": "2024-02-02", "transaction_id": "tx-1", "campaign_id": 3, "user_id": %d}`, userID)
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

func TestCreateDonation(t *testing.T) {
	router, gdb := setup(t)
	userID := createUser(t, gdb)

	rr, res := do(t, router, "POST", "/donations/", donationBody(userID))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["id"] == nil || res["amount"] != 25.5 || res["donation_date"] != "2024-02-02" {
		t.Errorf("unexpected donation %v", res)
	}

	rr, res = do(t, router, "GET", "/donations/1/", "")
	if rr.Code != http.StatusOK || res["transaction_id"] != "tx-1" {
		t.Errorf("get: %d %v", rr.Code, res)
	}
}

func TestCreateDonationUnknownUser(t *testing.T) {
	router, gdb := setup(t)

	rr, res := do(t, router, "POST", "/donations", donationBody(77))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if res["detail"] != "User not found" {
		t.Errorf("detail = %v", res["detail"])
	}

	var count int64
	if err := gdb.Model(&models.Donation{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no donation stored, found %d", count)
	}
}

func TestCreateDonationDoesNotTouchCampaign(t *testing.T) {
	router, gdb := setup(t)
	userID := createUser(t, gdb)

	c := &models.Campaign{Title: "t", Cause: "c", TargetAmount: 100, CreatorID: userID}
	c.StartDate, _ = models.ParseDate("2024-01-01")
	c.EndDate, _ = models.ParseDate("2024-12-31")
	if err := db.Insert(gdb, c); err != nil {
		t.Fatalf("insert campaign: %v", err)
	}

	body := fmt.Sprintf(`{"amount": 40, "donation_date": "2024-02-02", "transaction_id": "tx-2", "campaign_id": %d, "user_id": %d}`, c.ID, userID)
	if rr, res := do(t, router, "POST", "/donations/", body); rr.Code != http.StatusOK {
		t.Fatalf("create: %d %v", rr.Code, res)
	}

	got, err := db.GetByID[models.Campaign](gdb, c.ID)
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if got.RaisedAmount != 0 {
		t.Errorf("raised_amount = %v, want 0", got.RaisedAmount)
	}
}

func TestUpdateDonation(t *testing.T) {
	router, gdb := setup(t)
	userID := createUser(t, gdb)
	do(t, router, "POST", "/donations/", donationBody(userID))

	rr, res := do(t, router, "PUT", "/donations/1", `{"amount": 30}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["amount"] != float64(30) || res["transaction_id"] != "tx-1" {
		t.Errorf("unexpected donation %v", res)
	}

	rr, res = do(t, router, "PUT", "/donations/9", `{"amount": 30}`)
	if rr.Code != http.StatusNotFound || res["detail"] != "Donation not found" {
		t.Errorf("update missing: %d %v", rr.Code, res)
	}
}

func TestDeleteDonation(t *testing.T) {
	router, gdb := setup(t)
	userID := createUser(t, gdb)
	do(t, router, "POST", "/donations/", donationBody(userID))

	rr, res := do(t, router, "DELETE", "/donations/1", "")
	if rr.Code != http.StatusOK || res["detail"] != "Donation deleted successfully" {
		t.Fatalf("delete: %d %v", rr.Code, res)
	}

	rr, res = do(t, router, "GET", "/donations/1", "")
	if rr.Code != http.StatusNotFound || res["detail"] != "Donation not found" {
		t.Errorf("after delete: %d %v", rr.Code, res)
	}
}
