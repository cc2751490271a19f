package db_test

import (
	"errors"
	"testing"
	"time"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/KAsare1/donation-server/db"
	"github.com/KAsare1/donation-server/db/dbtest"
)

func newCampaign() *models.Campaign {
	return &models.Campaign{
		Title:        "Clean Water",
		Cause:        "Wells for rural schools",
		TargetAmount: 5000,
		RaisedAmount: 120.5,
		StartDate:    models.NewDate(2024, time.January, 1),
		EndDate:      models.NewDate(2024, time.June, 30),
		CreatorID:    7,
	}
}

func TestInsertAssignsIDAndRoundTrips(t *testing.T) {
	gdb := dbtest.Open(t)

	c := newCampaign()
	if err := db.Insert(gdb, c); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	got, err := db.GetByID[models.Campaign](gdb, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != c.Title || got.Cause != c.Cause || got.TargetAmount != 5000 || got.RaisedAmount != 120.5 {
		t.Errorf("unexpected campaign %+v", got)
	}
	if got.StartDate.String() != "2024-01-01" || got.EndDate.String() != "2024-06-30" {
		t.Errorf("dates not preserved: %s %s", got.StartDate, got.EndDate)
	}
	if got.CreatorID != 7 {
		t.Errorf("creator id = %d, want 7", got.CreatorID)
	}
}

func TestGetByIDMissing(t *testing.T) {
	gdb := dbtest.Open(t)

	_, err := db.GetByID[models.Report](gdb, 42)
	if !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateOnlyTouchesSuppliedColumns(t *testing.T) {
	gdb := dbtest.Open(t)

	c := newCampaign()
	if err := db.Insert(gdb, c); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := db.Update[models.Campaign](gdb, c.ID, map[string]interface{}{"title": "New Title"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "New Title" {
		t.Errorf("title = %q, want New Title", got.Title)
	}
	if got.Cause != c.Cause || got.TargetAmount != c.TargetAmount || got.EndDate.String() != c.EndDate.String() {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateWithNoChangesReturnsCurrentRow(t *testing.T) {
	gdb := dbtest.Open(t)

	c := newCampaign()
	if err := db.Insert(gdb, c); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := db.Update[models.Campaign](gdb, c.ID, map[string]interface{}{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != c.Title {
		t.Errorf("title = %q, want %q", got.Title, c.Title)
	}
}

func TestUpdateMissing(t *testing.T) {
	gdb := dbtest.Open(t)

	_, err := db.Update[models.Milestone](gdb, 3, map[string]interface{}{"title": "x"})
	if !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteDoesNotCascade(t *testing.T) {
	gdb := dbtest.Open(t)

	c := newCampaign()
	if err := db.Insert(gdb, c); err != nil {
		t.Fatalf("insert campaign: %v", err)
	}
	d := &models.Donation{
		Amount:        25,
		DonationDate:  models.NewDate(2024, time.February, 2),
		TransactionID: "tx-1",
		CampaignID:    c.ID,
		UserID:        1,
	}
	if err := db.Insert(gdb, d); err != nil {
		t.Fatalf("insert donation: %v", err)
	}

	if err := db.Delete[models.Campaign](gdb, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetByID[models.Campaign](gdb, c.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("campaign still present: %v", err)
	}
	if _, err := db.GetByID[models.Donation](gdb, d.ID); err != nil {
		t.Fatalf("donation should survive campaign delete: %v", err)
	}

	if err := db.Delete[models.Campaign](gdb, c.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestAllAndExists(t *testing.T) {
	gdb := dbtest.Open(t)

	all, err := db.All[models.Campaign](gdb)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty table, got %d", len(all))
	}

	for i := 0; i < 3; i++ {
		if err := db.Insert(gdb, newCampaign()); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	all, err = db.All[models.Campaign](gdb)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d campaigns, want 3", len(all))
	}

	ok, err := db.Exists[models.Campaign](gdb, "creator_id", 7)
	if err != nil || !ok {
		t.Errorf("exists creator 7 = %v, %v", ok, err)
	}
	ok, err = db.Exists[models.Campaign](gdb, "creator_id", 8)
	if err != nil || ok {
		t.Errorf("exists creator 8 = %v, %v", ok, err)
	}
}

func TestInsertDuplicateEmailIsConstraintViolation(t *testing.T) {
	gdb := dbtest.Open(t)

	u := &models.User{Name: "A", Email: "a@x.com", Password: "h", Contact: "111", Role: "donor"}
	if err := db.Insert(gdb, u); err != nil {
		t.Fatalf("insert: %v", err)
	}

	dup := &models.User{Name: "B", Email: "a@x.com", Password: "h", Contact: "222", Role: "donor"}
	if err := db.Insert(gdb, dup); !errors.Is(err, db.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}
