package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAddSubCategory(t *testing.T) {
	var c Category

	if !c.AddSubCategory("  Rice ", " Long and short grain ") {
		t.Fatal("expected add to succeed")
	}
	if len(c.SubCategories) != 1 {
		t.Fatalf("expected 1 subcategory, got %d", len(c.SubCategories))
	}
	sub := c.SubCategories[0]
	if sub.Name != "Rice" || sub.Description != "Long and short grain" {
		t.Errorf("expected trimmed fields, got %+v", sub)
	}
	if _, err := uuid.Parse(sub.ID); err != nil {
		t.Errorf("expected generated uuid id, got %q", sub.ID)
	}
}

func TestAddSubCategoryBlankName(t *testing.T) {
	var c Category

	if c.AddSubCategory("   ", "desc") {
		t.Error("expected blank name to be rejected")
	}
	if len(c.SubCategories) != 0 {
		t.Errorf("expected no entries, got %d", len(c.SubCategories))
	}
}

func TestEditSubCategoryInPlace(t *testing.T) {
	var c Category
	c.AddSubCategory("Whole", "")
	c.AddSubCategory("Ground", "")
	c.AddSubCategory("Blends", "")
	id := c.SubCategories[1].ID

	if !c.EditSubCategory(id, "Powdered", "fine ground") {
		t.Fatal("expected edit to succeed")
	}
	if c.SubCategories[1].ID != id {
		t.Error("expected id preserved")
	}
	if c.SubCategories[1].Name != "Powdered" {
		t.Errorf("expected renamed entry, got %s", c.SubCategories[1].Name)
	}
	if c.SubCategories[0].Name != "Whole" || c.SubCategories[2].Name != "Blends" {
		t.Error("expected neighbours untouched")
	}
}

func TestEditSubCategoryUnknownID(t *testing.T) {
	var c Category
	c.AddSubCategory("Whole", "")

	if c.EditSubCategory("missing", "X", "") {
		t.Error("expected edit of unknown id to fail")
	}
}

func TestRemoveSubCategoryPreservesOrder(t *testing.T) {
	var c Category
	c.AddSubCategory("A", "")
	c.AddSubCategory("B", "")
	c.AddSubCategory("C", "")
	id := c.SubCategories[1].ID

	if !c.RemoveSubCategory(id) {
		t.Fatal("expected remove to succeed")
	}
	if len(c.SubCategories) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c.SubCategories))
	}
	if c.SubCategories[0].Name != "A" || c.SubCategories[1].Name != "C" {
		t.Errorf("expected order preserved, got %v", c.SubCategories)
	}

	if c.RemoveSubCategory(id) {
		t.Error("expected second remove of same id to fail")
	}
}

func TestSubCategoryListRoundTrip(t *testing.T) {
	list := SubCategoryList{
		{ID: "1", Name: "Rice", Description: "grains"},
		{ID: "2", Name: "Wheat"},
	}

	value, err := list.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded SubCategoryList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Name != "Rice" || decoded[1].ID != "2" {
		t.Errorf("round trip mismatch: %v", decoded)
	}
}

func TestSubCategoryListNilValue(t *testing.T) {
	var list SubCategoryList
	value, err := list.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "[]" {
		t.Errorf("expected nil list to serialize as [], got %v", value)
	}
}

func TestStringListScanFromString(t *testing.T) {
	var list StringList
	if err := list.Scan(`["a","b"]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[1] != "b" {
		t.Errorf("expected [a b], got %v", list)
	}
}

func TestListRecordMirrorsFields(t *testing.T) {
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	p := Product{
		ID:          uuid.New(),
		Name:        "Basmati Rice",
		MRP:         650,
		Category:    "Grains",
		SubCategory: "Rice",
		IsActive:    true,
		IsAvailable: false,
		CreatedAt:   created,
	}

	record := p.ListRecord()
	if record.ID != p.ID {
		t.Error("expected mirror to share the product id")
	}
	if record.Name != p.Name || record.MRP != p.MRP || record.Category != p.Category || record.SubCategory != p.SubCategory {
		t.Errorf("field mismatch: %+v", record)
	}
	if record.IsActive != true || record.IsAvailable != false {
		t.Error("expected flags copied")
	}
	if record.CreatedAt == nil || !record.CreatedAt.Equal(created) {
		t.Errorf("expected createdAt copied, got %v", record.CreatedAt)
	}
}

func TestListRecordZeroCreatedAt(t *testing.T) {
	p := Product{ID: uuid.New(), Name: "X", MRP: 1, Category: "Y"}
	record := p.ListRecord()
	if record.CreatedAt != nil {
		t.Errorf("expected nil createdAt for zero time, got %v", record.CreatedAt)
	}
}

func TestSynthesizedAdmin(t *testing.T) {
	user := &User{ID: uuid.New(), Email: "plain@test.com", Name: "Plain"}
	admin := SynthesizedAdmin(user)

	if admin.ID != user.ID {
		t.Error("expected synthesized record to carry the identity id")
	}
	if admin.Role != RoleAdmin {
		t.Errorf("expected role admin, got %s", admin.Role)
	}
	if !admin.IsActive {
		t.Error("expected synthesized record active")
	}
	if admin.CreatedBy != CreatedBySystem {
		t.Errorf("expected createdBy system, got %s", admin.CreatedBy)
	}
}
