package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kirana-admin-backend/dtos"
	"kirana-admin-backend/models"

	"github.com/gocarina/gocsv"
)

// FilterPriceList intersects search, category, status and availability
// filters over the price-list mirror, preserving input order. The search term
// matches name, category or subcategory, case-insensitively.
func FilterPriceList(items []models.ProductList, f dtos.PriceListFilter) []models.ProductList {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	filtered := make([]models.ProductList, 0, len(items))

	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Category), search) &&
			!strings.Contains(strings.ToLower(item.SubCategory), search) {
			continue
		}
		if f.Category != "" && f.Category != "all" && item.Category != f.Category {
			continue
		}
		switch f.Status {
		case "active":
			if !item.IsActive {
				continue
			}
		case "inactive":
			if item.IsActive {
				continue
			}
		}
		switch f.Availability {
		case "available":
			if !item.IsAvailable {
				continue
			}
		case "unavailable":
			if item.IsAvailable {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// CategoryGroup is one section of the rendered catalog.
type CategoryGroup struct {
	Category string
	Items    []models.ProductList
}

// GroupByCategory groups items by their category name. Group order follows
// the first occurrence of each category in the input, and items keep their
// input order within a group; the caller pre-sorts if it wants alphabetical.
func GroupByCategory(items []models.ProductList) []CategoryGroup {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// PriceListCSVRow is one line of the spreadsheet export.
type PriceListCSVRow struct {
	Serial       int     `csv:"#"`
	Name         string  `csv:"Product Name"`
	Category     string  `csv:"Category"`
	SubCategory  string  `csv:"Sub-Category"`
	MRP          float64 `csv:"MRP"`
	Status       string  `csv:"Status"`
	Availability string  `csv:"Availability"`
	AddedDate    string  `csv:"Added Date"`
}

// BuildPriceListCSV renders the flat CSV export. Fields with embedded commas
// or quotes get standard CSV quoting; a missing creation date becomes the
// literal "No date".
func BuildPriceListCSV(items []models.ProductList) (string, error) {
	rows := make([]PriceListCSVRow, 0, len(items))
	for i, item := range items {
		subCategory := item.SubCategory
		if subCategory == "" {
			subCategory = "-"
		}
		status := "Inactive"
		if item.IsActive {
			status = "Active"
		}
		availability := "Unavailable"
		if item.IsAvailable {
			availability = "Available"
		}
		addedDate := "No date"
		if item.CreatedAt != nil {
			addedDate = item.CreatedAt.Format("02/01/2006")
		}
		rows = append(rows, PriceListCSVRow{
			Serial:       i + 1,
			Name:         item.Name,
			Category:     item.Category,
			SubCategory:  subCategory,
			MRP:          item.MRP,
			Status:       status,
			Availability: availability,
			AddedDate:    addedDate,
		})
	}
	return gocsv.MarshalString(&rows)
}

// CatalogFilename builds "<store-slug>-Catalog-<ISO-date>.<ext>".
func CatalogFilename(storeName, ext string) string {
	return fmt.Sprintf("%s-Catalog-%s.%s", slugify(storeName), time.Now().Format("2006-01-02"), ext)
}

func slugify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "General Store"
	}
	var b strings.Builder
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// FormatINR formats an amount with Indian digit grouping (12,34,567.50).
// Whole amounts drop the decimals, matching the admin UI display.
func FormatINR(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	if negative {
		intPart = "-" + intPart
	}
	return intPart + fracPart
}
