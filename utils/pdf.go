package utils

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Catalog table column widths in mm.
var catalogColWidths = [4]float64{18, 95, 35, 32}

var catalogColHeaders = [4]string{"S.No.", "Product Name", "Sub-Category", "Price (Rs.)"}

// RenderPriceListPDF renders the categorized catalog. Each category gets a
// section band followed by a table; the serial number runs across all
// categories. A new page starts when the remaining space cannot fit a
// category header plus a few rows, and every page carries a centered page
// number in the footer.
func RenderPriceListPDF(storeName string, groups []CategoryGroup) ([]byte, error) {
	if strings.TrimSpace(storeName) == "" {
		storeName = "General Store"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// cp1252 covers the em-dash placeholder; the core fonts cannot take
	// UTF-8 directly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - 15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, strconv.Itoa(pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(strings.ToUpper(storeName)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Complete Product Catalog & Price List", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	serial := 1
	for _, group := range groups {
		// Reserve space for the category band plus at least three rows.
		if pdf.GetY() > pageH-60 {
			pdf.AddPage()
		}
		drawCategoryBand(pdf, pageW, tr(group.Category))
		drawTableHead(pdf)

		for _, item := range group.Items {
			if pdf.GetY() > pageH-25 {
				pdf.AddPage()
				drawCategoryBand(pdf, pageW, tr(group.Category)+" (contd.)")
				drawTableHead(pdf)
			}
			subCategory := pdfSubCategory(item.SubCategory)
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(catalogColWidths[0], 7, strconv.Itoa(serial), "1", 0, "C", false, 0, "")
			pdf.CellFormat(catalogColWidths[1], 7, tr(item.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(catalogColWidths[2], 7, tr(subCategory), "1", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(catalogColWidths[3], 7, FormatINR(item.MRP), "1", 1, "R", false, 0, "")
			serial++
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfSubCategory substitutes an em-dash for a missing subcategory. The CSV
// export uses "-" instead; the two placeholders differ on purpose.
func pdfSubCategory(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func drawCategoryBand(pdf *gofpdf.Fpdf, pageW float64, category string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(240, 248, 255)
	pdf.SetDrawColor(200, 220, 240)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(pageW-20, 10, "  "+strings.ToUpper(category), "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(220, 220, 220)
	pdf.Ln(1)
}

func drawTableHead(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(248, 250, 252)
	pdf.SetTextColor(55, 65, 81)
	align := [4]string{"C", "L", "L", "R"}
	for i, header := range catalogColHeaders {
		ln := 0
		if i == len(catalogColHeaders)-1 {
			ln = 1
		}
		pdf.CellFormat(catalogColWidths[i], 8, header, "1", ln, align[i], true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}
