package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"billsoft-backend/internal/models"
	"billsoft-backend/internal/storage"
	"billsoft-backend/internal/timeutil"
	"billsoft-backend/pkg/utils"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders invoices and quotations for print. Generated PDFs
// are archived to R2 in the background when an archive is configured.
type PDFService struct {
	Settings *SettingService
	Archive  *storage.Archive
}

func NewPDFService(settings *SettingService, archive *storage.Archive) *PDFService {
	return &PDFService{Settings: settings, Archive: archive}
}

// GenerateInvoicePDF renders a stored invoice. Figures come straight
// from the stored document; nothing is recomputed here.
func (s *PDFService) GenerateInvoicePDF(ctx context.Context, inv *models.Invoice) ([]byte, error) {
	company, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	renderHeader(pdf, company, "TAX INVOICE")

	// Document block
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 7, fmt.Sprintf("Invoice No: %s", inv.DocumentNumber), "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", inv.Date.Format(timeutil.DisplayLayout)), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Due Date: %s", inv.DueDate.Format(timeutil.DisplayLayout)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", inv.Status), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	renderClientBlock(pdf, inv.Client)
	renderLines(pdf, inv.Items)
	renderTotals(pdf, inv.SubTotal, inv.DiscountPercent, inv.DiscountAmount, inv.Total)

	// Balance
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, fmt.Sprintf("Pending Amount: Rs. %.2f", inv.PendingAmount), "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, utils.AmountInWords(inv.Total), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	renderBankBlock(pdf, company)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	s.archive(fmt.Sprintf("invoices/%s.pdf", sanitizeKey(inv.DocumentNumber)), buf.Bytes())
	return buf.Bytes(), nil
}

// GenerateQuotationPDF renders a stored quotation.
func (s *PDFService) GenerateQuotationPDF(ctx context.Context, q *models.Quotation) ([]byte, error) {
	company, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	renderHeader(pdf, company, "QUOTATION")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 7, fmt.Sprintf("Quotation No: %s", q.DocumentNumber), "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", q.Date.Format(timeutil.DisplayLayout)), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 7, fmt.Sprintf("Valid Until: %s", q.DueDate.Format(timeutil.DisplayLayout)), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	renderClientBlock(pdf, q.Client)
	renderLines(pdf, q.Items)
	renderTotals(pdf, q.SubTotal, q.DiscountPercent, q.DiscountAmount, q.Total)

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, utils.AmountInWords(q.Total), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	renderBankBlock(pdf, company)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	s.archive(fmt.Sprintf("quotations/%s.pdf", sanitizeKey(q.DocumentNumber)), buf.Bytes())
	return buf.Bytes(), nil
}

// archive uploads in the background; failures are logged, never
// propagated to the download response.
func (s *PDFService) archive(key string, data []byte) {
	if s.Archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Archive.StorePDF(ctx, key, data); err != nil {
			log.Printf("[PDF] archive upload failed for %s: %v", key, err)
		}
	}()
}

// RemoveInvoiceArchive drops the archived copy of a deleted invoice.
func (s *PDFService) RemoveInvoiceArchive(number string) {
	s.removeArchived(fmt.Sprintf("invoices/%s.pdf", sanitizeKey(number)))
}

// RemoveQuotationArchive drops the archived copy of a deleted quotation.
func (s *PDFService) RemoveQuotationArchive(number string) {
	s.removeArchived(fmt.Sprintf("quotations/%s.pdf", sanitizeKey(number)))
}

func (s *PDFService) removeArchived(key string) {
	if s.Archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Archive.Delete(ctx, key); err != nil {
			log.Printf("[PDF] archive delete failed for %s: %v", key, err)
		}
	}()
}

// Document numbers contain slashes; R2 keys use dashes instead.
func sanitizeKey(number string) string {
	return strings.ReplaceAll(number, "/", "-")
}

func renderHeader(pdf *gofpdf.Fpdf, company *models.Settings, title string) {
	pdf.SetFont("Arial", "B", 16)
	name := company.CompanyName
	if name == "" {
		name = "Company"
	}
	pdf.CellFormat(190, 10, name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	if company.Address != "" {
		pdf.CellFormat(190, 5, company.Address, "", 1, "C", false, 0, "")
	}
	contact := company.ContactNumber
	if company.Email != "" {
		contact = contact + "  " + company.Email
	}
	if contact != "" {
		pdf.CellFormat(190, 5, contact, "", 1, "C", false, 0, "")
	}
	if company.GSTIN != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("GSTIN: %s", company.GSTIN), "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func renderClientBlock(pdf *gofpdf.Fpdf, client models.ClientSnapshot) {
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 7, "Bill To", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Name: %s", client.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("GSTIN: %s", client.GSTIN), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Address: %s", client.Address), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Contact: %s", client.ContactNumber), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func renderLines(pdf *gofpdf.Fpdf, items []models.DocumentItem) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Tax %", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Tax", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, item := range items {
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, item.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", item.TaxRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", item.TaxAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func renderTotals(pdf *gofpdf.Fpdf, subTotal, discountPercent, discountAmount, total float64) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Sub Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", subTotal), "1", 1, "R", false, 0, "")

	pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("Disc %.1f%%", discountPercent), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", discountAmount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", total), "1", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func renderBankBlock(pdf *gofpdf.Fpdf, company *models.Settings) {
	if company.BankName == "" && company.AccountNumber == "" {
		return
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 7, "Bank Details", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 6, fmt.Sprintf("Bank: %s", company.BankName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("A/C: %s  IFSC: %s", company.AccountNumber, company.IFSC), "RB", 1, "L", false, 0, "")
}
