package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipData carries the rendered figures for one employee's payslip.
// All amounts are already rounded; this layer only lays them out.
type PayslipData struct {
	EmployeeNo string
	Name       string
	Position   string
	PFNumber   string
	ESINumber  string

	BasicDA         decimal.Decimal
	HRA             decimal.Decimal
	Conveyance      decimal.Decimal
	OtherAllowances decimal.Decimal
	OvertimeAmount  decimal.Decimal
	GrossEarnings   decimal.Decimal

	PF              decimal.Decimal
	ESI             decimal.Decimal
	Advance         decimal.Decimal
	Food            decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal

	NetPay decimal.Decimal
}

// Page geometry in millimetres. A4 portrait is 210x297; three payslips share
// one page as equal vertical bands.

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	pageMargin   = 8.0
	slipsPerPage = 3
)

// PayslipPDF renders payslips three per page for the given "YYYY-MM" month.
func PayslipPDF(month string, slips []PayslipData) (Document, error) {
	pdf := buildPayslipPDF(month, slips)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return Document{
		Filename:    fmt.Sprintf("payslip_report_%s.pdf", month),
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}, nil
}

func buildPayslipPDF(month string, slips []PayslipData) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	bandHeight := (pageHeight - 2*pageMargin) / slipsPerPage

	for i, slip := range slips {
		if i%slipsPerPage == 0 {
			pdf.AddPage()
		}
		top := pageMargin + float64(i%slipsPerPage)*bandHeight
		drawPayslip(pdf, slip, month, top, bandHeight)
	}

	return pdf
}

func drawPayslip(pdf *gofpdf.Fpdf, slip PayslipData, month string, top, height float64) {
	left := pageMargin
	width := pageWidth - 2*pageMargin
	colWidth := width / 2

	pdf.Rect(left, top, width, height-2, "D")

	// Header
	pdf.SetXY(left, top+2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(width, 6, fmt.Sprintf("Payslip - %s", month), "", 0, "C", false, 0, "")

	// Employee info
	pdf.SetFont("Arial", "", 9)
	pdf.SetXY(left+3, top+9)
	pdf.CellFormat(colWidth, 5, fmt.Sprintf("Name: %s", slip.Name), "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth-6, 5, fmt.Sprintf("Employee No: %s", slip.EmployeeNo), "", 0, "R", false, 0, "")
	pdf.SetXY(left+3, top+14)
	pdf.CellFormat(colWidth, 5, fmt.Sprintf("Position: %s", slip.Position), "", 0, "L", false, 0, "")

	// Earnings and deductions, two columns
	tableTop := top + 21
	pdf.SetFont("Arial", "B", 9)
	pdf.SetXY(left+3, tableTop)
	pdf.CellFormat(colWidth-6, 5, "Earnings", "B", 0, "L", false, 0, "")
	pdf.SetXY(left+colWidth+3, tableTop)
	pdf.CellFormat(colWidth-6, 5, "Deductions", "B", 0, "L", false, 0, "")

	earnings := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Basic + DA", slip.BasicDA},
		{"HRA", slip.HRA},
		{"Conveyance", slip.Conveyance},
		{"Other Allowances", slip.OtherAllowances},
		{"Overtime", slip.OvertimeAmount},
	}
	deductions := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"PF", slip.PF},
		{"ESI", slip.ESI},
		{"Advance", slip.Advance},
		{"Food", slip.Food},
		{"Other", slip.OtherDeductions},
	}

	pdf.SetFont("Arial", "", 9)
	for row := 0; row < len(earnings); row++ {
		y := tableTop + 6 + float64(row)*5
		pdf.SetXY(left+3, y)
		pdf.CellFormat(colWidth*0.6, 5, earnings[row].label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidth*0.4-6, 5, earnings[row].amount.String(), "", 0, "R", false, 0, "")
		pdf.SetXY(left+colWidth+3, y)
		pdf.CellFormat(colWidth*0.6, 5, deductions[row].label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidth*0.4-6, 5, deductions[row].amount.String(), "", 0, "R", false, 0, "")
	}

	totalsY := tableTop + 6 + float64(len(earnings))*5
	pdf.SetFont("Arial", "B", 9)
	pdf.SetXY(left+3, totalsY)
	pdf.CellFormat(colWidth*0.6, 5, "Gross Earnings", "T", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth*0.4-6, 5, slip.GrossEarnings.String(), "T", 0, "R", false, 0, "")
	pdf.SetXY(left+colWidth+3, totalsY)
	pdf.CellFormat(colWidth*0.6, 5, "Total Deductions", "T", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth*0.4-6, 5, slip.TotalDeductions.String(), "T", 0, "R", false, 0, "")

	// Boxed net pay line
	netY := totalsY + 7
	pdf.Rect(left+3, netY, width-6, 7, "D")
	pdf.SetXY(left+5, netY+1)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(width-10, 5, fmt.Sprintf("Net Pay: %s", slip.NetPay.String()), "", 0, "L", false, 0, "")

	// Footer
	pdf.SetFont("Arial", "I", 7)
	pdf.SetXY(left+3, top+height-8)
	pdf.CellFormat(width*0.6, 4, fmt.Sprintf("Generated: %s", time.Now().Format("02 Jan 2006 15:04")), "", 0, "L", false, 0, "")
	pdf.CellFormat(width*0.4-6, 4, fmt.Sprintf("PF: %s  ESI: %s", slip.PFNumber, slip.ESINumber), "", 0, "R", false, 0, "")
}
