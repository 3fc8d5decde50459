package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/polkiloo/celengan/internal/domain/model"
)

const dateLayout = "2006-01-02 15:04:05"

// Format selects the rendered document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ValidFormat reports whether f is a renderable format.
func ValidFormat(f Format) bool {
	return f == FormatPDF || f == FormatXLSX
}

// Data is everything one savings report covers.
type Data struct {
	User         *model.User
	Goals        []model.Goal
	Transactions []model.Transaction
	Withdrawals  []model.Withdrawal
	GeneratedAt  time.Time
}

// Builder renders savings reports into raw document bytes.
type Builder struct{}

// NewBuilder constructs Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Render produces the report in the requested format.
func (b *Builder) Render(format Format, data Data) ([]byte, error) {
	switch format {
	case FormatPDF:
		return b.PDF(data)
	case FormatXLSX:
		return b.XLSX(data)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// PDF renders the savings report as a PDF document.
func (b *Builder) PDF(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Savings Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(60, 7, fmt.Sprintf("Saver: %s", data.User.Name))
	pdf.Ln(6)
	pdf.Cell(60, 7, fmt.Sprintf("Available balance: %s", data.User.AvailableBalance.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(60, 7, fmt.Sprintf("Generated: %s", data.GeneratedAt.Format(dateLayout)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(40, 8, "Goals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(60, 7, "Name")
	pdf.Cell(35, 7, "Target")
	pdf.Cell(35, 7, "Saved")
	pdf.Cell(30, 7, "Progress")
	pdf.Cell(25, 7, "Type")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	for _, g := range data.Goals {
		pdf.CellFormat(60, 7, g.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, g.TargetAmount.StringFixed(2), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, g.CurrentAmount.StringFixed(2), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, g.ProgressPercentage().StringFixed(2)+"%", "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, string(g.Type), "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(40, 8, "Transactions")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(25, 7, "ID")
	pdf.Cell(25, 7, "Goal")
	pdf.Cell(35, 7, "Amount")
	pdf.Cell(35, 7, "Method")
	pdf.Cell(45, 7, "Date")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	for _, t := range data.Transactions {
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", t.ID), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", t.GoalID), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, t.Amount.StringFixed(2), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, string(t.Method), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 7, t.TransactionDate.Format(dateLayout), "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(40, 8, "Withdrawals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(25, 7, "ID")
	pdf.Cell(35, 7, "Amount")
	pdf.Cell(35, 7, "Method")
	pdf.Cell(30, 7, "Status")
	pdf.Cell(45, 7, "Date")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	for _, w := range data.Withdrawals {
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", w.ID), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, w.Amount.StringFixed(2), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, string(w.Method), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, string(w.Status), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 7, w.CreatedAt.Format(dateLayout), "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX renders the savings report as a workbook with one sheet per section.
func (b *Builder) XLSX(data Data) ([]byte, error) {
	file := xlsx.NewFile()

	goals, err := file.AddSheet("Goals")
	if err != nil {
		return nil, err
	}
	header := goals.AddRow()
	for _, title := range []string{"Name", "Target", "Saved", "Progress", "Type"} {
		header.AddCell().SetValue(title)
	}
	for _, g := range data.Goals {
		row := goals.AddRow()
		row.AddCell().SetValue(g.Name)
		row.AddCell().SetValue(g.TargetAmount.StringFixed(2))
		row.AddCell().SetValue(g.CurrentAmount.StringFixed(2))
		row.AddCell().SetValue(g.ProgressPercentage().StringFixed(2) + "%")
		row.AddCell().SetValue(string(g.Type))
	}

	transactions, err := file.AddSheet("Transactions")
	if err != nil {
		return nil, err
	}
	header = transactions.AddRow()
	for _, title := range []string{"ID", "Goal", "Amount", "Method", "Date"} {
		header.AddCell().SetValue(title)
	}
	for _, t := range data.Transactions {
		row := transactions.AddRow()
		row.AddCell().SetValue(fmt.Sprintf("%d", t.ID))
		row.AddCell().SetValue(fmt.Sprintf("%d", t.GoalID))
		row.AddCell().SetValue(t.Amount.StringFixed(2))
		row.AddCell().SetValue(string(t.Method))
		row.AddCell().SetValue(t.TransactionDate.Format(dateLayout))
	}

	withdrawals, err := file.AddSheet("Withdrawals")
	if err != nil {
		return nil, err
	}
	header = withdrawals.AddRow()
	for _, title := range []string{"ID", "Amount", "Method", "Status", "Date"} {
		header.AddCell().SetValue(title)
	}
	for _, w := range data.Withdrawals {
		row := withdrawals.AddRow()
		row.AddCell().SetValue(fmt.Sprintf("%d", w.ID))
		row.AddCell().SetValue(w.Amount.StringFixed(2))
		row.AddCell().SetValue(string(w.Method))
		row.AddCell().SetValue(string(w.Status))
		row.AddCell().SetValue(w.CreatedAt.Format(dateLayout))
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
