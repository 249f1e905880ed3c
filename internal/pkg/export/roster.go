package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/campushub/studentms/internal/app/models"
)

const rosterSheet = "Students"

// rosterHeader is the first row of the roster spreadsheet.
var rosterHeader = []interface{}{
	"Student ID", "Student Name", "Email", "Course", "Department", "Instructor",
}

// RosterExporter writes the student roster as an XLSX file under a
// caller-supplied output directory.
type RosterExporter struct {
	outputDir string
}

// NewRosterExporter creates an exporter writing into outputDir, creating the
// directory if needed.
func NewRosterExporter(outputDir string) (*RosterExporter, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &RosterExporter{outputDir: outputDir}, nil
}

// Export writes one row per (student, course) pair and returns the path of
// the written workbook.
func (e *RosterExporter) Export(rows []models.RosterRow) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), rosterSheet)

	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return "", fmt.Errorf("failed to write roster header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		values := []interface{}{
			row.StudentID,
			row.StudentName,
			row.Email,
			row.CourseTitle,
			row.DepartmentName,
			row.InstructorName,
		}
		if err := f.SetSheetRow(rosterSheet, cell, &values); err != nil {
			return "", fmt.Errorf("failed to write roster row: %w", err)
		}
	}

	path := filepath.Join(e.outputDir, "student_report.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save roster workbook: %w", err)
	}

	return path, nil
}
