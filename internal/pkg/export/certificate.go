package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// CertificateData carries everything rendered onto a completion certificate.
type CertificateData struct {
	StudentName    string
	CourseTitle    string
	InstructorName string
	IssuedAt       time.Time
}

// CertificateGenerator renders course completion certificates as PDF files
// under a caller-supplied output directory.
type CertificateGenerator struct {
	outputDir string
}

// NewCertificateGenerator creates a generator writing into outputDir,
// creating the directory if needed.
func NewCertificateGenerator(outputDir string) (*CertificateGenerator, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create certificate directory: %w", err)
	}
	return &CertificateGenerator{outputDir: outputDir}, nil
}

// Generate renders the certificate and returns the path of the written PDF.
// Concurrent calls for the same student/course pair overwrite each other.
func (g *CertificateGenerator) Generate(studentID, courseID int64, data CertificateData) (string, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Course Completion Certificate", false)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Border frame
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(30, 60, 120)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(11, 11, pageW-22, pageH-22, "D")

	pdf.SetY(40)
	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetTextColor(30, 60, 120)
	pdf.CellFormat(0, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12, data.StudentName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, data.CourseTitle, "", 1, "C", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 7, fmt.Sprintf("Instructor: %s", data.InstructorName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, data.IssuedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")

	if pdf.Err() {
		return "", fmt.Errorf("failed to render certificate: %v", pdf.Error())
	}

	path := filepath.Join(g.outputDir, fmt.Sprintf("certificate_%d_%d.pdf", studentID, courseID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write certificate: %w", err)
	}

	return path, nil
}
