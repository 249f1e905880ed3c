package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateGenerate(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewCertificateGenerator(dir)
	require.NoError(t, err)

	path, err := gen.Generate(7, 3, CertificateData{
		StudentName:    "Sam Student",
		CourseTitle:    "Algorithms",
		InstructorName: "Jordan Teacher",
		IssuedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "certificate_7_3.pdf"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestCertificateGenerateOverwrites(t *testing.T) {
	gen, err := NewCertificateGenerator(t.TempDir())
	require.NoError(t, err)

	data := CertificateData{
		StudentName:    "Sam Student",
		CourseTitle:    "Algorithms",
		InstructorName: "Jordan Teacher",
		IssuedAt:       time.Now(),
	}

	first, err := gen.Generate(1, 1, data)
	require.NoError(t, err)
	second, err := gen.Generate(1, 1, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewCertificateGeneratorCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "certs")
	_, err := NewCertificateGenerator(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
