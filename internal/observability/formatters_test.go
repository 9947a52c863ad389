package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

func TestPrintDataSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := types.Profile{
		Name:       "Anil Kumar Ravuri",
		Title:      "Sr. IT Systems Engineer",
		Skills:     []types.Skill{{Name: "OAuth 2.0", Category: "Security & Cryptography"}},
		Experience: []types.Experience{{ID: "job1"}},
		Education:  []types.Education{{Degree: "Master's"}},
	}

	p.PrintDataSummary(profile, 3, 4)
	output := buf.String()

	assert.Contains(t, output, "Portfolio Data")
	assert.Contains(t, output, "Anil Kumar Ravuri")
	assert.Contains(t, output, "Certifications:  3")
	assert.Contains(t, output, "Blog posts:      4")
}

func TestPrintCheckResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCheckResults([]CheckResult{
		{Name: "profile contract"},
		{Name: "blog list contract", Err: fmt.Errorf("content must be empty")},
	})
	output := buf.String()

	assert.Contains(t, output, "Integrity Checks")
	assert.Contains(t, output, "ok")
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "content must be empty")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	p.printBox("Title", string(long))

	assert.Contains(t, buf.String(), "...")
}
