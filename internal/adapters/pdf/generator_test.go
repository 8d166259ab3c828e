package pdf_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/csg33k/employee-roster/internal/adapters/pdf"
	"github.com/csg33k/employee-roster/internal/domain"
)

func roster(n int) []domain.Employee {
	out := make([]domain.Employee, n)
	for i := range out {
		out[i] = domain.Employee{
			ID:          fmt.Sprint(i + 1),
			Name:        fmt.Sprintf("Tomás %02d", i),
			DateOfBirth: "1990-01-31",
			Gender:      domain.GenderMale,
			Email:       fmt.Sprintf("t%02d@example.com", i),
			Address:     "9 Juniper Street",
		}
	}
	return out
}

func TestGenerateRoster(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	for _, n := range []int{0, 3, 60} {
		var buf bytes.Buffer
		if err := pdf.GenerateRoster(roster(n), at, &buf); err != nil {
			t.Fatalf("%d employees: %v", n, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("%d employees: output is not a PDF", n)
		}
	}
}

// 60 rows do not fit on one landscape page.
func TestGenerateRoster_Paginates(t *testing.T) {
	var one, many bytes.Buffer
	at := time.Now()
	if err := pdf.GenerateRoster(roster(3), at, &one); err != nil {
		t.Fatal(err)
	}
	if err := pdf.GenerateRoster(roster(60), at, &many); err != nil {
		t.Fatal(err)
	}
	if got := bytes.Count(one.Bytes(), []byte("/Type /Page\n")); got != 1 {
		t.Errorf("3 rows: %d pages, want 1", got)
	}
	if got := bytes.Count(many.Bytes(), []byte("/Type /Page\n")); got < 2 {
		t.Errorf("60 rows: %d pages, want at least 2", got)
	}
}
