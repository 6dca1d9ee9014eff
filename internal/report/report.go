// Package report renders habit analytics as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"ID", 12, "R"},
	{"Habit", 52, "L"},
	{"Frequency", 26, "L"},
	{"This period", 28, "C"},
	{"Current", 22, "R"},
	{"Longest", 22, "R"},
	{"Total", 18, "R"},
}

// Write renders the report for habits as of now.
func Write(w io.Writer, habits []models.Habit, now time.Time) error {
	summaries := analytics.Summarize(habits, now)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetTitle("Habit report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Habit Report: %s", now.Format(constants.DateFormat)))
	pdf.Ln(12)

	if len(summaries) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No habits found.")
		pdf.Ln(8)
		return output(pdf, w)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, s := range summaries {
		status := "-"
		if s.CompletedForPeriod {
			status = "done"
		}
		unit := s.Habit.Frequency.PeriodUnit()
		cells := []string{
			fmt.Sprintf("%d", s.Habit.ID),
			s.Habit.Name,
			s.Habit.Frequency.Title(),
			status,
			fmt.Sprintf("%d %s", s.Current, unit),
			fmt.Sprintf("%d %s", s.Longest, unit),
			fmt.Sprintf("%d", s.TotalCompletions),
		}
		for i, c := range columns {
			pdf.CellFormat(c.width, 7, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	if best, streak, found := analytics.LongestStreakAcrossHabits(habits); found {
		pdf.Cell(0, 8, fmt.Sprintf("Longest streak: '%s' (%s, %d %s)", best.Name, best.Frequency, streak, best.Frequency.PeriodUnit()))
		pdf.Ln(8)
	}
	daily := len(analytics.HabitsByFrequency(habits, models.FrequencyDaily))
	weekly := len(analytics.HabitsByFrequency(habits, models.FrequencyWeekly))
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%d daily, %d weekly", daily, weekly))
	pdf.Ln(8)

	return output(pdf, w)
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// WriteFile renders the report to path.
func WriteFile(path string, habits []models.Habit, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, habits, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
