package program

import (
	"math"
	"reflect"
	"testing"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

func float(v float64) *float64 { return &v }

func TestCalculateStats_Fresh(t *testing.T) {
	days := Generate(DefaultConfig(defaultStart()))
	s := CalculateStats(days)

	if s.Bootcamp.Total <= 0 {
		t.Errorf("expected bootcamp hours, got %v", s.Bootcamp.Total)
	}
	if s.Bootcamp.Percentage != 0 || s.Bootcamp.Completed != 0 {
		t.Errorf("no lesson done, got %+v", s.Bootcamp)
	}
	if s.Sport.Total != 34 {
		t.Errorf("Sport.Total = %d, want 34", s.Sport.Total)
	}
	if s.TransferPlus.Total != 0 {
		t.Errorf("TransferPlus.Total = %v, want 0", s.TransferPlus.Total)
	}
}

func TestCalculateStats_AllSportDone(t *testing.T) {
	days := Generate(DefaultConfig(defaultStart()))
	for i := range days {
		if days[i].Sport.IsApplicable() {
			days[i].SportDone = true
		}
	}
	if got := CalculateStats(days).Sport.Percentage; got != 100 {
		t.Errorf("Sport.Percentage = %v, want 100", got)
	}
}

func TestCalculateStats_Mixed(t *testing.T) {
	days := []models.ProgramDay{
		{Bootcamp: models.Scheduled("Ders 4 (6 saat)"), BootcampDone: true, Sport: models.Scheduled(SportCardio), SportDone: true, TransferPlusValue: float(2)},
		{Bootcamp: models.Scheduled("Ders 5 (2 saat)"), Sport: models.Scheduled(SportStrength), TransferPlusValue: float(0)},
		{Bootcamp: models.Holiday(), BootcampDone: true, Sport: models.NotApplicable(), SportDone: true, TransferPlusValue: float(-3)},
		{Bootcamp: models.NoActivity(), Sport: models.NoActivity(), TransferPlusValue: nil},
		{Bootcamp: models.Scheduled("Hafta3 Ödev"), BootcampDone: true, TransferPlusValue: float(1.5)},
	}

	s := CalculateStats(days)
	if s.Bootcamp.Total != 8 || s.Bootcamp.Completed != 6 || s.Bootcamp.Percentage != 75 {
		t.Errorf("Bootcamp = %+v", s.Bootcamp)
	}
	if s.Sport.Total != 2 || s.Sport.Completed != 1 || s.Sport.Percentage != 50 {
		t.Errorf("Sport = %+v", s.Sport)
	}
	if s.TransferPlus.Total != 3.5 {
		t.Errorf("TransferPlus.Total = %v, want 3.5", s.TransferPlus.Total)
	}
}

func TestCalculateStats_OrderIndependentAndIdempotent(t *testing.T) {
	days := Generate(DefaultConfig(defaultStart()))
	for i := 0; i < len(days); i += 3 {
		days[i].BootcampDone = days[i].Bootcamp.IsApplicable()
		days[i].SportDone = days[i].Sport.IsApplicable()
		days[i].TransferPlusValue = float(float64(i) / 4)
	}

	first := CalculateStats(days)
	if second := CalculateStats(days); !reflect.DeepEqual(first, second) {
		t.Errorf("stats differ between calls: %+v vs %+v", first, second)
	}

	reversed := make([]models.ProgramDay, len(days))
	for i, d := range days {
		reversed[len(days)-1-i] = d
	}
	r := CalculateStats(reversed)
	if r.Sport != first.Sport ||
		math.Abs(r.Bootcamp.Total-first.Bootcamp.Total) > 1e-9 ||
		math.Abs(r.Bootcamp.Completed-first.Bootcamp.Completed) > 1e-9 ||
		math.Abs(r.TransferPlus.Total-first.TransferPlus.Total) > 1e-9 {
		t.Errorf("stats depend on order: %+v vs %+v", r, first)
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	if s := CalculateStats(nil); s != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}
}
