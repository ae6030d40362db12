package engine

import (
	"reflect"
	"testing"

	model "github.com/MAdnan2003/PCOSync/internal/models"
)

func TestFallbackRoutine_FixedSequence(t *testing.T) {
	e := Default()

	want := []string{
		"Gentle foaming cleanser",
		"Niacinamide serum",
		"Oil-free moisturizer",
		"Salicylic acid (2–3x/week)",
		"SPF 50",
	}

	data := e.FallbackRoutine()
	if !reflect.DeepEqual(data.Routine, want) {
		t.Errorf("fallback routine = %v, want %v", data.Routine, want)
	}
	if data.Profile != nil {
		t.Error("fallback profile should be nil")
	}
}

func TestFallbackRoutine_ReturnsCopy(t *testing.T) {
	e := Default()

	first := e.FallbackRoutine()
	first.Routine[0] = "tampered"

	second := e.FallbackRoutine()
	if second.Routine[0] != "Gentle foaming cleanser" {
		t.Error("fallback routine shares state between calls")
	}
}

func TestSkincareRoutine_BucketsNeverNil(t *testing.T) {
	// Une table vide doit quand même produire des buckets vides, pas nil,
	// pour garder des tableaux JSON stables
	e := New(Rules{
		Skincare: []Dimension{},
		Workout:  []Dimension{},
		Fallback: []string{},
	}, DefaultMealPool(), nil)

	routine, err := e.SkincareRoutine(model.SkincareProfile{
		SkinType: "Oily", AcneType: "None", Sensitivity: "Low",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if routine.Morning == nil || routine.Night == nil || routine.Tips == nil {
		t.Error("buckets must be empty slices, not nil")
	}
}
