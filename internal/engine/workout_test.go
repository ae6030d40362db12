package engine

import (
	"reflect"
	"testing"
)

func TestWorkoutPlan_HighStressGetsRestorativeYoga(t *testing.T) {
	e := Default()

	m := validMedical()
	m.StressLevel = "High"

	plan, err := e.WorkoutPlan(m)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Yoga) == 0 || plan.Yoga[0] != "Restorative yoga (20–30 mins)" {
		t.Errorf("yoga = %v, want restorative first", plan.Yoga)
	}
}

func TestWorkoutPlan_LowStressGetsHatha(t *testing.T) {
	e := Default()

	m := validMedical()
	m.StressLevel = "Low"

	plan, err := e.WorkoutPlan(m)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	want := []string{"Hatha yoga (30 mins)", "Sun salutations (slow pace)"}
	if !reflect.DeepEqual(plan.Yoga, want) {
		t.Errorf("yoga = %v, want %v", plan.Yoga, want)
	}
}

func TestWorkoutPlan_StrengthByExerciseLevel(t *testing.T) {
	e := Default()

	cases := []struct {
		level string
		first string
	}{
		{"Sedentary", "Bodyweight squats"},
		{"Light", "Resistance band exercises"},
		{"Moderate", "Full-body strength training (3x/week)"},
		{"Intense", "Full-body strength training (3x/week)"},
	}

	for _, tc := range cases {
		m := validMedical()
		m.ExerciseLevel = tc.level

		plan, err := e.WorkoutPlan(m)
		if err != nil {
			t.Fatalf("%s: %v", tc.level, err)
		}
		if len(plan.Strength) == 0 || plan.Strength[0] != tc.first {
			t.Errorf("%s: strength = %v, want first %q", tc.level, plan.Strength, tc.first)
		}
	}
}

func TestWorkoutPlan_CardioAlwaysPresent(t *testing.T) {
	e := Default()

	plan, err := e.WorkoutPlan(validMedical())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	want := []string{"Brisk walking (30 mins)", "Cycling (low intensity)", "Swimming"}
	if !reflect.DeepEqual(plan.Cardio, want) {
		t.Errorf("cardio = %v, want %v", plan.Cardio, want)
	}
}

func TestWorkoutPlan_InsulinResistantNotes(t *testing.T) {
	e := Default()

	m := validMedical()
	m.PCOSType = "Insulin-Resistant PCOS"
	m.Symptoms = []string{}

	plan, err := e.WorkoutPlan(m)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	want := []string{"Avoid HIIT too frequently", "Focus on consistency over intensity"}
	if !reflect.DeepEqual(plan.Notes, want) {
		t.Errorf("notes = %v, want %v", plan.Notes, want)
	}
}

func TestWorkoutPlan_FatigueSymptomAddsRestNote(t *testing.T) {
	e := Default()

	m := validMedical()
	m.PCOSType = "Lean PCOS"
	m.Symptoms = []string{"Hair loss", "Fatigue"}

	plan, err := e.WorkoutPlan(m)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !reflect.DeepEqual(plan.Notes, []string{"Take rest days seriously"}) {
		t.Errorf("notes = %v, want rest day note only", plan.Notes)
	}
}

func TestWorkoutPlan_UnknownSymptomsIgnored(t *testing.T) {
	e := Default()

	m := validMedical()
	m.PCOSType = "Lean PCOS"
	m.Symptoms = []string{"Mystery symptom"}

	plan, err := e.WorkoutPlan(m)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Notes) != 0 {
		t.Errorf("notes = %v, want empty", plan.Notes)
	}
}
