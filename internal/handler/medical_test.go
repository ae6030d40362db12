package handler

import (
	"testing"
)

func validMedicalRequest() MedicalDetailsRequest {
	return MedicalDetailsRequest{
		Weight:        65,
		Height:        165,
		PCOSType:      "Insulin-resistant",
		Symptoms:      []string{"Fatigue"},
		ExerciseLevel: "Moderate",
		DietType:      "Balanced",
		StressLevel:   "Medium",
		SmokingStatus: "Non-smoker",
	}
}

func TestMedicalDetailsRequest_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MedicalDetailsRequest)
		wantErr string
	}{
		{"valid", func(r *MedicalDetailsRequest) {}, ""},
		{"missing weight", func(r *MedicalDetailsRequest) { r.Weight = 0 }, "weight: is required"},
		{"missing height", func(r *MedicalDetailsRequest) { r.Height = 0 }, "height: is required"},
		{"missing pcosType", func(r *MedicalDetailsRequest) { r.PCOSType = "" }, "pcosType: is required"},
		{"missing exerciseLevel", func(r *MedicalDetailsRequest) { r.ExerciseLevel = "" }, "exerciseLevel: is required"},
		{"invalid exerciseLevel", func(r *MedicalDetailsRequest) { r.ExerciseLevel = "Extreme" },
			"exerciseLevel: must be one of Sedentary, Light, Moderate, Intense"},
		{"missing dietType", func(r *MedicalDetailsRequest) { r.DietType = "" }, "dietType: is required"},
		{"missing stressLevel", func(r *MedicalDetailsRequest) { r.StressLevel = "" }, "stressLevel: is required"},
		{"invalid stressLevel", func(r *MedicalDetailsRequest) { r.StressLevel = "Extreme" },
			"stressLevel: must be one of Low, Medium, High"},
		{"missing smokingStatus", func(r *MedicalDetailsRequest) { r.SmokingStatus = "" }, "smokingStatus: is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMedicalRequest()
			tt.mutate(&req)

			_, err := req.medicalDetails()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("medicalDetails() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("medicalDetails() error = nil, want %q", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("medicalDetails() error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMedicalDetailsRequest_NilSymptomsBecomesEmpty(t *testing.T) {
	req := validMedicalRequest()
	req.Symptoms = nil

	m, err := req.medicalDetails()
	if err != nil {
		t.Fatalf("medicalDetails() error = %v", err)
	}
	if m.Symptoms == nil || len(m.Symptoms) != 0 {
		t.Errorf("Symptoms = %v, want empty slice", m.Symptoms)
	}
}
