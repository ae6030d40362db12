package engine

// Dimensions workout, dans l'ordre de résolution
const (
	DimStressLevel   = "stressLevel"
	DimExerciseLevel = "exerciseLevel"
	DimCardioBase    = "cardioBase"
	DimPCOSType      = "pcosType"
	DimSymptoms      = "symptoms"
)

// workoutDimensions tables de règles du plan d'entraînement.
// Le cardio est une dimension à fallback seul : toujours appliqué (PCOS safe).
func workoutDimensions() []Dimension {
	return []Dimension{
		{
			Name: DimStressLevel,
			Rules: map[string][]Contribution{
				"High": {
					{Bucket: BucketYoga, Lines: []string{
						"Restorative yoga (20–30 mins)",
						"Breathing exercises (Pranayama)",
						"Child's pose, legs-up-the-wall",
					}},
				},
			},
			Fallback: []Contribution{
				{Bucket: BucketYoga, Lines: []string{
					"Hatha yoga (30 mins)",
					"Sun salutations (slow pace)",
				}},
			},
		},
		{
			Name: DimExerciseLevel,
			Rules: map[string][]Contribution{
				"Sedentary": {
					{Bucket: BucketStrength, Lines: []string{
						"Bodyweight squats",
						"Wall push-ups",
						"Glute bridges",
					}},
				},
				"Light": {
					{Bucket: BucketStrength, Lines: []string{
						"Resistance band exercises",
						"Dumbbell squats",
						"Modified planks",
					}},
				},
			},
			Fallback: []Contribution{
				{Bucket: BucketStrength, Lines: []string{
					"Full-body strength training (3x/week)",
					"Lower weights, higher reps",
				}},
			},
		},
		{
			Name:  DimCardioBase,
			Rules: map[string][]Contribution{},
			Fallback: []Contribution{
				{Bucket: BucketCardio, Lines: []string{
					"Brisk walking (30 mins)",
					"Cycling (low intensity)",
					"Swimming",
				}},
			},
		},
		{
			Name: DimPCOSType,
			Rules: map[string][]Contribution{
				"Insulin-Resistant PCOS": {
					{Bucket: BucketNotes, Lines: []string{
						"Avoid HIIT too frequently",
						"Focus on consistency over intensity",
					}},
				},
			},
		},
		{
			Name: DimSymptoms,
			Rules: map[string][]Contribution{
				"Fatigue": {
					{Bucket: BucketNotes, Lines: []string{"Take rest days seriously"}},
				},
			},
		},
	}
}

// dimensionKeys valeurs à consulter pour chaque dimension workout.
// La dimension symptômes teste l'appartenance : chaque tag présent dans le
// profil est une clé consultée, dans l'ordre stocké.
func (a MedicalAttributes) dimensionKeys(dim string) []string {
	switch dim {
	case DimStressLevel:
		return []string{a.StressLevel}
	case DimExerciseLevel:
		return []string{a.ExerciseLevel}
	case DimPCOSType:
		return []string{a.PCOSType}
	case DimSymptoms:
		return a.Symptoms
	}
	return nil
}
