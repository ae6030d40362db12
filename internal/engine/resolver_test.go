package engine

import (
	"reflect"
	"testing"

	model "github.com/MAdnan2003/PCOSync/internal/models"
)

func testProfile() model.SkincareProfile {
	return model.SkincareProfile{
		SkinType:    "Oily",
		AcneType:    "Hormonal",
		Sensitivity: "High",
	}
}

func TestSkincareRoutine_Deterministic(t *testing.T) {
	e := Default()

	profiles := []model.SkincareProfile{
		{SkinType: "Oily", AcneType: "Hormonal", Sensitivity: "High"},
		{SkinType: "Dry", AcneType: "None", Sensitivity: "Low", Lifestyle: "Outdoor"},
		{SkinType: "Combination", AcneType: "Cystic", Sensitivity: "Medium", OilLevel: "High"},
		{SkinType: "Sensitive", AcneType: "Inflammatory", Sensitivity: "High", Hyperpigmentation: true, DarkSpots: true},
		{SkinType: "Normal", AcneType: "Comedonal", Sensitivity: "Low", Lifestyle: "Indoor"},
	}

	for _, p := range profiles {
		first, err := e.SkincareRoutine(p)
		if err != nil {
			t.Fatalf("resolve %s/%s: %v", p.SkinType, p.AcneType, err)
		}
		second, err := e.SkincareRoutine(p)
		if err != nil {
			t.Fatalf("resolve %s/%s (second): %v", p.SkinType, p.AcneType, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("skinType %s: two resolutions differ", p.SkinType)
		}
	}
}

func TestSkincareRoutine_OilyMorningStartsWithOilControlCleanser(t *testing.T) {
	e := Default()

	// Faire varier tous les autres attributs ne doit jamais déloger la
	// première étape du matin
	variants := []model.SkincareProfile{
		{SkinType: "Oily", AcneType: "Hormonal", Sensitivity: "High"},
		{SkinType: "Oily", AcneType: "Cystic", Sensitivity: "Low", OilLevel: "High"},
		{SkinType: "Oily", AcneType: "None", Sensitivity: "Medium", Lifestyle: "Outdoor", Hyperpigmentation: true, DarkSpots: true},
	}

	for _, p := range variants {
		routine, err := e.SkincareRoutine(p)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if len(routine.Morning) == 0 {
			t.Fatal("morning bucket is empty")
		}
		if got := routine.Morning[0].Name; got != "Oil-control foaming cleanser" {
			t.Errorf("morning[0] = %q, want Oil-control foaming cleanser", got)
		}
	}
}

func TestSkincareRoutine_HighSensitivityAlwaysGetsFragranceTip(t *testing.T) {
	e := Default()

	const want = "Avoid fragrance + alcohol toners"

	for _, skinType := range []string{"Oily", "Dry", "Combination", "Normal", "Sensitive"} {
		for _, acneType := range []string{"Hormonal", "Inflammatory", "Comedonal", "Cystic", "None"} {
			routine, err := e.SkincareRoutine(model.SkincareProfile{
				SkinType:    skinType,
				AcneType:    acneType,
				Sensitivity: "High",
			})
			if err != nil {
				t.Fatalf("resolve %s/%s: %v", skinType, acneType, err)
			}
			found := false
			for _, tip := range routine.Tips {
				if tip == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s/%s: tips %v missing fragrance avoidance tip", skinType, acneType, routine.Tips)
			}
		}
	}
}

func TestResolve_UnknownValueContributesNothing(t *testing.T) {
	dims := []Dimension{
		{
			Name: "color",
			Rules: map[string][]Contribution{
				"red": {{Bucket: "out", Lines: []string{"is red"}}},
			},
		},
	}

	b := resolve(dims, func(string) []string { return []string{"chartreuse"} })

	if got := b.Lines("out"); len(got) != 0 {
		t.Errorf("unknown value contributed %v, want nothing", got)
	}
}

func TestResolve_AppendOnlyAcrossDimensions(t *testing.T) {
	dims := []Dimension{
		{Name: "a", Rules: map[string][]Contribution{"x": {{Bucket: "out", Lines: []string{"first"}}}}},
		{Name: "b", Rules: map[string][]Contribution{"x": {{Bucket: "out", Lines: []string{"second"}}}}},
	}

	b := resolve(dims, func(string) []string { return []string{"x"} })

	want := []string{"first", "second"}
	if got := b.Lines("out"); !reflect.DeepEqual(got, want) {
		t.Errorf("bucket order = %v, want %v", got, want)
	}
}

func TestResolve_FallbackAppliesWhenNoRuleMatches(t *testing.T) {
	dims := []Dimension{
		{
			Name:     "skin",
			Rules:    map[string][]Contribution{"Oily": {{Bucket: "out", Lines: []string{"oily"}}}},
			Fallback: []Contribution{{Bucket: "out", Lines: []string{"default"}}},
		},
	}

	b := resolve(dims, func(string) []string { return []string{"Normal"} })

	if got := b.Lines("out"); !reflect.DeepEqual(got, []string{"default"}) {
		t.Errorf("fallback not applied: %v", got)
	}
}

func TestSkincareRoutine_NormalSkinGetsCatchAllRoutine(t *testing.T) {
	e := Default()

	routine, err := e.SkincareRoutine(model.SkincareProfile{
		SkinType: "Normal", AcneType: "None", Sensitivity: "Low",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if len(routine.Morning) != 3 {
		t.Errorf("morning has %d steps, want 3 (catch-all)", len(routine.Morning))
	}
	if routine.Morning[0].Name != "Gentle cleanser" {
		t.Errorf("morning[0] = %q, want Gentle cleanser", routine.Morning[0].Name)
	}
}

func TestSkincareRoutine_ProfileEchoUsesNormalizedDefaults(t *testing.T) {
	e := Default()

	routine, err := e.SkincareRoutine(testProfile())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if routine.Profile == nil {
		t.Fatal("profile echo is nil")
	}
	if routine.Profile.OilLevel != DefaultOilLevel {
		t.Errorf("oilLevel = %q, want default %q", routine.Profile.OilLevel, DefaultOilLevel)
	}
	if routine.Profile.Lifestyle != DefaultLifestyle {
		t.Errorf("lifestyle = %q, want default %q", routine.Profile.Lifestyle, DefaultLifestyle)
	}
}
