package engine

// Noms des dimensions skincare, dans l'ordre de résolution :
// classification primaire d'abord, overrides ensuite
const (
	DimSkinType          = "skinType"
	DimAcneType          = "acneType"
	DimSensitivity       = "sensitivity"
	DimLifestyle         = "lifestyle"
	DimHyperpigmentation = "hyperpigmentation"
	DimDarkSpots         = "darkSpots"
	DimOilLevelHigh      = "oilLevelHigh"
)

func step(name, description, tip, duration string) Step {
	return Step{Name: name, Description: description, Tip: tip, Duration: duration}
}

// skincareDimensions tables statiques : (dimension, valeur) → contributions
// ordonnées. Jamais modifiées à l'exécution.
func skincareDimensions() []Dimension {
	return []Dimension{
		{
			Name: DimSkinType,
			Rules: map[string][]Contribution{
				"Oily": {
					{Bucket: BucketMorning, Steps: []Step{
						step("Oil-control foaming cleanser", "Removes excess oil without stripping", "Avoid harsh scrubs", "60s"),
						step("Niacinamide serum", "Reduces sebum + inflammation", "Best for hormonal acne", "1–2 min"),
						step("Gel moisturizer", "Hydrates without clogging pores", "", "30s"),
						step("Oil-free SPF 50", "Prevents dark spots & PIH", "Reapply outdoors", "Generous"),
					}},
					{Bucket: BucketNight, Steps: []Step{
						step("Salicylic acid cleanser", "Unclogs pores & reduces breakouts", "", "60s"),
						step("Retinoid (2–3x/week)", "Boosts cell turnover", "Alternate nights", "Pea-size"),
						step("Oil-free moisturizer", "Prevents dehydration", "", "30s"),
					}},
					{Bucket: BucketTips, Lines: []string{"Avoid coconut oil & heavy creams"}},
				},
				"Dry": {
					{Bucket: BucketMorning, Steps: []Step{
						step("Cream cleanser", "Hydrates while cleansing", "", "60s"),
						step("Hyaluronic acid serum", "Deep hydration booster", "Apply to damp skin", "1–2 min"),
						step("Ceramide moisturizer", "Repairs moisture barrier", "", "30s"),
						step("Hydrating SPF 50", "Prevents moisture loss", "", "Generous"),
					}},
					{Bucket: BucketNight, Steps: []Step{
						step("Gentle cleanser", "Non-stripping formula", "", "60s"),
						step("Peptide serum", "Supports barrier repair", "", "1–2 min"),
						step("Thick night cream", "Locks in hydration overnight", "", "30s"),
					}},
					{Bucket: BucketTips, Lines: []string{"Avoid foaming cleansers & harsh actives"}},
				},
				"Combination": {
					{Bucket: BucketMorning, Steps: []Step{
						step("Balancing cleanser", "Controls oil while hydrating", "", "60s"),
						step("Niacinamide serum", "Balances T-zone oil", "", "1–2 min"),
						step("Lightweight moisturizer", "Hydrates dry areas", "", "30s"),
						step("SPF 50", "Protects uneven tone", "", "Generous"),
					}},
					{Bucket: BucketNight, Steps: []Step{
						step("Zone-treat oily T-zone", "Apply actives only to oily areas", "", ""),
						step("Hydrate dry cheeks", "Use richer cream on dry areas", "", ""),
						step("Oil-free gel moisturizer", "Prevents congestion", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Use different moisturizers for T-zone vs cheeks"}},
				},
				"Sensitive": {
					{Bucket: BucketMorning, Steps: []Step{
						step("CICA calming cleanser", "Cleanses without irritation", "", "60s"),
						step("Ceramide barrier serum", "Strengthens the skin barrier", "", "1–2 min"),
						step("Fragrance-free moisturizer", "Soothes reactive skin", "", "30s"),
						step("Mineral sunscreen", "Gentler than chemical filters", "", "Generous"),
					}},
					{Bucket: BucketNight, Steps: []Step{
						step("Gentle milky cleanser", "Non-foaming, pH balanced", "", "60s"),
						step("Centella soothing gel", "Calms redness overnight", "", ""),
						step("Barrier-repair moisturizer", "Restores lipids while sleeping", "", "30s"),
					}},
					{Bucket: BucketTips, Lines: []string{"Patch-test every product"}},
				},
				// "Normal" passe par le fallback attrape-tout ci-dessous
			},
			Fallback: []Contribution{
				{Bucket: BucketMorning, Steps: []Step{
					step("Gentle cleanser", "", "", "60s"),
					step("Basic hydrating moisturizer", "", "", "30s"),
					step("SPF 50", "", "", "Generous"),
				}},
				{Bucket: BucketNight, Steps: []Step{
					step("Gentle cleanser", "", "", "60s"),
					step("Hydrating serum", "", "", ""),
					step("Night moisturizer", "", "", "30s"),
				}},
			},
		},
		{
			Name: DimAcneType,
			Rules: map[string][]Contribution{
				"Hormonal": {
					{Bucket: BucketNight, Steps: []Step{
						step("Azelaic acid", "Reduces inflammation & PIH", "", ""),
						step("Retinoid (alternate nights)", "Improves texture", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Hormonal acne improves with consistent routines"}},
				},
				"Cystic": {
					{Bucket: BucketNight, Steps: []Step{
						step("BHA exfoliant (2x/week)", "Decongests deep pores", "", ""),
						step("Spot treatment", "Use only on active cysts", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Avoid popping cysts — prevents deep scarring"}},
				},
				"Comedonal": {
					{Bucket: BucketNight, Steps: []Step{
						step("Gentle exfoliating toner (2x/week)", "Clears clogged pores", "", ""),
						step("Niacinamide serum", "Regulates sebum", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Avoid heavy oils & occlusives"}},
				},
				"Inflammatory": {
					{Bucket: BucketNight, Steps: []Step{
						step("Calming serum", "Reduces active redness", "", ""),
						step("Non-comedogenic moisturizer", "Repairs without clogging", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Reduce irritation — avoid scrubs"}},
				},
				// "None" : aucune contribution
			},
		},
		{
			Name: DimSensitivity,
			Rules: map[string][]Contribution{
				"High": {
					{Bucket: BucketTips, Lines: []string{
						"Patch test new products",
						"Avoid fragrance + alcohol toners",
					}},
				},
			},
		},
		{
			Name: DimLifestyle,
			Rules: map[string][]Contribution{
				"Outdoor": {
					{Bucket: BucketMorning, Steps: []Step{
						step("Sweat-proof mineral sunscreen", "Best for sensitive + acne-prone skin", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Reapply SPF every 2 hours"}},
				},
				"Indoor": {
					{Bucket: BucketTips, Lines: []string{"Use lightweight moisturizer to avoid congestion"}},
				},
			},
		},
		{
			Name: DimHyperpigmentation,
			Rules: map[string][]Contribution{
				flagSet: {
					{Bucket: BucketNight, Steps: []Step{
						step("Azelaic acid (pigmentation control)", "", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Daily sunscreen prevents dark spot darkening"}},
				},
			},
		},
		{
			Name: DimDarkSpots,
			Rules: map[string][]Contribution{
				flagSet: {
					{Bucket: BucketNight, Steps: []Step{
						step("Niacinamide + Tranexamic Acid serum", "", "", ""),
					}},
				},
			},
		},
		{
			Name: DimOilLevelHigh,
			Rules: map[string][]Contribution{
				flagSet: {
					{Bucket: BucketMorning, Steps: []Step{
						step("Mattifying moisturizer (optional)", "", "", ""),
					}},
					{Bucket: BucketTips, Lines: []string{"Blotting paper is better than over-washing"}},
				},
			},
		},
	}
}

// fallbackRoutine routine fixe du mode medical_fallback
func fallbackRoutine() []string {
	return []string{
		"Gentle foaming cleanser",
		"Niacinamide serum",
		"Oil-free moisturizer",
		"Salicylic acid (2–3x/week)",
		"SPF 50",
	}
}

// DefaultRules l'ensemble de règles de production
func DefaultRules() Rules {
	return Rules{
		Skincare: skincareDimensions(),
		Workout:  workoutDimensions(),
		Fallback: fallbackRoutine(),
	}
}

// dimensionKeys valeurs d'attribut à consulter pour chaque dimension skincare
func (a SkincareAttributes) dimensionKeys(dim string) []string {
	switch dim {
	case DimSkinType:
		return []string{a.SkinType}
	case DimAcneType:
		return []string{a.AcneType}
	case DimSensitivity:
		return []string{a.Sensitivity}
	case DimLifestyle:
		return []string{a.Lifestyle}
	case DimHyperpigmentation:
		if a.Hyperpigmentation {
			return []string{flagSet}
		}
	case DimDarkSpots:
		if a.DarkSpots {
			return []string{flagSet}
		}
	case DimOilLevelHigh:
		if a.OilLevel == "High" {
			return []string{flagSet}
		}
	}
	return nil
}
