package engine

// Step une étape structurée d'une routine
type Step struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
	Duration    string `json:"duration"`
}

// Noms de buckets (skincare puis workout)
const (
	BucketMorning  = "morning"
	BucketNight    = "night"
	BucketTips     = "tips"
	BucketYoga     = "yoga"
	BucketStrength = "strength"
	BucketCardio   = "cardio"
	BucketNotes    = "notes"
)

// Clé utilisée pour les dimensions booléennes (flag présent)
const flagSet = "true"

// Contribution ce qu'une valeur d'attribut ajoute à un bucket.
// Steps pour les buckets structurés, Lines pour les buckets de texte brut.
type Contribution struct {
	Bucket string
	Steps  []Step
	Lines  []string
}

// Dimension une table de règles pour un attribut donné.
// Rules associe chaque valeur connue à ses contributions ; une valeur absente
// de la table ne contribue rien. Fallback, s'il est défini, s'applique quand
// aucune valeur n'a trouvé de règle (comportement attrape-tout du skinType
// inconnu/Normal, ou branche "else" des règles workout).
type Dimension struct {
	Name     string
	Rules    map[string][]Contribution
	Fallback []Contribution
}

// Buckets accumulateur du résolveur. Ajouts uniquement, jamais de réordonnancement.
type Buckets struct {
	steps map[string][]Step
	lines map[string][]string
}

func newBuckets() *Buckets {
	return &Buckets{
		steps: map[string][]Step{},
		lines: map[string][]string{},
	}
}

func (b *Buckets) apply(contribs []Contribution) {
	for _, c := range contribs {
		if len(c.Steps) > 0 {
			b.steps[c.Bucket] = append(b.steps[c.Bucket], c.Steps...)
		}
		if len(c.Lines) > 0 {
			b.lines[c.Bucket] = append(b.lines[c.Bucket], c.Lines...)
		}
	}
}

// Steps contenu structuré d'un bucket (jamais nil)
func (b *Buckets) Steps(bucket string) []Step {
	if s := b.steps[bucket]; s != nil {
		return s
	}
	return []Step{}
}

// Lines contenu texte d'un bucket (jamais nil)
func (b *Buckets) Lines(bucket string) []string {
	if l := b.lines[bucket]; l != nil {
		return l
	}
	return []string{}
}

// resolve replie les attributs sur les tables, dans l'ordre fixe des
// dimensions. keys renvoie la ou les valeurs de l'attribut pour une dimension
// (plusieurs valeurs pour l'appartenance à un ensemble de symptômes).
func resolve(dims []Dimension, keys func(dim string) []string) *Buckets {
	b := newBuckets()
	for _, d := range dims {
		matched := false
		for _, k := range keys(d.Name) {
			contribs, ok := d.Rules[k]
			if !ok {
				// valeur hors énumération : ignorée silencieusement
				continue
			}
			matched = true
			b.apply(contribs)
		}
		if !matched && d.Fallback != nil {
			b.apply(d.Fallback)
		}
	}
	return b
}
