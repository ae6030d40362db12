// Package engine contient le moteur de résolution des recommandations :
// normalisation des profils, tables de règles déclaratives, résolution par
// fold et assemblage des plans (skincare, workout, diet).
//
// Tout est pur et déterministe, sauf le tirage aléatoire des repas qui passe
// par une RandSource injectée.
package engine

import "math/rand"

// RandSource source d'aléa injectable (les tests fournissent une séquence fixe)
type RandSource interface {
	Intn(n int) int
}

type defaultRand struct{}

func (defaultRand) Intn(n int) int { return rand.Intn(n) }

// Rules l'ensemble des tables de règles consultées par le résolveur
type Rules struct {
	Skincare []Dimension
	Workout  []Dimension
	// Fallback routine fixe renvoyée en mode medical_fallback
	Fallback []string
}

// Engine moteur construit avec ses tables, son pool de repas et sa source d'aléa.
// Aucun état mutable : une même entrée produit toujours la même sortie
// (hors tirage des repas).
type Engine struct {
	rules Rules
	meals MealPool
	rnd   RandSource
}

// New construit un moteur avec des tables explicites (utilisé par les tests
// pour substituer des fixtures)
func New(rules Rules, meals MealPool, rnd RandSource) *Engine {
	if rnd == nil {
		rnd = defaultRand{}
	}
	return &Engine{rules: rules, meals: meals, rnd: rnd}
}

// Default moteur de production : règles et pool de repas intégrés, math/rand
func Default() *Engine {
	return New(DefaultRules(), DefaultMealPool(), defaultRand{})
}
