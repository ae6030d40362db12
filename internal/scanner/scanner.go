package scanner

import (
	"database/sql"
	"encoding/json"

	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/lib/pq"
)

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, city, country sql.NullString
	var age sql.NullInt64

	err := scanner.Scan(
		&user.ID, &user.Name, &user.Email, &avatar, &age,
		&city, &country, &user.Latitude, &user.Longitude, &user.AlertsEnabled,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.Avatar = utils.NullStringToString(avatar)
	user.City = utils.NullStringToString(city)
	user.Country = utils.NullStringToString(country)
	user.Age = utils.NullInt64ToInt(age)

	return &user, nil
}

// ScanMedicalDetails scanne une ligne SQL vers un MedicalDetails
// Le tableau symptoms est lu via pq.Array
func ScanMedicalDetails(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.MedicalDetails, error) {
	var m model.MedicalDetails
	var dietType, smokingStatus sql.NullString

	err := scanner.Scan(
		&m.ID, &m.UserID, &m.Weight, &m.Height, &m.PCOSType,
		pq.Array(&m.Symptoms), &m.ExerciseLevel, &dietType, &m.StressLevel,
		&smokingStatus, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.DietType = utils.NullStringToString(dietType)
	m.SmokingStatus = utils.NullStringToString(smokingStatus)
	if m.Symptoms == nil {
		m.Symptoms = []string{}
	}

	return &m, nil
}

// ScanSkincareProfile scanne une ligne SQL vers un SkincareProfile
func ScanSkincareProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.SkincareProfile, error) {
	var p model.SkincareProfile
	var oilLevel, lifestyle, sunscreen sql.NullString

	err := scanner.Scan(
		&p.ID, &p.UserID, &p.SkinType, &p.AcneType, &p.Sensitivity,
		&oilLevel, &p.Hyperpigmentation, &p.DarkSpots, &lifestyle,
		&sunscreen, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.OilLevel = utils.NullStringToString(oilLevel)
	p.Lifestyle = utils.NullStringToString(lifestyle)
	p.SunscreenPreference = utils.NullStringToString(sunscreen)

	return &p, nil
}

// ScanVirtualTryOn scanne une ligne SQL vers un VirtualTryOn
// Les tags sont un text[], la réponse API un jsonb brut
func ScanVirtualTryOn(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.VirtualTryOn, error) {
	var t model.VirtualTryOn
	var notes, apiRequestID, errorMessage sql.NullString
	var processingTime sql.NullInt64
	var apiResponse []byte

	err := scanner.Scan(
		&t.ID, &t.UserID, &t.UserPhotoURL, &t.OutfitPhotoURL, &t.ResultPhotoURL,
		&t.IsFavorite, &notes, pq.Array(&t.Tags), &apiRequestID,
		&t.ProcessingStatus, &errorMessage, &processingTime, &apiResponse,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Notes = utils.NullStringToString(notes)
	t.APIRequestID = utils.NullStringToString(apiRequestID)
	t.ErrorMessage = utils.NullStringToString(errorMessage)
	t.ProcessingTimeMs = utils.NullInt64ToInt(processingTime)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if len(apiResponse) > 0 {
		t.APIResponse = json.RawMessage(apiResponse)
	}

	return &t, nil
}

// ScanWorkoutLog scanne une ligne SQL vers un WorkoutLog
func ScanWorkoutLog(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.WorkoutLog, error) {
	var l model.WorkoutLog

	err := scanner.Scan(
		&l.ID, &l.UserID, &l.Date, &l.Type, &l.Duration,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// ScanGeneratedPlan scanne une ligne SQL vers un GeneratedPlan
// La semaine et les préférences sont stockées en jsonb
func ScanGeneratedPlan(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.GeneratedPlan, error) {
	var p model.GeneratedPlan
	var week, prefs []byte

	err := scanner.Scan(&p.ID, &p.UserID, &prefs, &week, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &p.Preferences); err != nil {
			return nil, err
		}
	}
	if len(week) > 0 {
		if err := json.Unmarshal(week, &p.Week); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// ScanDietEntry scanne une ligne SQL vers un DietEntry
func ScanDietEntry(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.DietEntry, error) {
	var e model.DietEntry
	var description sql.NullString

	err := scanner.Scan(
		&e.ID, &e.UserID, &e.MealType, &description, &e.Calories, &e.EntryDate,
	)
	if err != nil {
		return nil, err
	}

	e.Description = utils.NullStringToString(description)

	return &e, nil
}

// ScanBodyProfile scanne une ligne SQL vers un BodyProfile
func ScanBodyProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.BodyProfile, error) {
	var p model.BodyProfile
	var bodyShape sql.NullString

	err := scanner.Scan(
		&p.ID, &p.UserID, &p.Measurements.Bust, &p.Measurements.Waist,
		&p.Measurements.Hips, &bodyShape, pq.Array(&p.Preferences),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.BodyShape = utils.NullStringToString(bodyShape)
	if p.Preferences == nil {
		p.Preferences = []string{}
	}

	return &p, nil
}

// ScanEnvironmentalData scanne une ligne SQL vers un EnvironmentalData
func ScanEnvironmentalData(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.EnvironmentalData, error) {
	var d model.EnvironmentalData
	var impact []byte

	err := scanner.Scan(
		&d.ID, &d.UserID, &d.Latitude, &d.Longitude,
		&d.Weather.City, &d.Weather.Country, &d.Weather.Temperature,
		&d.Weather.Humidity, &d.Weather.Condition,
		&d.AirQuality.AQI, &d.AirQuality.PM25, &d.AirQuality.PM10,
		&d.PollutionLevel, &impact, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(impact) > 0 {
		if err := json.Unmarshal(impact, &d.Impact); err != nil {
			return nil, err
		}
	}

	return &d, nil
}
