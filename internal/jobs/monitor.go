package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/config"
	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/engine"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/services"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

// Délai maximum pour le traitement complet d'une utilisatrice
const perUserTimeout = 30 * time.Second

// monitoredUser ligne minimale nécessaire au relevé
type monitoredUser struct {
	ID        string
	Latitude  float64
	Longitude float64
	Symptoms  []string
}

// Monitor job périodique de surveillance environnementale
type Monitor struct {
	spec    string
	weather *services.WeatherService
	engine  *engine.Engine
	cron    *cron.Cron
}

// NewMonitor construit le job sans le démarrer
func NewMonitor(cfg *config.Config, weather *services.WeatherService, eng *engine.Engine) *Monitor {
	return &Monitor{
		spec:    cfg.MonitorCronSpec,
		weather: weather,
		engine:  eng,
	}
}

// Start planifie le job. Un tick encore en cours fait sauter le suivant
func (m *Monitor) Start() error {
	m.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	if _, err := m.cron.AddFunc(m.spec, m.tick); err != nil {
		return err
	}

	m.cron.Start()
	utils.LogInfo("environmental monitoring scheduled (%s)", m.spec)
	return nil
}

// Stop arrête le planificateur et attend la fin du tick en cours
func (m *Monitor) Stop() {
	if m.cron != nil {
		<-m.cron.Stop().Done()
	}
}

func (m *Monitor) tick() {
	ctx := context.Background()

	users, err := m.loadMonitoredUsers(ctx)
	if err != nil {
		utils.LogError("environmental monitoring: load users: %v", err)
		return
	}

	utils.LogInfo("environmental monitoring: checking %d users", len(users))

	// L'échec d'une utilisatrice n'interrompt jamais les autres
	for _, user := range users {
		if err := m.monitorUser(ctx, user); err != nil {
			utils.LogError("environmental monitoring: user %s: %v", user.ID, err)
			continue
		}
		utils.LogDebug("environmental monitoring: snapshot stored for user %s", user.ID)
	}
}

// loadMonitoredUsers sélectionne les comptes avec alertes actives et position connue
func (m *Monitor) loadMonitoredUsers(ctx context.Context) ([]monitoredUser, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT u.id, u.latitude, u.longitude, COALESCE(md.symptoms, '{}')
		FROM users u
		LEFT JOIN medical_details md ON md.user_id = u.id
		WHERE u.alerts_enabled = true
		  AND u.latitude IS NOT NULL
		  AND u.longitude IS NOT NULL
		  AND u.deleted_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []monitoredUser
	for rows.Next() {
		var u monitoredUser
		if err := rows.Scan(&u.ID, &u.Latitude, &u.Longitude, pq.Array(&u.Symptoms)); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// monitorUser fait le relevé complet pour une utilisatrice et le stocke
func (m *Monitor) monitorUser(parent context.Context, user monitoredUser) error {
	ctx, cancel := context.WithTimeout(parent, perUserTimeout)
	defer cancel()

	weather, err := m.weather.GetCurrentWeather(ctx, user.Latitude, user.Longitude)
	if err != nil {
		return err
	}

	air, err := m.weather.GetAirQuality(ctx, user.Latitude, user.Longitude)
	if err != nil {
		return err
	}

	impact := m.engine.AnalyzeImpact(weather, air, user.Symptoms)
	level := engine.PollutionLevel(air.AQI, air.PM25, air.PM10)

	return m.store(ctx, user, weather, air, level, impact)
}

func (m *Monitor) store(ctx context.Context, user monitoredUser, weather model.Weather, air model.AirQuality, pollutionLevel string, impact model.PCOSImpact) error {
	impactJSON, err := json.Marshal(impact)
	if err != nil {
		return err
	}

	_, err = database.DB.Exec(ctx, `
		INSERT INTO environmental_data(
			user_id, latitude, longitude,
			city, country, temperature, humidity, condition,
			aqi, pm25, pm10, pollution_level, pcos_impact, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())`,
		user.ID, user.Latitude, user.Longitude,
		weather.City, weather.Country, weather.Temperature, weather.Humidity, weather.Condition,
		air.AQI, air.PM25, air.PM10, pollutionLevel, impactJSON,
	)
	return err
}
