package db

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/upb-facilities/cleaning-records/internal/auth"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

const (
	SeedAdminEmail       = "admin@upb.edu.co"
	SeedAdminPassword    = "admin123"
	SeedOperatorPassword = "operator123"
)

type seedUser struct {
	Email    string
	Name     string
	Password string
	Role     string
}

var seedUsers = []seedUser{
	{SeedAdminEmail, "Administrador Sistema", SeedAdminPassword, models.RoleAdmin},
	{"operario1@upb.edu.co", "María González", SeedOperatorPassword, models.RoleOperator},
	{"operario2@upb.edu.co", "Carlos Ramírez", SeedOperatorPassword, models.RoleOperator},
}

var seedLocations = []models.Location{
	// Bloque 9 - baños
	{Building: "Bloque 9", Floor: "Piso 1", Room: "Baño Hombres 1", Type: models.LocationBathroom, Description: "Baño principal hombres piso 1"},
	{Building: "Bloque 9", Floor: "Piso 1", Room: "Baño Mujeres 1", Type: models.LocationBathroom, Description: "Baño principal mujeres piso 1"},
	{Building: "Bloque 9", Floor: "Piso 2", Room: "Baño Hombres 2", Type: models.LocationBathroom, Description: "Baño principal hombres piso 2"},
	{Building: "Bloque 9", Floor: "Piso 2", Room: "Baño Mujeres 2", Type: models.LocationBathroom, Description: "Baño principal mujeres piso 2"},

	// Bloque 9 - aulas
	{Building: "Bloque 9", Floor: "Piso 1", Room: "Aula 101", Type: models.LocationClassroom, Description: "Aula de clases"},
	{Building: "Bloque 9", Floor: "Piso 1", Room: "Aula 102", Type: models.LocationClassroom, Description: "Aula de clases"},
	{Building: "Bloque 9", Floor: "Piso 1", Room: "Aula 103", Type: models.LocationClassroom, Description: "Aula de clases"},
	{Building: "Bloque 9", Floor: "Piso 2", Room: "Aula 201", Type: models.LocationClassroom, Description: "Aula de clases"},
	{Building: "Bloque 9", Floor: "Piso 2", Room: "Aula 202", Type: models.LocationClassroom, Description: "Aula de clases"},
	{Building: "Bloque 9", Floor: "Piso 2", Room: "Lab Sistemas", Type: models.LocationClassroom, Description: "Laboratorio de sistemas"},

	// Bloque 10
	{Building: "Bloque 10", Floor: "Piso 1", Room: "Oficina Coordinación", Type: models.LocationOffice, Description: "Oficina coordinación académica"},
	{Building: "Bloque 10", Floor: "Piso 1", Room: "Sala Profesores", Type: models.LocationOffice, Description: "Sala de profesores"},
	{Building: "Bloque 10", Floor: "Piso 1", Room: "Pasillo Principal", Type: models.LocationHallway, Description: "Pasillo principal de acceso"},

	// Biblioteca
	{Building: "Biblioteca", Floor: "Piso 1", Room: "Sala General", Type: models.LocationCommonArea, Description: "Sala de estudio general"},
	{Building: "Biblioteca", Floor: "Piso 1", Room: "Baños Biblioteca", Type: models.LocationBathroom, Description: "Baños de la biblioteca"},
}

var seedCleaningTypes = []models.CleaningType{
	{Name: "Limpieza General", Description: "Limpieza básica General: barrido, trapeado, vaciado de basuras"},
	{Name: "Limpieza Profunda", Description: "Limpieza completa: incluye desinfección, limpieza de superficies y ventanas"},
	{Name: "Sanitización", Description: "Desinfección especializada con productos sanitizantes"},
	{Name: "Mantenimiento Preventivo", Description: "Limpieza de filtros, rejillas y elementos de difícil acceso"},
	{Name: "Limpieza de Emergencia", Description: "Limpieza urgente por derrames o situaciones especiales"},
}

var seedProducts = []models.Product{
	{Name: "Detergente Multiusos", Brand: "Fabuloso", Category: "Detergente", Description: "Limpiador multiusos para superficies generales"},
	{Name: "Desinfectante Antibacterial", Brand: "Lysol", Category: "Desinfectante", Description: "Desinfectante que elimina 99.9% de bacterias y virus"},
	{Name: "Limpiador de Vidrios", Brand: "Windex", Category: "Limpiador especializado", Description: "Limpiador especial para ventanas y superficies de vidrio"},
	{Name: "Limpiador de Pisos", Brand: "Pinesol", Category: "Limpiador", Description: "Limpiador y desinfectante para pisos"},
	{Name: "Desengrasante Industrial", Brand: "Easy-Off", Category: "Desengrasante", Description: "Desengrasante para cocinas y áreas con grasa"},
	{Name: "Limpiador de Baños", Brand: "Clorox", Category: "Limpiador especializado", Description: "Limpiador específico para sanitarios y baños"},
	{Name: "Alcohol Antiséptico 70%", Brand: "Genérico", Category: "Antiséptico", Description: "Alcohol isopropílico para desinfección rápida"},
	{Name: "Jabón Líquido Antibacterial", Brand: "Protex", Category: "Jabón", Description: "Jabón líquido con propiedades antibacteriales"},
}

// Seed inserts the demo users and the facility catalog. Existing rows are
// left untouched, so it is safe to run repeatedly. Sample records are only
// added to an empty record table.
func Seed(ctx context.Context, db *gorm.DB, log logrus.FieldLogger, now time.Time) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// --------------------------------------------------
		// Users
		// --------------------------------------------------
		users := make(map[string]*models.User, len(seedUsers))
		for _, su := range seedUsers {
			hash, err := auth.HashPassword(su.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", su.Email, err)
			}
			u := models.User{
				Name:         su.Name,
				Email:        su.Email,
				PasswordHash: hash,
				Role:         su.Role,
				Active:       true,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).Omit(clause.Associations).Create(&u).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", su.Email, err)
			}

			var stored models.User
			if err := tx.Where("email = ?", su.Email).First(&stored).Error; err != nil {
				return fmt.Errorf("load user %s: %w", su.Email, err)
			}
			users[su.Email] = &stored
		}
		log.WithField("count", len(seedUsers)).Info("users seeded")

		// --------------------------------------------------
		// Catalog
		// --------------------------------------------------
		for i := range seedLocations {
			loc := seedLocations[i]
			loc.Active = true
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "building"}, {Name: "floor"}, {Name: "room"}},
				DoNothing: true,
			}).Create(&loc).Error; err != nil {
				return fmt.Errorf("seed location %s/%s: %w", loc.Building, loc.Room, err)
			}
		}
		log.WithField("count", len(seedLocations)).Info("locations seeded")

		for i := range seedCleaningTypes {
			ct := seedCleaningTypes[i]
			ct.Active = true
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&ct).Error; err != nil {
				return fmt.Errorf("seed cleaning type %s: %w", ct.Name, err)
			}
		}
		log.WithField("count", len(seedCleaningTypes)).Info("cleaning types seeded")

		for i := range seedProducts {
			p := seedProducts[i]
			p.Active = true
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&p).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", p.Name, err)
			}
		}
		log.WithField("count", len(seedProducts)).Info("products seeded")

		// --------------------------------------------------
		// Sample records
		// --------------------------------------------------
		var existing int64
		if err := tx.Model(&models.CleaningRecord{}).Count(&existing).Error; err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		if existing > 0 {
			log.WithField("count", existing).Info("records already present, skipping samples")
			return nil
		}

		var loc models.Location
		if err := tx.Order("id ASC").First(&loc).Error; err != nil {
			return fmt.Errorf("load first location: %w", err)
		}
		var ct models.CleaningType
		if err := tx.Order("id ASC").First(&ct).Error; err != nil {
			return fmt.Errorf("load first cleaning type: %w", err)
		}
		var product models.Product
		if err := tx.Order("id ASC").First(&product).Error; err != nil {
			return fmt.Errorf("load first product: %w", err)
		}

		op1 := users["operario1@upb.edu.co"]
		op2 := users["operario2@upb.edu.co"]

		samples := []struct {
			owner    *models.User
			product  *uint
			ago      time.Duration
			duration int
			notes    string
		}{
			{op1, &product.ID, 2 * time.Hour, 15, "Limpieza completada sin novedades"},
			{op2, &product.ID, 4 * time.Hour, 20, "Se requiere más producto desinfectante"},
			{op1, nil, 6 * time.Hour, 10, "Limpieza básica de rutina"},
		}

		for _, s := range samples {
			created := now.Add(-s.ago).UTC()
			end := created.Add(time.Duration(s.duration) * time.Minute)
			duration := s.duration
			notes := s.notes

			rec := models.CleaningRecord{
				UserID:         s.owner.ID,
				LocationID:     loc.ID,
				CleaningTypeID: ct.ID,
				ProductID:      s.product,
				EndTime:        &end,
				Duration:       &duration,
				Observations:   &notes,
				CreatedAt:      created,
			}
			if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
				return fmt.Errorf("seed sample record: %w", err)
			}
		}
		log.WithField("count", len(samples)).Info("sample records seeded")

		return nil
	})
}
