package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/config"
	"github.com/fadebook/fadebook-api/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Barber{},
		&models.Service{},
		&models.BarberService{},
		&models.Appointment{},
		&models.AuditLog{},
	)
}

// Seed loads the demo dataset on an empty database. It keys off the
// customer table, so restarts against an already seeded database do
// nothing.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		haircut := models.Service{Name: "Haircut", Price: 20.00}
		beard := models.Service{Name: "Haircut and Beard", Price: 15.00}
		shampoo := models.Service{Name: "Shampoo", Price: 18.00}
		theWorks := models.Service{Name: "TheWorks", Price: 25.00}
		for _, s := range []*models.Service{&haircut, &beard, &shampoo, &theWorks} {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}

		dean := models.Barber{Username: "dean-the-machine", Name: "Dean", Specialty: "Beards", ContactInfo: "123"}
		victor := models.Barber{Username: "v-for-victor", Name: "Victor", Specialty: "Styled Hair Cuts", ContactInfo: "456"}
		charles := models.Barber{Username: "charles-xavier", Name: "Charles", Specialty: "The Works", ContactInfo: "789"}
		for _, b := range []*models.Barber{&dean, &victor, &charles} {
			if err := tx.Create(b).Error; err != nil {
				return err
			}
		}

		muhid := models.Customer{Username: "m-kurbonov", Name: "Muhiddin", ContactInfo: "1456"}
		if err := tx.Create(&muhid).Error; err != nil {
			return err
		}

		links := []models.BarberService{
			{BarberID: dean.ID, ServiceID: haircut.ID},
			{BarberID: dean.ID, ServiceID: beard.ID},
			{BarberID: victor.ID, ServiceID: beard.ID},
			{BarberID: charles.ID, ServiceID: haircut.ID},
			{BarberID: charles.ID, ServiceID: beard.ID},
			{BarberID: charles.ID, ServiceID: shampoo.ID},
			{BarberID: charles.ID, ServiceID: theWorks.ID},
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		appointment := models.Appointment{
			AppointmentDate: time.Now().UTC().AddDate(1, 0, 0),
			Status:          "Pending",
			CustomerID:      muhid.ID,
			BarberID:        dean.ID,
			ServiceID:       beard.ID,
		}
		return tx.Create(&appointment).Error
	})
}
