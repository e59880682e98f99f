package database

import (
	"fmt"
	"log"

	"tutoria_backend/internal/config"
	"tutoria_backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.Port,
		cfg.SSLMode,
		cfg.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Book{},
		&model.Conversation{},
		&model.Message{},
		&model.DiagnosticRecord{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedSubjects(db)

	return db, nil
}

// seedSubjects inserts the default subject catalog on an empty database.
func seedSubjects(db *gorm.DB) {
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Subject{
		{Name: "Matemática", Description: "Álgebra, cálculo, trigonometria e geometria", Icon: "calculator", Color: "blue", AgentDescription: "Sou especialista em matemática e adoro transformar números em diversão!"},
		{Name: "Física", Description: "Mecânica, cinemática e eletromagnetismo", Icon: "atom", Color: "red", AgentDescription: "Sou apaixonado por física e pelos experimentos do dia a dia!"},
		{Name: "Química", Description: "Tabela periódica, estrutura atômica e reações", Icon: "flask", Color: "purple", AgentDescription: "Sou químico de coração e explico reações como receitas de bolo!"},
		{Name: "Biologia", Description: "Citologia, genética e fisiologia", Icon: "leaf", Color: "green", AgentDescription: "Sou biólogo e conto histórias incríveis sobre a vida!"},
	}
	for _, s := range defaults {
		db.Create(&s)
	}
}
