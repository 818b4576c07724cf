package main

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"shoplist/internal/config"
	"shoplist/internal/handlers"
	"shoplist/internal/repositories"
	"shoplist/internal/services"
)

type application struct {
	errorLog          *log.Logger
	infoLog           *log.Logger
	cfg               config.Config
	itemHandler       *handlers.ItemHandler
	itemRepo          *repositories.ItemRepository
	sharedListHandler *handlers.SharedListHandler
	sharedListRepo    *repositories.SharedListRepository
	db                *sql.DB
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	itemRepo := repositories.ItemRepository{DB: db}
	sharedListRepo := repositories.NewSharedListRepository()

	// Services
	itemService := &services.ItemService{ItemRepo: &itemRepo}
	sharedListService := &services.SharedListService{SharedListRepo: sharedListRepo}

	// Handlers
	itemHandler := &handlers.ItemHandler{Service: itemService}
	sharedListHandler := &handlers.SharedListHandler{Service: sharedListService}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		cfg:               cfg,
		itemHandler:       itemHandler,
		itemRepo:          &itemRepo,
		sharedListHandler: sharedListHandler,
		sharedListRepo:    sharedListRepo,
		db:                db,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
