package main

import (
	"context"
	"flag"
	"log"
	"os"

	"foodgram/internal/database"
	"foodgram/internal/domain/ingredient"
)

// Разовая загрузка справочника ингредиентов из CSV (название, единица
// измерения). Дубликаты не отсеиваются: файл считается доверенным.
func main() {
	filePath := flag.String("file", "./data/ingredients.csv", "path to the ingredients CSV file")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	importer := ingredient.NewImporter(ingredient.NewRepository(db))
	count, err := importer.Import(context.Background(), file)
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	log.Printf("Ингредиенты загружены: %d", count)
}
