package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"assovol/internal/database"
	"assovol/internal/domain/contact"
	"assovol/internal/domain/document"
	"assovol/internal/domain/news"
	"assovol/internal/domain/project"
	"assovol/internal/domain/stat"
)

// Seeds the local database with sample association content. With -hash it
// only prints a bcrypt hash for ADMIN_PASSWORD_HASH and exits.
func main() {
	hashPassword := flag.String("hash", "", "print a bcrypt hash for the given admin password and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(hash))
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "assovol.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&news.News{},
		&project.Project{},
		&stat.Stat{},
		&document.Document{},
		&contact.Contact{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM documents")
	db.Exec("DELETE FROM stats")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM news")

	log.Println("Creating stats...")
	stats := []stat.Stat{
		{Title: "Volontari attivi", Value: "150", Description: "Volontari che operano quotidianamente"},
		{Title: "Veicoli disponibili", Value: "12", Description: "Veicoli di soccorso e trasporto"},
		{Title: "Anni di servizio", Value: "35", Description: "Anni di attività al servizio della comunità"},
	}
	for i := range stats {
		if err := db.Create(&stats[i]).Error; err != nil {
			log.Fatal("stat seed failed:", err)
		}
	}

	log.Println("Creating news...")
	items := []news.News{
		{
			Title:    "Nuovo corso BLSD",
			Content:  "Inizierà il prossimo mese un nuovo corso di formazione BLSD aperto a tutti i cittadini.",
			Image:    "/images/news/blsd-course.jpg",
			Date:     time.Now().AddDate(0, 0, -5),
			Author:   "Segreteria",
			Category: "Eventi",
			Status:   news.StatusPublished,
		},
		{
			Title:    "Ampliamento flotta",
			Content:  "La nostra associazione ha ricevuto due nuove ambulanze grazie alle donazioni raccolte.",
			Image:    "/images/news/new-ambulances.jpg",
			Date:     time.Now().AddDate(0, 0, -10),
			Author:   "Direttivo",
			Category: "Comunicati",
			Status:   news.StatusPublished,
		},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Fatal("news seed failed:", err)
		}
	}

	log.Println("Creating projects...")
	projects := []project.Project{
		{
			Title:       "Trasporti Sanitari",
			Description: "Servizio di trasporto per visite mediche e terapie, garantendo assistenza e comfort.",
			StartDate:   time.Now().AddDate(-1, 0, 0),
			EndDate:     time.Now().AddDate(1, 0, 0),
			Category:    "health",
			Image:       "/images/projects/transport.jpg",
		},
		{
			Title:       "Corsi BLSD",
			Description: "Formazione sulle manovre di primo soccorso e uso del defibrillatore.",
			StartDate:   time.Now().AddDate(0, -6, 0),
			EndDate:     time.Now().AddDate(0, 6, 0),
			Category:    "education",
			Image:       "/images/projects/blsd.jpg",
		},
	}
	for i := range projects {
		if err := db.Create(&projects[i]).Error; err != nil {
			log.Fatal("project seed failed:", err)
		}
	}

	log.Println("Seed complete.")
	log.Println("Generate the admin credentials with: go run ./cmd/seed -hash <password>")
}
