package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedRetailers(db)
	seedCategories(db)
	seedProducts(db)

	log.Println("Seeding completed successfully!")
}

func seedRetailers(db *sql.DB) {
	retailers := []struct {
		Name        string
		Salesperson string
		Team        string
		Email       string
	}{
		{"Sharma General Store", "Ravi Kumar", "North", "ravi.kumar@fieldsales.in"},
		{"Gupta Kirana", "Ravi Kumar", "North", "ravi.kumar@fieldsales.in"},
		{"Patel Provision", "Meena Joshi", "West", "meena.joshi@fieldsales.in"},
		{"Lakshmi Stores", "Arun Nair", "South", "arun.nair@fieldsales.in"},
		{"New Bengal Mart", "Priya Das", "East", "priya.das@fieldsales.in"},
		{"City Supermart", "Meena Joshi", "West", "meena.joshi@fieldsales.in"},
	}

	fmt.Println("Seeding Retailers...")
	for i, r := range retailers {
		_, err := db.Exec(`
			INSERT INTO retailers (name, salesperson, team, email, position)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO UPDATE SET salesperson = EXCLUDED.salesperson, team = EXCLUDED.team, email = EXCLUDED.email, position = EXCLUDED.position;
		`, r.Name, r.Salesperson, r.Team, r.Email, i)
		if err != nil {
			log.Printf("Failed to seed retailer %s: %v", r.Name, err)
		}
	}
}

func seedCategories(db *sql.DB) {
	categories := []string{
		"Snacks",
		"Beverages",
		"Dairy",
		"Personal Care",
		"Household",
		"Staples",
	}

	fmt.Println("Seeding Categories...")
	for i, name := range categories {
		_, err := db.Exec(`
			INSERT INTO categories (name, position)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET position = EXCLUDED.position;
		`, name, i)
		if err != nil {
			log.Printf("Failed to seed category %s: %v", name, err)
		}
	}
}

func seedProducts(db *sql.DB) {
	products := []struct {
		Name       string
		Category   string
		PriceMinor int64
	}{
		{"Masala Chips 50g", "Snacks", 2000},
		{"Salted Peanuts 100g", "Snacks", 3500},
		{"Bhujia 200g", "Snacks", 5500},
		{"Cola 300ml", "Beverages", 1500},
		{"Mango Juice 1L", "Beverages", 9900},
		{"Soda 600ml", "Beverages", 2500},
		{"Toned Milk 500ml", "Dairy", 2700},
		{"Curd 400g", "Dairy", 3500},
		{"Paneer 200g", "Dairy", 8500},
		{"Bath Soap 125g", "Personal Care", 4000},
		{"Shampoo Sachet", "Personal Care", 300},
		{"Dish Bar 250g", "Household", 2200},
		{"Detergent 1kg", "Household", 11500},
		{"Wheat Flour 5kg", "Staples", 24500},
		{"Basmati Rice 1kg", "Staples", 13000},
	}

	fmt.Println("Seeding Products...")
	for i, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (name, category, price_minor, position)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT DO NOTHING;
		`, p.Name, p.Category, p.PriceMinor, i)
		if err != nil {
			log.Printf("Failed to seed product %s: %v", p.Name, err)
		}
	}
}
