package main

import (
	"fmt"
	"log"
	"os"

	"eventdesk/internal/database"
	"eventdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "eventdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM tickets")
	db.Exec("DELETE FROM ticket_types")
	db.Exec("DELETE FROM enrollments")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM users")

	log.Println("Creating ticket types...")
	ticketTypes := []domain.TicketType{
		{Name: "Online", Price: 10000, IsRemote: true, IncludesHotel: false},
		{Name: "In person", Price: 25000, IsRemote: false, IncludesHotel: false},
		{Name: "In person + Hotel", Price: 60000, IsRemote: false, IncludesHotel: true},
	}
	for i := range ticketTypes {
		db.Create(&ticketTypes[i])
	}

	log.Println("Creating hotels and rooms...")
	hotels := []domain.Hotel{
		{Name: "Grand Resort", Image: "https://example.com/grand-resort.jpg"},
		{Name: "Palace Hotel", Image: "https://example.com/palace-hotel.jpg"},
	}
	for i := range hotels {
		db.Create(&hotels[i])
		for n := 1; n <= 10; n++ {
			capacity := 2
			if n%3 == 0 {
				capacity = 3
			}
			db.Create(&domain.Room{
				Name:     fmt.Sprintf("%d0%d", i+1, n),
				Capacity: capacity,
				HotelID:  hotels[i].ID,
			})
		}
	}

	log.Println("Creating demo users...")
	emails := []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	for i, email := range emails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
		user := domain.User{Email: email, PasswordHash: string(hash)}
		db.Create(&user)

		enrollment := domain.Enrollment{
			UserID:  user.ID,
			Name:    fmt.Sprintf("Demo User %d", i+1),
			CPF:     fmt.Sprintf("0000000000%d", i+1),
			Phone:   fmt.Sprintf("+55 11 9000-000%d", i+1),
			Address: fmt.Sprintf("%d Demo Street", i+1),
		}
		db.Create(&enrollment)

		// Only the first two users get the hotel-inclusive paid ticket.
		ticketType := ticketTypes[2]
		status := domain.TicketPaid
		if i == 2 {
			ticketType = ticketTypes[0]
			status = domain.TicketReserved
		}
		db.Create(&domain.Ticket{
			TicketTypeID: ticketType.ID,
			EnrollmentID: enrollment.ID,
			Status:       status,
		})
	}

	log.Println("Seed completed: users alice/bob (bookable), carol (remote reserved ticket), password secret123")
}
