package main

import (
	"log"

	"aacorner/internal/config"
	"aacorner/internal/database"
	"aacorner/internal/domain"
	"aacorner/internal/domain/catalog"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old catalog data; users, carts and history are kept.
	log.Println("Cleaning old catalog data...")
	db.Exec("DELETE FROM books")
	db.Exec("DELETE FROM games")

	// ================== USERS ==================
	log.Println("Creating admin user...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@aacorner.local",
		PasswordHash: string(adminHash),
	}
	if err := db.Where("username = ?", admin.Username).FirstOrCreate(&admin).Error; err != nil {
		log.Fatal("Admin user failed:", err)
	}

	// ================== BOOKS ==================
	log.Println("Seeding books...")

	books := []catalog.Book{
		// Manga
		{Title: "One Piece Vol. 1", Author: "Eiichiro Oda", Description: "...", Category: "Manga", Genre: "Adventure,Shounen", BuyPrice: 9.99, RentPrice: 2.99, Image: "onepiece.jpg", ISBN: "978-1421506333", Pages: 200, PublicationYear: 1999},
		{Title: "Attack on Titan Vol. 1", Author: "Hajime Isayama", Description: "Humanity fights for survival against giant titans.", Category: "Manga", Genre: "Action,Drama", BuyPrice: 10.99, RentPrice: 3.49, Image: "aot1.jpeg", ISBN: "978-1612620244", Pages: 192, PublicationYear: 2012},
		{Title: "Demon Slayer Vol. 1", Author: "Koyoharu Gotouge", Description: "...", Category: "Manga", Genre: "Action,Supernatural", BuyPrice: 9.99, RentPrice: 2.99, Image: "demonslayer.jpg", ISBN: "978-1974700523", Pages: 192, PublicationYear: 2018},

		// Light Novels
		{Title: "Sword Art Online Vol. 1", Author: "Reki Kawahara", Description: "Trapped in a virtual MMORPG where death is real.", Category: "Light Novel", Genre: "Sci-Fi,Romance", BuyPrice: 14.99, RentPrice: 4.99, Image: "sao.jpg", ISBN: "978-0316371247", Pages: 240, PublicationYear: 2014},
		{Title: "Re:Zero Vol. 1", Author: "Tappei Nagatsuki", Description: "Subaru discovers he can return from death in another world.", Category: "Light Novel", Genre: "Fantasy,Psychological", BuyPrice: 14.99, RentPrice: 4.99, Image: "rezero.jpg", ISBN: "978-0316315302", Pages: 256, PublicationYear: 2016},
		{Title: "Overlord Vol. 1", Author: "Kugane Maruyama", Description: "A player becomes trapped as his undead character in a game world.", Category: "Light Novel", Genre: "Fantasy,Dark", BuyPrice: 14.99, RentPrice: 4.99, Image: "overlord.jpg", ISBN: "978-0316272247", Pages: 272, PublicationYear: 2016},

		// Traditional Novels
		{Title: "Dune", Author: "Frank Herbert", Description: "Epic sci-fi saga on the desert planet Arrakis.", Category: "Novel", Genre: "Science Fiction", BuyPrice: 16.99, RentPrice: 5.99, Image: "dune.jpg", ISBN: "978-0441172719", Pages: 688, PublicationYear: 1965},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Description: "Bilbo Baggins' unexpected journey to reclaim a treasure.", Category: "Novel", Genre: "Fantasy", BuyPrice: 14.99, RentPrice: 4.99, Image: "hobbit.jpg", ISBN: "978-0547928227", Pages: 300, PublicationYear: 1937},
		{Title: "1984", Author: "George Orwell", Description: "Dystopian masterpiece about surveillance and control.", Category: "Novel", Genre: "Dystopian,Classic", BuyPrice: 13.99, RentPrice: 4.49, Image: "1984.jpg", ISBN: "978-0452284234", Pages: 328, PublicationYear: 1949},

		// Technical Books
		{Title: "Clean Code", Author: "Robert C. Martin", Description: "A handbook of agile software craftsmanship.", Category: "Technical", Genre: "Programming", BuyPrice: 49.99, RentPrice: 12.99, Image: "cleancode.jpg", ISBN: "978-0132350884", Pages: 464, PublicationYear: 2008},
		{Title: "Design Patterns", Author: "Gang of Four", Description: "Elements of reusable object-oriented software.", Category: "Technical", Genre: "Programming", BuyPrice: 54.99, RentPrice: 14.99, Image: "designpatterns.jpg", ISBN: "978-0201633612", Pages: 395, PublicationYear: 1994},

		// Non-Fiction
		{Title: "Sapiens", Author: "Yuval Noah Harari", Description: "A brief history of humankind and our species' journey.", Category: "Non-Fiction", Genre: "History,Science", BuyPrice: 18.99, RentPrice: 6.99, Image: "sapiens.jpg", ISBN: "978-0062316097", Pages: 443, PublicationYear: 2014},
		{Title: "Atomic Habits", Author: "James Clear", Description: "Tiny changes that create remarkable results.", Category: "Non-Fiction", Genre: "Self-Help", BuyPrice: 16.99, RentPrice: 5.99, Image: "atomichabits.jpg", ISBN: "978-0735211292", Pages: 320, PublicationYear: 2018},
	}
	if err := db.Create(&books).Error; err != nil {
		log.Fatal("Books failed:", err)
	}

	// ================== GAMES ==================
	log.Println("Seeding games...")

	games := []catalog.Game{
		{Title: "Baldur's Gate 3", Description: "Epic CRPG adventure with deep choices and co-op.", Category: "RPG,Co-op", BuyPrice: 59.99, RentPrice: 9.99, Image: "Baldurs_Gate_3.jpeg"},
		{Title: "Alan Wake 2", Description: "Psychological horror thriller with cinematic storytelling.", Category: "Horror,Narrative", BuyPrice: 49.99, RentPrice: 7.99, Image: "Alan_Wake_2.jpeg"},
		{Title: "Cyberpunk 2077", Description: "Open-world RPG in a neon-soaked metropolis.", Category: "RPG,Open-World", BuyPrice: 29.99, RentPrice: 6.99, Image: "cyberpunk.jpeg"},
		{Title: "Red Dead Redemption 2", Description: "Open-world western with cinematic storytelling.", Category: "Open-World,Action", BuyPrice: 39.99, RentPrice: 8.99, Image: "red.jpeg"},
		{Title: "The Witcher 3: Wild Hunt", Description: "Open-world RPG full of monsters and choices.", Category: "RPG,Open-World", BuyPrice: 29.99, RentPrice: 6.49, Image: "witcher.jpeg"},
		{Title: "Disco Elysium", Description: "A groundbreaking RPG focused on choice and investigation.", Category: "Indie,RPG", BuyPrice: 19.99, RentPrice: 4.49, Image: "Disco.jpeg"},
		{Title: "Silent Hill 2 (Remake)", Description: "Reimagined survival-horror classic.", Category: "Horror,Survival", BuyPrice: 39.99, RentPrice: 8.49, Image: "hill.jpeg"},
		{Title: "God of War (2018)", Description: "A mythic reimagining: father, son, and monsters.", Category: "Action,Adventure", BuyPrice: 29.99, RentPrice: 6.99, Image: "god.jpeg"},
	}
	if err := db.Create(&games).Error; err != nil {
		log.Fatal("Games failed:", err)
	}

	log.Printf("Done: %d books, %d games", len(books), len(games))
}
