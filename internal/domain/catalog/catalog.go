package catalog

type Book struct {
	ID              int64   `json:"id" gorm:"primaryKey"`
	Title           string  `json:"title" gorm:"size:255;not null"`
	Author          string  `json:"author" gorm:"size:255;not null"`
	Description     string  `json:"description" gorm:"type:text"`
	Category        string  `json:"category" gorm:"size:64;index"`
	Genre           string  `json:"genre" gorm:"size:255"`
	BuyPrice        float64 `json:"buy_price"`
	RentPrice       float64 `json:"rent_price"`
	Image           string  `json:"image" gorm:"size:255"`
	ISBN            string  `json:"isbn" gorm:"size:32"`
	Pages           int     `json:"pages"`
	PublicationYear int     `json:"publication_year"`
}

type Game struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"size:255"`
	BuyPrice    float64 `json:"buy_price"`
	RentPrice   float64 `json:"rent_price"`
	Image       string  `json:"image" gorm:"size:255"`
}
