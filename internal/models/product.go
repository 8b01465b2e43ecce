package models

// Product is a catalogue item offered by a seller.
type Product struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	UploadDate  Date    `json:"upload_date" db:"upload_date"`
	IsNew       bool    `json:"is_new" db:"is_new"`
	Photo       string  `json:"photo" db:"photo"`
	Discount    float64 `json:"discount" db:"discount"`
	Seller      string  `json:"seller" db:"seller"`
}
