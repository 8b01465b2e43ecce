package store

import (
	"database/sql"

	"tiendaapi/internal/models"
)

var ProductSchema = Schema[models.Product]{
	Table: "products",
	Columns: []string{
		"name", "description", "price", "stock", "upload_date",
		"is_new", "photo", "discount", "seller",
	},
	Scan: func(row RowScanner) (models.Product, error) {
		var p models.Product
		err := row.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Stock,
			&p.UploadDate,
			&p.IsNew,
			&p.Photo,
			&p.Discount,
			&p.Seller,
		)
		return p, err
	},
	Values: func(p models.Product) []any {
		return []any{
			p.Name, p.Description, p.Price, p.Stock, p.UploadDate,
			p.IsNew, p.Photo, p.Discount, p.Seller,
		}
	},
}

var UserSchema = Schema[models.User]{
	Table:   "users",
	Columns: []string{"username", "email", "password"},
	Scan: func(row RowScanner) (models.User, error) {
		var u models.User
		err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password)
		return u, err
	},
	Values: func(u models.User) []any {
		return []any{u.Username, u.Email, u.Password}
	},
}

func NewProductTable(db *sql.DB) *Table[models.Product] {
	return NewTable(db, ProductSchema)
}

func NewUserTable(db *sql.DB) *Table[models.User] {
	return NewTable(db, UserSchema)
}
