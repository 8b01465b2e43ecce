package resource

import (
	"strings"

	"tiendaapi/internal/models"
)

var ProductEntity = Entity[models.Product]{
	Name:     "product",
	Validate: ValidateProduct,
	ID:       func(p models.Product) int { return p.ID },
	SetID:    func(p *models.Product, id int) { p.ID = id },
}

var UserEntity = Entity[models.User]{
	Name:     "user",
	Validate: ValidateUser,
	ID:       func(u models.User) int { return u.ID },
	SetID:    func(u *models.User, id int) { u.ID = id },
}

func NewProductService(st Store[models.Product]) *Service[models.Product] {
	return NewService(st, ProductEntity)
}

func NewUserService(st Store[models.User]) *Service[models.User] {
	return NewService(st, UserEntity)
}

// ValidateProduct checks presence of required fields and sign of amounts.
// Discount is not checked against price.
func ValidateProduct(p models.Product) error {
	switch {
	case blank(p.Name):
		return invalidf("name is required")
	case blank(p.Description):
		return invalidf("description is required")
	case p.Price < 0:
		return invalidf("price must not be negative")
	case p.Stock < 0:
		return invalidf("stock must not be negative")
	case p.UploadDate.IsZero():
		return invalidf("upload_date is required")
	case blank(p.Photo):
		return invalidf("photo is required")
	case blank(p.Seller):
		return invalidf("seller is required")
	}
	return nil
}

func ValidateUser(u models.User) error {
	switch {
	case blank(u.Username):
		return invalidf("username is required")
	case blank(u.Email):
		return invalidf("email is required")
	case blank(u.Password):
		return invalidf("password is required")
	}
	return nil
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
