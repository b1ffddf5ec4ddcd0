package repos

import (
	"bazaar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id, username, email, password_hash, role, status, shop_name`

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id, username, email, password_hash, role, status, shop_name)
		VALUES(?,?,?,?,?,?,?)
	`, u.ID, u.Username, u.Email, u.Hash, u.Role, u.Status, u.ShopName)
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users ORDER BY email`)
	return out, err
}

// UpdateProfile applies the self-service profile fields; empty values are
// left untouched.
func (r *UserRepo) UpdateProfile(id, username, email, shopName string) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE users SET
		  username  = CASE WHEN ? != '' THEN ? ELSE username END,
		  email     = CASE WHEN ? != '' THEN ? ELSE email END,
		  shop_name = CASE WHEN ? != '' THEN ? ELSE shop_name END
		WHERE id=?
	`, username, username, email, email, shopName, shopName, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UserRepo) SetStatus(id, status string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE users SET status=? WHERE id=?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UserRepo) Delete(id string) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
