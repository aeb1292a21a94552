package store

import (
	"context"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

func (s *SQL) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.SelectContext(ctx, &products, "SELECT * FROM products ORDER BY id")
	return products, err
}

func (s *SQL) AddProduct(ctx context.Context, product *model.Product) error {
	query := s.rebind("INSERT INTO products (name, price, description) VALUES (?, ?, ?)")

	if s.db.DriverName() == "pgx" {
		return s.db.QueryRowContext(ctx, query+" RETURNING id",
			product.Name, product.Price, product.Description).Scan(&product.ID)
	}

	res, err := s.db.ExecContext(ctx, query, product.Name, product.Price, product.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	product.ID = id
	return nil
}

func (s *SQL) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM products WHERE id = ?"), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
