package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

var _ ports.LinkRepository = (*LinkRepository)(nil)

type LinkRepository struct {
	db *Connection
}

func NewLinkRepository(db *Connection) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	const query = `
        INSERT INTO links (name, description, url, icon, "group")
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	created := *link
	err := r.db.QueryRow(ctx, query,
		link.Name, link.Description, link.URL, link.Icon, link.Group,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert link: %w", err)
	}

	return &created, nil
}

func (r *LinkRepository) FindByID(ctx context.Context, id int64) (*domain.Link, error) {
	const query = `
        SELECT id, name, description, url, icon, "group"
        FROM links
        WHERE id = $1
    `

	var l domain.Link
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Description, &l.URL, &l.Icon, &l.Group,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find link: %w", err)
	}
	return &l, nil
}

func (r *LinkRepository) List(ctx context.Context) ([]domain.Link, error) {
	const query = `
        SELECT id, name, description, url, icon, "group"
        FROM links
        ORDER BY id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0)
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.URL, &l.Icon, &l.Group); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

func (r *LinkRepository) Update(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	const query = `
        UPDATE links
        SET name = $2, description = $3, url = $4, icon = $5, "group" = $6
        WHERE id = $1
    `

	tag, err := r.db.Exec(ctx, query,
		link.ID, link.Name, link.Description, link.URL, link.Icon, link.Group,
	)
	if err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrLinkNotFound
	}

	updated := *link
	return &updated, nil
}

func (r *LinkRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}
