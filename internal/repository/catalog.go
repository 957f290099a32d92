package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"shopsight/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// productColumns is the display projection used by the plain search path
	productColumns = `
			article_id,
			COALESCE(prod_name, '') AS name,
			COALESCE(product_type_name, '') AS type,
			COALESCE(colour_group_name, '') AS color,
			COALESCE(department_name, '') AS department,
			image_url`

	// candidateColumns adds the columns the relevance scorer needs
	candidateColumns = productColumns + `,
			COALESCE(product_group_name, '') AS product_group,
			COALESCE(garment_group_name, '') AS garment_group,
			COALESCE(index_name, '') AS brand_label,
			COALESCE(perceived_colour_master_name, '') AS perceived_color_master,
			COALESCE(perceived_colour_value_name, '') AS perceived_color_value`
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// CatalogRepository reads product articles from a SQL catalog table
type CatalogRepository struct {
	db    *sqlx.DB
	table string
}

// NewCatalogRepository connects to the catalog database.
// The DSN goes to the driver untouched: lib/pq takes either a URL or a key=value string.
func NewCatalogRepository(driver, dsn, table string, maxConn, maxIdleConn int) (*CatalogRepository, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	repo, err := NewCatalogRepositoryFromDB(db, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewCatalogRepositoryFromDB wraps an open connection pool
func NewCatalogRepositoryFromDB(db *sqlx.DB, table string) (*CatalogRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid articles table name %q", table)
	}
	return &CatalogRepository{db: db, table: table}, nil
}

// Close closes the database connection
func (r *CatalogRepository) Close() error {
	return r.db.Close()
}

// Ping checks that the storage engine is reachable
func (r *CatalogRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return model.NewStorageError("ping", err)
	}
	return nil
}

// SearchProducts returns one window of display rows matching the predicate
func (r *CatalogRepository) SearchProducts(ctx context.Context, p model.Predicate, limit, offset int) ([]model.Product, error) {
	whereClause, args := buildWhereClause(p)
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY article_id
		LIMIT ? OFFSET ?
	`, productColumns, r.table, whereClause))
	args = append(args, limit, offset)

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, model.NewStorageError("search products", err)
	}
	return products, nil
}

// CountProducts returns the exact number of rows matching the predicate
func (r *CatalogRepository) CountProducts(ctx context.Context, p model.Predicate) (int, error) {
	whereClause, args := buildWhereClause(p)
	query := r.db.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.table, whereClause))

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, model.NewStorageError("count products", err)
	}
	return total, nil
}

// FetchCandidates returns up to limit scoring rows from the start of the match set
func (r *CatalogRepository) FetchCandidates(ctx context.Context, p model.Predicate, limit int) ([]model.Candidate, error) {
	whereClause, args := buildWhereClause(p)
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY article_id
		LIMIT ?
	`, candidateColumns, r.table, whereClause))
	args = append(args, limit)

	candidates := []model.Candidate{}
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, model.NewStorageError("fetch candidates", err)
	}
	return candidates, nil
}

// ArticleIDs returns every matching article id without a row cap
func (r *CatalogRepository) ArticleIDs(ctx context.Context, p model.Predicate) ([]int64, error) {
	whereClause, args := buildWhereClause(p)
	query := r.db.Rebind(fmt.Sprintf("SELECT article_id FROM %s WHERE %s ORDER BY article_id", r.table, whereClause))

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, model.NewStorageError("list article ids", err)
	}
	return ids, nil
}

// GetProduct retrieves a single article by id, or model.ErrNotFound
func (r *CatalogRepository) GetProduct(ctx context.Context, articleID int64) (*model.Product, error) {
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE article_id = ?
	`, productColumns, r.table))

	var product model.Product
	err := r.db.GetContext(ctx, &product, query, articleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %d: %w", articleID, model.ErrNotFound)
		}
		return nil, model.NewStorageError("get product", err)
	}
	return &product, nil
}
