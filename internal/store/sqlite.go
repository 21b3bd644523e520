package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/fincontrol/internal/dateutils"
	"fjacquet/fincontrol/internal/fileutils"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteStore is a Store backed by an SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

var _ Store = (*SQLiteStore)(nil)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewSQLiteStore opens (creating if needed) the database at path and applies
// pending migrations.
func NewSQLiteStore(path string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := buildDSN(path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Debug("Opened SQLite store", logging.F(logging.FieldFile, path))
	return &SQLiteStore{db: db, logger: logger}, nil
}

func buildDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlitedrv.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

const categoryColumns = "id, name, color, icon, COALESCE(parent_category_id, '')"

func scanCategory(row interface{ Scan(...any) error }) (models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.ParentCategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, err
	}
	return c, nil
}

func (s *SQLiteStore) FindCategoryByName(ctx context.Context, name string) (models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE name_key = ?", nameKey(name))
	c, err := scanCategory(row)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.Category{}, fmt.Errorf("find category by name: %w", err)
	}
	return c, err
}

func (s *SQLiteStore) FindCategoryByID(ctx context.Context, id string) (models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	c, err := scanCategory(row)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.Category{}, fmt.Errorf("find category by id: %w", err)
	}
	return c, err
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	var parent any
	if category.ParentCategoryID != "" {
		parent = category.ParentCategoryID
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, name_key, color, icon, parent_category_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		category.ID, category.Name, nameKey(category.Name), category.Color, category.Icon, parent,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Category{}, ErrDuplicate
		}
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}

	s.logger.WithFields(
		logging.F(logging.FieldCategoryID, category.ID),
		logging.F(logging.FieldCategory, category.Name),
	).Debug("Category created")
	return category, nil
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.queryCategories(ctx, "SELECT "+categoryColumns+" FROM categories ORDER BY name_key")
}

func (s *SQLiteStore) ListRootCategories(ctx context.Context) ([]models.Category, error) {
	return s.queryCategories(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE parent_category_id IS NULL ORDER BY name_key")
}

func (s *SQLiteStore) ListSubcategories(ctx context.Context, parentID string) ([]models.Category, error) {
	return s.queryCategories(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE parent_category_id = ? ORDER BY name_key", parentID)
}

func (s *SQLiteStore) queryCategories(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

const extractColumns = `id, bank, reference_month, reference_year, total_income, total_expenses,
	transaction_count, processed_at`

func scanExtract(row interface{ Scan(...any) error }) (models.Extract, error) {
	var (
		e                       models.Extract
		bank                    string
		income, expenses, stamp string
	)
	err := row.Scan(&e.ID, &bank, &e.ReferenceMonth, &e.ReferenceYear, &income, &expenses,
		&e.TransactionCount, &stamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Extract{}, ErrNotFound
		}
		return models.Extract{}, err
	}

	e.Bank = models.Bank(bank)
	if e.TotalIncome, err = decimal.NewFromString(income); err != nil {
		return models.Extract{}, fmt.Errorf("decode total_income: %w", err)
	}
	if e.TotalExpenses, err = decimal.NewFromString(expenses); err != nil {
		return models.Extract{}, fmt.Errorf("decode total_expenses: %w", err)
	}
	if e.ProcessedAt, err = time.Parse(time.RFC3339Nano, stamp); err != nil {
		return models.Extract{}, fmt.Errorf("decode processed_at: %w", err)
	}
	return e, nil
}

func (s *SQLiteStore) FindExtract(ctx context.Context, bank models.Bank, month, year int) (models.Extract, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+extractColumns+" FROM extracts WHERE bank = ? AND reference_month = ? AND reference_year = ?",
		string(bank), month, year)
	return s.loadExtract(ctx, row)
}

func (s *SQLiteStore) FindExtractByID(ctx context.Context, id string) (models.Extract, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+extractColumns+" FROM extracts WHERE id = ?", id)
	return s.loadExtract(ctx, row)
}

func (s *SQLiteStore) loadExtract(ctx context.Context, row *sql.Row) (models.Extract, error) {
	e, err := scanExtract(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Extract{}, err
		}
		return models.Extract{}, fmt.Errorf("find extract: %w", err)
	}
	if e.Transactions, err = loadTransactions(ctx, s.db, e.ID); err != nil {
		return models.Extract{}, err
	}
	return e, nil
}

func (s *SQLiteStore) SaveExtract(ctx context.Context, extract models.Extract) (models.Extract, error) {
	saved := copyExtract(extract)
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Extract{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO extracts (`+extractColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		saved.ID, string(saved.Bank), saved.ReferenceMonth, saved.ReferenceYear,
		saved.TotalIncome.String(), saved.TotalExpenses.String(), saved.TransactionCount,
		saved.ProcessedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Extract{}, ErrDuplicate
		}
		return models.Extract{}, fmt.Errorf("insert extract: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transactions
		(id, extract_id, position, date, title, amount, original_description, kind, category_id, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Extract{}, fmt.Errorf("prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for i := range saved.Transactions {
		t := &saved.Transactions[i]
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		t.ExtractID = saved.ID

		if _, err := stmt.ExecContext(ctx, t.ID, t.ExtractID, i, dateutils.ToISODate(t.Date), t.Title,
			t.Amount.String(), t.OriginalDescription, string(t.Kind), categoryID(t.Category),
			t.Confidence.String()); err != nil {
			return models.Extract{}, fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Extract{}, fmt.Errorf("commit extract: %w", err)
	}

	s.logger.WithFields(
		logging.F(logging.FieldExtractID, saved.ID),
		logging.F(logging.FieldCount, len(saved.Transactions)),
	).Debug("Extract saved")
	return saved, nil
}

func categoryID(c *models.Category) any {
	if c == nil || c.ID == "" {
		return nil
	}
	return c.ID
}

func (s *SQLiteStore) FindExtractsForPeriod(ctx context.Context, year, month int) ([]models.Extract, error) {
	return s.queryExtracts(ctx,
		"SELECT "+extractColumns+" FROM extracts WHERE reference_year = ? AND reference_month = ? ORDER BY rowid",
		year, month)
}

func (s *SQLiteStore) ListExtracts(ctx context.Context, filter models.ExtractFilter) ([]models.Extract, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Bank != "" {
		clauses = append(clauses, "bank = ?")
		args = append(args, string(filter.Bank))
	}
	if filter.Year != 0 {
		clauses = append(clauses, "reference_year = ?")
		args = append(args, filter.Year)
	}
	if filter.Month != 0 {
		clauses = append(clauses, "reference_month = ?")
		args = append(args, filter.Month)
	}

	query := "SELECT " + extractColumns + " FROM extracts"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY reference_year DESC, reference_month DESC, bank ASC"

	return s.queryExtracts(ctx, query, args...)
}

func (s *SQLiteStore) queryExtracts(ctx context.Context, query string, args ...any) ([]models.Extract, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query extracts: %w", err)
	}

	extracts := make([]models.Extract, 0)
	for rows.Next() {
		e, err := scanExtract(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan extract: %w", err)
		}
		extracts = append(extracts, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range extracts {
		if extracts[i].Transactions, err = loadTransactions(ctx, s.db, extracts[i].ID); err != nil {
			return nil, err
		}
	}
	return extracts, nil
}

const transactionSelect = `SELECT t.id, t.extract_id, t.date, t.title, t.amount, t.original_description,
	t.kind, t.confidence, COALESCE(c.id, ''), COALESCE(c.name, ''), COALESCE(c.color, ''),
	COALESCE(c.icon, ''), COALESCE(c.parent_category_id, '')
	FROM transactions t LEFT JOIN categories c ON c.id = t.category_id`

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var (
		t                        models.Transaction
		date, amount, kind, conf string
		category                 models.Category
	)
	err := row.Scan(&t.ID, &t.ExtractID, &date, &t.Title, &amount, &t.OriginalDescription, &kind, &conf,
		&category.ID, &category.Name, &category.Color, &category.Icon, &category.ParentCategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrNotFound
		}
		return models.Transaction{}, err
	}

	if t.Date, err = dateutils.ParseISODate(date); err != nil {
		return models.Transaction{}, fmt.Errorf("decode date: %w", err)
	}
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return models.Transaction{}, fmt.Errorf("decode amount: %w", err)
	}
	if t.Confidence, err = decimal.NewFromString(conf); err != nil {
		return models.Transaction{}, fmt.Errorf("decode confidence: %w", err)
	}
	t.Kind = models.TransactionKind(kind)
	if category.ID != "" {
		t.Category = &category
	}
	return t, nil
}

func loadTransactions(ctx context.Context, q querier, extractID string) ([]models.Transaction, error) {
	rows, err := q.QueryContext(ctx, transactionSelect+" WHERE t.extract_id = ? ORDER BY t.position", extractID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *SQLiteStore) FindTransactionByID(ctx context.Context, id string) (models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, transactionSelect+" WHERE t.id = ?", id)
	t, err := scanTransaction(row)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.Transaction{}, fmt.Errorf("find transaction: %w", err)
	}
	return t, err
}

func (s *SQLiteStore) SaveTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET date = ?, title = ?, amount = ?, original_description = ?, kind = ?,
		 category_id = ?, confidence = ? WHERE id = ?`,
		dateutils.ToISODate(t.Date), t.Title, t.Amount.String(), t.OriginalDescription, string(t.Kind),
		categoryID(t.Category), t.Confidence.String(), t.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	if n == 0 {
		return models.Transaction{}, ErrNotFound
	}
	return s.FindTransactionByID(ctx, t.ID)
}
