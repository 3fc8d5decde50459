package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; tests substitute
// a mock through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type goalRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

type withdrawalRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Goals() repository.GoalRepository {
	return &goalRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) Withdrawals() repository.WithdrawalRepository {
	return &withdrawalRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            available_balance NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (available_balance >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS goals (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            target_amount NUMERIC(14,2) NOT NULL CHECK (target_amount > 0),
            current_amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (current_amount >= 0),
            deadline DATE,
            description TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL DEFAULT 'digital',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id SERIAL PRIMARY KEY,
            goal_id BIGINT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
            amount NUMERIC(14,2) NOT NULL CHECK (amount > 0),
            method TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS withdrawals (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            goal_id BIGINT REFERENCES goals(id) ON DELETE SET NULL,
            source TEXT NOT NULL DEFAULT 'pooled',
            amount NUMERIC(14,2) NOT NULL CHECK (amount > 0),
            method TEXT NOT NULL,
            account_number TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            message TEXT NOT NULL,
            category TEXT NOT NULL,
            read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_goal ON transactions(goal_id, transaction_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_withdrawals_user ON withdrawals(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_withdrawals_pending ON withdrawals(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Money columns travel as text so decimal values survive the round trip exactly.
func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return d, nil
}

// --- UserRepository implementation ---

const userColumns = `id, name, email, password_hash, available_balance::text, created_at, updated_at`

func scanUser(row rowScanner) (*model.User, error) {
	var (
		u   model.User
		bal string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &bal, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if u.AvailableBalance, err = parseAmount(bal); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
                   RETURNING ` + userColumns
	u, err := scanUser(r.storage.pool.QueryRow(ctx, query, name, email, passwordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	u, err := scanUser(r.storage.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	u, err := scanUser(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.creditBalanceTx(ctx, tx, userID, amount)
	})
}

func (r *userRepository) SubtractBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.debitBalanceTx(ctx, tx, userID, amount)
	})
}

func (s *Storage) creditBalanceTx(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) error {
	const query = `UPDATE users SET available_balance = available_balance + $2::numeric, updated_at = NOW() WHERE id=$1`
	tag, err := tx.Exec(ctx, query, userID, amount.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// debitBalanceTx locks the user row, verifies sufficiency, and subtracts.
func (s *Storage) debitBalanceTx(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) error {
	const selectQuery = `SELECT available_balance::text FROM users WHERE id=$1 FOR UPDATE`
	var raw string
	if err := tx.QueryRow(ctx, selectQuery, userID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	balance, err := parseAmount(raw)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return domainErrors.ErrInsufficientBalance
	}

	const updateQuery = `UPDATE users SET available_balance = $2::numeric, updated_at = NOW() WHERE id=$1`
	_, err = tx.Exec(ctx, updateQuery, userID, balance.Sub(amount).String())
	return err
}

// --- GoalRepository implementation ---

const goalColumns = `id, user_id, name, target_amount::text, current_amount::text, deadline, description, type, created_at, updated_at`

func scanGoal(row rowScanner) (*model.Goal, error) {
	var (
		g               model.Goal
		target, current string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.Name, &target, &current, &g.Deadline, &g.Description, &g.Type, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if g.TargetAmount, err = parseAmount(target); err != nil {
		return nil, err
	}
	if g.CurrentAmount, err = parseAmount(current); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	const query = `INSERT INTO goals (user_id, name, target_amount, deadline, description, type)
                   VALUES ($1, $2, $3::numeric, $4, $5, $6)
                   RETURNING ` + goalColumns
	return scanGoal(r.storage.pool.QueryRow(ctx, query,
		goal.UserID, goal.Name, goal.TargetAmount.String(), goal.Deadline, goal.Description, goal.Type))
}

func (r *goalRepository) GetByID(ctx context.Context, id, userID int64) (*model.Goal, error) {
	const query = `SELECT ` + goalColumns + ` FROM goals WHERE id=$1 AND user_id=$2`
	g, err := scanGoal(r.storage.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *goalRepository) ListByUser(ctx context.Context, userID int64) ([]model.Goal, error) {
	const query = `SELECT ` + goalColumns + ` FROM goals WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) error {
	const query = `UPDATE goals SET name=$3, target_amount=$4::numeric, deadline=$5, description=$6, type=$7, updated_at=NOW()
                   WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query,
		goal.ID, goal.UserID, goal.Name, goal.TargetAmount.String(), goal.Deadline, goal.Description, goal.Type)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM goals WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *goalRepository) SumCurrent(ctx context.Context, userID int64) (decimal.Decimal, decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(current_amount), 0)::text, COALESCE(SUM(target_amount), 0)::text
                   FROM goals WHERE user_id=$1`
	var rawCurrent, rawTarget string
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&rawCurrent, &rawTarget); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	current, err := parseAmount(rawCurrent)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	target, err := parseAmount(rawTarget)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return current, target, nil
}

func lockGoalTx(ctx context.Context, tx pgx.Tx, id, userID int64) (*model.Goal, error) {
	const query = `SELECT ` + goalColumns + ` FROM goals WHERE id=$1 AND user_id=$2 FOR UPDATE`
	g, err := scanGoal(tx.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func updateGoalAmountTx(ctx context.Context, tx pgx.Tx, goal *model.Goal) error {
	const query = `UPDATE goals SET current_amount=$2::numeric, updated_at=NOW() WHERE id=$1`
	_, err := tx.Exec(ctx, query, goal.ID, goal.CurrentAmount.String())
	return err
}

const transactionColumns = `id, goal_id, amount::text, method, description, transaction_date, created_at`

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		t      model.Transaction
		amount string
	)
	if err := row.Scan(&t.ID, &t.GoalID, &amount, &t.Method, &t.Description, &t.TransactionDate, &t.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if t.Amount, err = parseAmount(amount); err != nil {
		return nil, err
	}
	return &t, nil
}

func insertTransactionTx(ctx context.Context, tx pgx.Tx, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, error) {
	const query = `INSERT INTO transactions (goal_id, amount, method, description)
                   VALUES ($1, $2::numeric, $3, $4)
                   RETURNING ` + transactionColumns
	return scanTransaction(tx.QueryRow(ctx, query, goalID, amount.String(), method, description))
}

// Deposit runs the full funding flow for one deposit as a single unit of work.
// The balance debit happens before the goal credit; overflow is credited back
// to the available balance so no money is left unaccounted.
func (r *goalRepository) Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error) {
	var (
		txn    *model.Transaction
		result model.FundingResult
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		goal, err := lockGoalTx(ctx, tx, goalID, userID)
		if err != nil {
			return err
		}
		if goal.Completed() {
			return domainErrors.ErrGoalCompleted
		}
		if !method.AllowedForGoalType(goal.Type) {
			return domainErrors.ErrMethodNotAllowed
		}

		if method == model.MethodBalance {
			if err := r.storage.debitBalanceTx(ctx, tx, userID, amount); err != nil {
				return err
			}
		}

		result = goal.ApplyDeposit(amount)
		if err := updateGoalAmountTx(ctx, tx, goal); err != nil {
			return err
		}

		if txn, err = insertTransactionTx(ctx, tx, goal.ID, amount, method, description); err != nil {
			return err
		}

		if result.Overflow.IsPositive() {
			if err := r.storage.creditBalanceTx(ctx, tx, userID, result.Overflow); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return txn, &result, nil
}

// Allocate distributes pooled money across goals in one transaction. Entries
// for already-complete goals are skipped and their amounts stay in the balance.
func (r *goalRepository) Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry) ([]model.AllocationResult, error) {
	var results []model.AllocationResult
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		results = results[:0]
		for _, entry := range entries {
			goal, err := lockGoalTx(ctx, tx, entry.GoalID, userID)
			if err != nil {
				return err
			}

			remaining := goal.Remaining()
			if !remaining.IsPositive() {
				results = append(results, model.AllocationResult{
					GoalID:    goal.ID,
					GoalName:  goal.Name,
					Amount:    entry.Amount,
					Completed: true,
					Skipped:   true,
				})
				continue
			}
			if entry.Amount.GreaterThan(remaining) {
				return domainErrors.ErrAllocationExceedsTarget
			}

			if err := r.storage.debitBalanceTx(ctx, tx, userID, entry.Amount); err != nil {
				return err
			}

			result := goal.ApplyDeposit(entry.Amount)
			if err := updateGoalAmountTx(ctx, tx, goal); err != nil {
				return err
			}
			if _, err := insertTransactionTx(ctx, tx, goal.ID, entry.Amount, model.MethodAllocation, "allocated from available balance"); err != nil {
				return err
			}

			results = append(results, model.AllocationResult{
				GoalID:    goal.ID,
				GoalName:  goal.Name,
				Amount:    entry.Amount,
				Completed: result.Completed,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// --- TransactionRepository implementation ---

func (r *transactionRepository) GetByID(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	const query = `SELECT t.id, t.goal_id, t.amount::text, t.method, t.description, t.transaction_date, t.created_at
                   FROM transactions t JOIN goals g ON g.id = t.goal_id
                   WHERE t.id=$1 AND g.user_id=$2`
	t, err := scanTransaction(r.storage.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *transactionRepository) ListByGoal(ctx context.Context, goalID, userID int64) ([]model.Transaction, error) {
	const query = `SELECT t.id, t.goal_id, t.amount::text, t.method, t.description, t.transaction_date, t.created_at
                   FROM transactions t JOIN goals g ON g.id = t.goal_id
                   WHERE t.goal_id=$1 AND g.user_id=$2 ORDER BY t.transaction_date DESC`
	return r.list(ctx, query, goalID, userID)
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	const query = `SELECT t.id, t.goal_id, t.amount::text, t.method, t.description, t.transaction_date, t.created_at
                   FROM transactions t JOIN goals g ON g.id = t.goal_id
                   WHERE g.user_id=$1 ORDER BY t.transaction_date DESC`
	return r.list(ctx, query, userID)
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteCompensating removes the ledger entry and decrements the goal by the
// same amount. Entries of digital goals stay locked until the goal completes.
func (r *transactionRepository) DeleteCompensating(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	var deleted *model.Transaction
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `SELECT t.id, t.goal_id, t.amount::text, t.method, t.description, t.transaction_date, t.created_at
                       FROM transactions t JOIN goals g ON g.id = t.goal_id
                       WHERE t.id=$1 AND g.user_id=$2 FOR UPDATE`
		txn, err := scanTransaction(tx.QueryRow(ctx, query, id, userID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		goal, err := lockGoalTx(ctx, tx, txn.GoalID, userID)
		if err != nil {
			return err
		}
		if goal.Type == model.GoalTypeDigital && !goal.Completed() {
			return domainErrors.ErrTransactionLocked
		}

		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, txn.ID); err != nil {
			return err
		}

		goal.Subtract(txn.Amount)
		if err := updateGoalAmountTx(ctx, tx, goal); err != nil {
			return err
		}

		deleted = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// --- WithdrawalRepository implementation ---

const withdrawalColumns = `id, user_id, goal_id, source, amount::text, method, account_number, status, notes, created_at, updated_at`

func scanWithdrawal(row rowScanner) (*model.Withdrawal, error) {
	var (
		w      model.Withdrawal
		amount string
	)
	if err := row.Scan(&w.ID, &w.UserID, &w.GoalID, &w.Source, &amount, &w.Method, &w.AccountNumber, &w.Status, &w.Notes, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if w.Amount, err = parseAmount(amount); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a pending withdrawal. Balance-funded requests take the hold
// here; goal-funded requests only verify sufficiency, the deduction happens at
// approval time.
func (r *withdrawalRepository) Create(ctx context.Context, w *model.Withdrawal) (*model.Withdrawal, error) {
	var created *model.Withdrawal
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		switch w.Source {
		case model.SourceBalance:
			if err := r.storage.debitBalanceTx(ctx, tx, w.UserID, w.Amount); err != nil {
				return err
			}
		case model.SourceGoal:
			if w.GoalID == nil {
				return domainErrors.ErrNotFound
			}
			goal, err := lockGoalTx(ctx, tx, *w.GoalID, w.UserID)
			if err != nil {
				return err
			}
			if !w.Method.AllowedForGoalType(goal.Type) {
				return domainErrors.ErrMethodNotAllowed
			}
			if goal.CurrentAmount.LessThan(w.Amount) {
				return domainErrors.ErrInsufficientGoalFunds
			}
		case model.SourcePooled:
			const sumQuery = `SELECT COALESCE(SUM(current_amount), 0)::text FROM goals WHERE user_id=$1`
			var raw string
			if err := tx.QueryRow(ctx, sumQuery, w.UserID).Scan(&raw); err != nil {
				return err
			}
			total, err := parseAmount(raw)
			if err != nil {
				return err
			}
			if total.LessThan(w.Amount) {
				return domainErrors.ErrInsufficientGoalFunds
			}
		}

		const query = `INSERT INTO withdrawals (user_id, goal_id, source, amount, method, account_number, notes)
                       VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
                       RETURNING ` + withdrawalColumns
		var err error
		created, err = scanWithdrawal(tx.QueryRow(ctx, query,
			w.UserID, w.GoalID, w.Source, w.Amount.String(), w.Method, w.AccountNumber, w.Notes))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id int64) (*model.Withdrawal, error) {
	const query = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id=$1`
	w, err := scanWithdrawal(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id=$1 ORDER BY created_at DESC`
	args := []any{userID}
	if status != "" {
		query = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id=$1 AND status=$2 ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *withdrawalRepository) Summary(ctx context.Context, userID int64) (*model.WithdrawalSummary, error) {
	const query = `SELECT COUNT(*),
                          COUNT(*) FILTER (WHERE status='pending'),
                          COUNT(*) FILTER (WHERE status='approved'),
                          COUNT(*) FILTER (WHERE status='rejected')
                   FROM withdrawals WHERE user_id=$1`
	var s model.WithdrawalSummary
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&s.Total, &s.Pending, &s.Approved, &s.Rejected); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *withdrawalRepository) ListPendingBefore(ctx context.Context, userID *int64, cutoff time.Time) ([]model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE status='pending' AND created_at < $1 ORDER BY created_at`
	args := []any{cutoff}
	if userID != nil {
		query = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE status='pending' AND created_at < $1 AND user_id=$2 ORDER BY created_at`
		args = append(args, *userID)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func lockWithdrawalTx(ctx context.Context, tx pgx.Tx, id int64) (*model.Withdrawal, error) {
	const query = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id=$1 FOR UPDATE`
	w, err := scanWithdrawal(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func setWithdrawalStatusTx(ctx context.Context, tx pgx.Tx, id int64, status model.WithdrawalStatus, notes string) (*model.Withdrawal, error) {
	const query = `UPDATE withdrawals SET status=$2, notes=$3, updated_at=NOW() WHERE id=$1
                   RETURNING ` + withdrawalColumns
	return scanWithdrawal(tx.QueryRow(ctx, query, id, status, notes))
}

// Approve transitions a pending withdrawal and applies the deduction for its
// funding source. Balance-funded requests were already debited at request time.
func (r *withdrawalRepository) Approve(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	var approved *model.Withdrawal
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		w, err := lockWithdrawalTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !w.Pending() {
			return domainErrors.ErrAlreadyProcessed
		}

		switch w.Source {
		case model.SourceGoal:
			if w.GoalID == nil {
				return domainErrors.ErrNotFound
			}
			goal, err := lockGoalTx(ctx, tx, *w.GoalID, w.UserID)
			if err != nil {
				return err
			}
			if goal.CurrentAmount.LessThan(w.Amount) {
				return domainErrors.ErrInsufficientGoalFunds
			}
			goal.Subtract(w.Amount)
			if err := updateGoalAmountTx(ctx, tx, goal); err != nil {
				return err
			}
		case model.SourcePooled:
			if err := deductPooledTx(ctx, tx, w.UserID, w.Amount); err != nil {
				return err
			}
		case model.SourceBalance:
			// hold already taken at request time
		}

		approved, err = setWithdrawalStatusTx(ctx, tx, w.ID, model.WithdrawalStatusApproved, notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// deductPooledTx drains goals largest-first until the amount is covered.
func deductPooledTx(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) error {
	const query = `SELECT ` + goalColumns + ` FROM goals
                   WHERE user_id=$1 AND current_amount > 0
                   ORDER BY current_amount DESC FOR UPDATE`
	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return err
	}

	var goals []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			rows.Close()
			return err
		}
		goals = append(goals, *g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.CurrentAmount)
	}
	if total.LessThan(amount) {
		return domainErrors.ErrInsufficientGoalFunds
	}

	left := amount
	for i := range goals {
		if !left.IsPositive() {
			break
		}
		deduct := decimal.Min(goals[i].CurrentAmount, left)
		goals[i].Subtract(deduct)
		if err := updateGoalAmountTx(ctx, tx, &goals[i]); err != nil {
			return err
		}
		left = left.Sub(deduct)
	}
	return nil
}

// Reject transitions a pending withdrawal with no goal effect. The hold placed
// on balance-funded requests is credited back.
func (r *withdrawalRepository) Reject(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	var rejected *model.Withdrawal
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		w, err := lockWithdrawalTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !w.Pending() {
			return domainErrors.ErrAlreadyProcessed
		}

		if w.Source == model.SourceBalance {
			if err := r.storage.creditBalanceTx(ctx, tx, w.UserID, w.Amount); err != nil {
				return err
			}
		}

		rejected, err = setWithdrawalStatusTx(ctx, tx, w.ID, model.WithdrawalStatusRejected, notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, userID int64, title, message string, category model.NotificationCategory) (*model.Notification, error) {
	const query = `INSERT INTO notifications (user_id, title, message, category)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, user_id, title, message, category, read, created_at`
	var n model.Notification
	err := r.storage.pool.QueryRow(ctx, query, userID, title, message, category).
		Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Category, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const query = `SELECT id, user_id, title, message, category, read, created_at
                   FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Category, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
