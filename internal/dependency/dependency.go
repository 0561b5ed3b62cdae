package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/printline/printline-manager/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	// Orders persists orders as loosely typed rows. Callers translate
	// between entity.Order and entity.Row through the dto mappers so the
	// store never needs to know about request field names.
	Orders interface {
		// InsertOrder inserts an order row and returns its id.
		InsertOrder(ctx context.Context, row entity.Row) (int, error)
		// InsertOrderItems bulk inserts item rows for an existing order.
		InsertOrderItems(ctx context.Context, orderID int, rows []entity.Row) error
		// DeleteOrderItems removes all item rows for an order.
		DeleteOrderItems(ctx context.Context, orderID int) error
		// GetOrderRow returns the order row by id.
		GetOrderRow(ctx context.Context, orderID int) (entity.Row, error)
		// GetOrderItemRows returns the item rows for an order in insert order.
		GetOrderItemRows(ctx context.Context, orderID int) ([]entity.Row, error)
		// UpdateOrderRow applies the given column values to an order.
		UpdateOrderRow(ctx context.Context, orderID int, row entity.Row) error
		// ListOrderRows returns a filtered page of order rows and the total count.
		ListOrderRows(ctx context.Context, q entity.OrderQuery) ([]entity.Row, int, error)
		// DeleteOrder removes the order and its items.
		DeleteOrder(ctx context.Context, orderID int) error
	}

	Members interface {
		AddMember(ctx context.Context, m *entity.MemberInsert) (int, error)
		GetMemberByUsername(ctx context.Context, username string) (*entity.Member, error)
		GetMemberById(ctx context.Context, id int) (*entity.Member, error)
		ListMembers(ctx context.Context, activeOnly bool) ([]entity.Member, error)
		UpdateMember(ctx context.Context, id int, m *entity.MemberInsert) error
		ChangePassword(ctx context.Context, username, newHash string) error
		SetMemberActive(ctx context.Context, id int, active bool) error
	}

	Masters interface {
		GetDictionaryInfo(ctx context.Context) (*entity.DictionaryInfo, error)
		ListMasterItems(ctx context.Context, category entity.MasterCategory) ([]entity.MasterItem, error)
		AddMasterItem(ctx context.Context, item *entity.MasterItem) (int, error)
		UpdateMasterItem(ctx context.Context, id int, item *entity.MasterItem) error
		SetMasterItemActive(ctx context.Context, id int, active bool) error
	}

	Claims interface {
		AddClaim(ctx context.Context, c *entity.ClaimInsert) (int, error)
		GetClaimById(ctx context.Context, id int) (*entity.Claim, error)
		ListClaimsByOrder(ctx context.Context, orderID int) ([]entity.Claim, error)
		ListClaims(ctx context.Context, status entity.ClaimStatus, limit, offset int) ([]entity.Claim, int, error)
		UpdateClaim(ctx context.Context, id int, c *entity.ClaimInsert) error
		SetClaimStatus(ctx context.Context, id int, status entity.ClaimStatus) error
	}

	Statistics interface {
		GetOrderStatistics(ctx context.Context, from, to time.Time) (*entity.OrderStatistics, error)
	}

	Repository interface {
		Orders() Orders
		Members() Members
		Masters() Masters
		Claims() Claims
		Statistics() Statistics
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrDuplicate(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	Dictionary interface {
		GetDict() *entity.DictionaryInfo
		GetMasterItem(category entity.MasterCategory, code string) (entity.MasterItem, bool)
		Refresh(di *entity.DictionaryInfo)
	}
)
