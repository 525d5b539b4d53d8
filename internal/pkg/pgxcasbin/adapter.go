package pgxcasbin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/persist"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
	"go.uber.org/atomic"
)

const (
	defaultTableName = "casbin_rules"
	fieldCount       = 6
)

var (
	ErrRuleTooLong      = errors.New("pgxcasbin: rule has more than 6 fields")
	ErrEmptyPtype       = errors.New("pgxcasbin: ptype is empty")
	ErrInvalidFilter    = errors.New("pgxcasbin: filter must be pgxcasbin.Filter")
	ErrTooManyFilterArg = errors.New("pgxcasbin: too many filter values")
)

// DB is the pgx surface the adapter needs; *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Filter selects policy lines by ptype, each entry a list of leading field
// values. Empty values match anything.
type Filter map[string][][]string

var (
	_ persist.Adapter         = (*Adapter)(nil)
	_ persist.ContextAdapter  = (*Adapter)(nil)
	_ persist.BatchAdapter    = (*Adapter)(nil)
	_ persist.FilteredAdapter = (*Adapter)(nil)
)

// Adapter stores casbin rules in a single table (ptype, v0..v5).
type Adapter struct {
	db       DB
	table    string
	filtered *atomic.Bool
}

type Option func(*Adapter)

// WithTableName overrides the table, normalised to snake_case.
func WithTableName(name string) Option {
	return func(a *Adapter) { a.table = lo.SnakeCase(name) }
}

// NewAdapter creates the rule table when missing.
func NewAdapter(ctx context.Context, db DB, opts ...Option) (*Adapter, error) {
	a := &Adapter{db: db, table: defaultTableName, filtered: atomic.NewBool(false)}
	for _, opt := range opts {
		opt(a)
	}

	ddl := fmt.Sprintf(`create table if not exists %[1]s (
  id bigserial primary key,
  ptype text not null,
  %[2]s,
  unique (ptype, %[3]s)
)`, a.table,
		strings.Join(lo.Times(fieldCount, func(i int) string { return "v" + strconv.Itoa(i) + " text not null default ''" }), ",\n  "),
		columns())
	if _, err := db.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("pgxcasbin: create table: %w", err)
	}

	return a, nil
}

func columns() string {
	return strings.Join(lo.Times(fieldCount, func(i int) string { return "v" + strconv.Itoa(i) }), ", ")
}

func placeholders(from int) string {
	return strings.Join(lo.Times(fieldCount, func(i int) string { return "$" + strconv.Itoa(from+i) }), ", ")
}

// line pads rule to fieldCount and prefixes ptype.
func line(ptype string, rule []string) ([]any, error) {
	if len(rule) > fieldCount {
		return nil, ErrRuleTooLong
	}
	padded := make([]string, fieldCount)
	copy(padded, rule)
	return append([]any{ptype}, lo.ToAnySlice(padded)...), nil
}

func (a *Adapter) LoadPolicyCtx(ctx context.Context, m model.Model) error {
	a.filtered.Store(false)
	return a.load(ctx, m, "", 0)
}

func (a *Adapter) load(ctx context.Context, m model.Model, ptype string, fieldIndex int, values ...string) error {
	lines, err := a.selectLines(ctx, ptype, fieldIndex, values...)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if err := persist.LoadPolicyArray(l, m); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) selectLines(ctx context.Context, ptype string, fieldIndex int, values ...string) ([][]string, error) {
	where, args, err := whereClause(ptype, fieldIndex, values)
	if err != nil {
		return nil, err
	}

	rows, err := a.db.Query(ctx, fmt.Sprintf("select ptype, %s from %s%s order by id", columns(), a.table, where), args...)
	if err != nil {
		return nil, fmt.Errorf("pgxcasbin: select: %w", err)
	}
	defer rows.Close()

	var lines [][]string
	for rows.Next() {
		vals := make([]string, fieldCount+1)
		if err := rows.Scan(lo.ToAnySlice(lo.Map(vals, func(_ string, i int) *string { return &vals[i] }))...); err != nil {
			return nil, fmt.Errorf("pgxcasbin: scan: %w", err)
		}
		// trailing empty fields are padding
		end := len(vals)
		for end > 1 && vals[end-1] == "" {
			end--
		}
		lines = append(lines, vals[:end])
	}
	return lines, rows.Err()
}

func whereClause(ptype string, fieldIndex int, values []string) (string, []any, error) {
	if fieldIndex+len(values) > fieldCount {
		return "", nil, ErrTooManyFilterArg
	}

	var conds []string
	var args []any
	if ptype != "" {
		args = append(args, ptype)
		conds = append(conds, "ptype = $1")
	}
	for i, v := range values {
		if v == "" {
			continue
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("v%d = $%d", fieldIndex+i, len(args)))
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return " where " + strings.Join(conds, " and "), args, nil
}

func (a *Adapter) SavePolicyCtx(ctx context.Context, m model.Model) (err error) {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pgxcasbin: begin: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, "delete from "+a.table); err != nil {
		return fmt.Errorf("pgxcasbin: clear: %w", err)
	}

	batch := &pgx.Batch{}
	for _, sec := range []string{"p", "g"} {
		for ptype, ast := range m[sec] {
			for _, rule := range ast.Policy {
				args, err := line(ptype, rule)
				if err != nil {
					return err
				}
				batch.Queue(a.insertSQL(), args...)
			}
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("pgxcasbin: insert: %w", err)
	}

	return tx.Commit(ctx)
}

func (a *Adapter) insertSQL() string {
	return fmt.Sprintf("insert into %s (ptype, %s) values ($1, %s) on conflict do nothing", a.table, columns(), placeholders(2))
}

func (a *Adapter) deleteSQL() string {
	conds := lo.Times(fieldCount, func(i int) string { return fmt.Sprintf("v%d = $%d", i, i+2) })
	return fmt.Sprintf("delete from %s where ptype = $1 and %s", a.table, strings.Join(conds, " and "))
}

func (a *Adapter) AddPolicyCtx(ctx context.Context, _ string, ptype string, rule []string) error {
	args, err := line(ptype, rule)
	if err != nil {
		return err
	}
	_, err = a.db.Exec(ctx, a.insertSQL(), args...)
	return err
}

func (a *Adapter) RemovePolicyCtx(ctx context.Context, _ string, ptype string, rule []string) error {
	args, err := line(ptype, rule)
	if err != nil {
		return err
	}
	_, err = a.db.Exec(ctx, a.deleteSQL(), args...)
	return err
}

func (a *Adapter) RemoveFilteredPolicyCtx(ctx context.Context, _ string, ptype string, fieldIndex int, values ...string) error {
	if ptype == "" {
		return ErrEmptyPtype
	}
	where, args, err := whereClause(ptype, fieldIndex, values)
	if err != nil {
		return err
	}
	_, err = a.db.Exec(ctx, "delete from "+a.table+where, args...)
	return err
}

func (a *Adapter) batch(ctx context.Context, sql, ptype string, rules [][]string) error {
	b := &pgx.Batch{}
	for _, rule := range rules {
		args, err := line(ptype, rule)
		if err != nil {
			return err
		}
		b.Queue(sql, args...)
	}

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return errors.Join(err, tx.Rollback(ctx))
	}
	return tx.Commit(ctx)
}

func (a *Adapter) AddPoliciesCtx(ctx context.Context, _ string, ptype string, rules [][]string) error {
	return a.batch(ctx, a.insertSQL(), ptype, rules)
}

func (a *Adapter) RemovePoliciesCtx(ctx context.Context, _ string, ptype string, rules [][]string) error {
	return a.batch(ctx, a.deleteSQL(), ptype, rules)
}

// LoadFilteredPolicyCtx loads only lines matching a Filter; a nil filter loads everything.
func (a *Adapter) LoadFilteredPolicyCtx(ctx context.Context, m model.Model, filter any) error {
	if lo.IsNil(filter) {
		return a.LoadPolicyCtx(ctx, m)
	}
	f, ok := filter.(Filter)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidFilter, filter)
	}

	a.filtered.Store(true)
	var lines [][]string
	for ptype, conds := range f {
		for _, values := range conds {
			got, err := a.selectLines(ctx, ptype, 0, values...)
			if err != nil {
				return err
			}
			lines = append(lines, got...)
		}
	}

	for _, l := range lo.UniqBy(lines, func(l []string) string { return strings.Join(l, ",") }) {
		if err := persist.LoadPolicyArray(l, m); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) IsFiltered() bool { return a.filtered.Load() }

func (a *Adapter) LoadPolicy(m model.Model) error {
	return a.LoadPolicyCtx(context.Background(), m)
}

func (a *Adapter) SavePolicy(m model.Model) error {
	return a.SavePolicyCtx(context.Background(), m)
}

func (a *Adapter) AddPolicy(sec, ptype string, rule []string) error {
	return a.AddPolicyCtx(context.Background(), sec, ptype, rule)
}

func (a *Adapter) RemovePolicy(sec, ptype string, rule []string) error {
	return a.RemovePolicyCtx(context.Background(), sec, ptype, rule)
}

func (a *Adapter) RemoveFilteredPolicy(sec, ptype string, fieldIndex int, values ...string) error {
	return a.RemoveFilteredPolicyCtx(context.Background(), sec, ptype, fieldIndex, values...)
}

func (a *Adapter) AddPolicies(sec, ptype string, rules [][]string) error {
	return a.AddPoliciesCtx(context.Background(), sec, ptype, rules)
}

func (a *Adapter) RemovePolicies(sec, ptype string, rules [][]string) error {
	return a.RemovePoliciesCtx(context.Background(), sec, ptype, rules)
}

func (a *Adapter) LoadFilteredPolicy(m model.Model, filter any) error {
	return a.LoadFilteredPolicyCtx(context.Background(), m, filter)
}
