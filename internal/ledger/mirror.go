package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
	"github.com/theirongolddev/tally/internal/store"
)

// Mirror writes the affected collection to storage after every mutation.
// Write failures are logged and remembered, never returned to the mutator.
type Mirror struct {
	ctx    context.Context
	kv     store.KV
	logger *slog.Logger

	lastErr error
	writes  int
}

// NewMirror returns a Mirror writing to kv.
func NewMirror(ctx context.Context, kv store.KV, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mirror{ctx: ctx, kv: kv, logger: logger}
}

// Changed implements Observer.
func (m *Mirror) Changed(ev Event, s *State) {
	var err error
	switch ev {
	case ExpensesChanged:
		err = store.Save(m.ctx, m.kv, store.KeyExpenses, s.Expenses())
	case BudgetsChanged:
		err = store.Save(m.ctx, m.kv, store.KeyBudgets, s.Budgets())
	default:
		return
	}
	m.writes++
	m.lastErr = err
	if err != nil {
		m.logger.Error("persisting ledger", "collection", ev.String(), "err", err)
		return
	}
	m.logger.Debug("persisted ledger", "collection", ev.String())
}

// LastError returns the error from the most recent write, or nil.
func (m *Mirror) LastError() error { return m.lastErr }

// Writes returns how many saves have been attempted.
func (m *Mirror) Writes() int { return m.writes }

// Options configures Open.
type Options struct {
	// Categories replaces the built-in category list when non-nil.
	Categories []model.Category
	// Locale selects string collation for sorting. Empty means en-US.
	Locale string
	// Location is used for month labels and budget periods. Nil means time.Local.
	Location *time.Location
	// Now overrides the clock for budget periods.
	Now func() time.Time
	// Sort is the initial sort; the zero value selects date/desc.
	Sort   model.SortConfig
	Logger *slog.Logger
}

// Open loads both collections from kv, falling back to an empty expense list
// and the default budgets, and subscribes a Mirror to the returned State.
func Open(ctx context.Context, kv store.KV, opts Options) (*State, *Mirror) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	expenses := store.Load(ctx, kv, store.KeyExpenses, []model.Expense{}, logger)
	budgets := store.Load(ctx, kv, store.KeyBudgets, model.DefaultBudgets(), logger)
	logger.Debug("loaded ledger", "expenses", len(expenses), "budgets", len(budgets))

	s := NewState(NewExpenses(expenses), NewRegistry(opts.Categories, budgets))
	if opts.Locale != "" {
		s.collator = pipeline.NewCollator(opts.Locale)
	}
	if opts.Location != nil {
		s.loc = opts.Location
	}
	if opts.Now != nil {
		s.now = opts.Now
	}
	s.SetSort(opts.Sort)

	m := NewMirror(ctx, kv, logger)
	s.Subscribe(m)
	return s, m
}
