package pricing

import "errors"

var (
	// ErrInvalidAmount is returned when a negative amount reaches the context.
	ErrInvalidAmount = errors.New("pricing: invalid amount")
	// ErrUnknownStrategy is returned when a named strategy is not registered.
	// A missing name is a configuration bug and is surfaced, never defaulted.
	ErrUnknownStrategy = errors.New("pricing: unknown discount strategy")
	// ErrNoCandidates is returned when a best-discount scan has nothing to evaluate.
	ErrNoCandidates = errors.New("pricing: no candidate strategies")
)

// Result is the outcome of a discount calculation.
type Result struct {
	Original Money  `json:"original_amount"`
	Discount Money  `json:"discount"`
	Final    Money  `json:"final_amount"`
	Strategy string `json:"strategy_label"`
}

// Context holds the active discount strategy for a single pricing session.
// It is the only mutable cell in the package and must not be shared across
// concurrent callers without external synchronization.
type Context struct {
	strategy Strategy
}

// NewContext returns a context with the no-discount strategy active.
func NewContext() *Context {
	return &Context{strategy: NoDiscount{}}
}

// SetStrategy replaces the active strategy. A nil strategy resets to no-discount.
func (c *Context) SetStrategy(s Strategy) {
	if s == nil {
		s = NoDiscount{}
	}
	c.strategy = s
}

// Strategy returns the currently active strategy.
func (c *Context) Strategy() Strategy {
	if c.strategy == nil {
		return NoDiscount{}
	}
	return c.strategy
}

// Calculate applies the active strategy to the amount. The amount is
// validated before any strategy runs, and the discount is clamped to
// [0, amount] here even if a misconfigured strategy exceeds the bounds.
func (c *Context) Calculate(amount Money, p Params) (Result, error) {
	if amount < 0 {
		return Result{}, ErrInvalidAmount
	}
	strategy := c.Strategy()
	discount := clampDiscount(strategy.Discount(amount, p), amount)
	return Result{
		Original: amount,
		Discount: discount,
		Final:    amount - discount,
		Strategy: strategy.Label(),
	}, nil
}

// Selection describes the winning candidate of a best-discount scan.
type Selection struct {
	Strategy Strategy
	Label    string
	Discount Money
}

// SelectBest evaluates every candidate against the same amount and params and
// returns the one yielding the largest discount. Comparison uses strict
// greater-than, so the first-listed candidate wins ties.
func SelectBest(amount Money, p Params, candidates []Strategy) (Selection, error) {
	if amount < 0 {
		return Selection{}, ErrInvalidAmount
	}
	if len(candidates) == 0 {
		return Selection{}, ErrNoCandidates
	}
	best := Selection{
		Strategy: candidates[0],
		Label:    candidates[0].Label(),
		Discount: clampDiscount(candidates[0].Discount(amount, p), amount),
	}
	for _, candidate := range candidates[1:] {
		discount := clampDiscount(candidate.Discount(amount, p), amount)
		if discount > best.Discount {
			best = Selection{Strategy: candidate, Label: candidate.Label(), Discount: discount}
		}
	}
	return best, nil
}

func clampDiscount(discount, amount Money) Money {
	if discount < 0 {
		return 0
	}
	if discount > amount {
		return amount
	}
	return discount
}
