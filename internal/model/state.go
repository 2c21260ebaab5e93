package model

// PromoPhase is the promotional-rate state of a debt within one simulation run.
type PromoPhase int

const (
	// PromoNone: the debt never had a promo, working APR applies.
	PromoNone PromoPhase = iota
	// PromoActive: interest is suppressed while PromoMonthsRemaining > 0.
	PromoActive
	// PostPromo: the promo expired and PostPromoAPR became the working APR.
	PostPromo
)

func (p PromoPhase) String() string {
	switch p {
	case PromoActive:
		return "promo_active"
	case PostPromo:
		return "post_promo"
	default:
		return "none"
	}
}

// DebtState is the mutable working copy of a Debt for a single simulation run.
// It is built fresh by NewDebtState for every run and never shared.
type DebtState struct {
	ID   string
	Name string

	Balance float64
	// APR is the working rate. Pre-baked fixed-term loans carry 0 here.
	APR float64

	MinimumPayment  float64
	FixedPayment    float64
	HasFixedPayment bool

	Promo                PromoPhase
	PromoMonthsRemaining int
	PostPromoAPR         float64
}

// NewDebtState normalizes a debt's declared terms into a working state.
func NewDebtState(d Debt) *DebtState {
	s := &DebtState{
		ID:             d.ID,
		Name:           d.Name,
		Balance:        d.Balance,
		APR:            d.APR,
		MinimumPayment: d.MinimumPayment,
		PostPromoAPR:   d.PostPromoAPR,
	}
	if s.PostPromoAPR == 0 {
		s.PostPromoAPR = d.APR
	}
	if d.HasPromo {
		s.Promo = PromoActive
		s.PromoMonthsRemaining = d.PromoMonthsRemaining
	}

	if p, ok := FixedMonthlyPayment(d); ok {
		s.FixedPayment = p
		s.HasFixedPayment = true
		if d.TotalRepayable > 0 {
			// The total already includes interest; accruing again would double count.
			s.Balance = d.TotalRepayable
			s.APR = 0
		}
	}
	return s
}

// EffectiveAPR is the rate used to rank debts this month. A debt inside its
// promo window ranks as 0% regardless of its nominal rate.
func (s *DebtState) EffectiveAPR() float64 {
	if s.Promo == PromoActive && s.PromoMonthsRemaining > 0 {
		return 0
	}
	return s.APR
}

// AdvanceRate resolves the APR charged this month and moves the promo state
// forward by one month. The PromoActive -> PostPromo transition happens once,
// in the month the countdown is found at zero.
func (s *DebtState) AdvanceRate() float64 {
	if s.Promo != PromoActive {
		return s.APR
	}
	if s.PromoMonthsRemaining > 0 {
		s.PromoMonthsRemaining--
		return 0
	}
	s.APR = s.PostPromoAPR
	s.Promo = PostPromo
	return s.APR
}

// BasePayment is the payment due before any extra allocation.
func (s *DebtState) BasePayment() float64 {
	if s.HasFixedPayment {
		return s.FixedPayment
	}
	return s.MinimumPayment
}
