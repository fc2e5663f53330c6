package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownField is returned when a patch key does not name a snapshot field
var ErrUnknownField = errors.New("unknown snapshot field")

// Patch is a partial snapshot: every non-nil field replaces the corresponding
// snapshot field when applied.
type Patch struct {
	Age               *int              `yaml:"age,omitempty" json:"age,omitempty"`
	RetirementAge     *int              `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`
	ExpectedLife      *int              `yaml:"expected_life,omitempty" json:"expected_life,omitempty"`
	SSAClaimingAge    *int              `yaml:"ssa_claiming_age,omitempty" json:"ssa_claiming_age,omitempty"`
	SSAMonthly        *decimal.Decimal  `yaml:"ssa_monthly,omitempty" json:"ssa_monthly,omitempty"`
	MonthlyBudget     *decimal.Decimal  `yaml:"monthly_budget,omitempty" json:"monthly_budget,omitempty"`
	MonthlyWithdrawal *decimal.Decimal  `yaml:"monthly_withdrawal,omitempty" json:"monthly_withdrawal,omitempty"`
	TaxRate           *decimal.Decimal  `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
	InflationRate     *decimal.Decimal  `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	ROIScenarios      *ROIPatch         `yaml:"roi_scenarios,omitempty" json:"roi_scenarios,omitempty"`
	Assets            *AssetsPatch      `yaml:"assets,omitempty" json:"assets,omitempty"`
	Liabilities       *LiabilitiesPatch `yaml:"liabilities,omitempty" json:"liabilities,omitempty"`
}

// ROIPatch is a partial ROIScenarios
type ROIPatch struct {
	Low  *decimal.Decimal `yaml:"low,omitempty" json:"low,omitempty"`
	Mid  *decimal.Decimal `yaml:"mid,omitempty" json:"mid,omitempty"`
	High *decimal.Decimal `yaml:"high,omitempty" json:"high,omitempty"`
}

// AssetsPatch is a partial Assets
type AssetsPatch struct {
	FourOhOneK  *decimal.Decimal `yaml:"four_oh_one_k,omitempty" json:"four_oh_one_k,omitempty"`
	IRA         *decimal.Decimal `yaml:"ira,omitempty" json:"ira,omitempty"`
	CashSavings *decimal.Decimal `yaml:"cash_savings,omitempty" json:"cash_savings,omitempty"`
	OtherLiquid *decimal.Decimal `yaml:"other_liquid,omitempty" json:"other_liquid,omitempty"`
	Home        *decimal.Decimal `yaml:"home,omitempty" json:"home,omitempty"`
	Car         *decimal.Decimal `yaml:"car,omitempty" json:"car,omitempty"`
}

// LiabilitiesPatch is a partial Liabilities
type LiabilitiesPatch struct {
	Mortgage     *decimal.Decimal `yaml:"mortgage,omitempty" json:"mortgage,omitempty"`
	AutoLoan     *decimal.Decimal `yaml:"auto_loan,omitempty" json:"auto_loan,omitempty"`
	CreditCards  *decimal.Decimal `yaml:"credit_cards,omitempty" json:"credit_cards,omitempty"`
	StudentLoans *decimal.Decimal `yaml:"student_loans,omitempty" json:"student_loans,omitempty"`
	Other        *decimal.Decimal `yaml:"other,omitempty" json:"other,omitempty"`
}

// Apply returns a copy of s with every field set in p replaced and LastUpdated stamped with at.
// s itself is left untouched.
func (s Snapshot) Apply(p Patch, at time.Time) Snapshot {
	next := s
	setInt(&next.Age, p.Age)
	setInt(&next.RetirementAge, p.RetirementAge)
	setInt(&next.ExpectedLife, p.ExpectedLife)
	setInt(&next.SSAClaimingAge, p.SSAClaimingAge)
	setDec(&next.SSAMonthly, p.SSAMonthly)
	setDec(&next.MonthlyBudget, p.MonthlyBudget)
	setDec(&next.MonthlyWithdrawal, p.MonthlyWithdrawal)
	setDec(&next.TaxRate, p.TaxRate)
	setDec(&next.InflationRate, p.InflationRate)

	if r := p.ROIScenarios; r != nil {
		setDec(&next.ROIScenarios.Low, r.Low)
		setDec(&next.ROIScenarios.Mid, r.Mid)
		setDec(&next.ROIScenarios.High, r.High)
	}
	if a := p.Assets; a != nil {
		setDec(&next.Assets.FourOhOneK, a.FourOhOneK)
		setDec(&next.Assets.IRA, a.IRA)
		setDec(&next.Assets.CashSavings, a.CashSavings)
		setDec(&next.Assets.OtherLiquid, a.OtherLiquid)
		setDec(&next.Assets.Home, a.Home)
		setDec(&next.Assets.Car, a.Car)
	}
	if l := p.Liabilities; l != nil {
		setDec(&next.Liabilities.Mortgage, l.Mortgage)
		setDec(&next.Liabilities.AutoLoan, l.AutoLoan)
		setDec(&next.Liabilities.CreditCards, l.CreditCards)
		setDec(&next.Liabilities.StudentLoans, l.StudentLoans)
		setDec(&next.Liabilities.Other, l.Other)
	}

	next.LastUpdated = at
	return next
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDec(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Age == nil && p.RetirementAge == nil && p.ExpectedLife == nil && p.SSAClaimingAge == nil &&
		p.SSAMonthly == nil && p.MonthlyBudget == nil && p.MonthlyWithdrawal == nil &&
		p.TaxRate == nil && p.InflationRate == nil &&
		p.ROIScenarios == nil && p.Assets == nil && p.Liabilities == nil
}

// FieldKind describes how a patchable field is entered and displayed
type FieldKind int

const (
	FieldYears FieldKind = iota
	FieldAmount
	FieldPercent
)

// PatchField binds a user-facing key to typed accessors on Snapshot and Patch
type PatchField struct {
	Key   string
	Label string
	Kind  FieldKind
	get   func(Snapshot) decimal.Decimal
	set   func(*Patch, decimal.Decimal)
}

// Get reads the field from a snapshot
func (f PatchField) Get(s Snapshot) decimal.Decimal { return f.get(s) }

// Set stores v into the patch. Year fields keep the integer part.
func (f PatchField) Set(p *Patch, v decimal.Decimal) { f.set(p, v) }

func yearsField(key, label string, get func(Snapshot) int, set func(*Patch, *int)) PatchField {
	return PatchField{
		Key:   key,
		Label: label,
		Kind:  FieldYears,
		get:   func(s Snapshot) decimal.Decimal { return decimal.NewFromInt(int64(get(s))) },
		set: func(p *Patch, v decimal.Decimal) {
			n := int(v.IntPart())
			set(p, &n)
		},
	}
}

func decField(key, label string, kind FieldKind, get func(Snapshot) decimal.Decimal, set func(*Patch, *decimal.Decimal)) PatchField {
	return PatchField{
		Key:   key,
		Label: label,
		Kind:  kind,
		get:   get,
		set:   func(p *Patch, v decimal.Decimal) { set(p, &v) },
	}
}

func roi(p *Patch) *ROIPatch {
	if p.ROIScenarios == nil {
		p.ROIScenarios = &ROIPatch{}
	}
	return p.ROIScenarios
}

func assets(p *Patch) *AssetsPatch {
	if p.Assets == nil {
		p.Assets = &AssetsPatch{}
	}
	return p.Assets
}

func liabilities(p *Patch) *LiabilitiesPatch {
	if p.Liabilities == nil {
		p.Liabilities = &LiabilitiesPatch{}
	}
	return p.Liabilities
}

// PatchFields lists every editable snapshot field in display order
var PatchFields = []PatchField{
	yearsField("age", "Current age", func(s Snapshot) int { return s.Age }, func(p *Patch, v *int) { p.Age = v }),
	yearsField("retirement_age", "Retirement age", func(s Snapshot) int { return s.RetirementAge }, func(p *Patch, v *int) { p.RetirementAge = v }),
	yearsField("expected_life", "Expected lifespan", func(s Snapshot) int { return s.ExpectedLife }, func(p *Patch, v *int) { p.ExpectedLife = v }),
	yearsField("ssa_claiming_age", "Social Security claiming age", func(s Snapshot) int { return s.SSAClaimingAge }, func(p *Patch, v *int) { p.SSAClaimingAge = v }),
	decField("ssa_monthly", "Social Security at 67 (monthly)", FieldAmount, func(s Snapshot) decimal.Decimal { return s.SSAMonthly }, func(p *Patch, v *decimal.Decimal) { p.SSAMonthly = v }),
	decField("monthly_budget", "Monthly budget", FieldAmount, func(s Snapshot) decimal.Decimal { return s.MonthlyBudget }, func(p *Patch, v *decimal.Decimal) { p.MonthlyBudget = v }),
	decField("monthly_withdrawal", "Monthly withdrawal (gross)", FieldAmount, func(s Snapshot) decimal.Decimal { return s.MonthlyWithdrawal }, func(p *Patch, v *decimal.Decimal) { p.MonthlyWithdrawal = v }),
	decField("tax_rate", "Tax rate", FieldPercent, func(s Snapshot) decimal.Decimal { return s.TaxRate }, func(p *Patch, v *decimal.Decimal) { p.TaxRate = v }),
	decField("inflation_rate", "Inflation", FieldPercent, func(s Snapshot) decimal.Decimal { return s.InflationRate }, func(p *Patch, v *decimal.Decimal) { p.InflationRate = v }),
	decField("roi.low", "Return (low)", FieldPercent, func(s Snapshot) decimal.Decimal { return s.ROIScenarios.Low }, func(p *Patch, v *decimal.Decimal) { roi(p).Low = v }),
	decField("roi.mid", "Return (mid)", FieldPercent, func(s Snapshot) decimal.Decimal { return s.ROIScenarios.Mid }, func(p *Patch, v *decimal.Decimal) { roi(p).Mid = v }),
	decField("roi.high", "Return (high)", FieldPercent, func(s Snapshot) decimal.Decimal { return s.ROIScenarios.High }, func(p *Patch, v *decimal.Decimal) { roi(p).High = v }),
	decField("assets.401k", "401(k)", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Assets.FourOhOneK }, func(p *Patch, v *decimal.Decimal) { assets(p).FourOhOneK = v }),
	decField("assets.ira", "IRA", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Assets.IRA }, func(p *Patch, v *decimal.Decimal) { assets(p).IRA = v }),
	decField("assets.cash", "Cash savings", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Assets.CashSavings }, func(p *Patch, v *decimal.Decimal) { assets(p).CashSavings = v }),
	decField("assets.other", "Other liquid", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Assets.OtherLiquid }, func(p *Patch, v *decimal.Decimal) { assets(p).OtherLiquid = v }),
	decField("assets.home", "Home", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Assets.Home }, func(p *Patch, v *decimal.Decimal) { assets(p).Home = v }),
	decField("assets.car", "Car", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Assets.Car }, func(p *Patch, v *decimal.Decimal) { assets(p).Car = v }),
	decField("liabilities.mortgage", "Mortgage", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Liabilities.Mortgage }, func(p *Patch, v *decimal.Decimal) { liabilities(p).Mortgage = v }),
	decField("liabilities.auto", "Auto loan", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Liabilities.AutoLoan }, func(p *Patch, v *decimal.Decimal) { liabilities(p).AutoLoan = v }),
	decField("liabilities.credit_cards", "Credit cards", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Liabilities.CreditCards }, func(p *Patch, v *decimal.Decimal) { liabilities(p).CreditCards = v }),
	decField("liabilities.student_loans", "Student loans", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Liabilities.StudentLoans }, func(p *Patch, v *decimal.Decimal) { liabilities(p).StudentLoans = v }),
	decField("liabilities.other", "Other debt", FieldAmount, func(s Snapshot) decimal.Decimal { return s.Liabilities.Other }, func(p *Patch, v *decimal.Decimal) { liabilities(p).Other = v }),
}

// LookupField finds a patchable field by key (case-insensitive)
func LookupField(key string) (PatchField, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, f := range PatchFields {
		if f.Key == k {
			return f, true
		}
	}
	return PatchField{}, false
}

// FieldKeys returns all patchable keys sorted alphabetically
func FieldKeys() []string {
	keys := make([]string, 0, len(PatchFields))
	for _, f := range PatchFields {
		keys = append(keys, f.Key)
	}
	sort.Strings(keys)
	return keys
}

// CoerceNumber parses user input as a decimal, tolerating "$", "%" and "," decorations.
// Malformed input coerces to zero; ok reports whether parsing succeeded.
func CoerceNumber(raw string) (v decimal.Decimal, ok bool) {
	cleaned := strings.NewReplacer("$", "", "%", "", ",", "", "_", "").Replace(strings.TrimSpace(raw))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Set parses raw and records it under key. Unknown keys return ErrUnknownField;
// malformed numbers are stored as zero and reported through coerced.
func (p *Patch) Set(key, raw string) (coerced bool, err error) {
	f, found := LookupField(key)
	if !found {
		return false, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	v, ok := CoerceNumber(raw)
	f.Set(p, v)
	return !ok, nil
}

// ParseAssignments builds a patch from "key=value" arguments
func ParseAssignments(args []string) (Patch, []string, error) {
	var p Patch
	var coercedKeys []string
	for _, arg := range args {
		key, raw, found := strings.Cut(arg, "=")
		if !found {
			return Patch{}, nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		coerced, err := p.Set(key, raw)
		if err != nil {
			return Patch{}, nil, err
		}
		if coerced {
			coercedKeys = append(coercedKeys, key)
		}
	}
	return p, coercedKeys, nil
}
