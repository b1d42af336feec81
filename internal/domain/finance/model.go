package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncoming      TransactionType = "incoming"
	TypePaymentToTeam TransactionType = "payment_to_team"
	TypeExpense       TransactionType = "expense"
	TypeManualIncome  TransactionType = "manual_income"
	TypeManualExpense TransactionType = "manual_expense"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncoming, TypePaymentToTeam, TypeExpense, TypeManualIncome, TypeManualExpense:
		return true
	}
	return false
}

// Income reports whether the type represents money coming in.
func (t TransactionType) Income() bool {
	return t == TypeIncoming || t == TypeManualIncome
}

type Period string

const (
	PeriodOneTime Period = "one-time"
	PeriodMonthly Period = "monthly"
)

func (p Period) Valid() bool {
	return p == PeriodOneTime || p == PeriodMonthly
}

// Transaction is an explicit ledger entry. Client payments recorded on the
// Client row are a separate stream; the dashboard merges the two on read.
type Transaction struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ClientID     *int64          `gorm:"index"`
	TeamMemberID *int64
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AmountUSD    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency     string          `gorm:"not null;default:USD"`
	Type         TransactionType `gorm:"type:text;not null"`
	Category     *string
	Description  string          `gorm:"not null"`
	Date         time.Time       `gorm:"not null;index"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

// MarketingTransaction records marketing-attributed income.
type MarketingTransaction struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AmountUSD  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency   string          `gorm:"not null;default:USD"`
	Date       time.Time       `gorm:"not null"`
	Logo       *string
	Period     Period          `gorm:"type:text;not null;default:one-time"`
	ReceivedBy *string
	Note       *string
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

type CreateTransactionInput struct {
	ClientID     *int64
	TeamMemberID *int64
	Amount       decimal.Decimal
	AmountUSD    *decimal.Decimal
	Currency     string
	Type         TransactionType
	Category     *string
	Description  string
	Date         *time.Time
}

// UpdateTransactionInput deliberately exposes only team-member reassignment
// and category; everything else on a ledger entry is immutable.
type UpdateTransactionInput struct {
	TeamMemberID *int64
	Category     *string
}

type CreateMarketingTransactionInput struct {
	Name       string
	Amount     decimal.Decimal
	AmountUSD  *decimal.Decimal
	Currency   string
	Date       time.Time
	Logo       *string
	Period     Period
	ReceivedBy *string
	Note       *string
}

type UpdateMarketingTransactionInput struct {
	Name       *string
	Amount     *decimal.Decimal
	AmountUSD  *decimal.Decimal
	Currency   *string
	Date       *time.Time
	Logo       *string
	Period     *Period
	ReceivedBy *string
	Note       *string
}
