package finance

import (
	"context"
	"strings"
	"time"

	"studio-backoffice-go/pkg/currency"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	if !input.Type.Valid() {
		return nil, ErrInvalidTransactionType
	}

	code := strings.ToUpper(strings.TrimSpace(input.Currency))
	if code == "" {
		code = "USD"
	}

	date := s.now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	tx := Transaction{
		ClientID:     input.ClientID,
		TeamMemberID: input.TeamMemberID,
		Amount:       input.Amount,
		AmountUSD:    usdMirror(input.Amount, input.AmountUSD, code),
		Currency:     code,
		Type:         input.Type,
		Category:     input.Category,
		Description:  strings.TrimSpace(input.Description),
		Date:         date,
	}

	if err := s.repo.CreateTransaction(ctx, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

// UpdateTransaction touches only the team-member reference and category.
func (s *Service) UpdateTransaction(ctx context.Context, id int64, input UpdateTransactionInput) (*Transaction, error) {
	tx, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TeamMemberID != nil {
		tx.TeamMemberID = input.TeamMemberID
	}
	if input.Category != nil {
		tx.Category = input.Category
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteTransaction(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *Service) ListMarketingTransactions(ctx context.Context) ([]MarketingTransaction, error) {
	return s.repo.ListMarketingTransactions(ctx)
}

func (s *Service) CreateMarketingTransaction(ctx context.Context, input CreateMarketingTransactionInput) (*MarketingTransaction, error) {
	if !input.Period.Valid() {
		return nil, ErrInvalidPeriod
	}

	code := strings.ToUpper(strings.TrimSpace(input.Currency))
	if code == "" {
		code = "USD"
	}

	tx := MarketingTransaction{
		Name:       strings.TrimSpace(input.Name),
		Amount:     input.Amount,
		AmountUSD:  usdMirror(input.Amount, input.AmountUSD, code),
		Currency:   code,
		Date:       input.Date,
		Logo:       input.Logo,
		Period:     input.Period,
		ReceivedBy: input.ReceivedBy,
		Note:       input.Note,
	}

	if err := s.repo.CreateMarketingTransaction(ctx, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (s *Service) UpdateMarketingTransaction(ctx context.Context, id int64, input UpdateMarketingTransactionInput) (*MarketingTransaction, error) {
	tx, err := s.repo.GetMarketingTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Period != nil {
		if !input.Period.Valid() {
			return nil, ErrInvalidPeriod
		}
		tx.Period = *input.Period
	}
	if input.Name != nil {
		tx.Name = strings.TrimSpace(*input.Name)
	}
	if input.Currency != nil {
		tx.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
		tx.AmountUSD = usdMirror(*input.Amount, input.AmountUSD, tx.Currency)
	} else if input.AmountUSD != nil {
		tx.AmountUSD = input.AmountUSD.Round(2)
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Logo != nil {
		tx.Logo = input.Logo
	}
	if input.ReceivedBy != nil {
		tx.ReceivedBy = input.ReceivedBy
	}
	if input.Note != nil {
		tx.Note = input.Note
	}

	if err := s.repo.UpdateMarketingTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) DeleteMarketingTransaction(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteMarketingTransaction(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMarketingTransactionNotFound
	}
	return nil
}

func usdMirror(amount decimal.Decimal, explicit *decimal.Decimal, code string) decimal.Decimal {
	if explicit != nil {
		return explicit.Round(2)
	}
	return currency.ToUSD(amount, code).Round(2)
}
