package clients

import (
	"context"
	"strings"
	"time"

	"studio-backoffice-go/pkg/currency"

	"github.com/shopspring/decimal"
)

const defaultFeedLimit = 15

type Service struct {
	repo      Repository
	now       func() time.Time
	feedLimit int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, feedLimit: defaultFeedLimit}
}

// WithFeedLimit overrides the default cap on the recent-activity feed.
func (s *Service) WithFeedLimit(limit int) *Service {
	if limit > 0 {
		s.feedLimit = limit
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new client. USD mirrors are derived from the fee
// currency at write time unless the caller supplies them explicitly.
func (s *Service) Create(ctx context.Context, input CreateClientInput) (*Client, error) {
	if !input.ContractType.Valid() {
		return nil, ErrInvalidContractType
	}
	if !input.ProjectStatus.Valid() {
		return nil, ErrInvalidProjectStatus
	}

	feeCurrency := strings.ToUpper(strings.TrimSpace(input.FeeCurrency))
	if feeCurrency == "" {
		feeCurrency = "USD"
	}

	amountPaid := decimal.Zero
	if input.AmountPaid != nil {
		amountPaid = *input.AmountPaid
	}

	now := s.now().UTC()
	client := Client{
		Name:                   strings.TrimSpace(input.Name),
		ContactPerson:          strings.TrimSpace(input.ContactPerson),
		Phone:                  input.Phone,
		Country:                strings.TrimSpace(input.Country),
		CountryCode:            strings.TrimSpace(input.CountryCode),
		ContractType:           input.ContractType,
		ProjectStatus:          input.ProjectStatus,
		ContractStartDate:      input.ContractStartDate,
		ExpectedCompletionDate: input.ExpectedCompletionDate,
		TotalProjectFee:        input.TotalProjectFee,
		TotalProjectFeeUSD:     usdMirror(input.TotalProjectFee, input.TotalProjectFeeUSD, feeCurrency),
		FeeCurrency:            feeCurrency,
		AmountPaid:             amountPaid,
		AmountPaidUSD:          usdMirror(amountPaid, input.AmountPaidUSD, feeCurrency),
		TotalImagesToMake:      input.TotalImagesToMake,
		ImagesMade:             input.ImagesMade,
		TotalJewelryArticles:   input.TotalJewelryArticles,
		JewelryArticlesMade:    input.JewelryArticlesMade,
		LogoURL:                input.LogoURL,
		LastActivity:           now,
	}

	if err := s.repo.Create(ctx, &client); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, client.ID)
}

// Update merges the provided fields onto the stored row (last write wins,
// accepted for this domain's write concurrency). When an original-currency
// amount changes without an explicit USD value, the mirror is re-derived.
func (s *Service) Update(ctx context.Context, id int64, input UpdateClientInput) (*Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ContractType != nil {
		if !input.ContractType.Valid() {
			return nil, ErrInvalidContractType
		}
		client.ContractType = *input.ContractType
	}
	if input.ProjectStatus != nil {
		if !input.ProjectStatus.Valid() {
			return nil, ErrInvalidProjectStatus
		}
		client.ProjectStatus = *input.ProjectStatus
	}
	if input.Name != nil {
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.ContactPerson != nil {
		client.ContactPerson = strings.TrimSpace(*input.ContactPerson)
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Country != nil {
		client.Country = strings.TrimSpace(*input.Country)
	}
	if input.CountryCode != nil {
		client.CountryCode = strings.TrimSpace(*input.CountryCode)
	}
	if input.ContractStartDate != nil {
		client.ContractStartDate = *input.ContractStartDate
	}
	if input.ExpectedCompletionDate != nil {
		client.ExpectedCompletionDate = *input.ExpectedCompletionDate
	}
	if input.FeeCurrency != nil {
		client.FeeCurrency = strings.ToUpper(strings.TrimSpace(*input.FeeCurrency))
	}
	if input.TotalProjectFee != nil {
		client.TotalProjectFee = *input.TotalProjectFee
		client.TotalProjectFeeUSD = usdMirror(*input.TotalProjectFee, input.TotalProjectFeeUSD, client.FeeCurrency)
	} else if input.TotalProjectFeeUSD != nil {
		client.TotalProjectFeeUSD = roundMoney(*input.TotalProjectFeeUSD)
	}
	if input.AmountPaid != nil {
		client.AmountPaid = *input.AmountPaid
		client.AmountPaidUSD = usdMirror(*input.AmountPaid, input.AmountPaidUSD, client.FeeCurrency)
	} else if input.AmountPaidUSD != nil {
		client.AmountPaidUSD = roundMoney(*input.AmountPaidUSD)
	}
	if input.TotalImagesToMake != nil {
		client.TotalImagesToMake = *input.TotalImagesToMake
	}
	if input.ImagesMade != nil {
		client.ImagesMade = *input.ImagesMade
	}
	if input.TotalJewelryArticles != nil {
		client.TotalJewelryArticles = *input.TotalJewelryArticles
	}
	if input.JewelryArticlesMade != nil {
		client.JewelryArticlesMade = *input.JewelryArticlesMade
	}
	if input.LogoURL != nil {
		client.LogoURL = input.LogoURL
	}
	if input.LastActivity != nil {
		client.LastActivity = *input.LastActivity
	}
	client.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Replace applies a full update (PUT): every field is taken from the input.
func (s *Service) Replace(ctx context.Context, id int64, input CreateClientInput) (*Client, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	update := UpdateClientInput{
		Name:                   &input.Name,
		ContactPerson:          &input.ContactPerson,
		Phone:                  input.Phone,
		Country:                &input.Country,
		CountryCode:            &input.CountryCode,
		ContractType:           &input.ContractType,
		ProjectStatus:          &input.ProjectStatus,
		ContractStartDate:      &input.ContractStartDate,
		ExpectedCompletionDate: &input.ExpectedCompletionDate,
		TotalProjectFee:        &input.TotalProjectFee,
		TotalProjectFeeUSD:     input.TotalProjectFeeUSD,
		FeeCurrency:            &input.FeeCurrency,
		AmountPaid:             input.AmountPaid,
		AmountPaidUSD:          input.AmountPaidUSD,
		TotalImagesToMake:      &input.TotalImagesToMake,
		ImagesMade:             &input.ImagesMade,
		TotalJewelryArticles:   &input.TotalJewelryArticles,
		JewelryArticlesMade:    &input.JewelryArticlesMade,
		LogoURL:                input.LogoURL,
	}
	if input.AmountPaid == nil {
		zero := decimal.Zero
		update.AmountPaid = &zero
	}

	return s.Update(ctx, id, update)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	return nil
}

func (s *Service) AssignTeamMember(ctx context.Context, clientID, teamMemberID int64) error {
	if _, err := s.repo.GetByID(ctx, clientID); err != nil {
		return err
	}
	return s.repo.Assign(ctx, clientID, teamMemberID)
}

func (s *Service) ListActivities(ctx context.Context, clientID int64) ([]Activity, error) {
	if _, err := s.repo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListActivities(ctx, clientID)
}

func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*Activity, error) {
	if _, err := s.repo.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	activity := Activity{
		ClientID:    input.ClientID,
		Type:        strings.TrimSpace(input.Type),
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.repo.CreateActivity(ctx, &activity); err != nil {
		return nil, err
	}

	return &activity, nil
}

func (s *Service) ListRecentActivities(ctx context.Context, limit int) ([]ActivityWithClient, error) {
	if limit <= 0 {
		limit = s.feedLimit
	}
	return s.repo.ListRecentActivities(ctx, limit)
}

// usdMirror picks the explicit USD value when given, otherwise converts the
// original-currency amount. Stored mirrors are rounded to cents.
func usdMirror(amount decimal.Decimal, explicit *decimal.Decimal, feeCurrency string) decimal.Decimal {
	if explicit != nil {
		return roundMoney(*explicit)
	}
	return roundMoney(currency.ToUSD(amount, feeCurrency))
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
