package clients

import (
	"time"

	"studio-backoffice-go/internal/domain/team"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractMonthly ContractType = "monthly"
	ContractOneTime ContractType = "one-time"
)

func (c ContractType) Valid() bool {
	return c == ContractMonthly || c == ContractOneTime
}

// ProjectStatus is a closed enum; the set of statuses counted as "active" on
// the dashboard is configured separately.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusTesting    ProjectStatus = "Testing"
	StatusReview     ProjectStatus = "Review"
	StatusCompleted  ProjectStatus = "Completed"
	StatusPaused     ProjectStatus = "Paused"
)

func (p ProjectStatus) Valid() bool {
	switch p {
	case StatusPlanning, StatusInProgress, StatusTesting, StatusReview, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// Client is a business customer engagement. Money amounts carry a USD mirror
// derived from the fee currency at write time; counters track produced work
// against requested work.
type Client struct {
	ID                     int64           `gorm:"primaryKey;autoIncrement"`
	Name                   string          `gorm:"not null"`
	ContactPerson          string          `gorm:"not null"`
	Phone                  *string
	Country                string          `gorm:"not null"`
	CountryCode            string          `gorm:"not null"`
	ContractType           ContractType    `gorm:"type:text;not null;default:monthly"`
	ProjectStatus          ProjectStatus   `gorm:"type:text;not null;default:Planning"`
	ContractStartDate      time.Time       `gorm:"not null"`
	ExpectedCompletionDate time.Time       `gorm:"not null"`
	TotalProjectFee        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalProjectFeeUSD     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FeeCurrency            string          `gorm:"not null;default:USD"`
	AmountPaid             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	AmountPaidUSD          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalImagesToMake      int             `gorm:"not null;default:0"`
	ImagesMade             int             `gorm:"not null;default:0"`
	TotalJewelryArticles   int             `gorm:"not null;default:0"`
	JewelryArticlesMade    int             `gorm:"not null;default:0"`
	LogoURL                *string
	LastActivity           time.Time    `gorm:"not null"`
	CreatedAt              time.Time    `gorm:"autoCreateTime"`
	UpdatedAt              time.Time    `gorm:"autoUpdateTime"`
	Assignments            []Assignment `gorm:"foreignKey:ClientID"`
}

// Assignment attaches a team member to a client. The (client, member) pair is
// unique; assigning the same pair twice is a no-op.
type Assignment struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ClientID     int64           `gorm:"not null;index;uniqueIndex:uq_client_assignments_pair"`
	TeamMemberID int64           `gorm:"not null;uniqueIndex:uq_client_assignments_pair"`
	AssignedAt   time.Time       `gorm:"autoCreateTime"`
	TeamMember   team.TeamMember `gorm:"foreignKey:TeamMemberID"`
}

func (Assignment) TableName() string { return "client_assignments" }

// Activity is an append-only log entry tied to a client.
type Activity struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ClientID    int64     `gorm:"not null;index"`
	Type        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// ActivityWithClient joins the owning client's name for feed views.
type ActivityWithClient struct {
	Activity
	ClientName string
}

type CreateClientInput struct {
	Name                   string
	ContactPerson          string
	Phone                  *string
	Country                string
	CountryCode            string
	ContractType           ContractType
	ProjectStatus          ProjectStatus
	ContractStartDate      time.Time
	ExpectedCompletionDate time.Time
	TotalProjectFee        decimal.Decimal
	TotalProjectFeeUSD     *decimal.Decimal
	FeeCurrency            string
	AmountPaid             *decimal.Decimal
	AmountPaidUSD          *decimal.Decimal
	TotalImagesToMake      int
	ImagesMade             int
	TotalJewelryArticles   int
	JewelryArticlesMade    int
	LogoURL                *string
}

// UpdateClientInput merges onto an existing row; nil means "leave unchanged".
type UpdateClientInput struct {
	Name                   *string
	ContactPerson          *string
	Phone                  *string
	Country                *string
	CountryCode            *string
	ContractType           *ContractType
	ProjectStatus          *ProjectStatus
	ContractStartDate      *time.Time
	ExpectedCompletionDate *time.Time
	TotalProjectFee        *decimal.Decimal
	TotalProjectFeeUSD     *decimal.Decimal
	FeeCurrency            *string
	AmountPaid             *decimal.Decimal
	AmountPaidUSD          *decimal.Decimal
	TotalImagesToMake      *int
	ImagesMade             *int
	TotalJewelryArticles   *int
	JewelryArticlesMade    *int
	LogoURL                *string
	LastActivity           *time.Time
}

type CreateActivityInput struct {
	ClientID    int64
	Type        string
	Description string
}
