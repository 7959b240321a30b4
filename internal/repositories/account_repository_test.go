package repositories

import (
	"testing"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/database"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    AccountRepositoryInterface
	ownerID uuid.UUID
}

func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ownerID = uuid.New()
}

func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) newAccount(name string) *models.Account {
	return &models.Account{
		UserID:         s.ownerID,
		Name:           name,
		AccountType:    models.AccountTypeLoan,
		OpeningBalance: decimal.NewNullDecimal(decimal.NewFromInt(12000)),
		CurrentBalance: decimal.NewFromInt(11500),
		InterestRate:   decimal.RequireFromString("6.5"),
		MinimumPayment: decimal.NewNullDecimal(decimal.NewFromInt(300)),
	}
}

func (s *AccountRepositorySuite) TestCreate() {
	account := s.newAccount("Auto Loan")

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal(models.AccountStatusActive, account.Status)
	s.NotZero(account.CreatedAt)
}

func (s *AccountRepositorySuite) TestCreate_InvalidInterestRate() {
	account := s.newAccount("Payday Loan")
	account.InterestRate = decimal.NewFromInt(400)

	err := s.repo.Create(account)
	s.ErrorIs(err, models.ErrInvalidInterestRate)
}

func (s *AccountRepositorySuite) TestGetByID() {
	account := s.newAccount("Auto Loan")
	s.Require().NoError(s.repo.Create(account))

	found, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal(account.Name, found.Name)
	s.True(found.OpeningBalance.Valid)
	s.True(decimal.NewFromInt(12000).Equal(found.OpeningBalance.Decimal))
	s.True(decimal.NewFromInt(11500).Equal(found.CurrentBalance))
}

func (s *AccountRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestUpdate() {
	account := s.newAccount("Auto Loan")
	s.Require().NoError(s.repo.Create(account))

	account.Status = models.AccountStatusClosed
	account.CurrentBalance = decimal.Zero
	s.Require().NoError(s.repo.Update(account))

	found, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusClosed, found.Status)
	s.True(found.CurrentBalance.IsZero())
}
