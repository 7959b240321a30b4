package services

import (
	"sort"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	paymentDay        = 15
	interestPostDay   = 28
	maxMonthlyCharges = 4
	minChargeAmount   = 15.00
	maxChargeAmount   = 250.00
	floorPayment      = 25.00
)

var (
	minimumPaymentRate = decimal.RequireFromString("0.03")
	monthsPerYear      = decimal.NewFromInt(12)
	hundred            = decimal.NewFromInt(100)
)

type ledgerHistoryGenerator struct {
	faker *gofakeit.Faker
}

// NewLedgerHistoryGenerator creates a generator. A zero seed picks a random one.
func NewLedgerHistoryGenerator(seed uint64) LedgerHistoryGeneratorInterface {
	return &ledgerHistoryGenerator{faker: gofakeit.New(seed)}
}

type plannedEntry struct {
	date     time.Time
	kind     models.TransactionType
	amount   decimal.Decimal
	merchant string
}

func (g *ledgerHistoryGenerator) GenerateHistory(account *models.Account, from, to time.Time) ([]models.Transaction, decimal.Decimal) {
	balance := account.CurrentBalance
	if account.OpeningBalance.Valid {
		balance = account.OpeningBalance.Decimal
	}

	from = models.DateOf(from)
	to = models.DateOf(to)
	transactions := []models.Transaction{}
	if to.Before(from) {
		return transactions, balance
	}

	for month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(to); month = month.AddDate(0, 1, 0) {
		for _, entry := range g.planMonth(account, month) {
			if entry.date.Before(from) || entry.date.After(to) {
				continue
			}

			amount := g.settle(account, entry, balance)
			if !amount.IsPositive() {
				continue
			}

			if entry.kind == models.TransactionTypePayment {
				balance = balance.Sub(amount)
			} else {
				balance = balance.Add(amount)
			}

			transactions = append(transactions, models.Transaction{
				AccountID:       account.ID,
				TransactionType: entry.kind,
				Amount:          amount,
				TransactionDate: entry.date,
				Description:     describe(entry),
			})
		}
	}

	return transactions, balance
}

// planMonth lays out one month of entries; amounts that depend on the running balance are settled later
func (g *ledgerHistoryGenerator) planMonth(account *models.Account, month time.Time) []plannedEntry {
	entries := []plannedEntry{
		{date: month.AddDate(0, 0, paymentDay-1), kind: models.TransactionTypePayment},
		{date: month.AddDate(0, 0, interestPostDay-1), kind: models.TransactionTypeInterest},
	}

	if account.AccountType == models.AccountTypeCreditCard || account.AccountType == models.AccountTypeLineOfCredit {
		for i := g.faker.IntRange(0, maxMonthlyCharges); i > 0; i-- {
			entries = append(entries, plannedEntry{
				date:     month.AddDate(0, 0, g.faker.IntRange(0, interestPostDay-1)),
				kind:     models.TransactionTypeCharge,
				amount:   decimal.NewFromFloat(g.faker.Float64Range(minChargeAmount, maxChargeAmount)).Round(2),
				merchant: g.faker.Company(),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})
	return entries
}

func (g *ledgerHistoryGenerator) settle(account *models.Account, entry plannedEntry, balance decimal.Decimal) decimal.Decimal {
	switch entry.kind {
	case models.TransactionTypeCharge:
		return entry.amount
	case models.TransactionTypeInterest:
		return balance.Mul(account.InterestRate).Div(hundred).Div(monthsPerYear).Round(2)
	case models.TransactionTypePayment:
		if !balance.IsPositive() {
			return decimal.Zero
		}
		payment := balance.Mul(minimumPaymentRate)
		if account.MinimumPayment.Valid && account.MinimumPayment.Decimal.GreaterThan(payment) {
			payment = account.MinimumPayment.Decimal
		}
		payment = decimal.Max(payment, decimal.NewFromFloat(floorPayment))
		extra := balance.Mul(decimal.NewFromFloat(g.faker.Float64Range(0, 0.05)))
		return decimal.Min(payment.Add(extra), balance).Round(2)
	default:
		return decimal.Zero
	}
}

func describe(entry plannedEntry) string {
	switch entry.kind {
	case models.TransactionTypeCharge:
		return "Purchase at " + entry.merchant
	case models.TransactionTypeInterest:
		return "Monthly interest charge"
	default:
		return "Scheduled payment"
	}
}
