package services

import (
	"sort"
	"time"

	"statement-analyzer/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	DefaultGeneratedCount = 600
	DefaultGeneratedDays  = 180

	minGeneratedAmount = -1500.00
	maxGeneratedAmount = 1500.00
	namePoolSize       = 120
	namePoolAttempts   = 2000
)

var (
	shopCounterparties = []string{"Walmart", "Target", "Starbucks", "CVS", "7-Eleven"}
	atmCounterparties  = []string{"Chase", "Wells Fargo", "Capital One", "TD Bank", "Bank of America"}
)

type transactionGenerator struct {
	faker     *gofakeit.Faker
	namePool  []string
	shopsPool []string
	atmsPool  []string
}

// NewTransactionGenerator creates a new statement generator. A zero seed
// draws a random one.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	faker := gofakeit.New(seed)
	return &transactionGenerator{
		faker:     faker,
		namePool:  initializeNamePool(faker),
		shopsPool: shopCounterparties,
		atmsPool:  atmCounterparties,
	}
}

// initializeNamePool collects distinct first names. People only ever appear
// once in a generated statement, so they end up as single payments.
func initializeNamePool(faker *gofakeit.Faker) []string {
	seen := make(map[string]struct{}, namePoolSize)
	for _, name := range append(append([]string{}, shopCounterparties...), atmCounterparties...) {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, namePoolSize)
	for i := 0; i < namePoolAttempts && len(names) < namePoolSize; i++ {
		name := faker.FirstName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// GetCounterpartyPool returns every shop, ATM and person the generator can use
func (g *transactionGenerator) GetCounterpartyPool() []string {
	pool := make([]string, 0, len(g.shopsPool)+len(g.atmsPool)+len(g.namePool))
	pool = append(pool, g.shopsPool...)
	pool = append(pool, g.atmsPool...)
	pool = append(pool, g.namePool...)
	return pool
}

// SelectRandomCounterparty picks any counterparty from the pool
func (g *transactionGenerator) SelectRandomCounterparty() string {
	return g.faker.RandomString(g.GetCounterpartyPool())
}

// GenerateAmount draws a signed amount uniformly from [-1500, 1500]
func (g *transactionGenerator) GenerateAmount() decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(minGeneratedAmount, maxGeneratedAmount)).Round(models.AmountPlaces)
}

// GenerateDate draws a calendar date within [startDate, endDate]
func (g *transactionGenerator) GenerateDate(startDate, endDate time.Time) time.Time {
	return models.CalendarDate(g.faker.DateRange(startDate, endDate))
}

// GenerateLedger builds count transactions dated between startDate and
// endDate, sorted by date. Even rows are shops or ATMs, odd rows are people
// drawn without replacement until the name pool runs dry.
func (g *transactionGenerator) GenerateLedger(startDate, endDate time.Time, count int) models.Ledger {
	remaining := append([]string(nil), g.namePool...)
	ledger := make(models.Ledger, 0, count)

	for i := 0; i < count; i++ {
		var details string
		switch {
		case i%2 == 0 && i%3 == 0:
			details = g.faker.RandomString(g.shopsPool)
		case i%2 == 0:
			details = g.faker.RandomString(g.atmsPool)
		case len(remaining) == 0:
			details = g.faker.RandomString(g.shopsPool)
		default:
			n := g.faker.IntRange(0, len(remaining)-1)
			details = remaining[n]
			remaining = append(remaining[:n], remaining[n+1:]...)
		}

		ledger = append(ledger, models.NewTransaction(
			g.GenerateDate(startDate, endDate),
			details,
			g.GenerateAmount(),
		))
	}

	sort.SliceStable(ledger, func(a, b int) bool {
		return ledger[a].Date.Before(ledger[b].Date)
	})

	return ledger
}
