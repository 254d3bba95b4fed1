package report

import "math"

// maxMonths caps the time expectancy simulation at a hundred years.
const maxMonths = 1200

// Rates is an annual inflation and return on investment pair, in percent.
type Rates struct {
	Inflation float64
	ROI       float64
}

// ExpectancyRates are the scenarios reported under metrics.
var ExpectancyRates = []Rates{
	{10, -10},
	{10, -5},
	{10, 0},
	{5, -5},
	{5, 0},
	{5, 5},
	{5, 6},
	{5, 7},
	{5, 9},
}

// Expectancy is how long the owned sum lasts under a scenario.
type Expectancy struct {
	Rates
	Months float64
	// Capped is set when the money outlives the simulation.
	Capped bool
}

// Metrics are the derived lifetime figures.
type Metrics struct {
	// Flat is how many months net worth covers the trailing spending,
	// without inflation or returns.
	Flat float64
	// YieldCoverage is the percentage of the trailing spending a 2% yield
	// on the owned sum would pay for.
	YieldCoverage float64
	Expectancies  []Expectancy
}

func computeMetrics(s *Summary) Metrics {
	owned := math.Min(s.PositiveSum, s.Holdings)
	m := Metrics{
		Flat:          s.Net / s.Spent12 * 12,
		YieldCoverage: owned * 0.02 / s.Spent12 * 100,
	}
	for _, r := range ExpectancyRates {
		m.Expectancies = append(m.Expectancies, expectancy(r, owned, s.Fiat, s.Spent12/12))
	}
	return m
}

// expectancy simulates spending down total month by month. Spending grows
// with inflation; the invested part, capped at what is left, grows with the
// return rate.
func expectancy(r Rates, total, fiat, monthCost float64) Expectancy {
	inflation := math.Pow(1+r.Inflation*0.01, 1.0/12)
	roi := math.Pow(1+r.ROI*0.01, 1.0/12)

	invested := total - fiat
	months := 0.0
	for months < maxMonths {
		if !(total > monthCost) {
			months += total / monthCost
			return Expectancy{Rates: r, Months: months}
		}
		total -= monthCost
		monthCost *= inflation
		months++

		invested = math.Min(invested, total)
		total -= invested
		invested *= roi
		total += invested
	}
	return Expectancy{Rates: r, Months: maxMonths, Capped: true}
}
