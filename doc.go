// Package fintrack implements a personal finance tracker: bank account
// ledgers with balance histories, stock positions with purchase and
// dividend logs, and portfolio valuation against date-indexed price
// series.
//
// The domain model is append-only. Positions and accounts record events
// (purchases, dividends, balance changes) and derive everything else
// (owned quantity, brokerage fees, cost basis, profit) from the logs.
// Persistence, market data fetching and rendering live in the store,
// alphavantage and renderer sub-packages.
package fintrack
