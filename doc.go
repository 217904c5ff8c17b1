// Package warung implements the bookkeeping core of a small-retail
// management tool: product and stock tracking, point-of-sale transaction
// entry, customer debt ledgers, and the read-side reports built on top of
// them.
//
// All state lives in a single in-memory Store owned by the caller. Every
// mutation goes through a typed operation that keeps the four denormalized
// collections (products, stock logs, transactions, debts) mutually
// consistent: stock changes produce matching StockLog entries, unpaid
// transactions grow the customer's Debt, and each Debt's running balance is
// updated atomically with every appended DebtTransaction.
//
// Persistence is a best-effort mirror: the Store is serialized to a set of
// JSON documents in a data directory, one per collection, debounced so a
// burst of mutations becomes a single write. The in-memory state stays
// authoritative even when a mirror write fails.
package warung
