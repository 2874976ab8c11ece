// Package folio provides the functions and types to manage a share dealing
// account from its transaction history. It is designed to be local-first and
// auditable: the ledger is a plain JSONL file that can be read, edited and
// version-controlled by its owner.
//
// The core functionalities include:
//   - Ledger Management: Recording all account transactions (buys, sells,
//     dividends, deposits, withdrawals and commissions) in a canonical,
//     chronologically sorted record.
//   - Accounting: A stateless engine that replays the ledger to compute
//     positions, average costs, first-in-first-out realized gains and
//     dividend histories.
//   - Pricing: Quote sources (EODHD, Tradegate, or a static price table)
//     behind a shared cache, used to value holdings and performance
//     histories.
//   - Reports: Summary, holdings, dividends, history and sector views over
//     the ledger, ready to be rendered.
//   - Data Interchange: Encoding and decoding of ledgers and symbol
//     directories to human-readable formats (JSONL, CSV).
//
// This package serves as the foundational logic for the `fcs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package folio
