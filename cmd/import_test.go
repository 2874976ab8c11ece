package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// writeTempFile creates a file with the given content in a fresh temp dir.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestImportBrokerExport(t *testing.T) {
	// Arrange
	exportFile := writeTempFile(t, "TransactionHistory.csv", `TextDate,Summary,MarketName,Transaction type,PL Amount
12/05/2023,,Card payment - Visa,DEPO,"1,000.00"
15/05/2023,Share Dealing,TELSTRA GROUP LTDCONS 127@229 ABC123,WITH,-290.83
`)
	tempLedgerFile := filepath.Join(t.TempDir(), "transactions.jsonl")

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{exportFile})

	// Override global ledgerFile for the test
	oldLedgerFile := ledgerFile
	ledgerFile = &tempLedgerFile
	defer func() { ledgerFile = oldLedgerFile }()

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	gotContent, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	want := `{"command":"deposit","date":"2023-05-12","currency":"AUD","amount":1000}
{"command":"buy","date":"2023-05-15","symbol":"TELSTRA GROUP LTD","quantity":127,"currency":"AUD","price":2.29}
`
	if string(gotContent) != want {
		t.Errorf("Ledger mismatch.\nGot:\n%s\nWant:\n%s", string(gotContent), want)
	}
}

func TestImportNormalizedTable(t *testing.T) {
	// Arrange
	tableFile := writeTempFile(t, "table.csv", `date,symbol,action,quantity,price
2024-01-10,WDS,Buy,10,100
2024-01-02,CASH_DEPOSIT,Cash_In,1,5000
`)
	tempLedgerFile := filepath.Join(t.TempDir(), "transactions.jsonl")

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{tableFile})

	oldLedgerFile := ledgerFile
	ledgerFile = &tempLedgerFile
	defer func() { ledgerFile = oldLedgerFile }()

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	gotContent, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	want := `{"command":"deposit","date":"2024-01-02","currency":"AUD","amount":5000}
{"command":"buy","date":"2024-01-10","symbol":"WDS","quantity":10,"currency":"AUD","price":100}
`
	if string(gotContent) != want {
		t.Errorf("Ledger mismatch.\nGot:\n%s\nWant:\n%s", string(gotContent), want)
	}
}

func TestImportMergeAppendsToLedger(t *testing.T) {
	// Arrange
	existingLedger := `{"command":"deposit","date":"2024-01-02","currency":"AUD","amount":5000}
`
	tempLedgerFile := createTempLedger(t, existingLedger)
	tableFile := writeTempFile(t, "table.csv", `date,symbol,action,quantity,price
2024-01-10,WDS,Buy,10,100
`)

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("merge", "true")
	f.Parse([]string{tableFile})

	oldLedgerFile := ledgerFile
	ledgerFile = &tempLedgerFile
	defer func() { ledgerFile = oldLedgerFile }()

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	gotContent, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	want := `{"command":"deposit","date":"2024-01-02","currency":"AUD","amount":5000}
{"command":"buy","date":"2024-01-10","symbol":"WDS","quantity":10,"currency":"AUD","price":100}
`
	if string(gotContent) != want {
		t.Errorf("Ledger mismatch.\nGot:\n%s\nWant:\n%s", string(gotContent), want)
	}
}

func TestImportWithoutMergeReplacesLedger(t *testing.T) {
	// Arrange
	existingLedger := `{"command":"deposit","date":"2024-01-02","currency":"AUD","amount":5000}
`
	tempLedgerFile := createTempLedger(t, existingLedger)
	tableFile := writeTempFile(t, "table.csv", `date,symbol,action,quantity,price
2024-01-10,WDS,Buy,10,100
`)

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{tableFile})

	oldLedgerFile := ledgerFile
	ledgerFile = &tempLedgerFile
	defer func() { ledgerFile = oldLedgerFile }()

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	gotContent, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	want := `{"command":"buy","date":"2024-01-10","symbol":"WDS","quantity":10,"currency":"AUD","price":100}
`
	if string(gotContent) != want {
		t.Errorf("Ledger mismatch.\nGot:\n%s\nWant:\n%s", string(gotContent), want)
	}
}

func TestImportUnclassifiableRowFails(t *testing.T) {
	// Arrange
	exportFile := writeTempFile(t, "TransactionHistory.csv", `TextDate,Summary,MarketName,Transaction type,PL Amount
12/05/2023,Other,GIBBERISH,DEPO,5.00
`)
	tempLedgerFile := filepath.Join(t.TempDir(), "transactions.jsonl")

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{exportFile})

	oldLedgerFile := ledgerFile
	ledgerFile = &tempLedgerFile
	defer func() { ledgerFile = oldLedgerFile }()

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
	if _, err := os.Stat(tempLedgerFile); !os.IsNotExist(err) {
		t.Errorf("A failed import should not write the ledger file")
	}
}

func TestImportWithoutArgumentsIsAUsageError(t *testing.T) {
	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}
