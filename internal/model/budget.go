package model

// Income is one recorded income source.
type Income struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

// BudgetCategory is a planned allocation, not an actual spend.
type BudgetCategory struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

// Expense is one actual spend. The json tag for Name is "expense" to
// stay compatible with the historical budget document layout.
type Expense struct {
	ID     string  `json:"id"`
	Name   string  `json:"expense"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color"`
	Date   Date    `json:"date"`
}

// Ledger is the combined budget document: three independent
// append-only sequences stored under one collection key.
type Ledger struct {
	Incomes  []Income         `json:"incomes"`
	Budgets  []BudgetCategory `json:"budgets"`
	Expenses []Expense        `json:"expenses"`
}
