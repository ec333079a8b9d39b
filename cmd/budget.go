package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

var (
	flagIncomeSource string
	flagIncomeAmount float64

	flagCategoryName   string
	flagCategoryAmount float64
	flagCategoryColor  string

	flagExpenseName   string
	flagExpenseAmount float64
	flagExpenseColor  string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Financial summary sheet",
	RunE:  runBudget,
}

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Log an income",
	RunE:  runIncome,
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Add a planned budget category",
	RunE:  runCategory,
}

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Log an expense",
	RunE:  runExpense,
}

func init() {
	incomeCmd.Flags().StringVar(&flagIncomeSource, "source", "", "Income source name")
	incomeCmd.Flags().Float64Var(&flagIncomeAmount, "amount", 0, "Income amount")

	categoryCmd.Flags().StringVar(&flagCategoryName, "name", "", "Category name")
	categoryCmd.Flags().Float64Var(&flagCategoryAmount, "amount", 0, "Planned amount")
	categoryCmd.Flags().StringVar(&flagCategoryColor, "color", "#b3e5fc", "Color tag")

	expenseCmd.Flags().StringVar(&flagExpenseName, "name", "", "Expense name")
	expenseCmd.Flags().Float64Var(&flagExpenseAmount, "amount", 0, "Expense amount")
	expenseCmd.Flags().StringVar(&flagExpenseColor, "color", "#ffccbc", "Color tag")

	budgetCmd.AddCommand(incomeCmd)
	budgetCmd.AddCommand(categoryCmd)
	budgetCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	w, st, cfg, err := openWorkspace()
	if err != nil {
		return err
	}
	symbol := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET TRACKER"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Financial Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Income", cli.FormatMoney(symbol, planner.TotalIncome(w.Ledger))},
			{"Total Expenses", cli.FormatMoney(symbol, planner.TotalExpenses(w.Ledger))},
			{"Budgeted", cli.FormatMoney(symbol, planner.TotalBudgeted(w.Ledger))},
			{"Net Balance", cli.FormatMoney(symbol, planner.Balance(w.Ledger))},
		},
	}))

	if len(w.Ledger.Incomes) > 0 {
		fmt.Println()
		fmt.Println("  " + cli.Muted("Your incomes"))
		for _, in := range w.Ledger.Incomes {
			fmt.Printf("  • %s — %s\n", in.Source, cli.FormatMoney(symbol, in.Amount))
		}
	}

	if len(w.Ledger.Budgets) > 0 {
		fmt.Println()
		fmt.Println("  " + cli.Muted("Planned allocations"))
		for _, b := range w.Ledger.Budgets {
			fmt.Printf("  • %s — %s\n", b.Category, cli.FormatMoney(symbol, b.Amount))
		}
	}

	slices := planner.ExpenseSlices(w.Ledger.Expenses)
	if len(slices) > 0 {
		fmt.Println()
		fmt.Println("  " + cli.Muted("Expense Breakdown"))
		fmt.Print(cli.RenderBreakdown(symbol, slices, 72))
	} else {
		fmt.Println()
		fmt.Println(cli.Muted("  No expenses yet — log some to see a breakdown."))
	}
	fmt.Println()

	return finish(w, st)
}

func runIncome(_ *cobra.Command, _ []string) error {
	w, st, cfg, err := openWorkspace()
	if err != nil {
		return err
	}

	outcome, err := w.AddIncome(flagIncomeSource, flagIncomeAmount)
	if err != nil {
		return err
	}
	if outcome == planner.Created {
		fmt.Printf("  Added income: %s — %s\n", flagIncomeSource, cli.FormatMoney(cfg.General.Currency, flagIncomeAmount))
	}

	return finish(w, st)
}

func runCategory(_ *cobra.Command, _ []string) error {
	w, st, cfg, err := openWorkspace()
	if err != nil {
		return err
	}

	outcome, err := w.AddBudgetCategory(flagCategoryName, flagCategoryAmount, flagCategoryColor)
	if err != nil {
		return err
	}
	if outcome == planner.Created {
		fmt.Printf("  Added category: %s — %s\n", flagCategoryName, cli.FormatMoney(cfg.General.Currency, flagCategoryAmount))
	}

	return finish(w, st)
}

func runExpense(_ *cobra.Command, _ []string) error {
	w, st, cfg, err := openWorkspace()
	if err != nil {
		return err
	}

	outcome, err := w.AddExpense(flagExpenseName, flagExpenseAmount, flagExpenseColor, model.Today())
	if err != nil {
		return err
	}
	if outcome == planner.Created {
		fmt.Printf("  Logged expense: %s — %s\n", flagExpenseName, cli.FormatMoney(cfg.General.Currency, flagExpenseAmount))
	}

	return finish(w, st)
}
