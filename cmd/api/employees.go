package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/employee-portal/internal/format"
	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/store"
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Print the seed employee dataset",
	RunE:  runEmployees,
}

var (
	employeesLang string
	employeesJSON bool
)

func init() {
	employeesCmd.Flags().StringVar(&employeesLang, "lang", localization.DefaultLanguage, "Language of the column headers")
	employeesCmd.Flags().BoolVar(&employeesJSON, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(employeesCmd)
}

func runEmployees(cmd *cobra.Command, _ []string) error {
	return printEmployees(cmd.OutOrStdout(), employeesLang, employeesJSON)
}

func printEmployees(out io.Writer, lang string, asJSON bool) error {
	employees := store.SeedEmployees()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(employees)
	}

	catalog, err := localization.NewCatalog(lang, nil)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	code, ok := catalog.Match(lang)
	if !ok {
		return fmt.Errorf("language %q not supported", lang)
	}
	l := catalog.Localizer(code)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		l.T("firstName"), l.T("lastName"), l.T("dateOfEmployment"), l.T("dateOfBirth"),
		l.T("phoneNumber"), l.T("email"), l.T("department"), l.T("position"))
	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.FirstName, e.LastName,
			format.FormatDate(e.DateOfEmployment), format.FormatDate(e.DateOfBirth),
			e.PhoneNumber, e.Email, e.Department, e.Position)
	}
	return w.Flush()
}
