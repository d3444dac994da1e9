package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "report",
	Short:         "Fluffy Bakes sales analytics dashboard",
	Long:          "Gera o painel de vendas da Fluffy Bakes a partir da fonte configurada (SALES_SOURCE) sem subir o servidor HTTP.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
