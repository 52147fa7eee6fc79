package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"utility-calculator/internal/config"
	"utility-calculator/internal/console"
	"utility-calculator/internal/grpc"
	"utility-calculator/internal/logger"
)

var (
	address  string
	login    string
	password string
	register bool
	dir      string

	rootCmd = &cobra.Command{
		Use:   "calculator_console",
		Short: "Terminal client for the utility calculator",
		Long: `Connects to the calculator server over gRPC and drives your session from the keyboard.

Type digits and operators on the display, Tab between the exponent, list and
remove fields, and use ctrl-key shortcuts for list operations.`,
		PreRun: func(cmd *cobra.Command, _ []string) {
			config.InitConfig(".env")
			logger.Init(config.AppConfig.LogFilePath)
			if !cmd.Flags().Changed("addr") {
				address = config.AppConfig.GRPCAddress
			}
		},
		RunE: run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&address, "addr", "localhost:8081", "gRPC server address (default from GRPC_ADDRESS)")
	rootCmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	rootCmd.Flags().BoolVar(&register, "register", false, "create the account before logging in")
	rootCmd.Flags().StringVar(&dir, "export-dir", ".", "directory for exported error logs")
	_ = rootCmd.MarkFlagRequired("login")
	_ = rootCmd.MarkFlagRequired("password")
}

func run(_ *cobra.Command, _ []string) error {
	// В консольном режиме логи мешают интерфейсу
	if config.AppConfig.LogFilePath == "" {
		logger.InitDiscard()
	}
	defer logger.CloseLogger()

	client, err := grpc.NewCalculatorClient(address, config.AppConfig.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer client.Close()

	if register {
		if err := client.Register(login, password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
	}
	if err := client.Login(login, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	_, err = tea.NewProgram(console.New(client, dir)).Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
