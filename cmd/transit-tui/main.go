// transit-tui books a ticket from the terminal. It walks the same booking
// wizard as the web screens and prints the ticket when the booking is
// confirmed.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"transit/internal/repositories"
	"transit/internal/services"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var catalogPath string
	var logOutput string
	var altScreen bool

	flagSet := pflag.NewFlagSet("transit-tui", pflag.ContinueOnError)
	flagSet.StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in data)")
	flagSet.StringVar(&logOutput, "log-output", "", "append log lines to this file instead of discarding them")
	flagSet.BoolVar(&altScreen, "alt-screen", false, "run in the terminal's alternate screen")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		fmt.Fprintf(os.Stdout, "Usage: transit-tui [flags]\n\n%s", flagSet.FlagUsages())
		return nil
	}

	// Log lines would tear the TUI, so they go to a file or nowhere.
	log.SetOutput(io.Discard)
	if logOutput != "" {
		f, err := os.OpenFile(logOutput, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	catalog := repositories.CatalogRepository{}
	if catalogPath != "" {
		c, err := repositories.LoadCatalogFile(catalogPath)
		if err != nil {
			return err
		}
		catalog.Catalog = c
	}

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newModel(catalog, services.TicketService{Catalog: catalog}), opts...).Run()
	if err != nil {
		return fmt.Errorf("run booking: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.ticket == nil {
		fmt.Println("Booking cancelled.")
		return nil
	}
	fmt.Println(renderTicket(*m.ticket))
	fmt.Println(services.NoticeBooked)
	return nil
}
