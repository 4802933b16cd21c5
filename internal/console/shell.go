package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mamadbah2/simcc/internal/domain/models"
	"github.com/mamadbah2/simcc/internal/service/reporting"
)

const banner = "--- SIMCC - Sugarcane Harvest Monitoring System ---"

// HarvestService is the set of operations the shell dispatches to.
type HarvestService interface {
	Register(ctx context.Context, producer string, area, volume float64) (models.HarvestRecord, error)
	Records(ctx context.Context) ([]models.HarvestListing, reporting.Summary, error)
	UpdateVolume(ctx context.Context, producer string, volume float64) (int64, error)
	Remove(ctx context.Context, producer string) (int64, error)
}

// Shell is the interactive menu loop.
type Shell struct {
	svc    HarvestService
	prompt *Prompter
	out    io.Writer
	styles palette
	clear  func()
	logger *zap.Logger
}

// NewShell wires a shell reading from in and writing to out.
func NewShell(svc HarvestService, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		svc:    svc,
		prompt: NewPrompter(in, out),
		out:    out,
		styles: newPalette(out),
		clear:  terminalClearer(out),
		logger: logger,
	}
}

// Run loops over the menu until the operator exits or the input ends.
// Operation failures are reported and never stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		answer, err := s.prompt.ReadLine("Choose an option: ")
		if err != nil {
			return s.endOfInput(err)
		}
		s.clear()

		option := models.ParseMenuOption(answer)
		s.logger.Debug("menu option selected", zap.String("option", string(option)))

		exit, err := s.Handle(ctx, option)
		if err != nil {
			return s.endOfInput(err)
		}
		if exit {
			return nil
		}

		if _, err := s.prompt.ReadLine("\nPress Enter to continue..."); err != nil {
			return s.endOfInput(err)
		}
		s.clear()
	}
}

// Handle executes one menu option. It reports true when the shell should exit.
// Only input errors are returned; store failures are printed.
func (s *Shell) Handle(ctx context.Context, option models.MenuOption) (bool, error) {
	switch option {
	case models.MenuAdd:
		return false, s.add(ctx)
	case models.MenuList:
		s.list(ctx)
		return false, nil
	case models.MenuUpdate:
		return false, s.update(ctx)
	case models.MenuDelete:
		return false, s.delete(ctx)
	case models.MenuExit:
		fmt.Fprintln(s.out, "Thank you for using SIMCC. Goodbye!")
		return true, nil
	default:
		fmt.Fprintln(s.out, s.styles.fail("Invalid option. Please try again."))
		return false, nil
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.heading(banner))
	for _, entry := range models.MenuEntries {
		fmt.Fprintf(s.out, "%s. %s\n", entry.Option, entry.Label)
	}
}

func (s *Shell) add(ctx context.Context) error {
	fmt.Fprintln(s.out, s.styles.heading("--- Add New Record ---"))

	producer, err := s.prompt.ReadLine("Producer name: ")
	if err != nil {
		return err
	}

	area, err := s.prompt.ReadNumber("Harvested area (ha): ", "Invalid value. Please enter a number for the area.", func(v float64) string {
		if v > 0 {
			return ""
		}
		return "The area must be a positive number."
	})
	if err != nil {
		return err
	}

	volume, err := s.prompt.ReadNumber("Harvested volume (t): ", "Invalid value. Please enter a number for the volume.", nonNegativeVolume)
	if err != nil {
		return err
	}

	record, err := s.svc.Register(ctx, producer, area, volume)
	if err != nil {
		s.report("Error saving record", err)
		return nil
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.ok(fmt.Sprintf("Record saved successfully! Loss: %.1f%% (%s).", record.Loss*100, record.Efficiency)))
	return nil
}

func (s *Shell) list(ctx context.Context) {
	listings, summary, err := s.svc.Records(ctx)
	if err != nil {
		s.report("Error querying records", err)
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.heading("--- Harvest Records ---"))
	if len(listings) == 0 {
		fmt.Fprintln(s.out, "No records found.")
		return
	}

	fmt.Fprintln(s.out, s.styles.renderListing(listings))
	fmt.Fprintln(s.out, summary.String())
}

func (s *Shell) update(ctx context.Context) error {
	fmt.Fprintln(s.out, s.styles.heading("--- Update Record ---"))

	producer, err := s.prompt.ReadLine("Producer to update: ")
	if err != nil {
		return err
	}

	label := fmt.Sprintf("New harvested volume (t) for %s: ", producer)
	volume, err := s.prompt.ReadNumber(label, "Invalid value. Please enter a number.", nonNegativeVolume)
	if err != nil {
		return err
	}

	affected, err := s.svc.UpdateVolume(ctx, producer, volume)
	if err != nil {
		s.report("Error updating records", err)
		return nil
	}

	fmt.Fprintln(s.out)
	if affected == 0 {
		fmt.Fprintln(s.out, s.styles.warn(fmt.Sprintf("No records found for producer '%s'. Nothing was changed.", producer)))
		return nil
	}
	fmt.Fprintln(s.out, s.styles.ok(fmt.Sprintf("Records of producer '%s' updated (%d rows).", producer, affected)))
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	fmt.Fprintln(s.out, s.styles.heading("--- Delete Records ---"))

	producer, err := s.prompt.ReadLine("Producer to delete: ")
	if err != nil {
		return err
	}

	confirmed, err := s.prompt.Confirm(fmt.Sprintf("Delete ALL records of '%s'?", producer))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(s.out, "Operation cancelled.")
		return nil
	}

	affected, err := s.svc.Remove(ctx, producer)
	if err != nil {
		s.report("Error deleting records", err)
		return nil
	}

	fmt.Fprintln(s.out)
	if affected == 0 {
		fmt.Fprintln(s.out, s.styles.warn(fmt.Sprintf("No records found for producer '%s'.", producer)))
		return nil
	}
	fmt.Fprintln(s.out, s.styles.ok(fmt.Sprintf("Records of producer '%s' deleted (%d rows).", producer, affected)))
	return nil
}

func (s *Shell) report(action string, err error) {
	s.logger.Error(action, zap.Error(err))
	fmt.Fprintln(s.out, s.styles.fail(fmt.Sprintf("%s: %v", action, err)))
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func nonNegativeVolume(v float64) string {
	if v >= 0 {
		return ""
	}
	return "The volume cannot be negative."
}
