// Package console drives the clinic records through a line-oriented text
// menu. It is the only package that talks to the user.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/metrics"
	"github.com/openclintech/go-clinic-records/internal/pharmacy"
	"github.com/openclintech/go-clinic-records/internal/schedule"
	"github.com/openclintech/go-clinic-records/internal/storage"
)

// errEndOfInput unwinds the menus when the input is exhausted.
var errEndOfInput = errors.New("end of input")

type Deps struct {
	Patients storage.PatientStore
	Staff    storage.StaffStore
	Book     *schedule.Book
	Catalog  *pharmacy.Catalog
	Metrics  *metrics.Collector
	Logger   *zap.Logger
}

type Controller struct {
	d   Deps
	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger
}

func New(d Deps, in io.Reader, out io.Writer) *Controller {
	l := d.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Controller{
		d:   d,
		in:  bufio.NewScanner(in),
		out: out,
		log: l.With(zap.String("session_id", uuid.NewString())),
	}
}

const mainMenu = `
===== MAIN MENU =====
1. Patient Management
2. Staff Management
3. Appointment Management
4. Pharmacy
5. Exit
Enter choice: `

// Run shows the main menu until the user exits or the input ends.
func (c *Controller) Run() error {
	c.log.Info("console session started")
	defer c.log.Info("console session ended")

	c.printf("\n===== Welcome to Hospital Management System =====\n")
	for {
		choice, ok, err := c.promptInt(mainMenu)
		if err != nil {
			return c.finish(err)
		}
		if !ok {
			c.printf("Invalid option.\n")
			continue
		}

		switch choice {
		case 1:
			err = c.patientMenu()
		case 2:
			err = c.staffMenu()
		case 3:
			err = c.appointmentMenu()
		case 4:
			err = c.pharmacyMenu()
		case 5:
			c.printf("Goodbye!\n")
			return nil
		default:
			c.printf("Invalid option.\n")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Controller) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

func (c *Controller) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSuffix(c.in.Text(), "\r"), nil
}

func (c *Controller) prompt(label string) (string, error) {
	c.printf("%s", label)
	return c.readLine()
}

// promptInt reads a number. ok is false when the line is not an integer.
func (c *Controller) promptInt(label string) (n int, ok bool, err error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

type field struct {
	label string
	dst   *string
}

func (c *Controller) promptFields(fields ...field) error {
	for _, f := range fields {
		v, err := c.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
