package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Brydon13/vaultguard/internal/generator"
	"github.com/Brydon13/vaultguard/internal/vault"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive vault shell",
	Long: `Start the interactive shell. This is also what runs when vaultguard is
invoked without a command.

Logged out:  register, login, help, exit
Logged in:   view, add, edit, get, delete, logout, help, exit`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	sh := newShell(app.mgr, cmd.InOrStdin(), cmd.OutOrStdout(), app.logger,
		rate.NewLimiter(rate.Limit(app.cfg.Login.Rate), app.cfg.Login.Burst),
		app.cfg.Generator.Length)
	return sh.run(cmd.Context())
}

// shell is the interactive menu loop. It is the only caller that keeps a
// session across commands.
type shell struct {
	mgr     *vault.Manager
	p       *prompter
	out     io.Writer
	logger  *slog.Logger
	limiter *rate.Limiter
	genLen  int
	session *vault.Session
}

func newShell(mgr *vault.Manager, in io.Reader, out io.Writer, logger *slog.Logger, limiter *rate.Limiter, genLen int) *shell {
	return &shell{
		mgr:     mgr,
		p:       newPrompter(in, out),
		out:     out,
		logger:  logger,
		limiter: limiter,
		genLen:  genLen,
	}
}

// run loops until exit, end of input or ctx cancellation. The session is
// always logged out on return.
func (sh *shell) run(ctx context.Context) error {
	defer func() { sh.session.Logout() }()

	fmt.Fprintln(sh.out, "Welcome to VaultGuard!")

	for {
		var prompt string
		if sh.session.Active() {
			fmt.Fprintf(sh.out, "\nLogged in as %s\n", Bold(sh.session.Username))
			prompt = "Choose an action (enter 'help' for all commands): "
		} else {
			prompt = "\nType register, login, help, or exit: "
		}

		line, err := sh.p.Line(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(sh.out)
			return nil
		}
		if err != nil {
			return err
		}

		exit, err := sh.dispatch(ctx, line)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(sh.out)
			return nil
		}
		if err != nil {
			return err
		}
		if exit {
			fmt.Fprintln(sh.out, "\nGoodbye!")
			return nil
		}
	}
}

func (sh *shell) dispatch(ctx context.Context, command string) (exit bool, err error) {
	if command == "exit" {
		return true, nil
	}
	if command == "help" {
		sh.help()
		return false, nil
	}

	if !sh.session.Active() {
		switch command {
		case "register":
			return false, sh.register()
		case "login":
			return false, sh.login(ctx)
		default:
			Warning(sh.out, "Invalid option. Try again.")
		}
		return false, nil
	}

	switch command {
	case "view":
		return false, sh.view()
	case "add":
		return false, sh.add()
	case "edit":
		return false, sh.edit()
	case "get":
		return false, sh.get()
	case "delete":
		return false, sh.remove()
	case "logout":
		sh.session.Logout()
		sh.session = nil
		Info(sh.out, "You have been logged out.")
	default:
		Warning(sh.out, "Invalid command. Type 'help' to see all options.")
	}
	return false, nil
}

func (sh *shell) help() {
	if sh.session.Active() {
		fmt.Fprintln(sh.out, "\nAvailable commands: view, add, edit, get, delete, logout, help, exit")
		return
	}
	fmt.Fprintln(sh.out, "\nAvailable commands: register, login, help, exit")
}

func (sh *shell) register() error {
	username, err := sh.p.Line("\nEnter new username: ")
	if err != nil {
		return err
	}
	password, err := sh.p.SecretConfirm("Enter new password: ")
	if err != nil {
		Error(sh.out, "Registration failed: %v", err)
		return nil
	}

	s, err := sh.mgr.Register(username, password)
	switch {
	case err == nil:
		sh.session = s
		Success(sh.out, "Registration successful!")
	case errors.Is(err, vault.ErrExists):
		Error(sh.out, "Registration failed. That username is not available.")
	case errors.Is(err, vault.ErrInvalidInput):
		Error(sh.out, "Registration failed: %v", err)
	default:
		sh.logger.Error("registration failed", "error", err)
		Error(sh.out, "Registration failed.")
	}
	return nil
}

// login throttles failed attempts only: a failure takes a limiter token
// before it is reported, so a run of failures slows down.
func (sh *shell) login(ctx context.Context) error {
	username, err := sh.p.Line("\nEnter username: ")
	if err != nil {
		return err
	}
	password, err := sh.p.Secret("Enter password: ")
	if err != nil {
		return err
	}

	s, err := sh.mgr.Login(username, password)
	if err != nil {
		if errors.Is(err, vault.ErrStorage) {
			sh.logger.Error("login failed", "error", err)
		}
		if wErr := sh.limiter.Wait(ctx); wErr != nil {
			return wErr
		}
		Error(sh.out, "Login failed.")
		return nil
	}

	sh.session = s
	Success(sh.out, "Login successful!")
	return nil
}

func (sh *shell) view() error {
	names, err := sh.mgr.List(sh.session)
	if err != nil {
		sh.logger.Error("list failed", "error", err)
		Error(sh.out, "Failed to retrieve keys.")
		return nil
	}

	if len(names) == 0 {
		Info(sh.out, "No keys found.")
		return nil
	}

	fmt.Fprintln(sh.out, "\nYour keys:")
	for i, name := range names {
		fmt.Fprintf(sh.out, "%d. %s\n", i+1, name)
	}
	return nil
}

func (sh *shell) add() error {
	name, err := sh.p.Line("\nEnter key name: ")
	if err != nil {
		return err
	}
	value, ok, err := sh.chooseValue()
	if err != nil || !ok {
		return err
	}

	if err := sh.mgr.Add(sh.session, name, value); err != nil {
		sh.report("add", err)
		Error(sh.out, "Failed to add key. It may already exist or be invalid.")
		return nil
	}
	Success(sh.out, "Key added successfully.")
	return nil
}

func (sh *shell) edit() error {
	name, err := sh.p.Line("\nEnter the name of the key you want to edit: ")
	if err != nil {
		return err
	}
	value, ok, err := sh.chooseValue()
	if err != nil || !ok {
		return err
	}

	if err := sh.mgr.Edit(sh.session, name, value); err != nil {
		sh.report("edit", err)
		Error(sh.out, "Failed to update key. It may not exist or the input was invalid.")
		return nil
	}
	Success(sh.out, "Key updated successfully.")
	return nil
}

func (sh *shell) get() error {
	name, err := sh.p.Line("\nEnter the name of the key you want to see: ")
	if err != nil {
		return err
	}

	value, err := sh.mgr.Get(sh.session, name)
	if err != nil {
		sh.report("get", err)
		Error(sh.out, "Failed to retrieve the key. It may not exist or is restricted.")
		return nil
	}
	PrintKeyValue(sh.out, name, value)
	return nil
}

func (sh *shell) remove() error {
	name, err := sh.p.Line("\nEnter the name of the key you want to delete: ")
	if err != nil {
		return err
	}
	answer, err := sh.p.Line(fmt.Sprintf("Are you sure you want to delete %q? (yes/no): ", name))
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "yes" {
		Info(sh.out, "Deletion cancelled.")
		return nil
	}

	if err := sh.mgr.Delete(sh.session, name); err != nil {
		sh.report("delete", err)
		Error(sh.out, "Failed to delete key. It may not exist.")
		return nil
	}
	Success(sh.out, "Key deleted successfully.")
	return nil
}

// chooseValue asks whether to generate a password or type one. ok is false
// when the user picked neither option.
func (sh *shell) chooseValue() (value string, ok bool, err error) {
	fmt.Fprintln(sh.out, "\nChoose password option:")
	fmt.Fprintln(sh.out, "1. Generate a strong password")
	fmt.Fprintln(sh.out, "2. Enter your own password")
	option, err := sh.p.Line("Enter choice (1 or 2): ")
	if err != nil {
		return "", false, err
	}

	switch option {
	case "1":
		value, err = generator.Generate(sh.genLen)
		if err != nil {
			return "", false, err
		}
		PrintKeyValue(sh.out, "Generated password", value)
		return value, true, nil
	case "2":
		value, err = sh.p.Secret("Enter password: ")
		if err != nil {
			return "", false, err
		}
		return value, true, nil
	default:
		Warning(sh.out, "Invalid choice. Aborting.")
		return "", false, nil
	}
}

// report logs storage failures; other outcomes are ordinary user errors.
func (sh *shell) report(op string, err error) {
	if errors.Is(err, vault.ErrStorage) {
		sh.logger.Error(op+" failed", "error", err)
		return
	}
	sh.logger.Debug(op+" rejected", "error", err)
}
