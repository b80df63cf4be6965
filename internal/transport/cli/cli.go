package cli

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const notFoundMessage = "Could not find user."

var ErrUsage = errors.New("invalid usage")

type Options struct {
	Operation string
	Name      string
	ID        string
}

type userOutput struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
}

// ParseArgs reads command line flags and checks that the operation has the
// flags it needs.
func ParseArgs(args []string, errOut io.Writer) (Options, error) {
	var opts Options

	fs := pflag.NewFlagSet("club-cli", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVarP(&opts.Operation, "operation", "o", "", "create|read|update|delete")
	fs.StringVarP(&opts.Name, "name", "n", "", "user name")
	fs.StringVarP(&opts.ID, "id", "i", "", "user id")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch opts.Operation {
	case "create":
		if !fs.Changed("name") {
			return Options{}, fmt.Errorf("%w: create requires --name", ErrUsage)
		}
	case "read", "delete":
		if !fs.Changed("id") {
			return Options{}, fmt.Errorf("%w: %s requires --id", ErrUsage, opts.Operation)
		}
	case "update":
		if !fs.Changed("id") || !fs.Changed("name") {
			return Options{}, fmt.Errorf("%w: update requires --id and --name", ErrUsage)
		}
	default:
		return Options{}, fmt.Errorf("%w: unknown operation %q", ErrUsage, opts.Operation)
	}

	return opts, nil
}

func Run(ctx context.Context, opts Options, us *service.UserService, out io.Writer) error {
	switch opts.Operation {
	case "create":
		user, err := us.Register(ctx, opts.Name)
		if err != nil {
			return err
		}
		return printUser(out, service.NewUserData(user))

	case "read":
		data, err := us.User(ctx, opts.ID)
		if errors.Is(err, domain.ErrNotFound) {
			_, err = fmt.Fprintln(out, notFoundMessage)
			return err
		}
		if err != nil {
			return err
		}
		return printUser(out, data)

	case "update":
		user, err := us.Update(ctx, service.UpdateUserCommand{ID: opts.ID, Name: &opts.Name})
		if err != nil {
			return err
		}
		return printUser(out, service.NewUserData(user))

	case "delete":
		return us.Delete(ctx, opts.ID)
	}

	return fmt.Errorf("%w: unknown operation %q", ErrUsage, opts.Operation)
}

func printUser(out io.Writer, data service.UserData) error {
	return json.NewEncoder(out).Encode(userOutput{
		UserID:    data.ID,
		Name:      data.Name,
		IsPremium: data.IsPremium,
	})
}
