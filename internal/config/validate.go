package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// ValidationErrors lists every field that failed its constraint.
type ValidationErrors struct {
	Errors []string
}

func (v ValidationErrors) Error() string {
	return "invalid config: " + strings.Join(v.Errors, "; ")
}

func validateStruct(s any) error {
	if err := structValidator.Struct(s); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := ValidationErrors{}
			for _, e := range ve {
				out.Errors = append(out.Errors, fmt.Sprintf("%s %s", e.Namespace(), e.ActualTag()))
			}
			return out
		}
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	if err := c.Search.Weights.Validate(); err != nil {
		return fmt.Errorf("search.weights: %w", err)
	}

	// Worker config
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	return nil
}

// QueuedHistory reports whether search history is handed to the worker.
// Both processes must share the database for queued writes to be visible.
func (c *Config) QueuedHistory() bool {
	return c.Redis.Address != "" && c.Database.Primary.DSN != ""
}

// RequireWorkerBackends reports whether the background worker can run.
func (c *Config) RequireWorkerBackends() error {
	if c.Redis.Address == "" {
		return errors.New("redis.address is required to run the worker")
	}
	if c.Database.Primary.DSN == "" {
		return errors.New("database.primary.dsn is required to run the worker; in-memory history is not shared between processes")
	}
	return nil
}
