package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/couchbase/tools-pq/envvar"
	"github.com/couchbase/tools-pq/log"
	"github.com/couchbase/tools-pq/pqutil"
)

const (
	envCapacity = "PQDEMO_CAPACITY"
	envLogLevel = "PQDEMO_LOG_LEVEL"
	envJSON     = "PQDEMO_JSON"
)

// activity is a labelled task which is processed in priority order.
type activity struct {
	Name     string `json:"activity"`
	Priority int    `json:"priority"`
}

// defaultActivities are used when no activities are given on the command line.
var defaultActivities = []activity{
	{Name: "play", Priority: 1},
	{Name: "eat", Priority: 10},
	{Name: "pee", Priority: 3},
	{Name: "poop", Priority: 7},
	{Name: "be happy", Priority: 5},
}

type options struct {
	capacity int
	json     bool
	logLevel string
}

func newCommand() *cobra.Command {
	opts := options{capacity: len(defaultActivities), logLevel: "warn"}

	if capacity, ok := envvar.GetInt(envCapacity); ok {
		opts.capacity = capacity
	}

	// Invalid values are logged by envvar and fall back to the defaults.
	if level, ok := envvar.GetLevel(envLogLevel); ok {
		opts.logLevel = level.Name()
	}

	if json, ok := envvar.GetBool(envJSON); ok {
		opts.json = json
	}

	cmd := &cobra.Command{
		Use:   "pqdemo [activity=priority ...]",
		Short: "Prints activities in descending priority order",
		Long: `Inserts the given activities into a max-heap priority queue then extracts them one by one, printing them
from the highest to the lowest priority. A default set of activities is used when none are given.

Environment variables:
  PQDEMO_CAPACITY=5
  PQDEMO_LOG_LEVEL=warn
  PQDEMO_JSON=false`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}

			log.SetLogger(log.StdoutLogger{MinLevel: level, Writer: cmd.ErrOrStderr()})

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			activities := defaultActivities

			if len(args) != 0 {
				parsed, err := parseActivities(args)
				if err != nil {
					return err
				}

				activities = parsed
			}

			return run(cmd.OutOrStdout(), opts, activities)
		},
	}

	cmd.Flags().IntVar(&opts.capacity, "capacity", opts.capacity, "initial capacity of the priority queue")
	cmd.Flags().BoolVar(&opts.json, "json", opts.json, "print one JSON object per activity")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel,
		"minimum log level (trace, debug, info, warn, error)")

	return cmd
}

// parseActivities parses arguments in the form 'name=priority', the last '=' separates the name from the priority.
func parseActivities(args []string) ([]activity, error) {
	activities := make([]activity, 0, len(args))

	for _, arg := range args {
		idx := strings.LastIndex(arg, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid activity '%s', expected the form 'name=priority'", arg)
		}

		priority, err := strconv.Atoi(arg[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid priority for activity '%s': %w", arg[:idx], err)
		}

		activities = append(activities, activity{Name: arg[:idx], Priority: priority})
	}

	return activities, nil
}

func run(w io.Writer, opts options, activities []activity) error {
	if opts.capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", opts.capacity)
	}

	queue := pqutil.NewPriorityQueue[string, int](opts.capacity)

	for _, a := range activities {
		log.Debugf("(Demo) Inserting activity '%s' with priority %d", a.Name, a.Priority)
		queue.Insert(a.Name, a.Priority)
	}

	log.Infof("(Demo) Extracting %d activities", queue.Len())

	emit := func(item pqutil.Item[string, int]) error {
		_, err := fmt.Fprintf(w, "Activity: %s. Priority: %d.\n", item.Payload, item.Priority)
		return err
	}

	if opts.json {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)

		emit = func(item pqutil.Item[string, int]) error {
			return enc.Encode(activity{Name: item.Payload, Priority: item.Priority})
		}
	}

	if err := queue.Drain(emit); err != nil {
		return fmt.Errorf("failed to print activity: %w", err)
	}

	return nil
}
