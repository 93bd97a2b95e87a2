package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"dhara/config"
	"dhara/database"
	appointmentRepo "dhara/database/repository/appointment"
	availabilityRepo "dhara/database/repository/availability"
	"dhara/models"
	"dhara/services/calendar"
	"dhara/utils"

	"github.com/spf13/cobra"
)

// newService wires a cache-less calendar service against the configured database.
func newService() calendar.Service {
	config.LoadConfig()
	db := database.GetDatabase()
	return &calendar.DefaultCalendarService{
		Slots:        availabilityRepo.NewMongoAvailabilityRepo(db),
		Appointments: appointmentRepo.NewMongoAppointmentRepo(db),
		Logger:       utils.GetLogger(),
		WeekStartsOn: config.CalendarDefaults().WeekStartsOn,
	}
}

func occupancyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occupancy",
		Short: "Print occupancy statistics for one professional",
		RunE: func(cmd *cobra.Command, args []string) error {
			professional, _ := cmd.Flags().GetString("professional")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			granularity, _ := cmd.Flags().GetString("granularity")

			rng, err := parseRange(start, end, granularity)
			if err != nil {
				return err
			}
			view, err := newService().GetCalendar(cmd.Context(), professional, rng, config.CalendarDefaults())
			if err != nil {
				return err
			}
			return printOccupancy(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().String("professional", "", "professional id")
	cmd.Flags().String("start", time.Now().Format("2006-01-02"), "first date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "last date (YYYY-MM-DD), defaults to start")
	cmd.Flags().String("granularity", "week", "week, month or empty for the exact range")
	_ = cmd.MarkFlagRequired("professional")
	return cmd
}

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "List slots and appointments the calendar would skip",
		RunE: func(cmd *cobra.Command, args []string) error {
			professional, _ := cmd.Flags().GetString("professional")
			diags, err := newService().Lint(cmd.Context(), professional)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), diags)
		},
	}
	cmd.Flags().String("professional", "", "professional id")
	_ = cmd.MarkFlagRequired("professional")
	return cmd
}

func parseRange(start, end, granularity string) (models.VisibleRange, error) {
	var rng models.VisibleRange
	s, err := calendar.ParseDate(start)
	if err != nil {
		return rng, err
	}
	rng.Start = s
	if end != "" {
		e, err := calendar.ParseDate(end)
		if err != nil {
			return rng, err
		}
		rng.End = e
	}
	rng.Granularity = models.Granularity(granularity)
	if !rng.Granularity.Valid() {
		return rng, fmt.Errorf("unknown granularity %q", granularity)
	}
	return rng, nil
}

func printOccupancy(w io.Writer, view *models.CalendarView) error {
	fmt.Fprintf(w, "range:      %s .. %s\n", calendar.FormatDate(view.Range.Start), calendar.FormatDate(view.Range.End))
	fmt.Fprintf(w, "available:  %.0fh\n", view.Stats.TotalAvailableHours)
	fmt.Fprintf(w, "booked:     %.0fh\n", view.Stats.TotalBookedHours)
	fmt.Fprintf(w, "occupancy:  %.1f%%\n", view.Stats.OccupancyRate)
	if len(view.Diagnostics) == 0 {
		return nil
	}
	fmt.Fprintln(w, "skipped records:")
	return printJSON(w, view.Diagnostics)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
