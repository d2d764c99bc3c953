// Command starsays fetches astrology readings from the terminal. Results
// are cached in-process for the lifetime of the command, so it exists
// mostly to exercise the client end to end against a real endpoint.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dinaypatil-web/whatmystarssays/genai"
	"github.com/dinaypatil-web/whatmystarssays/readings"
	"github.com/dinaypatil-web/whatmystarssays/store/memory"
)

var (
	language string
	verbose  bool
)

func newClient() (*readings.Client, error) {
	cfg, err := readings.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	gen := genai.NewHTTP(genai.HTTPConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	}, logger)

	return readings.NewClient(cfg, gen, memory.New(), logger)
}

func parseBirth(name, date, tob, place string) (readings.BirthDetails, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return readings.BirthDetails{}, fmt.Errorf("birth date must be YYYY-MM-DD: %w", err)
	}
	return readings.BirthDetails{Name: name, Date: d, TimeOfBirth: tob, Place: place}, nil
}

func horoscopeCmd() *cobra.Command {
	var timeframe string
	cmd := &cobra.Command{
		Use:   "horoscope <sign>",
		Short: "Fetch the horoscope for a zodiac sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close(cmd.Context()) }()

			h, err := c.Horoscope(cmd.Context(), args[0], readings.Timeframe(timeframe), language)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n\n%s\n\nLove: %s\nCareer: %s\nHealth: %s\n",
				strings.ToUpper(h.Sign), h.Timeframe, h.Overview, h.Love, h.Career, h.Health)
			if len(h.LuckyNumbers) > 0 {
				fmt.Printf("Lucky numbers: %v, lucky color: %s\n", h.LuckyNumbers, h.LuckyColor)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&timeframe, "timeframe", "t", "daily", "daily, weekly, monthly or yearly")
	return cmd
}

func numerologyCmd() *cobra.Command {
	var name, date string
	cmd := &cobra.Command{
		Use:   "numerology",
		Short: "Compute a numerology reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := parseBirth(name, date, "", "")
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close(cmd.Context()) }()

			r, err := c.Numerology(cmd.Context(), b)
			if err != nil {
				return err
			}
			fmt.Printf("Life path: %d\nBirth number: %d\nName number: %d\nMissing numbers: %v\n\n%s\n",
				r.LifePath, r.BirthNumber, r.NameNumber, r.MissingNumbers, r.Interpretation)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&date, "date", "", "birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func matchCmd() *cobra.Command {
	var nameA, dateA, nameB, dateB string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score the compatibility of two people",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := parseBirth(nameA, dateA, "", "")
			if err != nil {
				return err
			}
			b, err := parseBirth(nameB, dateB, "", "")
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close(cmd.Context()) }()

			m, err := c.Match(cmd.Context(), a, b, language)
			if err != nil {
				return err
			}
			fmt.Printf("Compatibility: %d/100\n\n%s\n", m.Score, m.Summary)
			for _, s := range m.Strengths {
				fmt.Printf("  + %s\n", s)
			}
			for _, ch := range m.Challenges {
				fmt.Printf("  - %s\n", ch)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nameA, "name-a", "", "first person's name")
	cmd.Flags().StringVar(&dateA, "date-a", "", "first person's birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nameB, "name-b", "", "second person's name")
	cmd.Flags().StringVar(&dateB, "date-b", "", "second person's birth date (YYYY-MM-DD)")
	for _, f := range []string{"name-a", "date-a", "name-b", "date-b"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "starsays",
		Short:         "Astrology readings from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&language, "language", "l", "english", "reading language")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(horoscopeCmd(), numerologyCmd(), matchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
