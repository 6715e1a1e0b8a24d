// Package main provides the one-shot CLI: generate a feed for a profile
// without running the HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rosie-yoon/ebaybulk/internal/config"
	"github.com/rosie-yoon/ebaybulk/internal/core"
	"github.com/rosie-yoon/ebaybulk/internal/history"
	"github.com/rosie-yoon/ebaybulk/internal/logging"
	"github.com/rosie-yoon/ebaybulk/internal/profile"
	"github.com/rosie-yoon/ebaybulk/internal/sheets"
)

var outputDir string

func main() {
	rootCmd := &cobra.Command{
		Use:   "ebaybulk",
		Short: "Generate eBay bulk listing feeds from Google Sheets",
	}

	generateCmd := &cobra.Command{
		Use:   "generate [profile-id]",
		Short: "Generate the bulk feed for one profile and write it to disk",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to write the workbook to")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfiles,
	}

	rootCmd.AddCommand(generateCmd, profilesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and opens the database pool shared by both commands.
func setup(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return cfg, pool, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	cfg, pool, err := setup(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	source := sheets.NewClient(cfg.Sheets.Timeout, sheets.WithBaseURL(cfg.Sheets.BaseURL))
	generator := core.NewGenerator(profile.NewStore(pool), source, history.NewRecorder(pool))

	genCtx, cancel := context.WithTimeout(ctx, cfg.Generate.Timeout)
	defer cancel()

	result, err := generator.Generate(genCtx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
	}

	path := filepath.Join(outputDir, result.FileName)
	if err := os.WriteFile(path, result.Data, 0644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	fmt.Printf("wrote %s (%d rows, %d products)\n", path, result.RowCount, result.ProductCount)
	for _, issue := range result.Issues {
		fmt.Printf("warning: %s\n", issue)
	}
	return nil
}

func runProfiles(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, pool, err := setup(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	profiles, err := profile.NewStore(pool).List(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("no profiles configured")
		return nil
	}
	for _, p := range profiles {
		fmt.Printf("%s  %-20s  sheet=%s\n", p.ID, p.Name, p.GoogleSheetID)
	}
	return nil
}
