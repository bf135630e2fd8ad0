package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"sheetdb/internal/app"
	"sheetdb/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	sheetName := flag.String("sheet", "", "Sheet to select (default: first sheet, or SHEET_NAME env)")
	list := flag.Bool("list", false, "List all sheets and exit")
	initHeaders := flag.String("init", "", "Initialize the sheet as a database with these comma-separated headers (ID is added automatically)")
	appendValues := flag.String("append", "", "Append a comma-separated row to the database sheet")
	dump := flag.Bool("dump", false, "Print all data rows of the database sheet")
	flag.Parse()

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *sheetName != "" {
		config.SheetName = *sheetName
	}

	ctx := context.Background()

	manager, err := sheets.Connect(ctx, config.CredentialsFile, config.SpreadsheetID, config.SheetName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to spreadsheet")
	}

	if *list {
		titles, err := manager.ListSheets(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to list sheets")
		}
		for _, title := range titles {
			fmt.Println(title)
		}
		return
	}

	if *initHeaders != "" {
		headers := splitCSV(*initHeaders)
		if err := manager.InitDatabase(ctx, headers); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database sheet")
		}
		log.Info().Strs("headers", headers).Msg("Database sheet ready")
	}

	if *appendValues != "" {
		values := splitCSV(*appendValues)
		if err := manager.AppendRow(ctx, values); err != nil {
			log.Fatal().Err(err).Msg("Failed to append row")
		}
		log.Info().Int("values", len(values)).Msg("Appended row")
	}

	if *dump {
		headers, err := manager.Headers(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read headers")
		}
		rows, err := manager.Rows(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read rows")
		}
		fmt.Println(strings.Join(headers, "\t"))
		for _, row := range rows {
			fmt.Println(strings.Join(row, "\t"))
		}
	}
}

// splitCSV splits a comma-separated flag value, trimming whitespace
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
