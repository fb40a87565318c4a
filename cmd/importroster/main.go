package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/infras/redis"
	rosterRepository "resthouse/internal/domains/roster/repository"
	rosterService "resthouse/internal/domains/roster/service"
	"resthouse/shared/cache"
	"resthouse/shared/logger"
)

const (
	argLength = 2
)

// Reads employee IDs from the first column of the first sheet of an .xlsx
// workbook and bulk-adds them to the authorized roster.
func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Usage: importroster <workbook.xlsx>")
	}

	employeeIDs, err := readWorkbook(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read workbook")
	}

	if len(employeeIDs) == 0 {
		log.Fatal().Msg("Workbook contains no employee IDs")
	}

	cfg := config.Get()

	ot := otel.New(cfg)
	db := postgres.New(cfg)
	redisCache := cache.NewRedisCache(redis.New(cfg), ot)

	service := rosterService.New(rosterRepository.New(db, ot), cfg, redisCache, ot)

	result, err := service.Import(context.Background(), employeeIDs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to import employee IDs")
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("Roster import completed")
}

func readWorkbook(path string) ([]string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := workbook.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close workbook")
		}
	}()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	employeeIDs := make([]string, 0, len(rows))

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		employeeID := strings.TrimSpace(row[0])
		if employeeID == "" {
			continue
		}

		employeeIDs = append(employeeIDs, employeeID)
	}

	return employeeIDs, nil
}
