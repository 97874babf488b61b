// Команда seed-slots предварительно создаёт свободные слоты для всех
// ресурсов категории на несколько дней вперёд. Движок бронирования
// создаёт недостающие слоты на лету, поэтому команда опциональна:
// она полезна для стендов и нагрузочных сценариев.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/DORM-ReservationService/internal/config"
	"github.com/m04kA/DORM-ReservationService/internal/domain"
	resourceRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/resource"
	slotRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/slot"
	"github.com/m04kA/DORM-ReservationService/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	categorySlug := flag.String("category", "", "слаг категории (например, treadmills); пусто — все категории")
	days := flag.Int("days", 7, "на сколько дней вперёд создавать слоты")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	location, err := time.LoadLocation(cfg.Service.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Service.Timezone, err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	var specs []domain.CategorySpec
	if *categorySlug != "" {
		spec, err := domain.SpecBySlug(*categorySlug)
		if err != nil {
			log.Fatal("Unknown category slug %q", *categorySlug)
		}
		specs = append(specs, *spec)
	} else {
		specs = domain.AllCategorySpecs()
	}

	ctx := context.Background()
	slots := slotRepo.NewRepository(db)
	resources := resourceRepo.NewRepository(db)

	dayStart, _ := domain.DayWindow(time.Now().In(location), location)

	var total int64
	for _, spec := range specs {
		categoryResources, err := resources.ListByCategory(ctx, spec.Category)
		if err != nil {
			log.Fatal("Failed to list resources for category=%s: %v", spec.Category, err)
		}

		for _, res := range categoryResources {
			batch := buildEmptySlots(res.ID, dayStart, *days, spec.SlotDurationMinutes)
			inserted, err := slots.CreateEmpty(ctx, batch)
			if err != nil {
				log.Fatal("Failed to seed slots for resource id=%d: %v", res.ID, err)
			}
			total += inserted
		}

		log.Info("Seeded category=%s: %d resource(s)", spec.Category, len(categoryResources))
	}

	log.Info("Done: inserted %d new slot(s) for %d day(s)", total, *days)
}

// buildEmptySlots строит сетку свободных слотов ресурса начиная с dayStart.
// AddDate вместо сложения часов сохраняет выравнивание по стене часов
// при переходах на летнее/зимнее время.
func buildEmptySlots(resourceID int64, dayStart time.Time, days, granularityMinutes int) []domain.TimeSlot {
	perDay := 24 * 60 / granularityMinutes

	slots := make([]domain.TimeSlot, 0, days*perDay)
	for d := 0; d < days; d++ {
		base := dayStart.AddDate(0, 0, d)
		for i := 0; i < perDay; i++ {
			start, end := domain.SlotWindow(base, i, granularityMinutes)
			slots = append(slots, domain.TimeSlot{
				ResourceID: resourceID,
				StartTime:  start,
				EndTime:    end,
			})
		}
	}
	return slots
}
