package main

import (
	"context"
	"fmt"
	"os"

	"japantune/internal/appcontext"
	"japantune/internal/config"
	"japantune/internal/generator"
	"japantune/internal/logger"
	"japantune/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	users              int
	suppliers          int
	materialsPerVendor int
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Заполнить базу тестовыми данными",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

		app, err := appcontext.NewApplicationContext(cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		return seed(service.WithActor(cmd.Context(), "seeder"), app.Services)
	},
}

func init() {
	rootCmd.Flags().IntVar(&users, "users", 10, "Количество пользователей")
	rootCmd.Flags().IntVar(&suppliers, "suppliers", 3, "Количество поставщиков")
	rootCmd.Flags().IntVar(&materialsPerVendor, "materials", 4, "Материалов у каждого поставщика")
}

// seed создает поставщиков с материалами, затем пользователей с автомобилем,
// платежом, отзывом и заказом.
func seed(ctx context.Context, s appcontext.Services) error {
	var materialIDs []int
	for i := 0; i < suppliers; i++ {
		supplier, err := s.Suppliers.Create(ctx, generator.SupplierForm())
		if err != nil {
			return fmt.Errorf("поставщик: %w", err)
		}
		for j := 0; j < materialsPerVendor; j++ {
			material, err := s.Materials.Create(ctx, generator.MaterialForm(supplier.ID))
			if err != nil {
				return fmt.Errorf("материал: %w", err)
			}
			materialIDs = append(materialIDs, material.ID)
		}
	}

	for i := 0; i < users; i++ {
		user, err := s.Users.Create(ctx, generator.UserForm())
		if err != nil {
			return fmt.Errorf("пользователь: %w", err)
		}
		if _, err := s.Cars.Create(ctx, generator.CarForm(user.ID)); err != nil {
			return fmt.Errorf("автомобиль: %w", err)
		}
		payment, err := s.Payments.Create(ctx, generator.PaymentForm(user.ID))
		if err != nil {
			return fmt.Errorf("платеж: %w", err)
		}
		review, err := s.Reviews.Create(ctx, generator.ReviewForm(user.ID))
		if err != nil {
			return fmt.Errorf("отзыв: %w", err)
		}
		if len(materialIDs) == 0 {
			continue
		}

		form := generator.OrderForm(user.ID, materialIDs[gofakeit.Number(0, len(materialIDs)-1)], payment.ID)
		if gofakeit.Bool() {
			form.Set("reviewId", fmt.Sprint(review.ID))
		}
		if _, err := s.Orders.Create(ctx, form); err != nil {
			return fmt.Errorf("заказ: %w", err)
		}
		log.Info().Str("login", user.ClientLogin).Msg("Создан тестовый пользователь")
	}

	log.Info().Int("users", users).Int("materials", len(materialIDs)).Msg("Тестовые данные созданы")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Ошибка заполнения базы")
		os.Exit(1)
	}
}
