// Package main provides a CLI tool for seeding the database with
// initial data: admin user, base currency, taxes, payment methods and
// a default store with one register.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/auth"
	"puntoventa/internal/domain/catalogs/category"
	"puntoventa/internal/domain/catalogs/currency"
	"puntoventa/internal/domain/catalogs/paymentmethod"
	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/domain/catalogs/store"
	"puntoventa/internal/domain/catalogs/tax"
	"puntoventa/internal/infrastructure/storage/postgres"
	"puntoventa/internal/infrastructure/storage/postgres/auth_repo"
	"puntoventa/internal/infrastructure/storage/postgres/catalog_repo"
	"puntoventa/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	if err := seedAdminUser(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}
	if err := seedCurrencies(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed currencies", "error", err)
	}
	if err := seedTaxes(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed taxes", "error", err)
	}
	if err := seedCategories(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed categories", "error", err)
	}
	if err := seedPaymentMethods(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed payment methods", "error", err)
	}
	if err := seedStoreAndRegister(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed store and register", "error", err)
	}

	log.Info("seed complete")
}

func seedAdminUser(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	users := auth_repo.NewUserRepo(txManager)

	email := getEnv("ADMIN_EMAIL", "admin@puntoventa.local")
	exists, err := users.Exists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		log.Infow("admin user already exists", "email", email)
		return nil
	}

	password := getEnv("ADMIN_PASSWORD", "changeme123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := auth.NewUser(email, string(hash))
	user.FullName = "Administrator"
	user.IsAdmin = true

	if err := users.Create(ctx, user); err != nil {
		return err
	}
	log.Infow("admin user created", "email", email)
	return nil
}

func seedCurrencies(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	svc := currency.NewService(catalog_repo.NewCurrencyRepo(txManager), txManager)

	mxn := currency.NewCurrency("MXN", "Peso mexicano", "MXN", types.One())
	mxn.IsBase = true
	if err := createIfMissing(log, "currency", mxn.Code, func() error {
		_, err := svc.GetByCode(ctx, mxn.Code)
		return err
	}, func() error {
		return svc.Create(ctx, mxn)
	}); err != nil {
		return err
	}

	usd := currency.NewCurrency("USD", "Dólar americano", "USD", types.MustMoney("17.50"))
	return createIfMissing(log, "currency", usd.Code, func() error {
		_, err := svc.GetByCode(ctx, usd.Code)
		return err
	}, func() error {
		return svc.Create(ctx, usd)
	})
}

func seedTaxes(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	svc := tax.NewService(catalog_repo.NewTaxRepo(txManager), txManager)

	taxes := []*tax.Tax{
		tax.NewTax("IVA16", "IVA 16%", types.NewMoney(16)),
		tax.NewTax("IVA0", "IVA 0%", types.Zero()),
	}
	for _, t := range taxes {
		t := t
		if err := createIfMissing(log, "tax", t.Code, func() error {
			_, err := svc.GetByCode(ctx, t.Code)
			return err
		}, func() error {
			return svc.Create(ctx, t)
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	svc := category.NewService(catalog_repo.NewCategoryRepo(txManager), txManager)

	general := category.NewCategory("GEN", "General")
	return createIfMissing(log, "category", general.Code, func() error {
		_, err := svc.GetByCode(ctx, general.Code)
		return err
	}, func() error {
		return svc.Create(ctx, general)
	})
}

func seedPaymentMethods(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	svc := paymentmethod.NewService(catalog_repo.NewPaymentMethodRepo(txManager), txManager)

	methods := []*paymentmethod.Method{
		paymentmethod.NewMethod("EFE", "Efectivo"),
		paymentmethod.NewMethod("TAR", "Tarjeta"),
		paymentmethod.NewCreditMethod("Crédito"),
	}
	for _, m := range methods {
		m := m
		if err := createIfMissing(log, "payment method", m.Clave, func() error {
			_, err := svc.FindByClave(ctx, m.Clave)
			return err
		}, func() error {
			return svc.Create(ctx, m)
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedStoreAndRegister(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	storeSvc := store.NewService(catalog_repo.NewStoreRepo(txManager), txManager)
	registerSvc := register.NewService(catalog_repo.NewRegisterRepo(txManager), txManager)

	mainStore := store.NewStore("MAIN", "Tienda principal")
	if err := createIfMissing(log, "store", mainStore.Code, func() error {
		existing, err := storeSvc.GetByCode(ctx, mainStore.Code)
		if err == nil {
			mainStore = existing
		}
		return err
	}, func() error {
		return storeSvc.Create(ctx, mainStore)
	}); err != nil {
		return err
	}

	caja := register.NewRegister("CAJA1", "Caja 1", mainStore.ID)
	return createIfMissing(log, "register", caja.Code, func() error {
		_, err := registerSvc.GetByCode(ctx, caja.Code)
		return err
	}, func() error {
		return registerSvc.Create(ctx, caja)
	})
}

// createIfMissing runs create when lookup reports not-found; any other
// lookup error aborts the seed.
func createIfMissing(log *logger.Logger, kind, code string, lookup, create func() error) error {
	err := lookup()
	if err == nil {
		log.Infow(kind+" already exists", "code", code)
		return nil
	}
	if !apperror.IsNotFound(err) {
		return err
	}
	if err := create(); err != nil {
		return err
	}
	log.Infow(kind+" created", "code", code)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
